package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"plates-planner/internal/config"
	"plates-planner/internal/logger"
	"plates-planner/internal/planner"
	"plates-planner/internal/repository"
	"plates-planner/internal/server"
	"plates-planner/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		panic("config: " + err.Error())
	}

	log := logger.New(cfg.LogLevel)

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	plateRepo := repository.NewPlateRepository(db)
	milestoneRepo := repository.NewMilestoneRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	planRepo := repository.NewPlanRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	taskSvc := service.NewTaskService(taskRepo, plateRepo)
	plateSvc := service.NewPlateService(plateRepo, milestoneRepo, taskRepo)
	milestoneSvc := service.NewMilestoneService(milestoneRepo, plateRepo)
	planSvc := service.NewPlanService(planRepo, taskRepo, plateRepo, reviewRepo, userRepo, taskSvc, planner.HeuristicGenerator{})
	reviewSvc := service.NewReviewService(reviewRepo)
	statsSvc := service.NewStatsService(planRepo, taskRepo, plateRepo, reviewRepo, reviewSvc)
	userSvc := service.NewUserService(userRepo, plateRepo, planRepo, reviewRepo, taskSvc)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.WithError(err).Warn("unknown timezone, using UTC")
		loc = time.UTC
	}
	scheduler := service.NewSchedulerService(loc)
	if _, err := scheduler.ScheduleDaily(cfg.PlanGenerateTime, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		count, err := planSvc.GenerateForAllUsers(jobCtx)
		if err != nil {
			log.WithError(err).Error("scheduled plan generation")
			return
		}
		log.WithField("generated", count).Info("scheduled plan generation")
	}); err != nil {
		log.WithError(err).Fatal("schedule plan generation")
	}
	scheduler.Start()
	defer scheduler.Stop()

	srv := server.New(userSvc, plateSvc, milestoneSvc, taskSvc, planSvc, reviewSvc, statsSvc, cfg.CronSecret, log)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Router(),
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server started")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
	log.Info("shutdown complete")
}
