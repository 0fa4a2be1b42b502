// Package server wires the HTTP API: routing, middleware, request DTOs,
// and the response envelope. Handlers stay thin and delegate to the
// service layer.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"plates-planner/internal/service"
)

// Server bundles the services the handlers call.
type Server struct {
	users      *service.UserService
	plates     *service.PlateService
	milestones *service.MilestoneService
	tasks      *service.TaskService
	plans      *service.PlanService
	reviews    *service.ReviewService
	stats      *service.StatsService
	cronSecret string
	log        *logrus.Logger
}

func New(
	users *service.UserService,
	plates *service.PlateService,
	milestones *service.MilestoneService,
	tasks *service.TaskService,
	plans *service.PlanService,
	reviews *service.ReviewService,
	stats *service.StatsService,
	cronSecret string,
	log *logrus.Logger,
) *Server {
	return &Server{
		users:      users,
		plates:     plates,
		milestones: milestones,
		tasks:      tasks,
		plans:      plans,
		reviews:    reviews,
		stats:      stats,
		cronSecret: cronSecret,
		log:        log,
	}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	registerValidations()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())

	router.GET("/health", s.health)

	api := router.Group("/api")
	api.Use(s.currentUser())
	{
		plates := api.Group("/plates")
		{
			plates.GET("", s.listPlates)
			plates.POST("", s.createPlate)
			plates.POST("/reorder", s.reorderPlates)
			plates.GET("/:id", s.getPlate)
			plates.PATCH("/:id", s.updatePlate)
			plates.DELETE("/:id", s.archivePlate)
			plates.GET("/:id/milestones", s.listMilestones)
			plates.POST("/:id/milestones", s.createMilestone)
		}

		milestones := api.Group("/milestones")
		{
			milestones.PATCH("/:id", s.updateMilestone)
			milestones.DELETE("/:id", s.deleteMilestone)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", s.listTasks)
			tasks.POST("", s.createTask)
			tasks.POST("/quick-add", s.quickAddTask)
			tasks.GET("/:id", s.getTask)
			tasks.PATCH("/:id", s.updateTask)
			tasks.DELETE("/:id", s.deleteTask)
			tasks.POST("/:id/complete", s.completeTask)
			tasks.POST("/:id/skip", s.skipTask)
		}

		plans := api.Group("/plans")
		{
			plans.GET("/today", s.todayPlan)
			plans.POST("/generate", s.generatePlan)
			plans.GET("/:id", s.getPlan)
			plans.POST("/:id/reorder", s.reorderPlanItems)
			plans.POST("/:id/items/:itemID/complete", s.completePlanItem)
			plans.POST("/:id/items/:itemID/skip", s.skipPlanItem)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", s.reviewHistory)
			reviews.POST("", s.submitReview)
			reviews.GET("/today", s.todayReview)
			reviews.GET("/history", s.reviewHistory)
		}

		user := api.Group("/user")
		{
			user.GET("", s.getUser)
			user.PATCH("", s.updateUser)
			user.POST("/onboard", s.onboardUser)
			user.POST("/reset", s.resetUser)
			user.GET("/stats", s.getStats)
		}

		api.GET("/onboarding", s.onboardingCatalog)
	}

	cron := router.Group("/api/cron")
	cron.Use(s.cronAuth())
	{
		cron.POST("/generate-plan", s.cronGeneratePlan)
	}

	return router
}

func (s *Server) health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
