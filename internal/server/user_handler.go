package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plates-planner/internal/model"
	"plates-planner/internal/service"
)

type scheduleRequest struct {
	Name          *string `json:"name"`
	WakeTime      *string `json:"wake_time" binding:"omitempty,hhmm"`
	SleepTime     *string `json:"sleep_time" binding:"omitempty,hhmm"`
	WorkStartTime *string `json:"work_start_time" binding:"omitempty,hhmm"`
	WorkEndTime   *string `json:"work_end_time" binding:"omitempty,hhmm"`
	WorkDays      []int   `json:"work_days" binding:"omitempty,dive,min=0,max=6"`
	Timezone      *string `json:"timezone"`
	ReviewTime    *string `json:"review_time" binding:"omitempty,hhmm"`
}

type onboardRequest struct {
	Schedule scheduleRequest `json:"schedule"`
	Plates   []string        `json:"plates" binding:"required,min=1"`
}

func (r scheduleRequest) toUpdate() model.UserScheduleUpdate {
	return model.UserScheduleUpdate{
		Name:          r.Name,
		WakeTime:      r.WakeTime,
		SleepTime:     r.SleepTime,
		WorkStartTime: r.WorkStartTime,
		WorkEndTime:   r.WorkEndTime,
		WorkDays:      r.WorkDays,
		Timezone:      r.Timezone,
		ReviewTime:    r.ReviewTime,
	}
}

func (s *Server) getUser(c *gin.Context) {
	respondData(c, http.StatusOK, currentUser(c))
}

func (s *Server) updateUser(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	user, err := s.users.UpdateSchedule(c.Request.Context(), currentUser(c).ID, req.toUpdate())
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, user)
}

func (s *Server) onboardUser(c *gin.Context) {
	var req onboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	user, err := s.users.Onboard(c.Request.Context(), currentUser(c).ID, service.OnboardInput{
		Schedule: req.Schedule.toUpdate(),
		Plates:   req.Plates,
	})
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, user)
}

func (s *Server) resetUser(c *gin.Context) {
	user, err := s.users.Reset(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, user)
}

func (s *Server) getStats(c *gin.Context) {
	dashboard, err := s.stats.Dashboard(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, dashboard)
}

// onboardingCatalog exposes the suggested plates, their starter tasks,
// and the timezone choices for the setup flow.
func (s *Server) onboardingCatalog(c *gin.Context) {
	respondData(c, http.StatusOK, gin.H{
		"plates":    service.SuggestedPlates,
		"tasks":     service.SuggestedTasks,
		"timezones": service.Timezones,
	})
}
