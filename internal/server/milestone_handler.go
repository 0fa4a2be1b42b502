package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plates-planner/internal/model"
)

type createMilestoneRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	TargetDate  string `json:"target_date" binding:"omitempty,datetime=2006-01-02"`
}

type updateMilestoneRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	TargetDate  *string `json:"target_date" binding:"omitempty,datetime=2006-01-02"`
	Completed   *bool   `json:"completed"`
}

func (s *Server) listMilestones(c *gin.Context) {
	plateID, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	milestones, err := s.milestones.ListByPlate(c.Request.Context(), currentUser(c).ID, plateID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, milestones)
}

func (s *Server) createMilestone(c *gin.Context) {
	plateID, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	var req createMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	targetDate, err := parseDatePtr(req.TargetDate)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	milestone := &model.Milestone{
		PlateID:     plateID,
		Name:        req.Name,
		Description: req.Description,
		TargetDate:  targetDate,
	}
	if err := s.milestones.Create(c.Request.Context(), currentUser(c).ID, milestone); err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, milestone)
}

func (s *Server) updateMilestone(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	var req updateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	update := model.MilestoneUpdate{
		Name:        req.Name,
		Description: req.Description,
		Completed:   req.Completed,
	}
	if req.TargetDate != nil {
		targetDate, err := parseDate(*req.TargetDate)
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		update.TargetDate = &targetDate
	}
	milestone, err := s.milestones.Update(c.Request.Context(), currentUser(c).ID, id, update)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, milestone)
}

func (s *Server) deleteMilestone(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := s.milestones.Delete(c.Request.Context(), currentUser(c).ID, id); err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}
