package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type generatePlanRequest struct {
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

func (s *Server) todayPlan(c *gin.Context) {
	plan, err := s.plans.Today(c.Request.Context(), currentUser(c))
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, plan)
}

// generatePlan regenerates the plan for today, or for an explicit date
// when one is supplied. An empty body is valid.
func (s *Server) generatePlan(c *gin.Context) {
	var req generatePlanRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
	}

	user := currentUser(c)
	date := s.plans.NowDate()
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		date = parsed
	}

	plan, err := s.plans.GenerateForDate(c.Request.Context(), user, date)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, plan)
}

func (s *Server) getPlan(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	plan, err := s.plans.Get(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, plan)
}

func (s *Server) reorderPlanItems(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	plan, err := s.plans.ReorderItems(c.Request.Context(), currentUser(c).ID, id, req.IDs)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, plan)
}

func (s *Server) completePlanItem(c *gin.Context) {
	planID, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	itemID, err := parseID(c.Param("itemID"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	item, err := s.plans.CompleteItem(c.Request.Context(), currentUser(c).ID, planID, itemID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, item)
}

func (s *Server) skipPlanItem(c *gin.Context) {
	planID, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	itemID, err := parseID(c.Param("itemID"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	item, err := s.plans.SkipItem(c.Request.Context(), currentUser(c).ID, planID, itemID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, item)
}

// cronGeneratePlan regenerates today's plan for every account; the
// external scheduler hits this endpoint.
func (s *Server) cronGeneratePlan(c *gin.Context) {
	count, err := s.plans.GenerateForAllUsers(c.Request.Context())
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"generated": count})
}
