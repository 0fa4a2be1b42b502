package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"plates-planner/internal/service"
)

type submitReviewRequest struct {
	Mood    int                   `json:"mood" binding:"required,min=1,max=5"`
	Notes   string                `json:"notes"`
	Ratings []service.RatingInput `json:"ratings" binding:"omitempty,dive"`
}

func (s *Server) todayReview(c *gin.Context) {
	review, err := s.reviews.Today(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, review)
}

func (s *Server) submitReview(c *gin.Context) {
	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	review, err := s.reviews.Submit(c.Request.Context(), currentUser(c).ID, req.Mood, req.Notes, req.Ratings)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, review)
}

func (s *Server) reviewHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(c, http.StatusBadRequest, "bad_request", "invalid limit")
			return
		}
		limit = parsed
	}
	reviews, err := s.reviews.History(c.Request.Context(), currentUser(c).ID, limit)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, reviews)
}
