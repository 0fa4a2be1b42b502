package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plates-planner/internal/model"
)

type createPlateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Type        string `json:"type" binding:"omitempty,oneof=ongoing goal"`
}

type updatePlateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Type        *string `json:"type" binding:"omitempty,oneof=ongoing goal"`
	Status      *string `json:"status" binding:"omitempty,oneof=active completed archived"`
}

type reorderRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

func (s *Server) listPlates(c *gin.Context) {
	plates, err := s.plates.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, plates)
}

func (s *Server) getPlate(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	plate, err := s.plates.Get(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, plate)
}

func (s *Server) createPlate(c *gin.Context) {
	var req createPlateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	plate := &model.Plate{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		Type:        model.PlateType(req.Type),
	}
	if err := s.plates.Create(c.Request.Context(), currentUser(c).ID, plate); err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, plate)
}

func (s *Server) updatePlate(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	var req updatePlateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	update := model.PlateUpdate{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	}
	if req.Type != nil {
		t := model.PlateType(*req.Type)
		update.Type = &t
	}
	if req.Status != nil {
		st := model.PlateStatus(*req.Status)
		update.Status = &st
	}
	plate, err := s.plates.Update(c.Request.Context(), currentUser(c).ID, id, update)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, plate)
}

func (s *Server) archivePlate(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	plate, err := s.plates.Archive(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, plate)
}

func (s *Server) reorderPlates(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	plates, err := s.plates.Reorder(c.Request.Context(), currentUser(c).ID, req.IDs)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, plates)
}
