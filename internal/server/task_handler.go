package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plates-planner/internal/model"
	"plates-planner/internal/repository"
)

type createTaskRequest struct {
	PlateID        uint                  `json:"plate_id" binding:"required"`
	Title          string                `json:"title" binding:"required"`
	Description    string                `json:"description"`
	Priority       string                `json:"priority" binding:"omitempty,oneof=critical high medium low"`
	EffortMinutes  *int                  `json:"effort_minutes" binding:"omitempty,min=1"`
	EnergyLevel    string                `json:"energy_level" binding:"omitempty,oneof=low medium high"`
	Context        string                `json:"context" binding:"omitempty,oneof=at_work at_home errands anywhere"`
	TimePreference string                `json:"time_preference" binding:"omitempty,oneof=morning afternoon evening anytime"`
	DueDate        string                `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	IsRecurring    bool                  `json:"is_recurring"`
	RecurrenceRule *model.RecurrenceRule `json:"recurrence_rule"`
}

type updateTaskRequest struct {
	Title          *string               `json:"title"`
	Description    *string               `json:"description"`
	Status         *string               `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	Priority       *string               `json:"priority" binding:"omitempty,oneof=critical high medium low"`
	EffortMinutes  *int                  `json:"effort_minutes" binding:"omitempty,min=1"`
	EnergyLevel    *string               `json:"energy_level" binding:"omitempty,oneof=low medium high"`
	Context        *string               `json:"context" binding:"omitempty,oneof=at_work at_home errands anywhere"`
	TimePreference *string               `json:"time_preference" binding:"omitempty,oneof=morning afternoon evening anytime"`
	DueDate        *string               `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	IsRecurring    *bool                 `json:"is_recurring"`
	RecurrenceRule *model.RecurrenceRule `json:"recurrence_rule"`
}

type quickAddRequest struct {
	PlateID uint   `json:"plate_id" binding:"required"`
	Title   string `json:"title" binding:"required"`
}

func (s *Server) listTasks(c *gin.Context) {
	filter := repository.TaskFilter{
		Status:   model.TaskStatus(c.Query("status")),
		Priority: model.TaskPriority(c.Query("priority")),
		Context:  model.TaskContext(c.Query("context")),
	}
	if raw := c.Query("plate_id"); raw != "" {
		plateID, err := parseID(raw)
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		filter.PlateID = plateID
	}
	tasks, err := s.tasks.List(c.Request.Context(), currentUser(c).ID, filter)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, tasks)
}

func (s *Server) getTask(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	task, err := s.tasks.Get(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, task)
}

func (s *Server) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	dueDate, err := parseDatePtr(req.DueDate)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	task := &model.Task{
		PlateID:        req.PlateID,
		Title:          req.Title,
		Description:    req.Description,
		Priority:       model.TaskPriority(req.Priority),
		EffortMinutes:  req.EffortMinutes,
		EnergyLevel:    req.EnergyLevel,
		Context:        model.TaskContext(req.Context),
		TimePreference: model.TimePreference(req.TimePreference),
		DueDate:        dueDate,
		IsRecurring:    req.IsRecurring,
	}
	if req.RecurrenceRule != nil {
		task.RecurrenceRule = model.RuleJSON(*req.RecurrenceRule)
	}
	if err := s.tasks.Create(c.Request.Context(), currentUser(c).ID, task); err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, task)
}

func (s *Server) quickAddTask(c *gin.Context) {
	var req quickAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	task, err := s.tasks.QuickAdd(c.Request.Context(), currentUser(c).ID, req.PlateID, req.Title)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, task)
}

func (s *Server) updateTask(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	update := model.TaskUpdate{
		Title:          req.Title,
		Description:    req.Description,
		EffortMinutes:  req.EffortMinutes,
		EnergyLevel:    req.EnergyLevel,
		IsRecurring:    req.IsRecurring,
		RecurrenceRule: req.RecurrenceRule,
	}
	if req.Status != nil {
		st := model.TaskStatus(*req.Status)
		update.Status = &st
	}
	if req.Priority != nil {
		p := model.TaskPriority(*req.Priority)
		update.Priority = &p
	}
	if req.Context != nil {
		ctx := model.TaskContext(*req.Context)
		update.Context = &ctx
	}
	if req.TimePreference != nil {
		pref := model.TimePreference(*req.TimePreference)
		update.TimePreference = &pref
	}
	if req.DueDate != nil {
		dueDate, err := parseDate(*req.DueDate)
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		update.DueDate = &dueDate
	}
	task, err := s.tasks.Update(c.Request.Context(), currentUser(c).ID, id, update)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, task)
}

func (s *Server) deleteTask(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := s.tasks.Delete(c.Request.Context(), currentUser(c).ID, id); err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}

func (s *Server) completeTask(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	task, err := s.tasks.Complete(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, task)
}

func (s *Server) skipTask(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	task, err := s.tasks.Skip(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, task)
}
