package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"staff-roster-backend/internal/database/models"
	apperrors "staff-roster-backend/internal/errors"
	"staff-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DutyAssignmentHandler handles HTTP requests for duty assignment slots
type DutyAssignmentHandler struct {
	service service.DutyAssignmentServiceInterface
}

// NewDutyAssignmentHandler creates a new duty assignment handler
func NewDutyAssignmentHandler(service service.DutyAssignmentServiceInterface) *DutyAssignmentHandler {
	return &DutyAssignmentHandler{
		service: service,
	}
}

// parseTeamIDs parses the comma-separated team_ids query parameter
func parseTeamIDs(c *gin.Context) ([]uuid.UUID, error) {
	raw := c.Query("team_ids")
	if raw == "" {
		return nil, apperrors.ErrEmptyTeamSet
	}
	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, apperrors.NewValidationError("team_ids", "invalid team ID "+part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseWeekYear parses the week and year query parameters
func parseWeekYear(c *gin.Context) (week, year int, err error) {
	week, err = strconv.Atoi(c.Query("week"))
	if err != nil {
		return 0, 0, apperrors.NewValidationError("week", "must be an integer")
	}
	year, err = strconv.Atoi(c.Query("year"))
	if err != nil {
		return 0, 0, apperrors.NewValidationError("year", "must be an integer")
	}
	return week, year, nil
}

// ListByWeek handles GET /duty-assignments
// @Summary List duty assignments for a week
// @Description Get the duty roster of the given teams for one ISO week, grouped by date and duty type
// @Tags duty-assignments
// @Accept json
// @Produce json
// @Param team_ids query string true "Comma-separated team IDs (UUID)"
// @Param week query int true "ISO week number"
// @Param year query int true "Year"
// @Success 200 {object} service.DutyWeekResponse "Duty roster for the week"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /duty-assignments [get]
func (h *DutyAssignmentHandler) ListByWeek(c *gin.Context) {
	teamIDs, err := parseTeamIDs(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	week, year, err := parseWeekYear(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	roster, err := h.service.ListByWeek(teamIDs, week, year)
	if err != nil {
		if apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrEmptyTeamSet) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, roster)
}

// Add handles POST /duty-assignments
// @Summary Add a duty slot
// @Description Create an empty duty slot for a team, date and duty type
// @Tags duty-assignments
// @Accept json
// @Produce json
// @Param assignment body service.CreateDutyAssignmentRequest true "Slot data"
// @Success 201 {object} service.DutyAssignmentResponse "Created slot"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /duty-assignments [post]
func (h *DutyAssignmentHandler) Add(c *gin.Context) {
	var req service.CreateDutyAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.service.Add(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidDutyType) || strings.Contains(err.Error(), "validation failed") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// Update handles PATCH /duty-assignments/:id
// @Summary Update a duty slot
// @Description Partially update the assignee, region or substitute flag of a duty slot. Last write wins.
// @Tags duty-assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param assignment body service.UpdateDutyAssignmentRequest true "Fields to update"
// @Success 200 {object} service.DutyAssignmentResponse "Updated slot"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /duty-assignments/{id} [patch]
func (h *DutyAssignmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}
	var req service.UpdateDutyAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDutyAssignmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if strings.Contains(err.Error(), "validation failed") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// Remove handles DELETE /duty-assignments/:id
// @Summary Remove a duty slot
// @Description Delete a duty slot
// @Tags duty-assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 204 "Slot deleted"
// @Failure 400 {object} ErrorResponse "Invalid assignment ID"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /duty-assignments/{id} [delete]
func (h *DutyAssignmentHandler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}

	if err := h.service.Remove(id); err != nil {
		if errors.Is(err, apperrors.ErrDutyAssignmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Candidates handles GET /duty-assignments/candidates
// @Summary List scheduled candidates
// @Description Get the users of the teams already scheduled for a matching shift on the date
// @Tags duty-assignments
// @Accept json
// @Produce json
// @Param team_ids query string true "Comma-separated team IDs (UUID)"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param duty_type query string true "Duty type (weekend, late_shift, early_shift)"
// @Success 200 {array} service.CandidateResponse "Candidates"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /duty-assignments/candidates [get]
func (h *DutyAssignmentHandler) Candidates(c *gin.Context) {
	teamIDs, err := parseTeamIDs(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date := c.Query("date")
	dutyType := models.DutyType(c.Query("duty_type"))

	candidates, err := h.service.ScheduledCandidates(teamIDs, date, dutyType)
	if err != nil {
		if apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidDutyType) || errors.Is(err, apperrors.ErrEmptyTeamSet) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, candidates)
}
