package handlers

import (
	"errors"
	"net/http"
	"strings"

	apperrors "staff-roster-backend/internal/errors"
	"staff-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CapacityConfigHandler handles HTTP requests for staffing policies
type CapacityConfigHandler struct {
	service service.CapacityConfigServiceInterface
}

// NewCapacityConfigHandler creates a new capacity config handler
func NewCapacityConfigHandler(service service.CapacityConfigServiceInterface) *CapacityConfigHandler {
	return &CapacityConfigHandler{
		service: service,
	}
}

// GetTeamConfig handles GET /capacity/teams/:id
// @Summary Get team staffing policy
// @Description Get the active capacity config of a team
// @Tags capacity
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.CapacityConfigResponse "Capacity config"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Config not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /capacity/teams/{id} [get]
func (h *CapacityConfigHandler) GetTeamConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}
	config, err := h.service.GetTeamConfig(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

// UpsertTeamConfig handles PUT /capacity/teams/:id
// @Summary Save team staffing policy
// @Description Create or replace the capacity config of a team
// @Tags capacity
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param config body service.SaveCapacityConfigRequest true "Policy data"
// @Success 200 {object} service.CapacityConfigResponse "Saved config"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /capacity/teams/{id} [put]
func (h *CapacityConfigHandler) UpsertTeamConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}
	var req service.SaveCapacityConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	config, err := h.service.UpsertTeamConfig(id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

// GetPartnershipConfig handles GET /capacity/partnerships/:id
// @Summary Get partnership staffing policy
// @Description Get the active shared capacity config of a partnership
// @Tags capacity
// @Accept json
// @Produce json
// @Param id path string true "Partnership ID (UUID)"
// @Success 200 {object} service.CapacityConfigResponse "Capacity config"
// @Failure 400 {object} ErrorResponse "Invalid partnership ID"
// @Failure 404 {object} ErrorResponse "Config not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /capacity/partnerships/{id} [get]
func (h *CapacityConfigHandler) GetPartnershipConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid partnership ID"})
		return
	}
	config, err := h.service.GetPartnershipConfig(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

// UpsertPartnershipConfig handles PUT /capacity/partnerships/:id
// @Summary Save partnership staffing policy
// @Description Create or replace the shared capacity config of a partnership
// @Tags capacity
// @Accept json
// @Produce json
// @Param id path string true "Partnership ID (UUID)"
// @Param config body service.SaveCapacityConfigRequest true "Policy data"
// @Success 200 {object} service.CapacityConfigResponse "Saved config"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Partnership not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /capacity/partnerships/{id} [put]
func (h *CapacityConfigHandler) UpsertPartnershipConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid partnership ID"})
		return
	}
	var req service.SaveCapacityConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	config, err := h.service.UpsertPartnershipConfig(id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

func (h *CapacityConfigHandler) writeError(c *gin.Context, err error) {
	if apperrors.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, apperrors.ErrMinAboveMax) || strings.Contains(err.Error(), "validation failed") {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
