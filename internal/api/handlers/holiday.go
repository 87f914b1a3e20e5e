package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	apperrors "staff-roster-backend/internal/errors"
	"staff-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HolidayHandler handles HTTP requests for holidays and their import jobs
type HolidayHandler struct {
	service service.HolidayImportServiceInterface
}

// NewHolidayHandler creates a new holiday handler
func NewHolidayHandler(service service.HolidayImportServiceInterface) *HolidayHandler {
	return &HolidayHandler{
		service: service,
	}
}

func parseCountryYear(c *gin.Context) (string, int, error) {
	country := strings.TrimSpace(c.Query("country"))
	if len(country) != 2 {
		return "", 0, apperrors.NewValidationError("country", "must be a two-letter country code")
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return "", 0, apperrors.NewValidationError("year", "must be an integer")
	}
	return country, year, nil
}

// Import handles POST /holidays/import
// @Summary Import public holidays
// @Description Run an idempotent holiday import per (country, year, region). Each region's outcome is independent.
// @Tags holidays
// @Accept json
// @Produce json
// @Param import body service.RequestImportRequest true "Import request"
// @Success 200 {object} service.ImportSummary "Per-region import summary"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /holidays/import [post]
func (h *HolidayHandler) Import(c *gin.Context) {
	var req service.RequestImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.service.RequestImport(c.Request.Context(), &req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Status handles GET /holidays/import/status
// @Summary Get import status
// @Description Get the aggregate import status of a country and year. Stuck jobs are reclaimed before reading.
// @Tags holidays
// @Accept json
// @Produce json
// @Param country query string true "Two-letter country code"
// @Param year query int true "Year"
// @Success 200 {object} service.ImportStatusResponse "Import status"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /holidays/import/status [get]
func (h *HolidayHandler) Status(c *gin.Context) {
	country, year, err := parseCountryYear(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.service.GetStatus(country, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

// ResetImportRequest represents the request to reset a stuck import
type ResetImportRequest struct {
	CountryCode string  `json:"country_code" binding:"required"`
	Year        int     `json:"year" binding:"required"`
	RegionCode  *string `json:"region_code"`
}

// Reset handles POST /holidays/import/reset
// @Summary Reset a pending import
// @Description Force a pending import job to failed, unblocking retry without waiting for the timeout
// @Tags holidays
// @Accept json
// @Produce json
// @Param reset body ResetImportRequest true "Job identity"
// @Success 200 {object} map[string]interface{} "Job reset"
// @Failure 400 {object} ErrorResponse "No pending import for the identity"
// @Failure 404 {object} ErrorResponse "No import record for the identity"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /holidays/import/reset [post]
func (h *HolidayHandler) Reset(c *gin.Context) {
	var req ResetImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.ResetImport(req.CountryCode, req.Year, req.RegionCode); err != nil {
		if errors.Is(err, apperrors.ErrImportStatusNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNoPendingImport) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reset": true})
}

// List handles GET /holidays
// @Summary List consolidated holidays
// @Description Get the holidays of a country and year with regional variants consolidated per (date, name)
// @Tags holidays
// @Accept json
// @Produce json
// @Param country query string true "Two-letter country code"
// @Param year query int true "Year"
// @Success 200 {array} service.ConsolidatedHoliday "Consolidated holidays"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /holidays [get]
func (h *HolidayHandler) List(c *gin.Context) {
	country, year, err := parseCountryYear(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	holidays, err := h.service.ConsolidatedHolidays(country, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, holidays)
}
