package handlers

import (
	"errors"
	"net/http"
	"time"

	apperrors "staff-roster-backend/internal/errors"
	"staff-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CoverageHandler handles HTTP requests for coverage analysis
type CoverageHandler struct {
	service service.CoverageServiceInterface
}

// NewCoverageHandler creates a new coverage handler
func NewCoverageHandler(service service.CoverageServiceInterface) *CoverageHandler {
	return &CoverageHandler{
		service: service,
	}
}

// analyze dispatches to the week or explicit-range variant depending on the
// query parameters given
func (h *CoverageHandler) analyze(
	c *gin.Context,
	byWeek func(id uuid.UUID, week, year int) (*service.CoverageReport, error),
	byRange func(id uuid.UUID, start, end time.Time) (*service.CoverageReport, error),
	notFound error,
) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ID"})
		return
	}

	var report *service.CoverageReport
	if c.Query("from") != "" || c.Query("to") != "" {
		start, err := time.ParseInLocation(service.DateLayout, c.Query("from"), time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be formatted as " + service.DateLayout})
			return
		}
		end, err := time.ParseInLocation(service.DateLayout, c.Query("to"), time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be formatted as " + service.DateLayout})
			return
		}
		report, err = byRange(id, start, end)
		if err != nil {
			h.writeError(c, err, notFound)
			return
		}
	} else {
		week, year, err := parseWeekYear(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		report, err = byWeek(id, week, year)
		if err != nil {
			h.writeError(c, err, notFound)
			return
		}
	}

	c.JSON(http.StatusOK, report)
}

func (h *CoverageHandler) writeError(c *gin.Context, err, notFound error) {
	if errors.Is(err, notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidDateRange) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// TeamCoverage handles GET /coverage/teams/:id
// @Summary Analyze team coverage
// @Description Compute per-day staffing coverage of a team for an ISO week (week/year) or explicit range (from/to)
// @Tags coverage
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param week query int false "ISO week number"
// @Param year query int false "Year"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} service.CoverageReport "Coverage report"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /coverage/teams/{id} [get]
func (h *CoverageHandler) TeamCoverage(c *gin.Context) {
	h.analyze(c, h.service.AnalyzeTeamWeek, h.service.AnalyzeTeamRange, apperrors.ErrTeamNotFound)
}

// PartnershipCoverage handles GET /coverage/partnerships/:id
// @Summary Analyze partnership coverage
// @Description Compute combined staffing coverage of a partnership's member teams against the shared policy
// @Tags coverage
// @Accept json
// @Produce json
// @Param id path string true "Partnership ID (UUID)"
// @Param week query int false "ISO week number"
// @Param year query int false "Year"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} service.CoverageReport "Coverage report"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Partnership not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /coverage/partnerships/{id} [get]
func (h *CoverageHandler) PartnershipCoverage(c *gin.Context) {
	h.analyze(c, h.service.AnalyzePartnershipWeek, h.service.AnalyzePartnershipRange, apperrors.ErrPartnershipNotFound)
}
