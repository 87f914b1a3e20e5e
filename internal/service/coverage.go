package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"staff-roster-backend/internal/database/models"
	apperrors "staff-roster-backend/internal/errors"
	"staff-roster-backend/internal/isoweek"
	"staff-roster-backend/internal/logger"
	"staff-roster-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CoverageService computes per-day staffing against capacity policy. One
// algorithm runs for both teams and partnerships: a partnership is analyzed
// as the union of its member teams against the shared rule.
type CoverageService struct {
	teamRepo         repository.TeamRepositoryInterface
	partnershipRepo  repository.PartnershipRepositoryInterface
	scheduleRepo     repository.ScheduleEntryRepositoryInterface
	holidayRepo      repository.HolidayRepositoryInterface
	capacityRepo     repository.CapacityConfigRepositoryInterface
	thresholdPercent int
	log              *logger.Logger
}

// NewCoverageService creates a new coverage service
func NewCoverageService(
	teamRepo repository.TeamRepositoryInterface,
	partnershipRepo repository.PartnershipRepositoryInterface,
	scheduleRepo repository.ScheduleEntryRepositoryInterface,
	holidayRepo repository.HolidayRepositoryInterface,
	capacityRepo repository.CapacityConfigRepositoryInterface,
	thresholdPercent int,
) *CoverageService {
	return &CoverageService{
		teamRepo:         teamRepo,
		partnershipRepo:  partnershipRepo,
		scheduleRepo:     scheduleRepo,
		holidayRepo:      holidayRepo,
		capacityRepo:     capacityRepo,
		thresholdPercent: thresholdPercent,
		log:              logger.WithComponent("coverage"),
	}
}

// CoverageGap is a date where scheduled staffing falls below the required minimum
type CoverageGap struct {
	Date        string `json:"date"`
	Staffed     int    `json:"staffed"`
	Required    int    `json:"required"`
	Deficit     int    `json:"deficit"`
	IsWeekend   bool   `json:"is_weekend"`
	IsHoliday   bool   `json:"is_holiday"`
	HolidayName string `json:"holiday_name,omitempty"`
}

// OverstaffedDay is an informational entry for a date staffed above the
// configured maximum; it never counts as a deficit
type OverstaffedDay struct {
	Date       string `json:"date"`
	Staffed    int    `json:"staffed"`
	MaxAllowed int    `json:"max_allowed"`
}

// CoverageReport is the result of a coverage analysis over a date range
type CoverageReport struct {
	ScopeID            uuid.UUID        `json:"scope_id"`
	ScopeName          string           `json:"scope_name"`
	ScopeType          string           `json:"scope_type"`
	StartDate          string           `json:"start_date"`
	EndDate            string           `json:"end_date"`
	TotalDays          int              `json:"total_days"`
	CoveredDays        int              `json:"covered_days"`
	CoveragePercentage int              `json:"coverage_percentage"`
	ThresholdPercent   int              `json:"threshold_percent"`
	BelowThreshold     bool             `json:"below_threshold"`
	Gaps               []CoverageGap    `json:"gaps"`
	Overstaffing       []OverstaffedDay `json:"overstaffing"`
}

type coverageScope struct {
	id       uuid.UUID
	name     string
	kind     string
	location string
	teamIDs  []uuid.UUID
	rule     models.CapacityRule
}

// AnalyzeTeamWeek analyzes one ISO week for a team
func (s *CoverageService) AnalyzeTeamWeek(teamID uuid.UUID, week, year int) (*CoverageReport, error) {
	dates, err := isoweek.Resolve(week, year)
	if err != nil {
		return nil, apperrors.NewValidationError("week", err.Error())
	}
	return s.AnalyzeTeamRange(teamID, dates[0], dates[6])
}

// AnalyzePartnershipWeek analyzes one ISO week for a partnership
func (s *CoverageService) AnalyzePartnershipWeek(partnershipID uuid.UUID, week, year int) (*CoverageReport, error) {
	dates, err := isoweek.Resolve(week, year)
	if err != nil {
		return nil, apperrors.NewValidationError("week", err.Error())
	}
	return s.AnalyzePartnershipRange(partnershipID, dates[0], dates[6])
}

// AnalyzeTeamRange analyzes an explicit date range for a team
func (s *CoverageService) AnalyzeTeamRange(teamID uuid.UUID, start, end time.Time) (*CoverageReport, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	rule, err := s.teamRule(teamID)
	if err != nil {
		return nil, err
	}
	scope := coverageScope{
		id:       team.ID,
		name:     team.DisplayName,
		kind:     "team",
		location: team.Location,
		teamIDs:  []uuid.UUID{team.ID},
		rule:     rule,
	}
	return s.analyze(scope, start, end)
}

// AnalyzePartnershipRange analyzes an explicit date range for a partnership,
// summing staffing across all member teams against the shared rule
func (s *CoverageService) AnalyzePartnershipRange(partnershipID uuid.UUID, start, end time.Time) (*CoverageReport, error) {
	partnership, err := s.partnershipRepo.GetByID(partnershipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartnershipNotFound
		}
		return nil, fmt.Errorf("failed to verify partnership: %w", err)
	}
	teamIDs, err := s.partnershipRepo.GetTeamIDs(partnershipID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve partnership teams: %w", err)
	}

	rule, err := s.partnershipRule(partnershipID)
	if err != nil {
		return nil, err
	}
	scope := coverageScope{
		id:       partnership.ID,
		name:     partnership.DisplayName,
		kind:     "partnership",
		location: partnership.Location,
		teamIDs:  teamIDs,
		rule:     rule,
	}
	return s.analyze(scope, start, end)
}

func (s *CoverageService) analyze(scope coverageScope, start, end time.Time) (*CoverageReport, error) {
	if end.Before(start) {
		return nil, apperrors.ErrInvalidDateRange
	}

	report := &CoverageReport{
		ScopeID:          scope.id,
		ScopeName:        scope.name,
		ScopeType:        scope.kind,
		StartDate:        start.Format(DateLayout),
		EndDate:          end.Format(DateLayout),
		ThresholdPercent: s.thresholdPercent,
		Gaps:             []CoverageGap{},
		Overstaffing:     []OverstaffedDay{},
	}

	staffed := make(map[string]map[uuid.UUID]bool)
	if len(scope.teamIDs) > 0 {
		entries, err := s.scheduleRepo.GetScheduledWork(scope.teamIDs, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to load schedule entries: %w", err)
		}
		for _, entry := range entries {
			key := entry.Date.Format(DateLayout)
			if staffed[key] == nil {
				staffed[key] = make(map[uuid.UUID]bool)
			}
			staffed[key][entry.ProfileID] = true
		}
	}

	holidays, err := s.holidayRepo.GetByDateRange(start, end, scope.location)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	holidayNames := make(map[string]string)
	for _, h := range holidays {
		holidayNames[h.Date.Format(DateLayout)] = h.Name
	}

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		key := date.Format(DateLayout)
		weekday := date.Weekday()
		isWeekend := weekday == time.Saturday || weekday == time.Sunday
		holidayName, isHoliday := holidayNames[key]
		count := len(staffed[key])

		// Holidays never require coverage; weekends only when the rule says
		// so. A holiday on an excluded weekend is excluded once, not twice.
		excluded := isHoliday || (isWeekend && !scope.rule.AppliesToWeekends)
		if excluded {
			continue
		}
		report.TotalDays++

		if count >= scope.rule.MinStaffRequired {
			report.CoveredDays++
			if scope.rule.MaxStaffAllowed != nil && count > *scope.rule.MaxStaffAllowed {
				report.Overstaffing = append(report.Overstaffing, OverstaffedDay{
					Date:       key,
					Staffed:    count,
					MaxAllowed: *scope.rule.MaxStaffAllowed,
				})
			}
			continue
		}

		report.Gaps = append(report.Gaps, CoverageGap{
			Date:        key,
			Staffed:     count,
			Required:    scope.rule.MinStaffRequired,
			Deficit:     scope.rule.MinStaffRequired - count,
			IsWeekend:   isWeekend,
			IsHoliday:   isHoliday,
			HolidayName: holidayName,
		})
	}

	if report.TotalDays == 0 {
		// Vacuous truth: an empty range is fully covered.
		report.CoveragePercentage = 100
	} else {
		report.CoveragePercentage = int(math.Round(float64(report.CoveredDays) / float64(report.TotalDays) * 100))
	}
	report.BelowThreshold = report.CoveragePercentage < s.thresholdPercent

	s.log.WithFields(map[string]interface{}{
		"scope":    scope.kind,
		"scope_id": scope.id,
		"covered":  report.CoveredDays,
		"total":    report.TotalDays,
		"gaps":     len(report.Gaps),
	}).Debug("coverage analyzed")

	return report, nil
}

// teamRule loads the team's capacity rule, falling back to a minimum of one
// when no config exists
func (s *CoverageService) teamRule(teamID uuid.UUID) (models.CapacityRule, error) {
	config, err := s.capacityRepo.GetByTeamID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultCapacityRule(), nil
		}
		return models.CapacityRule{}, fmt.Errorf("failed to load capacity config: %w", err)
	}
	return config.CapacityRule, nil
}

func (s *CoverageService) partnershipRule(partnershipID uuid.UUID) (models.CapacityRule, error) {
	config, err := s.capacityRepo.GetByPartnershipID(partnershipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultCapacityRule(), nil
		}
		return models.CapacityRule{}, fmt.Errorf("failed to load capacity config: %w", err)
	}
	return config.CapacityRule, nil
}

func defaultCapacityRule() models.CapacityRule {
	return models.CapacityRule{MinStaffRequired: 1}
}
