package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"staff-roster-backend/internal/database/models"
	apperrors "staff-roster-backend/internal/errors"
	"staff-roster-backend/internal/isoweek"
	"staff-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the wire format for date-only values
const DateLayout = "2006-01-02"

// DutyAssignmentService handles business logic for duty assignment slots.
// Edits are last-write-wins: concurrent editors overwrite each other without
// conflict signalling, a deliberate trade-off for low-frequency roster data.
type DutyAssignmentService struct {
	repo         repository.DutyAssignmentRepositoryInterface
	teamRepo     repository.TeamRepositoryInterface
	scheduleRepo repository.ScheduleEntryRepositoryInterface
	validator    *validator.Validate
}

// NewDutyAssignmentService creates a new duty assignment service
func NewDutyAssignmentService(
	repo repository.DutyAssignmentRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	scheduleRepo repository.ScheduleEntryRepositoryInterface,
	validator *validator.Validate,
) *DutyAssignmentService {
	return &DutyAssignmentService{
		repo:         repo,
		teamRepo:     teamRepo,
		scheduleRepo: scheduleRepo,
		validator:    validator,
	}
}

// CreateDutyAssignmentRequest represents the request to add an empty duty slot
type CreateDutyAssignmentRequest struct {
	TeamID   uuid.UUID       `json:"team_id" validate:"required"`
	Date     string          `json:"date" validate:"required"`
	DutyType models.DutyType `json:"duty_type" validate:"required"`
}

// OptionalProfileID distinguishes an absent profile_id key from an explicit
// null, so a PATCH can clear the assignee
type OptionalProfileID struct {
	Set   bool
	Value *uuid.UUID
}

// UnmarshalJSON implements json.Unmarshaler
func (o *OptionalProfileID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}

// UpdateDutyAssignmentRequest represents a partial update of a duty slot
type UpdateDutyAssignmentRequest struct {
	ProfileID    OptionalProfileID `json:"profile_id"`
	Region       *string           `json:"region,omitempty" validate:"omitempty,max=100"`
	IsSubstitute *bool             `json:"is_substitute,omitempty"`
}

// DutyAssignmentResponse represents one duty slot
type DutyAssignmentResponse struct {
	ID           uuid.UUID       `json:"id"`
	TeamID       uuid.UUID       `json:"team_id"`
	Date         string          `json:"date"`
	DutyType     models.DutyType `json:"duty_type"`
	ProfileID    *uuid.UUID      `json:"profile_id"`
	ProfileName  string          `json:"profile_name,omitempty"`
	IsSubstitute bool            `json:"is_substitute"`
	Region       string          `json:"region"`
	WeekNumber   int             `json:"week_number"`
	Year         int             `json:"year"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

// DutyDayResponse groups the slots of one date by duty type
type DutyDayResponse struct {
	Date        string                                      `json:"date"`
	Assignments map[models.DutyType][]DutyAssignmentResponse `json:"assignments"`
}

// DutyWeekResponse is the roster of one ISO week across the requested teams
type DutyWeekResponse struct {
	Week  int               `json:"week"`
	Year  int               `json:"year"`
	Days  []DutyDayResponse `json:"days"`
	Total int               `json:"total"`
}

// CandidateResponse is a user already scheduled for a matching shift on a
// date, offered as a likely assignee
type CandidateResponse struct {
	ProfileID uuid.UUID        `json:"profile_id"`
	FullName  string           `json:"full_name"`
	Initials  string           `json:"initials"`
	ShiftType models.ShiftType `json:"shift_type"`
}

// ListByWeek retrieves the duty roster of the teams for one ISO week, grouped
// by date and duty type. Querying a partnership means passing the union of
// its member teams.
func (s *DutyAssignmentService) ListByWeek(teamIDs []uuid.UUID, week, year int) (*DutyWeekResponse, error) {
	if len(teamIDs) == 0 {
		return nil, apperrors.ErrEmptyTeamSet
	}
	dates, err := isoweek.Resolve(week, year)
	if err != nil {
		return nil, apperrors.NewValidationError("week", err.Error())
	}

	assignments, err := s.repo.GetByTeamsAndWeek(teamIDs, week, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list duty assignments: %w", err)
	}

	byDate := make(map[string][]models.DutyAssignment)
	for _, a := range assignments {
		key := a.Date.Format(DateLayout)
		byDate[key] = append(byDate[key], a)
	}

	days := make([]DutyDayResponse, 0, len(dates))
	for _, d := range dates {
		key := d.Format(DateLayout)
		day := DutyDayResponse{
			Date:        key,
			Assignments: make(map[models.DutyType][]DutyAssignmentResponse),
		}
		for _, a := range byDate[key] {
			day.Assignments[a.DutyType] = append(day.Assignments[a.DutyType], *s.toResponse(&a))
		}
		days = append(days, day)
	}

	return &DutyWeekResponse{
		Week:  week,
		Year:  year,
		Days:  days,
		Total: len(assignments),
	}, nil
}

// Add creates an empty duty slot for a team, date and duty type. Always
// succeeds for a valid date; the assignee is filled in later.
func (s *DutyAssignmentService) Add(req *CreateDutyAssignmentRequest) (*DutyAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.DutyType.IsValid() {
		return nil, apperrors.ErrInvalidDutyType
	}
	date, err := time.ParseInLocation(DateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "must be formatted as "+DateLayout)
	}

	if _, err := s.teamRepo.GetByID(req.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	week, year := isoweek.Of(date)
	assignment := &models.DutyAssignment{
		TeamID:     req.TeamID,
		Date:       date,
		DutyType:   req.DutyType,
		WeekNumber: week,
		Year:       year,
	}
	if err := s.repo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create duty assignment: %w", err)
	}
	return s.toResponse(assignment), nil
}

// Update applies a partial update to a duty slot. Only the fields present in
// the request change; an explicit null profile_id clears the assignee.
func (s *DutyAssignmentService) Update(id uuid.UUID, req *UpdateDutyAssignmentRequest) (*DutyAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	assignment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDutyAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get duty assignment: %w", err)
	}

	if req.ProfileID.Set {
		assignment.ProfileID = req.ProfileID.Value
		assignment.Profile = nil
	}
	if req.Region != nil {
		assignment.Region = *req.Region
	}
	if req.IsSubstitute != nil {
		assignment.IsSubstitute = *req.IsSubstitute
	}

	if err := s.repo.Update(assignment); err != nil {
		return nil, fmt.Errorf("failed to update duty assignment: %w", err)
	}
	return s.toResponse(assignment), nil
}

// Remove deletes a duty slot
func (s *DutyAssignmentService) Remove(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDutyAssignmentNotFound
		}
		return fmt.Errorf("failed to get duty assignment: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete duty assignment: %w", err)
	}
	return nil
}

// ScheduledCandidates lists the users of the teams already scheduled for a
// shift matching the duty type on the date
func (s *DutyAssignmentService) ScheduledCandidates(teamIDs []uuid.UUID, dateStr string, dutyType models.DutyType) ([]CandidateResponse, error) {
	if len(teamIDs) == 0 {
		return nil, apperrors.ErrEmptyTeamSet
	}
	if !dutyType.IsValid() {
		return nil, apperrors.ErrInvalidDutyType
	}
	date, err := time.ParseInLocation(DateLayout, dateStr, time.UTC)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "must be formatted as "+DateLayout)
	}

	entries, err := s.scheduleRepo.GetScheduledWorkForDate(teamIDs, date, dutyType.ShiftTypes())
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled candidates: %w", err)
	}

	seen := make(map[uuid.UUID]bool)
	candidates := make([]CandidateResponse, 0, len(entries))
	for _, entry := range entries {
		if seen[entry.ProfileID] {
			continue
		}
		seen[entry.ProfileID] = true
		candidates = append(candidates, CandidateResponse{
			ProfileID: entry.ProfileID,
			FullName:  entry.Profile.FullName,
			Initials:  entry.Profile.Initials,
			ShiftType: entry.ShiftType,
		})
	}
	return candidates, nil
}

func (s *DutyAssignmentService) toResponse(a *models.DutyAssignment) *DutyAssignmentResponse {
	resp := &DutyAssignmentResponse{
		ID:           a.ID,
		TeamID:       a.TeamID,
		Date:         a.Date.Format(DateLayout),
		DutyType:     a.DutyType,
		ProfileID:    a.ProfileID,
		IsSubstitute: a.IsSubstitute,
		Region:       a.Region,
		WeekNumber:   a.WeekNumber,
		Year:         a.Year,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
	if a.Profile != nil {
		resp.ProfileName = a.Profile.FullName
	}
	return resp
}
