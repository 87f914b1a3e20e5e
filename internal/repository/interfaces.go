package repository

import (
	"time"

	"staff-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByIDs(ids []uuid.UUID) ([]models.Team, error)
	GetAll() ([]models.Team, error)
	GetMemberProfileIDs(teamID uuid.UUID) ([]uuid.UUID, error)
}

// PartnershipRepositoryInterface defines the interface for partnership repository operations
type PartnershipRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Partnership, error)
	GetTeamIDs(partnershipID uuid.UUID) ([]uuid.UUID, error)
}

// ScheduleEntryRepositoryInterface defines the interface for schedule entry queries.
// Schedule entries are written by the roster screens, which are outside this
// service; only read paths exist here.
type ScheduleEntryRepositoryInterface interface {
	GetScheduledWork(teamIDs []uuid.UUID, start, end time.Time) ([]models.ScheduleEntry, error)
	GetScheduledWorkForDate(teamIDs []uuid.UUID, date time.Time, shiftTypes []models.ShiftType) ([]models.ScheduleEntry, error)
}

// DutyAssignmentRepositoryInterface defines the interface for duty assignment repository operations
type DutyAssignmentRepositoryInterface interface {
	Create(assignment *models.DutyAssignment) error
	GetByID(id uuid.UUID) (*models.DutyAssignment, error)
	GetByTeamsAndWeek(teamIDs []uuid.UUID, week, year int) ([]models.DutyAssignment, error)
	Update(assignment *models.DutyAssignment) error
	Delete(id uuid.UUID) error
}

// CapacityConfigRepositoryInterface defines the interface for capacity config repository operations
type CapacityConfigRepositoryInterface interface {
	GetByTeamID(teamID uuid.UUID) (*models.TeamCapacityConfig, error)
	GetByPartnershipID(partnershipID uuid.UUID) (*models.PartnershipCapacityConfig, error)
	UpsertTeamConfig(config *models.TeamCapacityConfig) error
	UpsertPartnershipConfig(config *models.PartnershipCapacityConfig) error
}

// HolidayRepositoryInterface defines the interface for holiday repository operations
type HolidayRepositoryInterface interface {
	Create(holiday *models.Holiday) error
	ExistsByIdentity(country string, year int, date time.Time, name string, region *string) (bool, error)
	GetByCountryYear(country string, year int) ([]models.Holiday, error)
	GetByDateRange(start, end time.Time, region string) ([]models.Holiday, error)
}

// HolidayImportStatusRepositoryInterface defines the interface for import job records
type HolidayImportStatusRepositoryInterface interface {
	GetByIdentity(country string, year int, region *string) (*models.HolidayImportStatus, error)
	GetByCountryYear(country string, year int) ([]models.HolidayImportStatus, error)
	GetPending() ([]models.HolidayImportStatus, error)
	CountPending(country string, year int) (int64, error)
	Save(status *models.HolidayImportStatus) error
}
