package testutils

import (
	"time"

	"staff-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "team-" + id.String()[:8],
		DisplayName: "Test Team",
		Location:    "BW",
	}
}

// WithLocation sets a custom holiday region for the team
func (f *TeamFactory) WithLocation(location string) *models.Team {
	team := f.Create()
	team.Location = location
	return team
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test Profile with default values
func (f *ProfileFactory) Create() *models.Profile {
	id := uuid.New()
	return &models.Profile{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName: "Jane Doe",
		Initials: "JD",
		Email:    id.String()[:8] + "@test.com",
	}
}

// TeamMemberFactory provides methods to link profiles to teams
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a membership linking the given profile and team
func (f *TeamMemberFactory) Create(teamID, profileID uuid.UUID) *models.TeamMember {
	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:    teamID,
		ProfileID: profileID,
	}
}

// PartnershipFactory provides methods to create test Partnership data
type PartnershipFactory struct{}

// NewPartnershipFactory creates a new PartnershipFactory
func NewPartnershipFactory() *PartnershipFactory {
	return &PartnershipFactory{}
}

// Create creates a test Partnership with default values
func (f *PartnershipFactory) Create() *models.Partnership {
	id := uuid.New()
	return &models.Partnership{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "partnership-" + id.String()[:8],
		DisplayName: "Test Partnership",
		Location:    "BW",
	}
}

// WithTeams creates a partnership plus its team links
func (f *PartnershipFactory) WithTeams(teamIDs ...uuid.UUID) (*models.Partnership, []models.PartnershipTeam) {
	partnership := f.Create()
	links := make([]models.PartnershipTeam, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		links = append(links, models.PartnershipTeam{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			PartnershipID: partnership.ID,
			TeamID:        teamID,
		})
	}
	return partnership, links
}

// ScheduleEntryFactory provides methods to create test ScheduleEntry data
type ScheduleEntryFactory struct{}

// NewScheduleEntryFactory creates a new ScheduleEntryFactory
func NewScheduleEntryFactory() *ScheduleEntryFactory {
	return &ScheduleEntryFactory{}
}

// Create creates an available work entry for the given team, profile and date
func (f *ScheduleEntryFactory) Create(teamID, profileID uuid.UUID, date time.Time) *models.ScheduleEntry {
	return &models.ScheduleEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:             teamID,
		ProfileID:          profileID,
		Date:               date,
		ShiftType:          models.ShiftTypeNormal,
		AvailabilityStatus: models.AvailabilityAvailable,
		ActivityType:       models.ActivityWork,
	}
}

// WithShift sets a custom shift type on the entry
func (f *ScheduleEntryFactory) WithShift(teamID, profileID uuid.UUID, date time.Time, shift models.ShiftType) *models.ScheduleEntry {
	entry := f.Create(teamID, profileID, date)
	entry.ShiftType = shift
	return entry
}

// Absent creates an entry that does not count as scheduled work
func (f *ScheduleEntryFactory) Absent(teamID, profileID uuid.UUID, date time.Time) *models.ScheduleEntry {
	entry := f.Create(teamID, profileID, date)
	entry.AvailabilityStatus = models.AvailabilityUnavailable
	entry.ActivityType = models.ActivityVacation
	return entry
}

// DutyAssignmentFactory provides methods to create test DutyAssignment data
type DutyAssignmentFactory struct{}

// NewDutyAssignmentFactory creates a new DutyAssignmentFactory
func NewDutyAssignmentFactory() *DutyAssignmentFactory {
	return &DutyAssignmentFactory{}
}

// Create creates an unassigned weekend duty slot for the given team and date
func (f *DutyAssignmentFactory) Create(teamID uuid.UUID, date time.Time) *models.DutyAssignment {
	year, week := date.ISOWeek()
	return &models.DutyAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:     teamID,
		Date:       date,
		DutyType:   models.DutyTypeWeekend,
		WeekNumber: week,
		Year:       year,
	}
}

// WithProfile assigns the slot to a profile
func (f *DutyAssignmentFactory) WithProfile(teamID uuid.UUID, date time.Time, profileID uuid.UUID) *models.DutyAssignment {
	assignment := f.Create(teamID, date)
	assignment.ProfileID = &profileID
	return assignment
}

// WithDutyType sets a custom duty type on the slot
func (f *DutyAssignmentFactory) WithDutyType(teamID uuid.UUID, date time.Time, dutyType models.DutyType) *models.DutyAssignment {
	assignment := f.Create(teamID, date)
	assignment.DutyType = dutyType
	return assignment
}

// HolidayFactory provides methods to create test Holiday data
type HolidayFactory struct{}

// NewHolidayFactory creates a new HolidayFactory
func NewHolidayFactory() *HolidayFactory {
	return &HolidayFactory{}
}

// Create creates a country-wide public holiday
func (f *HolidayFactory) Create(country string, date time.Time, name string) *models.Holiday {
	return &models.Holiday{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CountryCode: country,
		Year:        date.Year(),
		Date:        date,
		Name:        name,
		IsPublic:    true,
	}
}

// WithRegion creates a holiday limited to one region
func (f *HolidayFactory) WithRegion(country string, date time.Time, name, region string) *models.Holiday {
	holiday := f.Create(country, date, name)
	holiday.RegionCode = &region
	return holiday
}

// ImportStatusFactory provides methods to create test HolidayImportStatus data
type ImportStatusFactory struct{}

// NewImportStatusFactory creates a new ImportStatusFactory
func NewImportStatusFactory() *ImportStatusFactory {
	return &ImportStatusFactory{}
}

// Pending creates a pending import job started the given duration ago
func (f *ImportStatusFactory) Pending(country string, year int, region *string, age time.Duration) *models.HolidayImportStatus {
	return &models.HolidayImportStatus{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CountryCode: country,
		Year:        year,
		RegionCode:  region,
		Status:      models.ImportStatePending,
		StartedAt:   time.Now().Add(-age),
	}
}

// Completed creates a completed import job with the given imported count
func (f *ImportStatusFactory) Completed(country string, year int, region *string, imported int) *models.HolidayImportStatus {
	completedAt := time.Now()
	return &models.HolidayImportStatus{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CountryCode:   country,
		Year:          year,
		RegionCode:    region,
		Status:        models.ImportStateCompleted,
		ImportedCount: imported,
		StartedAt:     completedAt.Add(-time.Minute),
		CompletedAt:   &completedAt,
	}
}

// TeamCapacityConfigFactory provides methods to create team staffing policies
type TeamCapacityConfigFactory struct{}

// NewTeamCapacityConfigFactory creates a new TeamCapacityConfigFactory
func NewTeamCapacityConfigFactory() *TeamCapacityConfigFactory {
	return &TeamCapacityConfigFactory{}
}

// Create creates a team policy requiring the given minimum staffing
func (f *TeamCapacityConfigFactory) Create(teamID uuid.UUID, minStaff int) *models.TeamCapacityConfig {
	return &models.TeamCapacityConfig{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID: teamID,
		CapacityRule: models.CapacityRule{
			MinStaffRequired: minStaff,
		},
	}
}

// PartnershipCapacityConfigFactory provides methods to create partnership staffing policies
type PartnershipCapacityConfigFactory struct{}

// NewPartnershipCapacityConfigFactory creates a new PartnershipCapacityConfigFactory
func NewPartnershipCapacityConfigFactory() *PartnershipCapacityConfigFactory {
	return &PartnershipCapacityConfigFactory{}
}

// Create creates a partnership policy requiring the given minimum staffing
func (f *PartnershipCapacityConfigFactory) Create(partnershipID uuid.UUID, minStaff int) *models.PartnershipCapacityConfig {
	return &models.PartnershipCapacityConfig{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PartnershipID: partnershipID,
		CapacityRule: models.CapacityRule{
			MinStaffRequired: minStaff,
		},
	}
}
