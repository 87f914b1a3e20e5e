package service_test

import (
	"testing"
	"time"

	"staff-roster-backend/internal/database/models"
	apperrors "staff-roster-backend/internal/errors"
	"staff-roster-backend/internal/mocks"
	"staff-roster-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type CoverageServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockTeamRepo        *mocks.MockTeamRepositoryInterface
	mockPartnershipRepo *mocks.MockPartnershipRepositoryInterface
	mockScheduleRepo    *mocks.MockScheduleEntryRepositoryInterface
	mockHolidayRepo     *mocks.MockHolidayRepositoryInterface
	mockCapacityRepo    *mocks.MockCapacityConfigRepositoryInterface
	coverageService     *service.CoverageService
}

func (suite *CoverageServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockPartnershipRepo = mocks.NewMockPartnershipRepositoryInterface(suite.ctrl)
	suite.mockScheduleRepo = mocks.NewMockScheduleEntryRepositoryInterface(suite.ctrl)
	suite.mockHolidayRepo = mocks.NewMockHolidayRepositoryInterface(suite.ctrl)
	suite.mockCapacityRepo = mocks.NewMockCapacityConfigRepositoryInterface(suite.ctrl)
	suite.coverageService = service.NewCoverageService(
		suite.mockTeamRepo,
		suite.mockPartnershipRepo,
		suite.mockScheduleRepo,
		suite.mockHolidayRepo,
		suite.mockCapacityRepo,
		80,
	)
}

func (suite *CoverageServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// workEntry builds an available work entry counting toward coverage
func workEntry(teamID, profileID uuid.UUID, date time.Time) models.ScheduleEntry {
	return models.ScheduleEntry{
		TeamID:             teamID,
		ProfileID:          profileID,
		Date:               date,
		ShiftType:          models.ShiftTypeNormal,
		AvailabilityStatus: models.AvailabilityAvailable,
		ActivityType:       models.ActivityWork,
	}
}

func testTeam(location string) *models.Team {
	return &models.Team{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        "alpha",
		DisplayName: "Team Alpha",
		Location:    location,
	}
}

func (suite *CoverageServiceTestSuite) TestAnalyzeTeamWeek_GapsAndPercentage() {
	team := testTeam("BW")
	config := &models.TeamCapacityConfig{
		TeamID:       team.ID,
		CapacityRule: models.CapacityRule{MinStaffRequired: 2},
	}

	// Week 2 of 2024: Mon Jan 8 .. Sun Jan 14. Weekends are excluded by
	// default, so only Mon..Fri count. Staffing per weekday: 2,1,2,2,0.
	users := []uuid.UUID{uuid.New(), uuid.New()}
	entries := []models.ScheduleEntry{
		workEntry(team.ID, users[0], day(2024, time.January, 8)),
		workEntry(team.ID, users[1], day(2024, time.January, 8)),
		workEntry(team.ID, users[0], day(2024, time.January, 9)),
		workEntry(team.ID, users[0], day(2024, time.January, 10)),
		workEntry(team.ID, users[1], day(2024, time.January, 10)),
		workEntry(team.ID, users[0], day(2024, time.January, 11)),
		workEntry(team.ID, users[1], day(2024, time.January, 11)),
	}

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockCapacityRepo.EXPECT().GetByTeamID(team.ID).Return(config, nil)
	suite.mockScheduleRepo.EXPECT().
		GetScheduledWork([]uuid.UUID{team.ID}, day(2024, time.January, 8), day(2024, time.January, 14)).
		Return(entries, nil)
	suite.mockHolidayRepo.EXPECT().
		GetByDateRange(day(2024, time.January, 8), day(2024, time.January, 14), "BW").
		Return([]models.Holiday{}, nil)

	report, err := suite.coverageService.AnalyzeTeamWeek(team.ID, 2, 2024)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, report.TotalDays)
	assert.Equal(suite.T(), 3, report.CoveredDays)
	assert.Equal(suite.T(), 60, report.CoveragePercentage)
	assert.True(suite.T(), report.BelowThreshold)
	assert.Equal(suite.T(), "team", report.ScopeType)

	assert.Len(suite.T(), report.Gaps, 2)
	assert.Equal(suite.T(), "2024-01-09", report.Gaps[0].Date)
	assert.Equal(suite.T(), 1, report.Gaps[0].Deficit)
	assert.Equal(suite.T(), "2024-01-12", report.Gaps[1].Date)
	assert.Equal(suite.T(), 2, report.Gaps[1].Deficit)
	assert.Equal(suite.T(), 0, report.Gaps[1].Staffed)
}

func (suite *CoverageServiceTestSuite) TestAnalyzeTeamWeek_DuplicateEntriesCountOnce() {
	team := testTeam("")
	config := &models.TeamCapacityConfig{
		TeamID:       team.ID,
		CapacityRule: models.CapacityRule{MinStaffRequired: 2},
	}

	// The same user twice on one day is one distinct staffer, not two.
	user := uuid.New()
	entries := []models.ScheduleEntry{
		workEntry(team.ID, user, day(2024, time.January, 8)),
		workEntry(team.ID, user, day(2024, time.January, 8)),
	}

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockCapacityRepo.EXPECT().GetByTeamID(team.ID).Return(config, nil)
	suite.mockScheduleRepo.EXPECT().GetScheduledWork(gomock.Any(), gomock.Any(), gomock.Any()).Return(entries, nil)
	suite.mockHolidayRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Holiday{}, nil)

	report, err := suite.coverageService.AnalyzeTeamRange(team.ID, day(2024, time.January, 8), day(2024, time.January, 8))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, report.CoveredDays)
	assert.Len(suite.T(), report.Gaps, 1)
	assert.Equal(suite.T(), 1, report.Gaps[0].Staffed)
}

func (suite *CoverageServiceTestSuite) TestAnalyzeTeamRange_HolidayExcluded() {
	team := testTeam("BW")
	config := &models.TeamCapacityConfig{
		TeamID:       team.ID,
		CapacityRule: models.CapacityRule{MinStaffRequired: 1},
	}

	// Wed Jan 10 is a holiday: it never requires coverage even though nobody
	// is scheduled, so the three-day range shrinks to two counted days.
	user := uuid.New()
	entries := []models.ScheduleEntry{
		workEntry(team.ID, user, day(2024, time.January, 9)),
		workEntry(team.ID, user, day(2024, time.January, 11)),
	}
	holidays := []models.Holiday{
		{CountryCode: "DE", Year: 2024, Date: day(2024, time.January, 10), Name: "Landesfeiertag"},
	}

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockCapacityRepo.EXPECT().GetByTeamID(team.ID).Return(config, nil)
	suite.mockScheduleRepo.EXPECT().GetScheduledWork(gomock.Any(), gomock.Any(), gomock.Any()).Return(entries, nil)
	suite.mockHolidayRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any(), "BW").Return(holidays, nil)

	report, err := suite.coverageService.AnalyzeTeamRange(team.ID, day(2024, time.January, 9), day(2024, time.January, 11))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, report.TotalDays)
	assert.Equal(suite.T(), 2, report.CoveredDays)
	assert.Equal(suite.T(), 100, report.CoveragePercentage)
	assert.False(suite.T(), report.BelowThreshold)
	assert.Empty(suite.T(), report.Gaps)
}

func (suite *CoverageServiceTestSuite) TestAnalyzeTeamRange_RegionalHolidayExcluded() {
	team := testTeam("BW")
	config := &models.TeamCapacityConfig{
		TeamID:       team.ID,
		CapacityRule: models.CapacityRule{MinStaffRequired: 1},
	}

	// A regional row carries the same subdivision code the team's location
	// uses, so it excludes the day just like a national one.
	holidays := []models.Holiday{
		{CountryCode: "DE", Year: 2024, Date: day(2024, time.January, 10), Name: "Landesfeiertag", RegionCode: strPtr("BW")},
	}

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockCapacityRepo.EXPECT().GetByTeamID(team.ID).Return(config, nil)
	suite.mockScheduleRepo.EXPECT().GetScheduledWork(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.ScheduleEntry{}, nil)
	suite.mockHolidayRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any(), "BW").Return(holidays, nil)

	report, err := suite.coverageService.AnalyzeTeamRange(team.ID, day(2024, time.January, 10), day(2024, time.January, 10))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, report.TotalDays)
	assert.Equal(suite.T(), 100, report.CoveragePercentage)
	assert.Empty(suite.T(), report.Gaps)
}

func (suite *CoverageServiceTestSuite) TestAnalyzeTeamRange_WeekendsIncludedWhenRuleSaysSo() {
	team := testTeam("")
	config := &models.TeamCapacityConfig{
		TeamID:       team.ID,
		CapacityRule: models.CapacityRule{MinStaffRequired: 1, AppliesToWeekends: true},
	}

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockCapacityRepo.EXPECT().GetByTeamID(team.ID).Return(config, nil)
	suite.mockScheduleRepo.EXPECT().GetScheduledWork(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.ScheduleEntry{}, nil)
	suite.mockHolidayRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Holiday{}, nil)

	// Sat Jan 13 + Sun Jan 14: counted because the rule covers weekends.
	report, err := suite.coverageService.AnalyzeTeamRange(team.ID, day(2024, time.January, 13), day(2024, time.January, 14))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, report.TotalDays)
	assert.Len(suite.T(), report.Gaps, 2)
	assert.True(suite.T(), report.Gaps[0].IsWeekend)
}

func (suite *CoverageServiceTestSuite) TestAnalyzeTeamRange_AllDaysExcludedIsFullyCovered() {
	team := testTeam("")
	config := &models.TeamCapacityConfig{
		TeamID:       team.ID,
		CapacityRule: models.CapacityRule{MinStaffRequired: 2},
	}

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockCapacityRepo.EXPECT().GetByTeamID(team.ID).Return(config, nil)
	suite.mockScheduleRepo.EXPECT().GetScheduledWork(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.ScheduleEntry{}, nil)
	suite.mockHolidayRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Holiday{}, nil)

	// A weekend-only range with weekends excluded leaves nothing to cover.
	report, err := suite.coverageService.AnalyzeTeamRange(team.ID, day(2024, time.January, 13), day(2024, time.January, 14))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, report.TotalDays)
	assert.Equal(suite.T(), 100, report.CoveragePercentage)
	assert.False(suite.T(), report.BelowThreshold)
}

func (suite *CoverageServiceTestSuite) TestAnalyzeTeamRange_OverstaffingIsInformational() {
	team := testTeam("")
	maxStaff := 2
	config := &models.TeamCapacityConfig{
		TeamID:       team.ID,
		CapacityRule: models.CapacityRule{MinStaffRequired: 1, MaxStaffAllowed: &maxStaff},
	}

	entries := []models.ScheduleEntry{
		workEntry(team.ID, uuid.New(), day(2024, time.January, 8)),
		workEntry(team.ID, uuid.New(), day(2024, time.January, 8)),
		workEntry(team.ID, uuid.New(), day(2024, time.January, 8)),
	}

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockCapacityRepo.EXPECT().GetByTeamID(team.ID).Return(config, nil)
	suite.mockScheduleRepo.EXPECT().GetScheduledWork(gomock.Any(), gomock.Any(), gomock.Any()).Return(entries, nil)
	suite.mockHolidayRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Holiday{}, nil)

	report, err := suite.coverageService.AnalyzeTeamRange(team.ID, day(2024, time.January, 8), day(2024, time.January, 8))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, report.CoveredDays)
	assert.Equal(suite.T(), 100, report.CoveragePercentage)
	assert.Empty(suite.T(), report.Gaps)
	assert.Len(suite.T(), report.Overstaffing, 1)
	assert.Equal(suite.T(), 3, report.Overstaffing[0].Staffed)
	assert.Equal(suite.T(), 2, report.Overstaffing[0].MaxAllowed)
}

func (suite *CoverageServiceTestSuite) TestAnalyzeTeamRange_DefaultRuleWhenNoConfig() {
	team := testTeam("")

	entries := []models.ScheduleEntry{
		workEntry(team.ID, uuid.New(), day(2024, time.January, 8)),
	}

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockCapacityRepo.EXPECT().GetByTeamID(team.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockScheduleRepo.EXPECT().GetScheduledWork(gomock.Any(), gomock.Any(), gomock.Any()).Return(entries, nil)
	suite.mockHolidayRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Holiday{}, nil)

	report, err := suite.coverageService.AnalyzeTeamRange(team.ID, day(2024, time.January, 8), day(2024, time.January, 8))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, report.TotalDays)
	assert.Equal(suite.T(), 1, report.CoveredDays)
}

func (suite *CoverageServiceTestSuite) TestAnalyzeTeamRange_TeamNotFound() {
	teamID := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(nil, gorm.ErrRecordNotFound)

	report, err := suite.coverageService.AnalyzeTeamRange(teamID, day(2024, time.January, 8), day(2024, time.January, 8))

	assert.Nil(suite.T(), report)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func (suite *CoverageServiceTestSuite) TestAnalyzeTeamRange_EndBeforeStart() {
	team := testTeam("")
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockCapacityRepo.EXPECT().GetByTeamID(team.ID).Return(nil, gorm.ErrRecordNotFound)

	report, err := suite.coverageService.AnalyzeTeamRange(team.ID, day(2024, time.January, 10), day(2024, time.January, 8))

	assert.Nil(suite.T(), report)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidDateRange)
}

func (suite *CoverageServiceTestSuite) TestAnalyzeTeamWeek_InvalidWeek() {
	report, err := suite.coverageService.AnalyzeTeamWeek(uuid.New(), 54, 2024)

	assert.Nil(suite.T(), report)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *CoverageServiceTestSuite) TestAnalyzePartnershipRange_SumsAcrossTeams() {
	partnership := &models.Partnership{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        "duo",
		DisplayName: "Partnership Duo",
		Location:    "BY",
	}
	teamA, teamB := uuid.New(), uuid.New()
	config := &models.PartnershipCapacityConfig{
		PartnershipID: partnership.ID,
		CapacityRule:  models.CapacityRule{MinStaffRequired: 3},
	}

	// One staffer in team A plus two in team B meet the shared minimum of 3.
	entries := []models.ScheduleEntry{
		workEntry(teamA, uuid.New(), day(2024, time.January, 8)),
		workEntry(teamB, uuid.New(), day(2024, time.January, 8)),
		workEntry(teamB, uuid.New(), day(2024, time.January, 8)),
	}

	suite.mockPartnershipRepo.EXPECT().GetByID(partnership.ID).Return(partnership, nil)
	suite.mockPartnershipRepo.EXPECT().GetTeamIDs(partnership.ID).Return([]uuid.UUID{teamA, teamB}, nil)
	suite.mockCapacityRepo.EXPECT().GetByPartnershipID(partnership.ID).Return(config, nil)
	suite.mockScheduleRepo.EXPECT().
		GetScheduledWork([]uuid.UUID{teamA, teamB}, gomock.Any(), gomock.Any()).
		Return(entries, nil)
	suite.mockHolidayRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any(), "BY").Return([]models.Holiday{}, nil)

	report, err := suite.coverageService.AnalyzePartnershipRange(partnership.ID, day(2024, time.January, 8), day(2024, time.January, 8))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "partnership", report.ScopeType)
	assert.Equal(suite.T(), 1, report.TotalDays)
	assert.Equal(suite.T(), 1, report.CoveredDays)
	assert.Empty(suite.T(), report.Gaps)
}

func (suite *CoverageServiceTestSuite) TestAnalyzePartnershipRange_NotFound() {
	partnershipID := uuid.New()
	suite.mockPartnershipRepo.EXPECT().GetByID(partnershipID).Return(nil, gorm.ErrRecordNotFound)

	report, err := suite.coverageService.AnalyzePartnershipRange(partnershipID, day(2024, time.January, 8), day(2024, time.January, 8))

	assert.Nil(suite.T(), report)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPartnershipNotFound)
}

func TestCoverageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CoverageServiceTestSuite))
}
