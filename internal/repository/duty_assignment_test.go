package repository

import (
	"testing"
	"time"

	"staff-roster-backend/internal/database/models"
	"staff-roster-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// DutyAssignmentRepositoryTestSuite tests the DutyAssignmentRepository
type DutyAssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *DutyAssignmentRepository

	teamFactory    *testutils.TeamFactory
	profileFactory *testutils.ProfileFactory
	dutyFactory    *testutils.DutyAssignmentFactory
}

// SetupSuite runs before all tests in the suite
func (suite *DutyAssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewDutyAssignmentRepository(suite.baseTestSuite.DB)
	suite.teamFactory = testutils.NewTeamFactory()
	suite.profileFactory = testutils.NewProfileFactory()
	suite.dutyFactory = testutils.NewDutyAssignmentFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *DutyAssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *DutyAssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *DutyAssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *DutyAssignmentRepositoryTestSuite) createTeam() *models.Team {
	team := suite.teamFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)
	return team
}

func (suite *DutyAssignmentRepositoryTestSuite) createProfile() *models.Profile {
	profile := suite.profileFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(profile).Error)
	return profile
}

// TestCreateAndGetByID tests creating a slot and reading it back with the
// assignee preloaded
func (suite *DutyAssignmentRepositoryTestSuite) TestCreateAndGetByID() {
	team := suite.createTeam()
	profile := suite.createProfile()

	assignment := suite.dutyFactory.WithProfile(team.ID, time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), profile.ID)
	err := suite.repo.Create(assignment)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(assignment.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(assignment.ID, retrieved.ID)
	suite.Equal(team.ID, retrieved.TeamID)
	suite.Equal(models.DutyTypeWeekend, retrieved.DutyType)
	suite.Equal(2, retrieved.WeekNumber)
	suite.Equal(2024, retrieved.Year)
	suite.NotNil(retrieved.Profile)
	suite.Equal("Jane Doe", retrieved.Profile.FullName)
}

// TestGetByIDNotFound tests retrieving a non-existent slot
func (suite *DutyAssignmentRepositoryTestSuite) TestGetByIDNotFound() {
	assignment, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(assignment)
}

// TestGetByTeamsAndWeek tests the denormalized week query across teams
func (suite *DutyAssignmentRepositoryTestSuite) TestGetByTeamsAndWeek() {
	teamA := suite.createTeam()
	teamB := suite.createTeam()
	other := suite.createTeam()

	// Week 2 of 2024 runs Jan 8 through Jan 14
	saturday := time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	first := suite.dutyFactory.WithDutyType(teamA.ID, monday, models.DutyTypeEarlyShift)
	second := suite.dutyFactory.Create(teamA.ID, saturday)
	third := suite.dutyFactory.Create(teamB.ID, saturday)
	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.Create(second))
	suite.NoError(suite.repo.Create(third))

	// Other team and other week must not appear
	suite.NoError(suite.repo.Create(suite.dutyFactory.Create(other.ID, saturday)))
	suite.NoError(suite.repo.Create(suite.dutyFactory.Create(teamA.ID, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))))

	assignments, err := suite.repo.GetByTeamsAndWeek([]uuid.UUID{teamA.ID, teamB.ID}, 2, 2024)

	suite.NoError(err)
	suite.Len(assignments, 3)
	// Ordered by date first
	suite.Equal(first.ID, assignments[0].ID)
	suite.Equal("2024-01-08", assignments[0].Date.Format("2006-01-02"))
	suite.Equal("2024-01-13", assignments[1].Date.Format("2006-01-02"))
	suite.Equal("2024-01-13", assignments[2].Date.Format("2006-01-02"))
}

// TestGetByTeamsAndWeekEmpty tests a week without any slots
func (suite *DutyAssignmentRepositoryTestSuite) TestGetByTeamsAndWeekEmpty() {
	team := suite.createTeam()

	assignments, err := suite.repo.GetByTeamsAndWeek([]uuid.UUID{team.ID}, 30, 2024)

	suite.NoError(err)
	suite.Empty(assignments)
}

// TestUpdate tests mutating an existing slot
func (suite *DutyAssignmentRepositoryTestSuite) TestUpdate() {
	team := suite.createTeam()
	profile := suite.createProfile()

	assignment := suite.dutyFactory.Create(team.ID, time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC))
	suite.NoError(suite.repo.Create(assignment))

	assignment.ProfileID = &profile.ID
	assignment.IsSubstitute = true
	assignment.Region = "North"
	err := suite.repo.Update(assignment)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(assignment.ID)
	suite.NoError(err)
	suite.Equal(profile.ID, *retrieved.ProfileID)
	suite.True(retrieved.IsSubstitute)
	suite.Equal("North", retrieved.Region)
}

// TestUpdateClearAssignee tests that a nil profile ID is persisted
func (suite *DutyAssignmentRepositoryTestSuite) TestUpdateClearAssignee() {
	team := suite.createTeam()
	profile := suite.createProfile()

	assignment := suite.dutyFactory.WithProfile(team.ID, time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), profile.ID)
	suite.NoError(suite.repo.Create(assignment))

	assignment.ProfileID = nil
	suite.NoError(suite.repo.Update(assignment))

	retrieved, err := suite.repo.GetByID(assignment.ID)
	suite.NoError(err)
	suite.Nil(retrieved.ProfileID)
}

// TestDelete tests removing a slot
func (suite *DutyAssignmentRepositoryTestSuite) TestDelete() {
	team := suite.createTeam()
	assignment := suite.dutyFactory.Create(team.ID, time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC))
	suite.NoError(suite.repo.Create(assignment))

	err := suite.repo.Delete(assignment.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(assignment.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDutyAssignmentRepositoryTestSuite runs the test suite
func TestDutyAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DutyAssignmentRepositoryTestSuite))
}
