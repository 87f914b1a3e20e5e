package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"staff-roster-backend/internal/api/handlers"
	"staff-roster-backend/internal/database/models"
	apperrors "staff-roster-backend/internal/errors"
	"staff-roster-backend/internal/mocks"
	"staff-roster-backend/internal/service"
	"staff-roster-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DutyAssignmentHandlerTestSuite defines the test suite for DutyAssignmentHandler
type DutyAssignmentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockDutyAssignmentServiceInterface
	handler     *handlers.DutyAssignmentHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *DutyAssignmentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDutyAssignmentServiceInterface(suite.ctrl)

	suite.handler = handlers.NewDutyAssignmentHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	duty := v1.Group("/duty-assignments")
	{
		duty.GET("", suite.handler.ListByWeek)
		duty.POST("", suite.handler.Add)
		duty.GET("/candidates", suite.handler.Candidates)
		duty.PATCH("/:id", suite.handler.Update)
		duty.DELETE("/:id", suite.handler.Remove)
	}
}

// TearDownTest cleans up after each test
func (suite *DutyAssignmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DutyAssignmentHandlerTestSuite) TestListByWeek_Success() {
	teamID := uuid.New()
	roster := &service.DutyWeekResponse{Week: 2, Year: 2024, Days: []service.DutyDayResponse{}, Total: 0}
	suite.mockService.EXPECT().ListByWeek([]uuid.UUID{teamID}, 2, 2024).Return(roster, nil)

	url := fmt.Sprintf("/api/v1/duty-assignments?team_ids=%s&week=2&year=2024", teamID)
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, url, nil)

	var resp service.DutyWeekResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), 2, resp.Week)
	assert.Equal(suite.T(), 2024, resp.Year)
}

func (suite *DutyAssignmentHandlerTestSuite) TestListByWeek_MultipleTeams() {
	teamA, teamB := uuid.New(), uuid.New()
	roster := &service.DutyWeekResponse{Week: 2, Year: 2024}
	suite.mockService.EXPECT().ListByWeek([]uuid.UUID{teamA, teamB}, 2, 2024).Return(roster, nil)

	url := fmt.Sprintf("/api/v1/duty-assignments?team_ids=%s,%s&week=2&year=2024", teamA, teamB)
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, url, nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *DutyAssignmentHandlerTestSuite) TestListByWeek_MissingTeams() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/duty-assignments?week=2&year=2024", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *DutyAssignmentHandlerTestSuite) TestListByWeek_BadWeek() {
	url := fmt.Sprintf("/api/v1/duty-assignments?team_ids=%s&week=abc&year=2024", uuid.New())
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, url, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "week")
}

func (suite *DutyAssignmentHandlerTestSuite) TestListByWeek_InvalidWeekNumber() {
	teamID := uuid.New()
	suite.mockService.EXPECT().ListByWeek([]uuid.UUID{teamID}, 54, 2024).
		Return(nil, apperrors.NewValidationError("week", "week 54 out of range"))

	url := fmt.Sprintf("/api/v1/duty-assignments?team_ids=%s&week=54&year=2024", teamID)
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, url, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "week")
}

func (suite *DutyAssignmentHandlerTestSuite) TestAdd_Success() {
	teamID := uuid.New()
	created := &service.DutyAssignmentResponse{
		ID:       uuid.New(),
		TeamID:   teamID,
		Date:     "2024-01-13",
		DutyType: models.DutyTypeWeekend,
	}
	suite.mockService.EXPECT().Add(gomock.Any()).Return(created, nil)

	body := service.CreateDutyAssignmentRequest{
		TeamID:   teamID,
		Date:     "2024-01-13",
		DutyType: models.DutyTypeWeekend,
	}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/duty-assignments", body)

	var resp service.DutyAssignmentResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	assert.Equal(suite.T(), "2024-01-13", resp.Date)
	assert.Nil(suite.T(), resp.ProfileID)
}

func (suite *DutyAssignmentHandlerTestSuite) TestAdd_TeamNotFound() {
	suite.mockService.EXPECT().Add(gomock.Any()).Return(nil, apperrors.ErrTeamNotFound)

	body := service.CreateDutyAssignmentRequest{
		TeamID:   uuid.New(),
		Date:     "2024-01-13",
		DutyType: models.DutyTypeWeekend,
	}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/duty-assignments", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team")
}

func (suite *DutyAssignmentHandlerTestSuite) TestAdd_InvalidDutyType() {
	suite.mockService.EXPECT().Add(gomock.Any()).Return(nil, apperrors.ErrInvalidDutyType)

	body := service.CreateDutyAssignmentRequest{
		TeamID:   uuid.New(),
		Date:     "2024-01-13",
		DutyType: "night_watch",
	}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/duty-assignments", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "duty type")
}

func (suite *DutyAssignmentHandlerTestSuite) TestUpdate_ClearAssigneeWithExplicitNull() {
	id := uuid.New()
	updated := &service.DutyAssignmentResponse{ID: id, Date: "2024-01-13", DutyType: models.DutyTypeWeekend}
	suite.mockService.EXPECT().Update(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateDutyAssignmentRequest) (*service.DutyAssignmentResponse, error) {
			assert.True(suite.T(), req.ProfileID.Set)
			assert.Nil(suite.T(), req.ProfileID.Value)
			return updated, nil
		})

	recorder := suite.httpSuite.MakeRawRequest(http.MethodPatch, "/api/v1/duty-assignments/"+id.String(), `{"profile_id": null}`)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *DutyAssignmentHandlerTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Update(id, gomock.Any()).Return(nil, apperrors.ErrDutyAssignmentNotFound)

	recorder := suite.httpSuite.MakeRawRequest(http.MethodPatch, "/api/v1/duty-assignments/"+id.String(), `{"is_substitute": true}`)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "")
}

func (suite *DutyAssignmentHandlerTestSuite) TestUpdate_BadID() {
	recorder := suite.httpSuite.MakeRawRequest(http.MethodPatch, "/api/v1/duty-assignments/not-a-uuid", `{}`)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid assignment ID")
}

func (suite *DutyAssignmentHandlerTestSuite) TestRemove_Success() {
	id := uuid.New()
	suite.mockService.EXPECT().Remove(id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/duty-assignments/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *DutyAssignmentHandlerTestSuite) TestRemove_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Remove(id).Return(apperrors.ErrDutyAssignmentNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/duty-assignments/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "")
}

func (suite *DutyAssignmentHandlerTestSuite) TestCandidates_Success() {
	teamID := uuid.New()
	candidates := []service.CandidateResponse{
		{ProfileID: uuid.New(), FullName: "Jane Doe", Initials: "JD", ShiftType: models.ShiftTypeWeekend},
	}
	suite.mockService.EXPECT().
		ScheduledCandidates([]uuid.UUID{teamID}, "2024-01-13", models.DutyTypeWeekend).
		Return(candidates, nil)

	url := fmt.Sprintf("/api/v1/duty-assignments/candidates?team_ids=%s&date=2024-01-13&duty_type=weekend", teamID)
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, url, nil)

	var resp []service.CandidateResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Len(suite.T(), resp, 1)
	assert.Equal(suite.T(), "Jane Doe", resp[0].FullName)
}

func (suite *DutyAssignmentHandlerTestSuite) TestCandidates_InvalidDutyType() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		ScheduledCandidates([]uuid.UUID{teamID}, "2024-01-13", models.DutyType("bogus")).
		Return(nil, apperrors.ErrInvalidDutyType)

	url := fmt.Sprintf("/api/v1/duty-assignments/candidates?team_ids=%s&date=2024-01-13&duty_type=bogus", teamID)
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, url, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func TestDutyAssignmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DutyAssignmentHandlerTestSuite))
}
