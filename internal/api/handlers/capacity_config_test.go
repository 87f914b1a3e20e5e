package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"staff-roster-backend/internal/api/handlers"
	apperrors "staff-roster-backend/internal/errors"
	"staff-roster-backend/internal/mocks"
	"staff-roster-backend/internal/service"
	"staff-roster-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CapacityConfigHandlerTestSuite defines the test suite for CapacityConfigHandler
type CapacityConfigHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCapacityConfigServiceInterface
	handler     *handlers.CapacityConfigHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *CapacityConfigHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCapacityConfigServiceInterface(suite.ctrl)

	suite.handler = handlers.NewCapacityConfigHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	capacity := v1.Group("/capacity")
	{
		capacity.GET("/teams/:id", suite.handler.GetTeamConfig)
		capacity.PUT("/teams/:id", suite.handler.UpsertTeamConfig)
		capacity.GET("/partnerships/:id", suite.handler.GetPartnershipConfig)
		capacity.PUT("/partnerships/:id", suite.handler.UpsertPartnershipConfig)
	}
}

// TearDownTest cleans up after each test
func (suite *CapacityConfigHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CapacityConfigHandlerTestSuite) TestGetTeamConfig_Success() {
	teamID := uuid.New()
	maxStaff := 5
	config := &service.CapacityConfigResponse{
		OwnerID:           teamID,
		OwnerType:         "team",
		MinStaffRequired:  2,
		MaxStaffAllowed:   &maxStaff,
		AppliesToWeekends: true,
	}
	suite.mockService.EXPECT().GetTeamConfig(teamID).Return(config, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/capacity/teams/"+teamID.String(), nil)

	var resp service.CapacityConfigResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), "team", resp.OwnerType)
	assert.Equal(suite.T(), 2, resp.MinStaffRequired)
	assert.Equal(suite.T(), 5, *resp.MaxStaffAllowed)
}

func (suite *CapacityConfigHandlerTestSuite) TestGetTeamConfig_NotFound() {
	teamID := uuid.New()
	suite.mockService.EXPECT().GetTeamConfig(teamID).Return(nil, apperrors.ErrCapacityConfigNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/capacity/teams/"+teamID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "")
}

func (suite *CapacityConfigHandlerTestSuite) TestGetTeamConfig_BadID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/capacity/teams/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid team ID")
}

func (suite *CapacityConfigHandlerTestSuite) TestUpsertTeamConfig_Success() {
	teamID := uuid.New()
	config := &service.CapacityConfigResponse{
		OwnerID:          teamID,
		OwnerType:        "team",
		MinStaffRequired: 3,
	}
	suite.mockService.EXPECT().UpsertTeamConfig(teamID, gomock.Any()).Return(config, nil)

	body := service.SaveCapacityConfigRequest{MinStaffRequired: 3}
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/capacity/teams/"+teamID.String(), body)

	var resp service.CapacityConfigResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), 3, resp.MinStaffRequired)
}

func (suite *CapacityConfigHandlerTestSuite) TestUpsertTeamConfig_MinAboveMax() {
	teamID := uuid.New()
	suite.mockService.EXPECT().UpsertTeamConfig(teamID, gomock.Any()).Return(nil, apperrors.ErrMinAboveMax)

	maxStaff := 2
	body := service.SaveCapacityConfigRequest{MinStaffRequired: 5, MaxStaffAllowed: &maxStaff}
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/capacity/teams/"+teamID.String(), body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *CapacityConfigHandlerTestSuite) TestUpsertTeamConfig_ValidationFailure() {
	teamID := uuid.New()
	suite.mockService.EXPECT().UpsertTeamConfig(teamID, gomock.Any()).
		Return(nil, errors.New("validation failed: MinStaffRequired must be at least 1"))

	body := service.SaveCapacityConfigRequest{MinStaffRequired: 0}
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/capacity/teams/"+teamID.String(), body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation failed")
}

func (suite *CapacityConfigHandlerTestSuite) TestUpsertTeamConfig_TeamNotFound() {
	teamID := uuid.New()
	suite.mockService.EXPECT().UpsertTeamConfig(teamID, gomock.Any()).Return(nil, apperrors.ErrTeamNotFound)

	body := service.SaveCapacityConfigRequest{MinStaffRequired: 1}
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/capacity/teams/"+teamID.String(), body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team")
}

func (suite *CapacityConfigHandlerTestSuite) TestGetPartnershipConfig_Success() {
	partnershipID := uuid.New()
	config := &service.CapacityConfigResponse{
		OwnerID:          partnershipID,
		OwnerType:        "partnership",
		MinStaffRequired: 4,
	}
	suite.mockService.EXPECT().GetPartnershipConfig(partnershipID).Return(config, nil)

	url := fmt.Sprintf("/api/v1/capacity/partnerships/%s", partnershipID)
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, url, nil)

	var resp service.CapacityConfigResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), "partnership", resp.OwnerType)
	assert.Equal(suite.T(), 4, resp.MinStaffRequired)
}

func (suite *CapacityConfigHandlerTestSuite) TestUpsertPartnershipConfig_NotFound() {
	partnershipID := uuid.New()
	suite.mockService.EXPECT().
		UpsertPartnershipConfig(partnershipID, gomock.Any()).
		Return(nil, apperrors.ErrPartnershipNotFound)

	body := service.SaveCapacityConfigRequest{MinStaffRequired: 1}
	url := fmt.Sprintf("/api/v1/capacity/partnerships/%s", partnershipID)
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, url, body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "partnership")
}

func TestCapacityConfigHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CapacityConfigHandlerTestSuite))
}
