package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"staff-roster-backend/internal/api/handlers"
	"staff-roster-backend/internal/database/models"
	apperrors "staff-roster-backend/internal/errors"
	"staff-roster-backend/internal/mocks"
	"staff-roster-backend/internal/service"
	"staff-roster-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// HolidayHandlerTestSuite defines the test suite for HolidayHandler
type HolidayHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockHolidayImportServiceInterface
	handler     *handlers.HolidayHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *HolidayHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockHolidayImportServiceInterface(suite.ctrl)

	suite.handler = handlers.NewHolidayHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	holidays := v1.Group("/holidays")
	{
		holidays.GET("", suite.handler.List)
		holidays.POST("/import", suite.handler.Import)
		holidays.GET("/import/status", suite.handler.Status)
		holidays.POST("/import/reset", suite.handler.Reset)
	}
}

// TearDownTest cleans up after each test
func (suite *HolidayHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *HolidayHandlerTestSuite) TestImport_Success() {
	summary := &service.ImportSummary{
		CountryCode:   "DE",
		Year:          2024,
		TotalImported: 12,
		Results: []service.RegionImportResult{
			{Outcome: service.OutcomeImported, Imported: 12},
		},
	}
	suite.mockService.EXPECT().RequestImport(gomock.Any(), gomock.Any()).Return(summary, nil)

	body := service.RequestImportRequest{CountryCode: "DE", Year: 2024}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/holidays/import", body)

	var resp service.ImportSummary
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), 12, resp.TotalImported)
}

func (suite *HolidayHandlerTestSuite) TestImport_ConflictReportedInSummary() {
	// A region conflict is a summary outcome, not an HTTP error: the request
	// itself succeeded.
	summary := &service.ImportSummary{
		CountryCode: "DE",
		Year:        2024,
		InProgress:  1,
		Results: []service.RegionImportResult{
			{Outcome: service.OutcomeConflict, Error: apperrors.ErrImportAlreadyPending.Error()},
		},
	}
	suite.mockService.EXPECT().RequestImport(gomock.Any(), gomock.Any()).Return(summary, nil)

	body := service.RequestImportRequest{CountryCode: "DE", Year: 2024}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/holidays/import", body)

	var resp service.ImportSummary
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), 1, resp.InProgress)
}

func (suite *HolidayHandlerTestSuite) TestImport_ValidationFailure() {
	suite.mockService.EXPECT().RequestImport(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("validation failed: CountryCode must be 2 characters"))

	body := service.RequestImportRequest{CountryCode: "DEU", Year: 2024}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/holidays/import", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation failed")
}

func (suite *HolidayHandlerTestSuite) TestStatus_Success() {
	status := &service.ImportStatusResponse{
		CountryCode: "DE",
		Year:        2024,
		Aggregate:   "pending",
		AnyPending:  true,
		Jobs: []service.ImportJobResponse{
			{Status: models.ImportStatePending},
		},
	}
	suite.mockService.EXPECT().GetStatus("DE", 2024).Return(status, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/holidays/import/status?country=DE&year=2024", nil)

	var resp service.ImportStatusResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), "pending", resp.Aggregate)
	assert.True(suite.T(), resp.AnyPending)
}

func (suite *HolidayHandlerTestSuite) TestStatus_BadCountry() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/holidays/import/status?country=DEU&year=2024", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "country")
}

func (suite *HolidayHandlerTestSuite) TestStatus_MissingYear() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/holidays/import/status?country=DE", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "year")
}

func (suite *HolidayHandlerTestSuite) TestReset_Success() {
	region := "BW"
	suite.mockService.EXPECT().ResetImport("DE", 2024, &region).Return(nil)

	body := handlers.ResetImportRequest{CountryCode: "DE", Year: 2024, RegionCode: &region}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/holidays/import/reset", body)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *HolidayHandlerTestSuite) TestReset_NoRecord() {
	suite.mockService.EXPECT().ResetImport("DE", 2024, nil).Return(apperrors.ErrImportStatusNotFound)

	body := handlers.ResetImportRequest{CountryCode: "DE", Year: 2024}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/holidays/import/reset", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "")
}

func (suite *HolidayHandlerTestSuite) TestReset_NotPending() {
	suite.mockService.EXPECT().ResetImport("DE", 2024, nil).Return(apperrors.ErrNoPendingImport)

	body := handlers.ResetImportRequest{CountryCode: "DE", Year: 2024}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/holidays/import/reset", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "no pending import")
}

func (suite *HolidayHandlerTestSuite) TestList_Success() {
	holidays := []service.ConsolidatedHoliday{
		{Date: "2024-01-01", Name: "Neujahr", IsNational: true, RegionCodes: []string{}},
		{Date: "2024-01-06", Name: "Heilige Drei Könige", RegionCodes: []string{"BW", "BY"}},
	}
	suite.mockService.EXPECT().ConsolidatedHolidays("DE", 2024).Return(holidays, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/holidays?country=DE&year=2024", nil)

	var resp []service.ConsolidatedHoliday
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), []string{"BW", "BY"}, resp[1].RegionCodes)
}

func TestHolidayHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HolidayHandlerTestSuite))
}
