package service

import (
	"context"
	"time"

	"staff-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// DutyAssignmentServiceInterface defines the interface for the duty assignment service
type DutyAssignmentServiceInterface interface {
	ListByWeek(teamIDs []uuid.UUID, week, year int) (*DutyWeekResponse, error)
	Add(req *CreateDutyAssignmentRequest) (*DutyAssignmentResponse, error)
	Update(id uuid.UUID, req *UpdateDutyAssignmentRequest) (*DutyAssignmentResponse, error)
	Remove(id uuid.UUID) error
	ScheduledCandidates(teamIDs []uuid.UUID, date string, dutyType models.DutyType) ([]CandidateResponse, error)
}

// CoverageServiceInterface defines the interface for the coverage service
type CoverageServiceInterface interface {
	AnalyzeTeamWeek(teamID uuid.UUID, week, year int) (*CoverageReport, error)
	AnalyzePartnershipWeek(partnershipID uuid.UUID, week, year int) (*CoverageReport, error)
	AnalyzeTeamRange(teamID uuid.UUID, start, end time.Time) (*CoverageReport, error)
	AnalyzePartnershipRange(partnershipID uuid.UUID, start, end time.Time) (*CoverageReport, error)
}

// CapacityConfigServiceInterface defines the interface for the capacity config service
type CapacityConfigServiceInterface interface {
	GetTeamConfig(teamID uuid.UUID) (*CapacityConfigResponse, error)
	UpsertTeamConfig(teamID uuid.UUID, req *SaveCapacityConfigRequest) (*CapacityConfigResponse, error)
	GetPartnershipConfig(partnershipID uuid.UUID) (*CapacityConfigResponse, error)
	UpsertPartnershipConfig(partnershipID uuid.UUID, req *SaveCapacityConfigRequest) (*CapacityConfigResponse, error)
}

// HolidayImportServiceInterface defines the interface for the holiday import service
type HolidayImportServiceInterface interface {
	RequestImport(ctx context.Context, req *RequestImportRequest) (*ImportSummary, error)
	GetStatus(country string, year int) (*ImportStatusResponse, error)
	AnyPending(country string, year int) (bool, error)
	ResetImport(country string, year int, region *string) error
	ConsolidatedHolidays(country string, year int) ([]ConsolidatedHoliday, error)
	ReclaimStuckImports() (int, error)
}
