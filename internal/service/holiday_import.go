package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"staff-roster-backend/internal/database/models"
	apperrors "staff-roster-backend/internal/errors"
	"staff-roster-backend/internal/holidayapi"
	"staff-roster-backend/internal/logger"
	"staff-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Messages written to reclaimed job records. The timeout message is distinct
// from a provider failure so operators can tell the two apart.
const (
	TimeoutErrorMessage     = "Import timed out — reset for retry"
	ManualResetErrorMessage = "Manually reset by admin"
)

// Region outcome values in an import summary
const (
	OutcomeImported = "imported"
	OutcomeConflict = "conflict"
	OutcomeFailed   = "failed"
)

// HolidayImportService orchestrates idempotent holiday imports per
// (country, year, region) identity. At most one pending job may exist per
// identity; the guard is optimistic, which is acceptable because re-importing
// the same identity is a safe no-op that only reports existing counts.
type HolidayImportService struct {
	statusRepo  repository.HolidayImportStatusRepositoryInterface
	holidayRepo repository.HolidayRepositoryInterface
	provider    holidayapi.Provider
	validator   *validator.Validate
	timeout     time.Duration
	log         *logger.Logger
}

// NewHolidayImportService creates a new holiday import service
func NewHolidayImportService(
	statusRepo repository.HolidayImportStatusRepositoryInterface,
	holidayRepo repository.HolidayRepositoryInterface,
	provider holidayapi.Provider,
	validator *validator.Validate,
	timeout time.Duration,
) *HolidayImportService {
	return &HolidayImportService{
		statusRepo:  statusRepo,
		holidayRepo: holidayRepo,
		provider:    provider,
		validator:   validator,
		timeout:     timeout,
		log:         logger.WithComponent("holiday-import"),
	}
}

// RequestImportRequest represents the request to import holidays. Without
// regions a single national import runs; with regions one job runs per
// region, each independent of the others.
type RequestImportRequest struct {
	CountryCode string   `json:"country_code" validate:"required,len=2,alpha"`
	Year        int      `json:"year" validate:"required,min=2000,max=2100"`
	Regions     []string `json:"regions,omitempty" validate:"omitempty,dive,min=1,max=10"`
}

// RegionImportResult is the outcome of one region's import job
type RegionImportResult struct {
	RegionCode *string `json:"region_code"`
	Outcome    string  `json:"outcome"`
	Imported   int     `json:"imported"`
	Existing   int     `json:"existing"`
	Error      string  `json:"error,omitempty"`
}

// ImportSummary aggregates the per-region outcomes of one import request
type ImportSummary struct {
	CountryCode   string               `json:"country_code"`
	Year          int                  `json:"year"`
	TotalImported int                  `json:"total_imported"`
	TotalExisting int                  `json:"total_existing"`
	InProgress    int                  `json:"in_progress"`
	Failed        int                  `json:"failed"`
	Results       []RegionImportResult `json:"results"`
}

// ImportJobResponse is one job record. Only the fields valid for the state
// are populated: a pending job has neither counts nor completion time, a
// failed one carries the error message.
type ImportJobResponse struct {
	RegionCode    *string            `json:"region_code"`
	Status        models.ImportState `json:"status"`
	StartedAt     string             `json:"started_at"`
	ImportedCount *int               `json:"imported_count,omitempty"`
	CompletedAt   *string            `json:"completed_at,omitempty"`
	ErrorMessage  string             `json:"error_message,omitempty"`
}

// ImportStatusResponse is the aggregate status of a country and year
type ImportStatusResponse struct {
	CountryCode string              `json:"country_code"`
	Year        int                 `json:"year"`
	Aggregate   string              `json:"aggregate"` // pending, completed or none
	AnyPending  bool                `json:"any_pending"`
	Jobs        []ImportJobResponse `json:"jobs"`
}

// ConsolidatedHoliday is the display form of a holiday: regional rows sharing
// (date, name) are merged into one record carrying the sorted region codes,
// while a national row always stays its own record.
type ConsolidatedHoliday struct {
	Date        string   `json:"date"`
	Name        string   `json:"name"`
	IsNational  bool     `json:"is_national"`
	RegionCodes []string `json:"region_codes"`
}

// RequestImport runs one import job per requested identity. Each region's
// outcome is independent: a conflict or provider failure in one region never
// blocks or rolls back the others.
func (s *HolidayImportService) RequestImport(ctx context.Context, req *RequestImportRequest) (*ImportSummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	country := strings.ToUpper(req.CountryCode)

	identities := []*string{nil}
	if len(req.Regions) > 0 {
		identities = identities[:0]
		for _, region := range req.Regions {
			r := strings.ToUpper(region)
			identities = append(identities, &r)
		}
	}

	summary := &ImportSummary{CountryCode: country, Year: req.Year}
	for _, region := range identities {
		result := s.importOne(ctx, country, req.Year, region)
		summary.TotalImported += result.Imported
		summary.TotalExisting += result.Existing
		switch result.Outcome {
		case OutcomeConflict:
			summary.InProgress++
		case OutcomeFailed:
			summary.Failed++
		}
		summary.Results = append(summary.Results, result)
	}
	return summary, nil
}

// importOne drives the state machine of a single identity: guard against a
// live pending job, persist the pending record before calling out, then
// settle to completed or failed.
func (s *HolidayImportService) importOne(ctx context.Context, country string, year int, region *string) RegionImportResult {
	result := RegionImportResult{RegionCode: region}
	now := time.Now()

	status, err := s.statusRepo.GetByIdentity(country, year, region)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		result.Outcome = OutcomeFailed
		result.Error = fmt.Sprintf("failed to read import status: %v", err)
		return result
	}
	if status != nil && status.Status == models.ImportStatePending && status.Age(now) < s.timeout {
		result.Outcome = OutcomeConflict
		result.Error = apperrors.ErrImportAlreadyPending.Error()
		return result
	}
	if status == nil {
		status = &models.HolidayImportStatus{
			CountryCode: country,
			Year:        year,
			RegionCode:  region,
		}
	}

	// The pending row is written before the provider call so a crash here
	// leaves a reclaimable record instead of a silent gap.
	status.Status = models.ImportStatePending
	status.StartedAt = now
	status.CompletedAt = nil
	status.ErrorMessage = ""
	status.ImportedCount = 0
	if err := s.statusRepo.Save(status); err != nil {
		result.Outcome = OutcomeFailed
		result.Error = fmt.Sprintf("failed to persist import status: %v", err)
		return result
	}

	holidays, err := s.provider.PublicHolidays(ctx, country, year, region)
	if err != nil {
		s.settleFailed(status, err.Error())
		result.Outcome = OutcomeFailed
		result.Error = err.Error()
		return result
	}

	imported, existing, err := s.upsertHolidays(country, year, region, holidays)
	if err != nil {
		s.settleFailed(status, err.Error())
		result.Outcome = OutcomeFailed
		result.Error = err.Error()
		return result
	}

	completedAt := time.Now()
	status.Status = models.ImportStateCompleted
	status.ImportedCount = imported
	status.CompletedAt = &completedAt
	if err := s.statusRepo.Save(status); err != nil {
		result.Outcome = OutcomeFailed
		result.Error = fmt.Sprintf("failed to persist import status: %v", err)
		return result
	}

	s.log.WithFields(map[string]interface{}{
		"country":  country,
		"year":     year,
		"region":   regionLabel(region),
		"imported": imported,
		"existing": existing,
	}).Info("holiday import completed")

	result.Outcome = OutcomeImported
	result.Imported = imported
	result.Existing = existing
	return result
}

// upsertHolidays writes provider holidays by identity; re-running the same
// import counts every row as existing instead of duplicating it
func (s *HolidayImportService) upsertHolidays(country string, year int, region *string, holidays []holidayapi.ProviderHoliday) (imported, existing int, err error) {
	for _, h := range holidays {
		exists, err := s.holidayRepo.ExistsByIdentity(country, year, h.Date, h.Name, region)
		if err != nil {
			return imported, existing, fmt.Errorf("failed to check holiday: %v", err)
		}
		if exists {
			existing++
			continue
		}
		row := &models.Holiday{
			CountryCode: country,
			Year:        year,
			Date:        h.Date,
			Name:        h.Name,
			RegionCode:  region,
			IsPublic:    true,
		}
		if err := s.holidayRepo.Create(row); err != nil {
			return imported, existing, fmt.Errorf("failed to store holiday: %v", err)
		}
		imported++
	}
	return imported, existing, nil
}

func (s *HolidayImportService) settleFailed(status *models.HolidayImportStatus, message string) {
	completedAt := time.Now()
	status.Status = models.ImportStateFailed
	status.ErrorMessage = message
	status.CompletedAt = &completedAt
	if err := s.statusRepo.Save(status); err != nil {
		s.log.WithError(err).Error("failed to persist failed import status")
	}
}

// ReclaimStuckImports force-fails every pending job older than the timeout.
// The import itself runs in an external call that cannot be cancelled; only
// the status record is reclaimed so a crashed worker never blocks re-import.
func (s *HolidayImportService) ReclaimStuckImports() (int, error) {
	pending, err := s.statusRepo.GetPending()
	if err != nil {
		return 0, fmt.Errorf("failed to list pending imports: %w", err)
	}
	now := time.Now()
	reclaimed := 0
	for i := range pending {
		status := &pending[i]
		if status.Age(now) < s.timeout {
			continue
		}
		completedAt := now
		status.Status = models.ImportStateFailed
		status.ErrorMessage = TimeoutErrorMessage
		status.CompletedAt = &completedAt
		if err := s.statusRepo.Save(status); err != nil {
			return reclaimed, fmt.Errorf("failed to reclaim import: %w", err)
		}
		reclaimed++
		s.log.WithFields(map[string]interface{}{
			"country": status.CountryCode,
			"year":    status.Year,
			"region":  regionLabel(status.RegionCode),
		}).Warn("reclaimed stuck holiday import")
	}
	return reclaimed, nil
}

// StartReclaimer sweeps for stuck imports on a fixed interval until the
// context is cancelled. Runs independently of any client polling.
func (s *HolidayImportService) StartReclaimer(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	s.log.WithField("interval", interval.String()).Info("import reclaimer started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info("import reclaimer stopped")
			return
		case <-ticker.C:
			if _, err := s.ReclaimStuckImports(); err != nil {
				s.log.WithError(err).Error("import reclaim sweep failed")
			}
		}
	}
}

// ResetImport force-fails a pending job regardless of age, unblocking retry
// without waiting for the timeout
func (s *HolidayImportService) ResetImport(country string, year int, region *string) error {
	country = strings.ToUpper(country)
	status, err := s.statusRepo.GetByIdentity(country, year, region)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrImportStatusNotFound
		}
		return fmt.Errorf("failed to read import status: %w", err)
	}
	if status.Status != models.ImportStatePending {
		return apperrors.ErrNoPendingImport
	}

	completedAt := time.Now()
	status.Status = models.ImportStateFailed
	status.ErrorMessage = ManualResetErrorMessage
	status.CompletedAt = &completedAt
	if err := s.statusRepo.Save(status); err != nil {
		return fmt.Errorf("failed to reset import: %w", err)
	}
	return nil
}

// GetStatus returns the aggregate import status of a country and year.
// Stuck jobs are reclaimed opportunistically before reading, so a status
// poll never reports a pending job that is past the timeout.
func (s *HolidayImportService) GetStatus(country string, year int) (*ImportStatusResponse, error) {
	country = strings.ToUpper(country)
	if _, err := s.ReclaimStuckImports(); err != nil {
		return nil, err
	}

	jobs, err := s.statusRepo.GetByCountryYear(country, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list import status: %w", err)
	}

	resp := &ImportStatusResponse{
		CountryCode: country,
		Year:        year,
		Aggregate:   "none",
		Jobs:        make([]ImportJobResponse, 0, len(jobs)),
	}
	finished := false
	for i := range jobs {
		job := &jobs[i]
		resp.Jobs = append(resp.Jobs, toJobResponse(job))
		switch job.Status {
		case models.ImportStatePending:
			resp.AnyPending = true
		case models.ImportStateCompleted, models.ImportStateFailed:
			finished = true
		}
	}
	if resp.AnyPending {
		resp.Aggregate = "pending"
	} else if finished {
		resp.Aggregate = "completed"
	}
	return resp, nil
}

// AnyPending is the cheap query backing client polling loops
func (s *HolidayImportService) AnyPending(country string, year int) (bool, error) {
	count, err := s.statusRepo.CountPending(strings.ToUpper(country), year)
	if err != nil {
		return false, fmt.Errorf("failed to count pending imports: %w", err)
	}
	return count > 0, nil
}

// ConsolidatedHolidays returns the display form of a country's holidays for a
// year. Regional rows sharing (date, name) merge into one record with the
// sorted region codes; national rows never merge with regional ones even
// when date and name coincide, since a null region means "applies
// everywhere" rather than a region list.
func (s *HolidayImportService) ConsolidatedHolidays(country string, year int) ([]ConsolidatedHoliday, error) {
	rows, err := s.holidayRepo.GetByCountryYear(strings.ToUpper(country), year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	type key struct {
		date string
		name string
	}
	merged := make(map[key]*ConsolidatedHoliday)
	consolidated := make([]ConsolidatedHoliday, 0, len(rows))
	order := make([]*ConsolidatedHoliday, 0, len(rows))

	for i := range rows {
		row := &rows[i]
		dateStr := row.Date.Format(DateLayout)
		if row.RegionCode == nil {
			order = append(order, &ConsolidatedHoliday{
				Date:        dateStr,
				Name:        row.Name,
				IsNational:  true,
				RegionCodes: []string{},
			})
			continue
		}
		k := key{date: dateStr, name: row.Name}
		if entry, ok := merged[k]; ok {
			entry.RegionCodes = append(entry.RegionCodes, *row.RegionCode)
			continue
		}
		entry := &ConsolidatedHoliday{
			Date:        dateStr,
			Name:        row.Name,
			RegionCodes: []string{*row.RegionCode},
		}
		merged[k] = entry
		order = append(order, entry)
	}

	for _, entry := range order {
		sort.Strings(entry.RegionCodes)
		consolidated = append(consolidated, *entry)
	}
	sort.SliceStable(consolidated, func(i, j int) bool {
		if consolidated[i].Date != consolidated[j].Date {
			return consolidated[i].Date < consolidated[j].Date
		}
		if consolidated[i].Name != consolidated[j].Name {
			return consolidated[i].Name < consolidated[j].Name
		}
		return consolidated[i].IsNational && !consolidated[j].IsNational
	})
	return consolidated, nil
}

func toJobResponse(job *models.HolidayImportStatus) ImportJobResponse {
	resp := ImportJobResponse{
		RegionCode: job.RegionCode,
		Status:     job.Status,
		StartedAt:  job.StartedAt.Format(time.RFC3339),
	}
	switch job.Status {
	case models.ImportStateCompleted:
		count := job.ImportedCount
		resp.ImportedCount = &count
	case models.ImportStateFailed:
		resp.ErrorMessage = job.ErrorMessage
	}
	if job.CompletedAt != nil {
		formatted := job.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &formatted
	}
	return resp
}

func regionLabel(region *string) string {
	if region == nil {
		return "national"
	}
	return *region
}
