package repository

import (
	"staff-roster-backend/internal/database/models"

	"gorm.io/gorm"
)

// HolidayImportStatusRepository handles database operations for import job records
type HolidayImportStatusRepository struct {
	db *gorm.DB
}

// NewHolidayImportStatusRepository creates a new import status repository
func NewHolidayImportStatusRepository(db *gorm.DB) *HolidayImportStatusRepository {
	return &HolidayImportStatusRepository{db: db}
}

// GetByIdentity retrieves the job record for one (country, year, region) identity
func (r *HolidayImportStatusRepository) GetByIdentity(country string, year int, region *string) (*models.HolidayImportStatus, error) {
	var status models.HolidayImportStatus
	query := r.db.Where("country_code = ? AND year = ?", country, year)
	if region == nil {
		query = query.Where("region_code IS NULL")
	} else {
		query = query.Where("region_code = ?", *region)
	}
	err := query.First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// GetByCountryYear retrieves all job records of a country and year
func (r *HolidayImportStatusRepository) GetByCountryYear(country string, year int) ([]models.HolidayImportStatus, error) {
	var statuses []models.HolidayImportStatus
	err := r.db.
		Where("country_code = ? AND year = ?", country, year).
		Order("region_code ASC NULLS FIRST").
		Find(&statuses).Error
	return statuses, err
}

// GetPending retrieves all pending job records across identities
func (r *HolidayImportStatusRepository) GetPending() ([]models.HolidayImportStatus, error) {
	var statuses []models.HolidayImportStatus
	err := r.db.Where("status = ?", models.ImportStatePending).Find(&statuses).Error
	return statuses, err
}

// CountPending counts pending job records of a country and year. This backs
// the cheap any-pending query used by status polling.
func (r *HolidayImportStatusRepository) CountPending(country string, year int) (int64, error) {
	var count int64
	err := r.db.Model(&models.HolidayImportStatus{}).
		Where("country_code = ? AND year = ? AND status = ?", country, year, models.ImportStatePending).
		Count(&count).Error
	return count, err
}

// Save creates or updates a job record
func (r *HolidayImportStatusRepository) Save(status *models.HolidayImportStatus) error {
	return r.db.Save(status).Error
}
