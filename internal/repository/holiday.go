package repository

import (
	"time"

	"staff-roster-backend/internal/database/models"

	"gorm.io/gorm"
)

// HolidayRepository handles database operations for holidays
type HolidayRepository struct {
	db *gorm.DB
}

// NewHolidayRepository creates a new holiday repository
func NewHolidayRepository(db *gorm.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

// Create creates a new holiday row
func (r *HolidayRepository) Create(holiday *models.Holiday) error {
	return r.db.Create(holiday).Error
}

// ExistsByIdentity reports whether a holiday row already exists for the
// (country, year, date, name, region) identity. A nil region only matches
// rows with a null region code.
func (r *HolidayRepository) ExistsByIdentity(country string, year int, date time.Time, name string, region *string) (bool, error) {
	query := r.db.Model(&models.Holiday{}).
		Where("country_code = ? AND year = ? AND date = ? AND name = ?", country, year, date, name)
	if region == nil {
		query = query.Where("region_code IS NULL")
	} else {
		query = query.Where("region_code = ?", *region)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// GetByCountryYear retrieves all holiday rows of a country and year
func (r *HolidayRepository) GetByCountryYear(country string, year int) ([]models.Holiday, error) {
	var holidays []models.Holiday
	err := r.db.
		Where("country_code = ? AND year = ?", country, year).
		Order("date ASC, name ASC, region_code ASC NULLS FIRST").
		Find(&holidays).Error
	return holidays, err
}

// GetByDateRange retrieves holidays within the range that apply to the given
// region: rows with a null region code apply everywhere, regional rows only
// when the region matches.
func (r *HolidayRepository) GetByDateRange(start, end time.Time, region string) ([]models.Holiday, error) {
	var holidays []models.Holiday
	query := r.db.Where("date >= ? AND date <= ?", start, end)
	if region == "" {
		query = query.Where("region_code IS NULL")
	} else {
		query = query.Where("region_code IS NULL OR region_code = ?", region)
	}
	err := query.Order("date ASC").Find(&holidays).Error
	return holidays, err
}
