package repository

import (
	"time"

	"staff-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleEntryRepository handles read access to schedule entries
type ScheduleEntryRepository struct {
	db *gorm.DB
}

// NewScheduleEntryRepository creates a new schedule entry repository
func NewScheduleEntryRepository(db *gorm.DB) *ScheduleEntryRepository {
	return &ScheduleEntryRepository{db: db}
}

// GetScheduledWork retrieves available work entries for the teams within the
// date range (both bounds inclusive). Entries that are unavailable or not of
// activity type work never count toward coverage.
func (r *ScheduleEntryRepository) GetScheduledWork(teamIDs []uuid.UUID, start, end time.Time) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	err := r.db.
		Where("team_id IN ? AND date >= ? AND date <= ?", teamIDs, start, end).
		Where("availability_status = ? AND activity_type = ?", models.AvailabilityAvailable, models.ActivityWork).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

// GetScheduledWorkForDate retrieves available work entries for one date,
// filtered to the given shift types, with profiles preloaded for display.
func (r *ScheduleEntryRepository) GetScheduledWorkForDate(teamIDs []uuid.UUID, date time.Time, shiftTypes []models.ShiftType) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	err := r.db.
		Preload("Profile").
		Where("team_id IN ? AND date = ?", teamIDs, date).
		Where("shift_type IN ?", shiftTypes).
		Where("availability_status = ? AND activity_type = ?", models.AvailabilityAvailable, models.ActivityWork).
		Find(&entries).Error
	return entries, err
}
