package repository

import (
	"staff-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DutyAssignmentRepository handles database operations for duty assignments
type DutyAssignmentRepository struct {
	db *gorm.DB
}

// NewDutyAssignmentRepository creates a new duty assignment repository
func NewDutyAssignmentRepository(db *gorm.DB) *DutyAssignmentRepository {
	return &DutyAssignmentRepository{db: db}
}

// Create creates a new duty assignment
func (r *DutyAssignmentRepository) Create(assignment *models.DutyAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves a duty assignment by ID
func (r *DutyAssignmentRepository) GetByID(id uuid.UUID) (*models.DutyAssignment, error) {
	var assignment models.DutyAssignment
	err := r.db.Preload("Profile").First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByTeamsAndWeek retrieves all assignments of the teams for one ISO week,
// using the denormalized week columns
func (r *DutyAssignmentRepository) GetByTeamsAndWeek(teamIDs []uuid.UUID, week, year int) ([]models.DutyAssignment, error) {
	var assignments []models.DutyAssignment
	err := r.db.
		Preload("Profile").
		Where("team_id IN ? AND week_number = ? AND year = ?", teamIDs, week, year).
		Order("date ASC, duty_type ASC, created_at ASC").
		Find(&assignments).Error
	return assignments, err
}

// Update updates a duty assignment
func (r *DutyAssignmentRepository) Update(assignment *models.DutyAssignment) error {
	return r.db.Save(assignment).Error
}

// Delete deletes a duty assignment
func (r *DutyAssignmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.DutyAssignment{}, "id = ?", id).Error
}
