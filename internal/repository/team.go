package repository

import (
	"staff-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByIDs retrieves all teams matching the given IDs
func (r *TeamRepository) GetByIDs(ids []uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("id IN ?", ids).Order("name ASC").Find(&teams).Error
	return teams, err
}

// GetAll retrieves all teams
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Order("name ASC").Find(&teams).Error
	return teams, err
}

// GetMemberProfileIDs retrieves the profile IDs of all members of a team
func (r *TeamRepository) GetMemberProfileIDs(teamID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.TeamMember{}).Where("team_id = ?", teamID).Pluck("profile_id", &ids).Error
	return ids, err
}
