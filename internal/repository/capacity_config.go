package repository

import (
	"staff-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CapacityConfigRepository handles database operations for staffing policies.
// Exactly one active config exists per team or partnership; saves upsert on
// the owner column.
type CapacityConfigRepository struct {
	db *gorm.DB
}

// NewCapacityConfigRepository creates a new capacity config repository
func NewCapacityConfigRepository(db *gorm.DB) *CapacityConfigRepository {
	return &CapacityConfigRepository{db: db}
}

// GetByTeamID retrieves the active config of a team
func (r *CapacityConfigRepository) GetByTeamID(teamID uuid.UUID) (*models.TeamCapacityConfig, error) {
	var config models.TeamCapacityConfig
	err := r.db.First(&config, "team_id = ?", teamID).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// GetByPartnershipID retrieves the active config of a partnership
func (r *CapacityConfigRepository) GetByPartnershipID(partnershipID uuid.UUID) (*models.PartnershipCapacityConfig, error) {
	var config models.PartnershipCapacityConfig
	err := r.db.First(&config, "partnership_id = ?", partnershipID).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// UpsertTeamConfig creates or replaces the config of a team
func (r *CapacityConfigRepository) UpsertTeamConfig(config *models.TeamCapacityConfig) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"min_staff_required", "max_staff_allowed", "applies_to_weekends", "notes", "updated_at", "updated_by"}),
	}).Create(config).Error
}

// UpsertPartnershipConfig creates or replaces the config of a partnership
func (r *CapacityConfigRepository) UpsertPartnershipConfig(config *models.PartnershipCapacityConfig) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "partnership_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"min_staff_required", "max_staff_allowed", "applies_to_weekends", "notes", "updated_at", "updated_by"}),
	}).Create(config).Error
}
