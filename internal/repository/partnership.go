package repository

import (
	"staff-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartnershipRepository handles database operations for partnerships
type PartnershipRepository struct {
	db *gorm.DB
}

// NewPartnershipRepository creates a new partnership repository
func NewPartnershipRepository(db *gorm.DB) *PartnershipRepository {
	return &PartnershipRepository{db: db}
}

// GetByID retrieves a partnership by ID
func (r *PartnershipRepository) GetByID(id uuid.UUID) (*models.Partnership, error) {
	var partnership models.Partnership
	err := r.db.First(&partnership, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &partnership, nil
}

// GetTeamIDs retrieves the member team IDs of a partnership
func (r *PartnershipRepository) GetTeamIDs(partnershipID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.PartnershipTeam{}).Where("partnership_id = ?", partnershipID).Pluck("team_id", &ids).Error
	return ids, err
}
