package service

import (
	"errors"
	"fmt"
	"time"

	"staff-roster-backend/internal/database/models"
	apperrors "staff-roster-backend/internal/errors"
	"staff-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CapacityConfigService handles business logic for staffing policies
type CapacityConfigService struct {
	repo            repository.CapacityConfigRepositoryInterface
	teamRepo        repository.TeamRepositoryInterface
	partnershipRepo repository.PartnershipRepositoryInterface
	validator       *validator.Validate
}

// NewCapacityConfigService creates a new capacity config service
func NewCapacityConfigService(
	repo repository.CapacityConfigRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	partnershipRepo repository.PartnershipRepositoryInterface,
	validator *validator.Validate,
) *CapacityConfigService {
	return &CapacityConfigService{
		repo:            repo,
		teamRepo:        teamRepo,
		partnershipRepo: partnershipRepo,
		validator:       validator,
	}
}

// SaveCapacityConfigRequest represents the request to upsert a staffing policy
type SaveCapacityConfigRequest struct {
	MinStaffRequired  int    `json:"min_staff_required" validate:"required,min=1"`
	MaxStaffAllowed   *int   `json:"max_staff_allowed,omitempty" validate:"omitempty,min=1"`
	AppliesToWeekends bool   `json:"applies_to_weekends"`
	Notes             string `json:"notes,omitempty" validate:"max=500"`
}

// CapacityConfigResponse represents a staffing policy
type CapacityConfigResponse struct {
	ID                uuid.UUID `json:"id"`
	OwnerID           uuid.UUID `json:"owner_id"`
	OwnerType         string    `json:"owner_type"`
	MinStaffRequired  int       `json:"min_staff_required"`
	MaxStaffAllowed   *int      `json:"max_staff_allowed,omitempty"`
	AppliesToWeekends bool      `json:"applies_to_weekends"`
	Notes             string    `json:"notes"`
	UpdatedAt         string    `json:"updated_at"`
}

func (s *CapacityConfigService) validateRule(req *SaveCapacityConfigRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if req.MaxStaffAllowed != nil && req.MinStaffRequired > *req.MaxStaffAllowed {
		return apperrors.ErrMinAboveMax
	}
	return nil
}

// GetTeamConfig retrieves the staffing policy of a team
func (s *CapacityConfigService) GetTeamConfig(teamID uuid.UUID) (*CapacityConfigResponse, error) {
	config, err := s.repo.GetByTeamID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCapacityConfigNotFound
		}
		return nil, fmt.Errorf("failed to get capacity config: %w", err)
	}
	return teamConfigResponse(config), nil
}

// UpsertTeamConfig saves the staffing policy of a team, replacing any
// previous one
func (s *CapacityConfigService) UpsertTeamConfig(teamID uuid.UUID, req *SaveCapacityConfigRequest) (*CapacityConfigResponse, error) {
	if err := s.validateRule(req); err != nil {
		return nil, err
	}
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	config := &models.TeamCapacityConfig{
		TeamID: teamID,
		CapacityRule: models.CapacityRule{
			MinStaffRequired:  req.MinStaffRequired,
			MaxStaffAllowed:   req.MaxStaffAllowed,
			AppliesToWeekends: req.AppliesToWeekends,
			Notes:             req.Notes,
		},
	}
	if err := s.repo.UpsertTeamConfig(config); err != nil {
		return nil, fmt.Errorf("failed to save capacity config: %w", err)
	}
	return teamConfigResponse(config), nil
}

// GetPartnershipConfig retrieves the staffing policy of a partnership
func (s *CapacityConfigService) GetPartnershipConfig(partnershipID uuid.UUID) (*CapacityConfigResponse, error) {
	config, err := s.repo.GetByPartnershipID(partnershipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCapacityConfigNotFound
		}
		return nil, fmt.Errorf("failed to get capacity config: %w", err)
	}
	return partnershipConfigResponse(config), nil
}

// UpsertPartnershipConfig saves the shared staffing policy of a partnership
func (s *CapacityConfigService) UpsertPartnershipConfig(partnershipID uuid.UUID, req *SaveCapacityConfigRequest) (*CapacityConfigResponse, error) {
	if err := s.validateRule(req); err != nil {
		return nil, err
	}
	if _, err := s.partnershipRepo.GetByID(partnershipID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartnershipNotFound
		}
		return nil, fmt.Errorf("failed to verify partnership: %w", err)
	}

	config := &models.PartnershipCapacityConfig{
		PartnershipID: partnershipID,
		CapacityRule: models.CapacityRule{
			MinStaffRequired:  req.MinStaffRequired,
			MaxStaffAllowed:   req.MaxStaffAllowed,
			AppliesToWeekends: req.AppliesToWeekends,
			Notes:             req.Notes,
		},
	}
	if err := s.repo.UpsertPartnershipConfig(config); err != nil {
		return nil, fmt.Errorf("failed to save capacity config: %w", err)
	}
	return partnershipConfigResponse(config), nil
}

func teamConfigResponse(config *models.TeamCapacityConfig) *CapacityConfigResponse {
	return &CapacityConfigResponse{
		ID:                config.ID,
		OwnerID:           config.TeamID,
		OwnerType:         "team",
		MinStaffRequired:  config.MinStaffRequired,
		MaxStaffAllowed:   config.MaxStaffAllowed,
		AppliesToWeekends: config.AppliesToWeekends,
		Notes:             config.Notes,
		UpdatedAt:         config.UpdatedAt.Format(time.RFC3339),
	}
}

func partnershipConfigResponse(config *models.PartnershipCapacityConfig) *CapacityConfigResponse {
	return &CapacityConfigResponse{
		ID:                config.ID,
		OwnerID:           config.PartnershipID,
		OwnerType:         "partnership",
		MinStaffRequired:  config.MinStaffRequired,
		MaxStaffAllowed:   config.MaxStaffAllowed,
		AppliesToWeekends: config.AppliesToWeekends,
		Notes:             config.Notes,
		UpdatedAt:         config.UpdatedAt.Format(time.RFC3339),
	}
}
