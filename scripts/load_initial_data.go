package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"staff-roster-backend/internal/config"
	"staff-roster-backend/internal/database"
	"staff-roster-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Location    string `yaml:"location"`
}

type ProfileData struct {
	FullName string   `yaml:"full_name"`
	Initials string   `yaml:"initials"`
	Email    string   `yaml:"email"`
	Teams    []string `yaml:"teams,omitempty"`
}

type PartnershipData struct {
	Name        string   `yaml:"name"`
	DisplayName string   `yaml:"display_name"`
	Location    string   `yaml:"location"`
	Teams       []string `yaml:"teams"`
}

type CapacityData struct {
	TeamName          string `yaml:"team_name,omitempty"`
	PartnershipName   string `yaml:"partnership_name,omitempty"`
	MinStaffRequired  int    `yaml:"min_staff_required"`
	MaxStaffAllowed   *int   `yaml:"max_staff_allowed,omitempty"`
	AppliesToWeekends bool   `yaml:"applies_to_weekends"`
	Notes             string `yaml:"notes,omitempty"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type ProfilesFile struct {
	Profiles []ProfileData `yaml:"profiles"`
}

type PartnershipsFile struct {
	Partnerships []PartnershipData `yaml:"partnerships"`
}

type CapacityFile struct {
	Policies []CapacityData `yaml:"policies"`
}

func main() {
	log.Println("Loading initial roster data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial roster data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var teamsFile TeamsFile
	if err := readYAML(filepath.Join(dataDir, "teams.yaml"), &teamsFile); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	var profilesFile ProfilesFile
	if err := readYAML(filepath.Join(dataDir, "profiles.yaml"), &profilesFile); err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}
	var partnershipsFile PartnershipsFile
	if err := readYAML(filepath.Join(dataDir, "partnerships.yaml"), &partnershipsFile); err != nil {
		return fmt.Errorf("failed to load partnerships: %w", err)
	}
	var capacityFile CapacityFile
	if err := readYAML(filepath.Join(dataDir, "capacity.yaml"), &capacityFile); err != nil {
		return fmt.Errorf("failed to load capacity policies: %w", err)
	}

	// Create teams first; everything else references them by name
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teamsFile.Teams {
		team, created, err := createTeam(db, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("Teams: %d created, %d total", teamCreated, len(teamsFile.Teams))

	// Create profiles and their memberships
	profileCreated := 0
	for _, profileData := range profilesFile.Profiles {
		created, err := createProfile(db, profileData, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create profile %s: %w", profileData.Email, err)
		}
		if created {
			profileCreated++
		}
	}
	log.Printf("Profiles: %d created, %d total", profileCreated, len(profilesFile.Profiles))

	// Create partnerships and their team links
	partnershipMap := make(map[string]*models.Partnership)
	partnershipCreated := 0
	for _, partnershipData := range partnershipsFile.Partnerships {
		partnership, created, err := createPartnership(db, partnershipData, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create partnership %s: %w", partnershipData.Name, err)
		}
		partnershipMap[partnershipData.Name] = partnership
		if created {
			partnershipCreated++
		}
	}
	log.Printf("Partnerships: %d created, %d total", partnershipCreated, len(partnershipsFile.Partnerships))

	// Create staffing policies last; they reference teams and partnerships
	policyCreated := 0
	for _, policyData := range capacityFile.Policies {
		created, err := createPolicy(db, policyData, teamMap, partnershipMap)
		if err != nil {
			return fmt.Errorf("failed to create capacity policy: %w", err)
		}
		if created {
			policyCreated++
		}
	}
	log.Printf("Capacity policies: %d created, %d total", policyCreated, len(capacityFile.Policies))

	return nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func createTeam(db *gorm.DB, data TeamData) (*models.Team, bool, error) {
	var existing models.Team
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	team := &models.Team{
		Name:        data.Name,
		DisplayName: data.DisplayName,
		Location:    data.Location,
	}
	if err := db.Create(team).Error; err != nil {
		return nil, false, err
	}
	return team, true, nil
}

func createProfile(db *gorm.DB, data ProfileData, teamMap map[string]*models.Team) (bool, error) {
	var profile models.Profile
	err := db.Where("email = ?", data.Email).First(&profile).Error
	created := false
	if err == gorm.ErrRecordNotFound {
		profile = models.Profile{
			FullName: data.FullName,
			Initials: data.Initials,
			Email:    data.Email,
		}
		if err := db.Create(&profile).Error; err != nil {
			return false, err
		}
		created = true
	} else if err != nil {
		return false, err
	}

	for _, teamName := range data.Teams {
		team, ok := teamMap[teamName]
		if !ok {
			return created, fmt.Errorf("unknown team %s", teamName)
		}
		var member models.TeamMember
		err := db.Where("team_id = ? AND profile_id = ?", team.ID, profile.ID).First(&member).Error
		if err == gorm.ErrRecordNotFound {
			member = models.TeamMember{TeamID: team.ID, ProfileID: profile.ID}
			if err := db.Create(&member).Error; err != nil {
				return created, err
			}
		} else if err != nil {
			return created, err
		}
	}
	return created, nil
}

func createPartnership(db *gorm.DB, data PartnershipData, teamMap map[string]*models.Team) (*models.Partnership, bool, error) {
	var partnership models.Partnership
	err := db.Where("name = ?", data.Name).First(&partnership).Error
	created := false
	if err == gorm.ErrRecordNotFound {
		partnership = models.Partnership{
			Name:        data.Name,
			DisplayName: data.DisplayName,
			Location:    data.Location,
		}
		if err := db.Create(&partnership).Error; err != nil {
			return nil, false, err
		}
		created = true
	} else if err != nil {
		return nil, false, err
	}

	for _, teamName := range data.Teams {
		team, ok := teamMap[teamName]
		if !ok {
			return &partnership, created, fmt.Errorf("unknown team %s", teamName)
		}
		var link models.PartnershipTeam
		err := db.Where("partnership_id = ? AND team_id = ?", partnership.ID, team.ID).First(&link).Error
		if err == gorm.ErrRecordNotFound {
			link = models.PartnershipTeam{PartnershipID: partnership.ID, TeamID: team.ID}
			if err := db.Create(&link).Error; err != nil {
				return &partnership, created, err
			}
		} else if err != nil {
			return &partnership, created, err
		}
	}
	return &partnership, created, nil
}

func createPolicy(db *gorm.DB, data CapacityData, teamMap map[string]*models.Team, partnershipMap map[string]*models.Partnership) (bool, error) {
	rule := models.CapacityRule{
		MinStaffRequired:  data.MinStaffRequired,
		MaxStaffAllowed:   data.MaxStaffAllowed,
		AppliesToWeekends: data.AppliesToWeekends,
		Notes:             data.Notes,
	}

	switch {
	case data.TeamName != "":
		team, ok := teamMap[data.TeamName]
		if !ok {
			return false, fmt.Errorf("unknown team %s", data.TeamName)
		}
		var existing models.TeamCapacityConfig
		err := db.Where("team_id = ?", team.ID).First(&existing).Error
		if err == nil {
			return false, nil
		}
		if err != gorm.ErrRecordNotFound {
			return false, err
		}
		config := &models.TeamCapacityConfig{TeamID: team.ID, CapacityRule: rule}
		return true, db.Create(config).Error
	case data.PartnershipName != "":
		partnership, ok := partnershipMap[data.PartnershipName]
		if !ok {
			return false, fmt.Errorf("unknown partnership %s", data.PartnershipName)
		}
		var existing models.PartnershipCapacityConfig
		err := db.Where("partnership_id = ?", partnership.ID).First(&existing).Error
		if err == nil {
			return false, nil
		}
		if err != gorm.ErrRecordNotFound {
			return false, err
		}
		config := &models.PartnershipCapacityConfig{PartnershipID: partnership.ID, CapacityRule: rule}
		return true, db.Create(config).Error
	default:
		return false, fmt.Errorf("capacity policy needs team_name or partnership_name")
	}
}
