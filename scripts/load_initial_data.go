package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"saas-signup-backend/internal/config"
	"saas-signup-backend/internal/database"
	"saas-signup-backend/internal/database/models"
	"saas-signup-backend/internal/repository"
	"saas-signup-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that mirror the signup form
type UserData struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type CompanyData struct {
	CompanyID   string     `yaml:"company_id"`
	CompanyName string     `yaml:"company_name"`
	Approve     bool       `yaml:"approve"`
	Users       []UserData `yaml:"users"`
}

// File structures
type CompaniesFile struct {
	Companies []CompanyData `yaml:"companies"`
}

// seedStats counts what a run did
type seedStats struct {
	registered int
	skipped    int
	approved   int
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

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

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	companies, err := loadCompanies(dataDir)
	if err != nil {
		log.Fatalf("Failed to load companies: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	registration := service.NewRegistrationService(
		repository.NewTransactionManager(db),
		service.NewBcryptHasher(cfg.BcryptCost),
		validator.New(),
	)
	// Seeding is an operator action, so approvals bypass the configured policy
	approval := service.NewApprovalService(userRepo, service.OpenApprovalPolicy{})

	stats, err := seedCompanies(context.Background(), db, registration, approval, companies)
	if err != nil {
		log.Fatalf("Failed to seed companies: %v", err)
	}

	log.Printf("📋 Users: %d registered, %d already present, %d approved", stats.registered, stats.skipped, stats.approved)
	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
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

// loadCompanies reads every *.yaml file under dataDir whose path mentions companies
func loadCompanies(dataDir string) ([]CompanyData, error) {
	var all []CompanyData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "companies") {
			var file CompaniesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			all = append(all, file.Companies...)
		}

		return nil
	})

	return all, err
}

// seedCompanies replays every user through the registration workflow in file
// order, so the first listed user of a new company becomes its admin. Users
// already registered under the same company and email are skipped.
func seedCompanies(ctx context.Context, db *gorm.DB, registration service.RegistrationServiceInterface, approval service.ApprovalServiceInterface, companies []CompanyData) (seedStats, error) {
	var stats seedStats

	for _, company := range companies {
		for _, user := range company.Users {
			exists, err := userExists(ctx, db, company.CompanyID, user.Email)
			if err != nil {
				return stats, err
			}
			if exists {
				stats.skipped++
				continue
			}

			resp, err := registration.Register(ctx, &service.RegisterRequest{
				CompanyID:   company.CompanyID,
				CompanyName: company.CompanyName,
				Email:       user.Email,
				Password:    user.Password,
			})
			if err != nil {
				return stats, fmt.Errorf("failed to register %s in %s: %w", user.Email, company.CompanyID, err)
			}
			stats.registered++

			if company.Approve && resp.Status == models.UserStatusPending {
				if _, err := approval.Approve(ctx, resp.UserID, ""); err != nil {
					return stats, fmt.Errorf("failed to approve %s in %s: %w", user.Email, company.CompanyID, err)
				}
				stats.approved++
			}
		}
	}

	return stats, nil
}

func userExists(ctx context.Context, db *gorm.DB, companyID, email string) (bool, error) {
	var user models.User
	err := db.WithContext(ctx).Where("company_id = ? AND email = ?", companyID, email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to query user: %w", err)
	}
	return true, nil
}
