package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/llum/portfolio-api/internal/auth"
	"github.com/llum/portfolio-api/internal/config"
	"github.com/llum/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// ProvisionOwner creates the portfolio owner on first startup when
// OWNER_PASSWORD is set. Idempotent: an existing owner row is left
// untouched.
func ProvisionOwner(cfg *config.Config) error {
	if cfg.OwnerEmail == "" || cfg.OwnerPassword == "" {
		return nil
	}

	var user models.User
	err := DB.Where("email = ?", cfg.OwnerEmail).First(&user).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up owner: %w", err)
	}

	hash, err := auth.HashPassword(cfg.OwnerPassword)
	if err != nil {
		return fmt.Errorf("failed to hash owner password: %w", err)
	}

	owner := models.User{
		Name:         cfg.OwnerName,
		Email:        cfg.OwnerEmail,
		PasswordHash: hash,
	}
	if err := DB.Create(&owner).Error; err != nil {
		return fmt.Errorf("failed to create owner: %w", err)
	}

	log.Printf("Provisioned portfolio owner %s", cfg.OwnerEmail)
	return nil
}
