package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kendall-kelly/blinds-quote-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BusinessConfigRepository persists the letterhead singleton
type BusinessConfigRepository interface {
	// Get returns the stored letterhead, creating the default one on first use
	Get(ctx context.Context) (*models.BusinessConfig, error)
	Save(ctx context.Context, cfg *models.BusinessConfig) error
}

// GormBusinessConfigRepository implements BusinessConfigRepository with gorm
type GormBusinessConfigRepository struct {
	db *gorm.DB
}

// NewBusinessConfigRepository creates a gorm-backed letterhead repository
func NewBusinessConfigRepository(db *gorm.DB) *GormBusinessConfigRepository {
	return &GormBusinessConfigRepository{db: db}
}

// Get implements BusinessConfigRepository
func (r *GormBusinessConfigRepository) Get(ctx context.Context) (*models.BusinessConfig, error) {
	cfg, err := r.load(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load business config: %w", err)
	}

	if err := r.createDefault(ctx); err != nil {
		return nil, err
	}
	cfg, err = r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load business config: %w", err)
	}
	return cfg, nil
}

func (r *GormBusinessConfigRepository) load(ctx context.Context) (*models.BusinessConfig, error) {
	var cfg models.BusinessConfig
	if err := r.db.WithContext(ctx).First(&cfg, "id = ?", models.BusinessConfigID).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// createDefault inserts the default letterhead unless another caller already did
func (r *GormBusinessConfigRepository) createDefault(ctx context.Context) error {
	cfg := models.DefaultBusinessConfig()
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&cfg).Error
	if err != nil {
		return fmt.Errorf("failed to create default business config: %w", err)
	}
	return nil
}

// Save implements BusinessConfigRepository
func (r *GormBusinessConfigRepository) Save(ctx context.Context, cfg *models.BusinessConfig) error {
	cfg.ID = models.BusinessConfigID
	if err := r.db.WithContext(ctx).Save(cfg).Error; err != nil {
		return fmt.Errorf("failed to save business config: %w", err)
	}
	return nil
}
