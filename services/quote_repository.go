package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kendall-kelly/blinds-quote-api/models"
	"gorm.io/gorm"
)

// QuoteRepository persists quotes together with their items
type QuoteRepository interface {
	List(ctx context.Context, limit int) ([]models.Quote, error)
	Get(ctx context.Context, id string) (*models.Quote, error)
	Create(ctx context.Context, quote *models.Quote) error
	Delete(ctx context.Context, id string) error
}

// GormQuoteRepository implements QuoteRepository with gorm
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a gorm-backed quote repository
func NewQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// List returns the newest quotes first
func (r *GormQuoteRepository) List(ctx context.Context, limit int) ([]models.Quote, error) {
	var quotes []models.Quote
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Order("created_at desc").
		Limit(limit).
		Find(&quotes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

// Get loads a quote and its items in their original order
func (r *GormQuoteRepository) Get(ctx context.Context, id string) (*models.Quote, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	var quote models.Quote
	if err := r.db.WithContext(ctx).Preload("Items", orderedItems).First(&quote, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("quote %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load quote %s: %w", id, err)
	}
	return &quote, nil
}

// Create stores a quote and its items in one transaction
func (r *GormQuoteRepository) Create(ctx context.Context, quote *models.Quote) error {
	for i := range quote.Items {
		quote.Items[i].Position = i
	}
	if err := r.db.WithContext(ctx).Create(quote).Error; err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}
	return nil
}

// Delete removes a quote and its items
func (r *GormQuoteRepository) Delete(ctx context.Context, id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", id).Delete(&models.QuoteItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete items of quote %s: %w", id, err)
		}
		result := tx.Delete(&models.Quote{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete quote %s: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("quote %s: %w", id, ErrNotFound)
		}
		return nil
	})
}
