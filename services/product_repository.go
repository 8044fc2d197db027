package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kendall-kelly/blinds-quote-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxProductList caps catalog listings
const maxProductList = 1000

// ProductRepository persists catalog products
type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	// CreateMissing inserts the products whose ids are not live yet and
	// reports how many rows it wrote
	CreateMissing(ctx context.Context, products []models.Product) (int64, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// GormProductRepository implements ProductRepository with gorm
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a gorm-backed product repository
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List returns the catalog in creation order
func (r *GormProductRepository) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("created_at").Limit(maxProductList).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Get loads one product. Deleted products are reported as ErrNotFound.
func (r *GormProductRepository) Get(ctx context.Context, id string) (*models.Product, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load product %s: %w", id, err)
	}
	return &product, nil
}

// Create stores a new product
func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// CreateMissing implements ProductRepository. A row with the same id that
// was soft-deleted is restored with the given values; a live one is kept.
func (r *GormProductRepository) CreateMissing(ctx context.Context, products []models.Product) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "distributor_price", "client_price", "colors",
			"created_at", "updated_at", "deleted_at",
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "products.deleted_at IS NOT NULL"},
		}},
	}).Create(&products)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to create products: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Update saves every field of an existing product
func (r *GormProductRepository) Update(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ID, err)
	}
	return nil
}

// Delete removes a product from the catalog. Quotes keep their own copy of
// the name and price, so nothing else is touched.
func (r *GormProductRepository) Delete(ctx context.Context, id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the number of products in the catalog
func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}
