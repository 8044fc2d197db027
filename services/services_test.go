package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/kendall-kelly/blinds-quote-api/models"
	"github.com/kendall-kelly/blinds-quote-api/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// Every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func strPtr(s string) *string {
	return &s
}

func createProduct(t *testing.T, repo ProductRepository, name string, distributor, client float64) *models.Product {
	product := &models.Product{
		Name:             name,
		Description:      "test product",
		DistributorPrice: distributor,
		ClientPrice:      client,
	}
	require.NoError(t, repo.Create(context.Background(), product))
	return product
}

func pngBytes(t *testing.T) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	img.Set(2, 2, color.RGBA{R: 44, G: 62, B: 80, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func base64Logo(t *testing.T) string {
	return utils.EncodeLogoBase64(pngBytes(t))
}
