package models

import (
	"strings"

	"gorm.io/gorm"
)

// All lists every persisted model, in migration order
func All() []interface{} {
	return []interface{}{&Product{}, &BusinessConfig{}, &Quote{}, &QuoteItem{}}
}

// AutoMigrate creates or updates the tables of every model
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}

func upperPrefix(s string, n int) string {
	if len(s) > n {
		s = s[:n]
	}
	return strings.ToUpper(s)
}
