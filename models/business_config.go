package models

import (
	"time"

	"gorm.io/gorm"
)

// Letterhead defaults used when the business has not configured its own.
const (
	DefaultBusinessName = "Persianas Premium"
	DefaultPhone        = "+52 555 123 4567"
	DefaultEmail        = "contacto@persianaspremium.mx"
	DefaultAddress      = "Av. Reforma 123, Col. Centro, CDMX"
)

// BusinessConfig is the singleton letterhead printed on quote documents
type BusinessConfig struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	BusinessName string    `gorm:"not null" json:"business_name"`
	Phone        string    `gorm:"not null" json:"phone"`
	Email        string    `gorm:"not null" json:"email"`
	Address      string    `gorm:"not null" json:"address"`
	LogoBase64   *string   `gorm:"type:text" json:"logo_base64"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName specifies the table name for the BusinessConfig model
func (BusinessConfig) TableName() string {
	return "business_config"
}

// BusinessConfigID is the id of the only letterhead row
const BusinessConfigID = "00000000-0000-0000-0000-000000000001"

// BeforeCreate pins the singleton id
func (b *BusinessConfig) BeforeCreate(tx *gorm.DB) error {
	b.ID = BusinessConfigID
	return nil
}

// DefaultBusinessConfig returns the letterhead used until the business edits it
func DefaultBusinessConfig() BusinessConfig {
	return BusinessConfig{
		ID:           BusinessConfigID,
		BusinessName: DefaultBusinessName,
		Phone:        DefaultPhone,
		Email:        DefaultEmail,
		Address:      DefaultAddress,
	}
}

// BusinessConfigPatch carries the fields of a partial letterhead update
type BusinessConfigPatch struct {
	BusinessName *string `json:"business_name" binding:"omitempty,min=1"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Address      *string `json:"address"`
	LogoBase64   *string `json:"logo_base64"`
}

// Apply merges the set fields into cfg
func (p BusinessConfigPatch) Apply(cfg *BusinessConfig) {
	if p.BusinessName != nil {
		cfg.BusinessName = *p.BusinessName
	}
	if p.Phone != nil {
		cfg.Phone = *p.Phone
	}
	if p.Email != nil {
		cfg.Email = *p.Email
	}
	if p.Address != nil {
		cfg.Address = *p.Address
	}
	if p.LogoBase64 != nil {
		cfg.LogoBase64 = p.LogoBase64
	}
}
