package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductColor is one color or model variant a product is offered in
type ProductColor struct {
	Name string  `json:"name" binding:"required"`
	Code *string `json:"code"` // optional hex code like #FFFFFF
}

// Product represents a blind in the catalog, priced per square meter
type Product struct {
	ID               string                           `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name             string                           `gorm:"not null" json:"name"`
	Description      string                           `gorm:"type:text;not null" json:"description"`
	DistributorPrice float64                          `gorm:"not null" json:"distributor_price"`
	ClientPrice      float64                          `gorm:"not null" json:"client_price"`
	Colors           datatypes.JSONSlice[ProductColor] `json:"colors"`
	CreatedAt        time.Time                        `json:"created_at"`
	UpdatedAt        time.Time                        `json:"updated_at"`
	DeletedAt        gorm.DeletedAt                   `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// BeforeCreate assigns a UUID when the caller did not provide one
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Colors == nil {
		p.Colors = datatypes.JSONSlice[ProductColor]{}
	}
	return nil
}

// ProductPatch carries the fields of a partial product update. Nil fields are
// left untouched.
type ProductPatch struct {
	Name             *string         `json:"name" binding:"omitempty,min=1"`
	Description      *string         `json:"description"`
	DistributorPrice *float64        `json:"distributor_price" binding:"omitempty,gte=0"`
	ClientPrice      *float64        `json:"client_price" binding:"omitempty,gte=0"`
	Colors           *[]ProductColor `json:"colors" binding:"omitempty,dive"`
}

// IsEmpty reports whether the patch sets no field
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.DistributorPrice == nil &&
		p.ClientPrice == nil && p.Colors == nil
}

// Apply merges the set fields into product
func (p ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.DistributorPrice != nil {
		product.DistributorPrice = *p.DistributorPrice
	}
	if p.ClientPrice != nil {
		product.ClientPrice = *p.ClientPrice
	}
	if p.Colors != nil {
		product.Colors = datatypes.JSONSlice[ProductColor](*p.Colors)
	}
}
