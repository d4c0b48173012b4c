package models

import (
	"time"
)

// Product is an optional placement overlaid onto a scene at render time.
type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	PartnerBrand  string    `json:"partner_brand"`
	Description   string    `gorm:"type:text" json:"description"`
	Image         string    `gorm:"type:text" json:"image,omitempty"`
	IsPartnership bool      `gorm:"default:false" json:"is_partnership"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
