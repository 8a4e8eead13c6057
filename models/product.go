package models

import "time"

type Product struct {
	ID             uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string            `gorm:"not null" json:"name"`
	Slug           string            `gorm:"uniqueIndex;not null" json:"slug"`
	Description    string            `gorm:"not null" json:"description"`
	Price          float64           `gorm:"not null" json:"price"`
	OriginalPrice  *float64          `json:"originalPrice,omitempty"`
	Images         []string          `gorm:"serializer:json" json:"images"`
	CategoryID     uint              `gorm:"index" json:"categoryId"`
	Category       *Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Specifications map[string]string `gorm:"serializer:json" json:"specifications"`
	Features       []string          `gorm:"serializer:json" json:"features"`
	Stock          int               `gorm:"not null;default:0" json:"stock"`
	SKU            string            `gorm:"uniqueIndex;not null" json:"sku"`
	Brand          string            `gorm:"not null" json:"brand"`
	IsFeatured     bool              `gorm:"default:false" json:"isFeatured"`
	IsActive       bool              `gorm:"default:true" json:"isActive"`
	Rating         float64           `gorm:"default:0" json:"rating"`
	ReviewCount    int               `gorm:"default:0" json:"reviewCount"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}
