package entity

import (
	"gorm.io/gorm"
)

// Additional is a paid modifier. It is scoped to the business, not to a
// product: any enabled additional can be attached to any product of the menu.
type Additional struct {
	gorm.Model
	BusinessID uint     `json:"businessId"`
	Business   Business `json:"-"`
	Name       string   `json:"name"`
	Price      int64    `json:"price"`
	Enabled    bool     `gorm:"default:true" json:"enabled"`
}

// ProductAdditional mirrors the product_additionals join table of the schema.
// Nothing reads it yet; per-product modifier sets are an open question.
type ProductAdditional struct {
	gorm.Model
	ProductID    uint       `json:"productId"`
	Product      Product    `json:"-"`
	AdditionalID uint       `json:"additionalId"`
	Additional   Additional `json:"-"`
}
