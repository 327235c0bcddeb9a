package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	BusinessID  uint     `json:"businessId"`
	Business    Business `json:"-"`
	CategoryID  uint     `json:"categoryId"`
	Category    Category `json:"-"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	PrepTime    string   `json:"prepTime"`
	Enabled     bool     `gorm:"default:true" json:"enabled"`
}
