package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	BusinessID  uint     `json:"businessId"`
	Business    Business `json:"-"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	SortOrder   int      `json:"sortOrder"`
	Enabled     bool     `gorm:"default:true" json:"enabled"`

	Products []Product `json:"-"`
}
