package entity

import (
	"gorm.io/gorm"
)

type DeliveryArea struct {
	gorm.Model
	BusinessID uint     `json:"businessId"`
	Business   Business `json:"-"`
	Name       string   `json:"name"`
	Fee        int64    `json:"fee"`
	Enabled    bool     `gorm:"default:true" json:"enabled"`
}
