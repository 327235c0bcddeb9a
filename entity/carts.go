package entity

import (
	"gorm.io/gorm"
)

// Cart holds one customer session's in-progress selections. BusinessID = 0
// means the cart is unbound and the next add may come from any business.
type Cart struct {
	gorm.Model
	SessionKey string   `gorm:"uniqueIndex;not null" json:"-"`
	BusinessID uint     `json:"businessId"`
	Business   Business `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
