package entity

import (
	"gorm.io/gorm"
)

// Business is the tenant root: every catalog row and order hangs off one of
// these by BusinessID. Monetary fields are centavos.
type Business struct {
	gorm.Model
	UserID       uint   `gorm:"uniqueIndex" json:"userId"`
	User         User   `json:"-"`
	BusinessName string `json:"businessName"`
	Slug         string `gorm:"uniqueIndex;not null" json:"slug"`
	Description  string `json:"description"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	LogoURL      string `json:"logoUrl"`
	CoverURL     string `json:"coverUrl"`

	IsOpen       bool   `gorm:"default:true" json:"isOpen"`
	OpeningHours string `json:"openingHours"`
	MinOrder     int64  `json:"minOrder"`
	DeliveryFee  int64  `json:"deliveryFee"` // storefront header display only
	DeliveryTime string `json:"deliveryTime"`

	PaymentMethods []string `gorm:"serializer:json" json:"paymentMethods"`
	ThemeColor     string   `gorm:"default:#f97316" json:"themeColor"`

	Categories    []Category     `json:"-"`
	Products      []Product      `json:"-"`
	Additionals   []Additional   `json:"-"`
	DeliveryAreas []DeliveryArea `json:"-"`
	Orders        []Order        `json:"-"`
}
