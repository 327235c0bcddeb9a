package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a price-snapshotted line: product name/price and additionals
// are denormalized at submission time and never updated.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	ProductID   uint   `json:"productId"`
	ProductName string `json:"productName"`

	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`

	Additionals      []AdditionalSnapshot `gorm:"serializer:json" json:"additionals"`
	AdditionalsTotal int64                `json:"additionalsTotal"`
	Note             string               `json:"note"`

	Total int64 `json:"total"`
}
