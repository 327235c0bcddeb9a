package entity

import (
	"gorm.io/gorm"
)

// AdditionalSnapshot is the name+price copy kept on cart and order lines so
// later catalog edits never reprice them.
type AdditionalSnapshot struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// CartItem is one menu line. AdditionalsKey is the merge identity: the
// additional IDs sorted and joined with "-", or "none" for a plain product,
// so the same product with the same modifier set collapses into one line.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID   uint   `json:"productId"`
	ProductName string `json:"productName"`

	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Note      string `json:"note"`

	AdditionalsKey   string               `gorm:"index" json:"additionalsKey"`
	Additionals      []AdditionalSnapshot `gorm:"serializer:json" json:"additionals"`
	AdditionalsTotal int64                `json:"additionalsTotal"`
}

// LineTotal prices the line: (unit + additionals) * quantity.
func (ci CartItem) LineTotal() int64 {
	return (ci.UnitPrice + ci.AdditionalsTotal) * int64(ci.Quantity)
}
