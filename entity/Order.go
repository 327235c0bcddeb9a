package entity

import (
	"gorm.io/gorm"
)

// Order types.
const (
	OrderTypeLocal    = "local"
	OrderTypeTakeaway = "takeaway"
	OrderTypeDelivery = "delivery"
)

// Order statuses. Delivered and cancelled are terminal.
const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusReady          = "ready"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// Order is created once at checkout. Only Status (and UpdatedAt) may change
// afterwards; the monetary fields are frozen.
type Order struct {
	gorm.Model
	BusinessID uint     `gorm:"index" json:"businessId"`
	Business   Business `json:"-"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`

	OrderType    string `json:"orderType"`
	Address      string `json:"address"`
	DeliveryArea string `json:"deliveryArea"` // area name snapshot
	DeliveryFee  int64  `json:"deliveryFee"`  // area fee snapshot

	Subtotal int64 `json:"subtotal"`
	Total    int64 `json:"total"`

	Observations  string `json:"observations"`
	PaymentMethod string `json:"paymentMethod"`
	Status        string `gorm:"index;default:pending" json:"status"`

	OrderItems []OrderItem `json:"-"`
}
