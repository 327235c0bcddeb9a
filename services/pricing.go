package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/igor-rodz/Projeto-delivery/entity"
)

// NoAdditionalsKey marks a line with zero additionals. A fixed sentinel keeps
// "plain product" distinguishable from "key never computed".
const NoAdditionalsKey = "none"

// AdditionalsKey builds the merge identity for a set of additionals: the IDs
// rendered as decimal strings, sorted, joined with "-". Permutations of the
// same set always produce the same key.
func AdditionalsKey(ids []uint) string {
	if len(ids) == 0 {
		return NoAdditionalsKey
	}
	parts := make([]string, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	sort.Strings(parts)
	return strings.Join(parts, "-")
}

// Quote is the priced view of a cart at checkout. All values are centavos.
type Quote struct {
	Subtotal     int64 `json:"subtotal"`
	DeliveryFee  int64 `json:"deliveryFee"`
	Total        int64 `json:"total"`
	MeetsMinimum bool  `json:"meetsMinimum"`
}

// Subtotal sums the line totals; an empty cart prices to zero.
func Subtotal(items []entity.CartItem) int64 {
	var total int64
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}

func TotalItems(items []entity.CartItem) int {
	var n int
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// BuildQuote prices a cart for a given order type. The delivery fee is the
// selected area's fee and applies only to delivery orders; the business
// default fee is display-only and never enters the total. The minimum order
// is checked against the subtotal, so the delivery fee can never satisfy it.
func BuildQuote(items []entity.CartItem, orderType string, area *entity.DeliveryArea, minOrder int64) Quote {
	q := Quote{Subtotal: Subtotal(items)}
	if orderType == entity.OrderTypeDelivery && area != nil {
		q.DeliveryFee = area.Fee
	}
	q.Total = q.Subtotal + q.DeliveryFee
	q.MeetsMinimum = q.Subtotal >= minOrder
	return q
}

// FormatCents renders centavos with two decimal places, e.g. 7000 -> "70.00".
func FormatCents(v int64) string {
	return fmt.Sprintf("%d.%02d", v/100, v%100)
}
