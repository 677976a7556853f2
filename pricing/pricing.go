// Package pricing holds the static product catalog and the pure price,
// delivery and coupon rules the storefront and the order endpoints share.
package pricing

import "slices"

// SquareDeliveryFee applies to square orders below FreeDeliveryQuantity.
const (
	SquareDeliveryFee    = 40
	FreeDeliveryQuantity = 4
)

var serviceableStates = []string{"Telangana", "Andhra Pradesh"}

func ServiceableStates() []string {
	return slices.Clone(serviceableStates)
}

func IsServiceableState(state string) bool {
	return slices.Contains(serviceableStates, state)
}

// TierFor returns the tier whose range contains qty.
func TierFor(p Product, qty int) (Tier, bool) {
	for _, t := range p.Tiers {
		if t.Contains(qty) {
			return t, true
		}
	}
	return Tier{}, false
}

// UnitPrice returns the per-unit price for qty, or 0 when no tier matches.
// Callers enforce qty >= 1 (or the product minimum) themselves.
func UnitPrice(p Product, qty int) int {
	t, ok := TierFor(p, qty)
	if !ok {
		return 0
	}
	return t.Price
}

func TotalPrice(p Product, qty int) int {
	return UnitPrice(p, qty) * qty
}

// DeliveryCharge is 0 outside serviceable states; such orders are rejected
// before they get here.
func DeliveryCharge(category Category, qty int, state string) int {
	if !IsServiceableState(state) {
		return 0
	}

	if category == CategorySquare {
		if qty >= FreeDeliveryQuantity {
			return 0
		}
		return SquareDeliveryFee
	}

	return 0
}
