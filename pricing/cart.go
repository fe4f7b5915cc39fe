// Package pricing holds the pure cart arithmetic shared by the storefront
// and the checkout handler. No I/O, no hidden state.
package pricing

import (
	"math"

	"github.com/Karthikeyagundu12/Nutrikart/apperr"
)

// Fees applied on top of the item total
const (
	DeliveryFee = 40.0
	PlatformFee = 5.0
	TaxRate     = 0.05
)

// Line is one cart entry, keyed by FoodItemID. Price is captured when the
// item is added.
type Line struct {
	FoodItemID uint    `json:"food_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// AddItem adds an item to the cart. Adding an already-present item increments
// its quantity rather than duplicating the entry; insertion order of
// first-added items is preserved.
func AddItem(cart []Line, item Line) []Line {
	for i := range cart {
		if cart[i].FoodItemID == item.FoodItemID {
			cart[i].Quantity++
			return cart
		}
	}
	item.Quantity = 1
	return append(cart, item)
}

// SetQuantity replaces an entry's quantity. Zero removes the entry entirely;
// negative quantities are invalid.
func SetQuantity(cart []Line, foodItemID uint, qty int) ([]Line, error) {
	if qty < 0 {
		return cart, apperr.New(apperr.Validation, "Quantity cannot be negative")
	}
	for i := range cart {
		if cart[i].FoodItemID != foodItemID {
			continue
		}
		if qty == 0 {
			return append(cart[:i:i], cart[i+1:]...), nil
		}
		cart[i].Quantity = qty
		return cart, nil
	}
	return cart, apperr.New(apperr.NotFound, "Item not in cart")
}

// ItemTotal is the sum of price × quantity over all entries
func ItemTotal(cart []Line) float64 {
	var total float64
	for _, l := range cart {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Tax is 5% of the item total, unrounded
func Tax(cart []Line) float64 {
	return ItemTotal(cart) * TaxRate
}

// GrandTotal is item total + delivery fee + platform fee + tax, rounded to
// 2 decimal places only at this final step so intermediate rounding error
// never compounds.
func GrandTotal(cart []Line) float64 {
	total := ItemTotal(cart)
	return Round2(total + DeliveryFee + PlatformFee + total*TaxRate)
}

// Bill is the display breakdown returned alongside a placed order
type Bill struct {
	ItemTotal   float64 `json:"item_total"`
	DeliveryFee float64 `json:"delivery_fee"`
	PlatformFee float64 `json:"platform_fee"`
	Tax         float64 `json:"tax"`
	GrandTotal  float64 `json:"grand_total"`
}

// Breakdown computes the full bill for a cart
func Breakdown(cart []Line) Bill {
	total := ItemTotal(cart)
	return Bill{
		ItemTotal:   Round2(total),
		DeliveryFee: DeliveryFee,
		PlatformFee: PlatformFee,
		Tax:         Round2(total * TaxRate),
		GrandTotal:  GrandTotal(cart),
	}
}

// Round2 rounds to 2 decimal places for display
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
