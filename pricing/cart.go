package pricing

import "fmt"

// CartItem is one line of a storefront cart. Price is the line total.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    int     `json:"price"`
}

// Cart is an explicit cart value; the server keeps no cart state between
// requests.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add prices qty units of p and appends the line.
func (c *Cart) Add(p Product, qty int) error {
	if qty < 1 || (p.MinimumOrder > 0 && qty < p.MinimumOrder) {
		return fmt.Errorf("quantity %d is below the minimum for %s", qty, p.ID)
	}

	total := TotalPrice(p, qty)
	if total == 0 {
		return fmt.Errorf("no price tier for %d x %s", qty, p.ID)
	}

	c.Items = append(c.Items, CartItem{Product: p, Quantity: qty, Price: total})
	return nil
}

func (c *Cart) Subtotal() int {
	sum := 0
	for _, it := range c.Items {
		sum += it.Price
	}
	return sum
}

func (c *Cart) TotalQuantity() int {
	sum := 0
	for _, it := range c.Items {
		sum += it.Quantity
	}
	return sum
}

type Quote struct {
	Subtotal       int           `json:"subtotal"`
	DeliveryCharge int           `json:"deliveryCharge"`
	Coupon         *CouponResult `json:"coupon,omitempty"`
	Discount       int           `json:"discount"`
	FinalAmount    int           `json:"finalAmount"`
	Serviceable    bool          `json:"serviceable"`
}

// QuoteCart totals a cart the way checkout does: delivery follows the
// first line's category and the cart's total quantity. An invalid coupon is
// reported in Quote.Coupon and contributes no discount.
func QuoteCart(c *Cart, state, coupon string, used []string) Quote {
	q := Quote{
		Subtotal:    c.Subtotal(),
		Serviceable: IsServiceableState(state),
	}

	if len(c.Items) > 0 {
		q.DeliveryCharge = DeliveryCharge(c.Items[0].Product.Category, c.TotalQuantity(), state)
	}

	if coupon != "" {
		res := ValidateCoupon(coupon, used)
		q.Coupon = &res
		if res.Valid {
			q.Discount = CalculateDiscount(q.Subtotal, res.Discount)
		}
	}

	q.FinalAmount = q.Subtotal + q.DeliveryCharge - q.Discount
	return q
}
