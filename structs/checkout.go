package structs

type CartItemRequest struct {
	ProductId string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

type QuoteRequest struct {
	Items       []CartItemRequest `json:"items" validate:"required,min=1,dive"`
	State       string            `json:"state"`
	CouponCode  string            `json:"couponCode"`
	UsedCoupons []string          `json:"usedCoupons"`
}

type ValidateCouponRequest struct {
	Code        string   `json:"code" validate:"required"`
	UsedCoupons []string `json:"usedCoupons"`
}

// CompleteCheckoutRequest carries the gateway order to verify and the order
// to record once it is paid.
type CompleteCheckoutRequest struct {
	GatewayOrderId string       `json:"gatewayOrderId" validate:"required"`
	PaymentId      string       `json:"paymentId"`
	Order          OrderDetails `json:"order" validate:"required"`
}
