package structs

import (
	"photomagnet_server/structs/tables"
)

// OrderDetails is the customer, product and pricing part of an order.
// Discount and FinalAmount are accepted for compatibility but recomputed
// from the coupon.
type OrderDetails struct {
	CustomerName    string             `json:"customerName" validate:"required,min=2,max=100"`
	Whatsapp        string             `json:"whatsapp" validate:"required,min=10,max=15"`
	Email           string             `json:"email" validate:"omitempty,email"`
	Address         string             `json:"address" validate:"required,min=5,max=500"`
	Pincode         string             `json:"pincode" validate:"required,len=6,numeric"`
	State           string             `json:"state" validate:"required"`
	ProductType     tables.ProductType `json:"productType" validate:"required,oneof=square rectangle"`
	Orientation     tables.Orientation `json:"orientation" validate:"omitempty,oneof=portrait landscape"`
	WithStand       *bool              `json:"withStand"`
	Quantity        int                `json:"quantity" validate:"required,gte=1"`
	PricePerUnit    int                `json:"pricePerUnit" validate:"gte=0"`
	TotalPrice      int                `json:"totalPrice" validate:"gte=0"`
	DeliveryCharge  int                `json:"deliveryCharge" validate:"gte=0"`
	CouponApplied   string             `json:"couponApplied"`
	Discount        int                `json:"discount"`
	FinalAmount     int                `json:"finalAmount"`
	CroppedImageUrl string             `json:"croppedImageUrl" validate:"required"`
}

// CreateOrderRequest is what the storefront submits once payment succeeded.
type CreateOrderRequest struct {
	OrderDetails
	PaymentId string `json:"paymentId" validate:"required"`
}

type OrderListOptions struct {
	Status tables.OrderStatus // empty means all
	Limit  int
	Skip   int
}

type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Skip    int  `json:"skip"`
	HasMore bool `json:"hasMore"`
}

type OrderListResult struct {
	Orders     []tables.Order `json:"orders"`
	Pagination Pagination     `json:"pagination"`
}

type NotifyAdminRequest struct {
	Order tables.Order `json:"order"`
}

type NotificationResult struct {
	EmailSent bool `json:"emailSent"`
	SmsSent   bool `json:"smsSent"`
}

func (n NotificationResult) Any() bool {
	return n.EmailSent || n.SmsSent
}
