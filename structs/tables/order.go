package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Order struct {
	// Table Name and identifiers
	bun.BaseModel `bun:"table:orders,alias:o"`
	Id            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderId       string    `bun:"order_id,notnull,unique" json:"orderId"`

	// Customer Data
	CustomerName string `bun:"customer_name,notnull" json:"customerName"`
	Whatsapp     string `bun:"whatsapp,notnull" json:"whatsapp"`
	Email        string `bun:"email,nullzero" json:"email,omitempty"`
	Address      string `bun:"address,notnull" json:"address"`
	Pincode      string `bun:"pincode,notnull" json:"pincode"`
	State        string `bun:"state,notnull" json:"state"`

	// Product selection
	ProductType ProductType `bun:"product_type,notnull" json:"productType"`
	Orientation Orientation `bun:"orientation,nullzero" json:"orientation,omitempty"`
	WithStand   *bool       `bun:"with_stand" json:"withStand"` // nil for square
	Quantity    int         `bun:"quantity,notnull" json:"quantity"`

	// Pricing snapshot, whole rupees
	PricePerUnit   int    `bun:"price_per_unit,notnull" json:"pricePerUnit"`
	TotalPrice     int    `bun:"total_price,notnull" json:"totalPrice"`
	DeliveryCharge int    `bun:"delivery_charge,notnull,default:0" json:"deliveryCharge"`
	CouponApplied  string `bun:"coupon_applied,nullzero" json:"couponApplied,omitempty"`
	Discount       int    `bun:"discount,notnull,default:0" json:"discount"`
	FinalAmount    int    `bun:"final_amount,notnull" json:"finalAmount"`

	CroppedImageUrl string `bun:"cropped_image_url,notnull" json:"croppedImageUrl"`

	// Payment Data
	PaymentId     string        `bun:"payment_id,notnull" json:"paymentId"`
	PaymentStatus PaymentStatus `bun:"payment_status,notnull,default:'pending'" json:"paymentStatus"`

	// Fulfilment
	OrderStatus              OrderStatus `bun:"order_status,notnull,default:'pending'" json:"orderStatus"`
	AdminNotificationSent    bool        `bun:"admin_notification_sent,notnull,default:false" json:"adminNotificationSent"`
	CustomerConfirmationSent bool        `bun:"customer_confirmation_sent,notnull,default:false" json:"customerConfirmationSent"`
	CreatedAt                time.Time   `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt                time.Time   `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`
}

// ProductLabel renders the product the way notifications show it,
// e.g. "RECTANGLE with Stand".
func (o *Order) ProductLabel() string {
	label := o.ProductType.Label()
	if o.ProductType == ProductTypeRectangle && o.WithStand != nil {
		if *o.WithStand {
			return label + " with Stand"
		}
		return label + " without Stand"
	}
	return label
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)
