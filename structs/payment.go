package structs

type CreatePaymentRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	CustomerName  string  `json:"customerName" validate:"required"`
	CustomerPhone string  `json:"customerPhone" validate:"required,min=10,max=15"`
	CustomerEmail string  `json:"customerEmail" validate:"omitempty,email"`
}

type PaymentOrder struct {
	OrderId          string `json:"orderId"`
	PaymentSessionId string `json:"paymentSessionId"`
	OrderToken       string `json:"orderToken,omitempty"`
	IsMockMode       bool   `json:"isMockMode,omitempty"`
}

type VerifyPaymentRequest struct {
	OrderId string `json:"orderId" validate:"required"`
}

type PaymentVerification struct {
	IsValid        bool           `json:"isValid"`
	OrderStatus    string         `json:"orderStatus"`
	Status         string         `json:"status"` // SUCCESS or FAILED
	PaymentDetails map[string]any `json:"paymentDetails,omitempty"`
}
