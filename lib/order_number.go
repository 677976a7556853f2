package lib

import (
	"fmt"
	"math/rand"
	"time"
)

const OrderIdPrefix = "PMC"

// GenerateOrderId returns an order id of the form PMC<unix millis><0-999>,
// e.g. PMC1718000000000421.
func GenerateOrderId(now time.Time) string {
	// Use a local rand.Source + rand.Rand for thread safety
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return fmt.Sprintf("%s%d%d", OrderIdPrefix, now.UnixMilli(), r.Intn(1000))
}

// GenerateGatewayOrderId returns the id sent to the payment gateway.
func GenerateGatewayOrderId(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%d", prefix, now.UnixMilli())
}
