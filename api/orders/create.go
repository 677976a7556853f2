package orders

import (
	"net/http"
	"photomagnet_server/handling"
	"photomagnet_server/lib"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
)

// CreateOrder records an order after the storefront's payment succeeded
func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateOrderRequest](r)
	if err != nil {
		handling.RespondError(err, "Invalid order details", orm.cfg.Server.IsProduction(), orm.logger, w)
		return
	}

	order, err := orm.orderService.Create(r.Context(), body)
	if err != nil {
		handling.RespondError(err, "Failed to create order", orm.cfg.Server.IsProduction(), orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order created successfully"),
		gecho.WithData(map[string]any{
			"orderId": order.OrderId,
			"order":   order,
		}),
		gecho.Send(),
	)
}
