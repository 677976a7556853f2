package admin

import (
	"net/http"
	"photomagnet_server/handling"

	"github.com/MonkyMars/gecho"
)

// ListOrders returns a page of orders, newest first, optionally filtered by status
func (ar *AdminRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseOrderListOptions(r)
	if err != nil {
		handling.RespondError(err, "Invalid query parameters", ar.cfg.Server.IsProduction(), ar.logger, w)
		return
	}

	result, err := ar.orderService.List(r.Context(), opts)
	if err != nil {
		handling.RespondError(err, "Failed to fetch orders", ar.cfg.Server.IsProduction(), ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}
