package orders

import (
	"net/http"
	"net/url"
	"photomagnet_server/handling"
	"photomagnet_server/lib"
	"strings"

	"github.com/MonkyMars/gecho"
)

// ConfirmOrder is the target of the link in the admin notification. It
// confirms the order, notifies the customer and redirects to the dashboard.
func (orm *OrderRoutesManager) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	orderId := strings.TrimSpace(r.URL.Query().Get("orderId"))
	if orderId == "" {
		gecho.BadRequest(w, gecho.WithMessage("Order ID is required"), gecho.Send())
		return
	}

	order, err := orm.orderService.Confirm(r.Context(), orderId)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Order not found"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to confirm order", orm.cfg.Server.IsProduction(), orm.logger, w)
		return
	}

	target := strings.TrimRight(orm.cfg.Server.FrontendURL, "/") + "/admin/dashboard?confirmed=" + url.QueryEscape(order.OrderId)
	http.Redirect(w, r, target, http.StatusFound)
}
