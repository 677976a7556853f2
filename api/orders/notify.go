package orders

import (
	"net/http"
	"photomagnet_server/handling"
	"photomagnet_server/lib"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
)

// NotifyAdmin sends the new-order email and SMS for the posted order
func (orm *OrderRoutesManager) NotifyAdmin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.NotifyAdminRequest](r)
	if err != nil {
		handling.RespondError(err, "Invalid notification request", orm.cfg.Server.IsProduction(), orm.logger, w)
		return
	}

	if body.Order.OrderId == "" {
		gecho.BadRequest(w, gecho.WithMessage("Order ID is required"), gecho.Send())
		return
	}

	result, err := orm.notificationService.NotifyAdmin(r.Context(), &body.Order)
	if err != nil && !result.Any() {
		handling.HandleError(err, "Failed to send notifications", orm.cfg.Server.IsProduction(), orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Notifications sent"),
		gecho.WithData(result),
		gecho.Send(),
	)
}
