package checkout

import (
	"errors"
	"net/http"
	"photomagnet_server/handling"
	"photomagnet_server/lib"
	"photomagnet_server/services"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
)

// Quote prices a cart: subtotal, delivery, coupon discount and final amount
func (crm *CheckoutRoutesManager) Quote(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.QuoteRequest](r)
	if err != nil {
		handling.RespondError(err, "Invalid cart", crm.cfg.Server.IsProduction(), crm.logger, w)
		return
	}

	quote, err := crm.checkoutService.Quote(body)
	if err != nil {
		handling.RespondError(err, "Failed to price cart", crm.cfg.Server.IsProduction(), crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(quote),
		gecho.Send(),
	)
}

// Complete verifies the gateway payment and records the order
func (crm *CheckoutRoutesManager) Complete(w http.ResponseWriter, r *http.Request) {
	production := crm.cfg.Server.IsProduction()

	body, err := lib.ExtractAndValidateBody[structs.CompleteCheckoutRequest](r)
	if err != nil {
		handling.RespondError(err, "Invalid checkout request", production, crm.logger, w)
		return
	}

	order, err := crm.checkoutService.Complete(r.Context(), body)
	if err != nil {
		var upstream *services.UpstreamError
		switch {
		case errors.Is(err, services.ErrPaymentNotVerified):
			gecho.BadRequest(w, gecho.WithMessage("Payment verification failed. Please contact support."), gecho.Send())
		case errors.Is(err, services.ErrPaymentNotConfigured):
			gecho.InternalServerError(w, gecho.WithMessage(services.MsgPaymentNotConfigured), gecho.Send())
		case errors.As(err, &upstream):
			handling.HandleUpstreamError(err, "Failed to verify payment", services.PaymentCredentialsHint, upstream.Body, production, crm.logger, w)
		default:
			handling.RespondError(err, "Failed to complete checkout", production, crm.logger, w)
		}
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order placed successfully"),
		gecho.WithData(map[string]any{
			"orderId": order.OrderId,
			"order":   order,
		}),
		gecho.Send(),
	)
}
