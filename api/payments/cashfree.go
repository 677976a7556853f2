package payments

import (
	"errors"
	"net/http"
	"photomagnet_server/handling"
	"photomagnet_server/lib"
	"photomagnet_server/services"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
)

func (prm *PaymentRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreatePaymentRequest](r)
	if err != nil {
		handling.RespondError(err, "Invalid payment request", prm.cfg.Server.IsProduction(), prm.logger, w)
		return
	}

	order, err := prm.payments.CreateOrder(r.Context(), body)
	if err != nil {
		prm.gatewayError(w, err, "Failed to create payment order")
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}

func (prm *PaymentRoutesManager) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.VerifyPaymentRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Order ID is required"), gecho.Send())
		return
	}

	verification, err := prm.payments.VerifyPayment(r.Context(), body.OrderId)
	if err != nil {
		prm.gatewayError(w, err, "Failed to verify payment")
		return
	}

	gecho.Success(w,
		gecho.WithData(verification),
		gecho.Send(),
	)
}

// CreateMockOrder is only served when mock payments are enabled outside production
func (prm *PaymentRoutesManager) CreateMockOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreatePaymentRequest](r)
	if err != nil {
		handling.RespondError(err, "Invalid payment request", prm.cfg.Server.IsProduction(), prm.logger, w)
		return
	}

	order, err := prm.payments.CreateMockOrder(r.Context(), body)
	if err != nil {
		if errors.Is(err, services.ErrMockModeDisabled) {
			gecho.Forbidden(w, gecho.WithMessage("Mock payments are disabled"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to create mock order", prm.cfg.Server.IsProduction(), prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Mock payment order created"),
		gecho.WithData(order),
		gecho.Send(),
	)
}

func (prm *PaymentRoutesManager) gatewayError(w http.ResponseWriter, err error, msg string) {
	production := prm.cfg.Server.IsProduction()

	if errors.Is(err, services.ErrPaymentNotConfigured) {
		gecho.InternalServerError(w, gecho.WithMessage(services.MsgPaymentNotConfigured), gecho.Send())
		return
	}

	var upstream *services.UpstreamError
	if errors.As(err, &upstream) {
		handling.HandleUpstreamError(err, msg, services.PaymentCredentialsHint, upstream.Body, production, prm.logger, w)
		return
	}

	handling.HandleUpstreamError(err, msg, services.PaymentCredentialsHint, nil, production, prm.logger, w)
}
