package auth

import (
	"errors"
	"net/http"
	"photomagnet_server/handling"
	"photomagnet_server/lib"
	"photomagnet_server/services"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleSetup creates the admin account and seeds the stock ledger
func (arm *AuthRoutesManager) HandleSetup(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.SetupRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Setup key is required"), gecho.Send())
		return
	}

	result, err := arm.authService.Setup(r.Context(), body.SetupKey)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSetupKey) {
			gecho.Forbidden(w, gecho.WithMessage("Invalid setup key"), gecho.Send())
			return
		}
		handling.RespondError(err, "Setup failed", arm.cfg.Server.IsProduction(), arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Setup completed"),
		gecho.WithData(result),
		gecho.Send(),
	)
}

// HandleResetStock deletes the stock ledger. Setup recreates it.
func (arm *AuthRoutesManager) HandleResetStock(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ResetStockRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Reset key is required"), gecho.Send())
		return
	}

	deleted, err := arm.authService.ResetStock(r.Context(), body.ResetKey)
	if err != nil {
		if errors.Is(err, services.ErrInvalidResetKey) {
			gecho.Forbidden(w, gecho.WithMessage("Invalid reset key"), gecho.Send())
			return
		}
		handling.RespondError(err, "Stock reset failed", arm.cfg.Server.IsProduction(), arm.logger, w)
		return
	}

	arm.logger.Info("Stock ledger reset", gecho.Field("deleted", deleted))
	gecho.Success(w,
		gecho.WithMessage("Stock reset. Run setup to recreate the default rows."),
		gecho.WithData(map[string]int{"deleted": deleted}),
		gecho.Send(),
	)
}
