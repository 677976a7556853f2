package auth

import (
	"errors"
	"net/http"
	"photomagnet_server/handling"
	"photomagnet_server/lib"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LoginRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Email and password are required"), gecho.Send())
		return
	}

	resp, err := arm.authService.Login(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidCredentials) {
			arm.logger.Warn("Login failed", gecho.Field("email", body.Email))
			gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials"), gecho.Send())
			return
		}
		handling.HandleError(err, "Unable to complete login. Please try again", arm.cfg.Server.IsProduction(), arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(resp),
		gecho.Send(),
	)
}
