package handling

import (
	"errors"
	"net/http"
	"photomagnet_server/lib"

	"github.com/MonkyMars/gecho"
)

// HandleError logs err and answers 500. The error text is only returned
// outside production.
func HandleError(err error, msg string, production bool, logger *gecho.Logger, w http.ResponseWriter) error {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	if production {
		return gecho.InternalServerError(w, gecho.WithMessage(msg)).Send()
	}

	return gecho.InternalServerError(w,
		gecho.WithMessage(msg),
		gecho.WithData(map[string]string{"error": err.Error()}),
	).Send()
}

// HandleUpstreamError answers 500 for a failed call to a third party. hint
// is always returned, details only outside production.
func HandleUpstreamError(err error, msg, hint string, details any, production bool, logger *gecho.Logger, w http.ResponseWriter) error {
	logger.Error("Upstream call failed", gecho.Field("error", err), gecho.Field("msg", msg))

	data := map[string]any{"hint": hint}
	if !production {
		data["error"] = err.Error()
		if details != nil {
			data["details"] = details
		}
	}

	return gecho.InternalServerError(w,
		gecho.WithMessage(msg),
		gecho.WithData(data),
	).Send()
}

// StatusFor maps an error onto its HTTP status
func StatusFor(err error) int {
	switch {
	case errors.Is(err, lib.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, lib.ErrInvalidCredentials),
		errors.Is(err, lib.ErrInvalidToken),
		errors.Is(err, lib.ErrExpiredToken):
		return http.StatusUnauthorized
	case errors.Is(err, lib.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, lib.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, lib.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the response for err. msg is used when the error
// carries no caller-facing message of its own.
func RespondError(err error, msg string, production bool, logger *gecho.Logger, w http.ResponseWriter) error {
	var ve *lib.ValidationError
	if errors.As(err, &ve) {
		return gecho.BadRequest(w,
			gecho.WithMessage("Invalid request"),
			gecho.WithData(ve.Errors),
		).Send()
	}

	switch StatusFor(err) {
	case http.StatusBadRequest:
		return gecho.BadRequest(w, gecho.WithMessage(lib.UserMessage(err, msg))).Send()
	case http.StatusUnauthorized:
		if errors.Is(err, lib.ErrInvalidCredentials) {
			return gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials")).Send()
		}
		return gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token")).Send()
	case http.StatusForbidden:
		return gecho.Forbidden(w, gecho.WithMessage(msg)).Send()
	case http.StatusNotFound:
		return gecho.NotFound(w, gecho.WithMessage(msg)).Send()
	case http.StatusConflict:
		return gecho.Conflict(w, gecho.WithMessage(msg)).Send()
	default:
		return HandleError(err, msg, production, logger, w)
	}
}
