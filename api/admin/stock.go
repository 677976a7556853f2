package admin

import (
	"net/http"
	"photomagnet_server/api/middleware"
	"photomagnet_server/handling"
	"photomagnet_server/lib"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
)

func (ar *AdminRoutesManager) ListStock(w http.ResponseWriter, r *http.Request) {
	stock, err := ar.stockService.List(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to fetch stock", ar.cfg.Server.IsProduction(), ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(stock),
		gecho.Send(),
	)
}

// UpdateStock sets the absolute quantity of one stock row
func (ar *AdminRoutesManager) UpdateStock(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.UpdateStockRequest](r)
	if err != nil {
		handling.RespondError(err, "Invalid stock update", ar.cfg.Server.IsProduction(), ar.logger, w)
		return
	}

	row, err := ar.stockService.SetQuantity(r.Context(), body.ProductType, body.WithStand, *body.Quantity)
	if err != nil {
		handling.RespondError(err, "Failed to update stock", ar.cfg.Server.IsProduction(), ar.logger, w)
		return
	}

	if claims, ok := middleware.GetClaimsFromContext(r.Context()); ok {
		ar.logger.Info("Stock updated",
			gecho.Field("admin", claims.Email),
			gecho.Field("product_type", row.ProductType),
			gecho.Field("quantity", row.Quantity),
		)
	}

	gecho.Success(w,
		gecho.WithMessage("Stock updated"),
		gecho.WithData(row),
		gecho.Send(),
	)
}
