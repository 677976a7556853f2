package products

import (
	"net/http"
	"photomagnet_server/lib"
	"photomagnet_server/pricing"
	"photomagnet_server/structs"

	"github.com/MonkyMars/gecho"
)

// FetchProducts returns the static catalog with its price tiers and packages
func (prm *ProductRoutesManager) FetchProducts(w http.ResponseWriter, r *http.Request) {
	products := prm.checkoutService.Products()

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":          products,
			"serviceableStates": pricing.ServiceableStates(),
			"count":             len(products),
		}),
		gecho.Send(),
	)
}

// ValidateCoupon checks a code against the allow-list and the codes the
// current checkout session already used
func (prm *ProductRoutesManager) ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ValidateCouponRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Coupon code is required"), gecho.Send())
		return
	}

	result := prm.checkoutService.ValidateCoupon(body)
	if !result.Valid {
		prm.logger.Debug("Coupon rejected", gecho.Field("code", body.Code), gecho.Field("reason", result.Message))
		gecho.BadRequest(w,
			gecho.WithMessage(result.Message),
			gecho.WithData(result),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage(result.Message),
		gecho.WithData(result),
		gecho.Send(),
	)
}
