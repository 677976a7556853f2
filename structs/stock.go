package structs

import "photomagnet_server/structs/tables"

type UpdateStockRequest struct {
	ProductType tables.ProductType `json:"productType" validate:"required,oneof=square rectangle"`
	WithStand   *bool              `json:"withStand"`
	Quantity    *int               `json:"quantity" validate:"required"`
}
