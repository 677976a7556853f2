package tables

import (
	"strings"
	"time"

	"github.com/uptrace/bun"
)

type ProductType string

const (
	ProductTypeSquare    ProductType = "square"
	ProductTypeRectangle ProductType = "rectangle"
)

func (p ProductType) Valid() bool {
	return p == ProductTypeSquare || p == ProductTypeRectangle
}

func (p ProductType) Label() string {
	return strings.ToUpper(string(p))
}

// Stock is one row of the stock ledger. StockKey is derived from
// (ProductType, WithStand) so the pair can carry a unique constraint even
// though WithStand is NULL for square magnets.
type Stock struct {
	bun.BaseModel `bun:"table:stocks,alias:s"`
	StockKey      string      `bun:"stock_key,pk" json:"-"`
	ProductType   ProductType `bun:"product_type,notnull" json:"productType"`
	WithStand     *bool       `bun:"with_stand" json:"withStand"`
	Quantity      int         `bun:"quantity,notnull,default:100" json:"quantity"`
	UpdatedAt     time.Time   `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`
}

// StockKey returns the ledger key for a product type and stand flag.
func StockKey(productType ProductType, withStand *bool) string {
	if withStand == nil {
		return string(productType)
	}
	if *withStand {
		return string(productType) + ":stand"
	}
	return string(productType) + ":no-stand"
}

// DefaultStockRows lists the rows created by admin setup.
func DefaultStockRows() []Stock {
	withStand, withoutStand := true, false
	return []Stock{
		{StockKey: StockKey(ProductTypeSquare, nil), ProductType: ProductTypeSquare},
		{StockKey: StockKey(ProductTypeRectangle, &withStand), ProductType: ProductTypeRectangle, WithStand: &withStand},
		{StockKey: StockKey(ProductTypeRectangle, &withoutStand), ProductType: ProductTypeRectangle, WithStand: &withoutStand},
	}
}
