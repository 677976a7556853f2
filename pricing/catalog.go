package pricing

import "photomagnet_server/structs/tables"

type Category string

const (
	CategorySquare                Category = "square"
	CategoryRectangleWithStand    Category = "rectangle-with-stand"
	CategoryRectangleWithoutStand Category = "rectangle-without-stand"
	CategoryEventStall            Category = "event-stall"
)

// Tier is an inclusive quantity range with a per-unit price. Max 0 means
// the range is unbounded.
type Tier struct {
	Min   int `json:"minQuantity"`
	Max   int `json:"maxQuantity,omitempty"`
	Price int `json:"pricePerUnit"`
}

func (t Tier) Contains(qty int) bool {
	return qty >= t.Min && (t.Max == 0 || qty <= t.Max)
}

// Package is a fixed quantity bundle shown on the storefront.
type Package struct {
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
	Label    string `json:"label,omitempty"`
}

type Product struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Category            Category  `json:"category"`
	AspectRatio         string    `json:"aspectRatio"`
	Description         string    `json:"description"`
	Tiers               []Tier    `json:"priceTiers"`
	Packages            []Package `json:"packages"`
	MinimumOrder        int       `json:"minimumOrder,omitempty"`
	AllowCustomQuantity bool      `json:"allowCustomQuantity"`
}

// StockKey maps the product onto its stock ledger row. Event stalls are
// printed on square stock.
func (p Product) StockKey() (tables.ProductType, *bool) {
	withStand, withoutStand := true, false
	switch p.Category {
	case CategoryRectangleWithStand:
		return tables.ProductTypeRectangle, &withStand
	case CategoryRectangleWithoutStand:
		return tables.ProductTypeRectangle, &withoutStand
	default:
		return tables.ProductTypeSquare, nil
	}
}

var catalog = []Product{
	{
		ID:                  "square-no-stand",
		Name:                "Square Photo Magnets",
		Category:            CategorySquare,
		AspectRatio:         "1:1",
		Description:         "Without Stand - Perfect for your fridge",
		AllowCustomQuantity: true,
		Tiers: []Tier{
			{Min: 1, Max: 1, Price: 99},
			{Min: 2, Max: 3, Price: 99},
			{Min: 4, Max: 7, Price: 95},
			{Min: 8, Max: 15, Price: 87},
			{Min: 16, Price: 80},
		},
		Packages: []Package{
			{Quantity: 1, Price: 99, Label: "Single"},
			{Quantity: 4, Price: 380},
			{Quantity: 6, Price: 570},
			{Quantity: 8, Price: 696},
			{Quantity: 10, Price: 870},
		},
	},
	{
		ID:                  "rectangle-with-stand",
		Name:                "Rectangle Photo Magnets",
		Category:            CategoryRectangleWithStand,
		AspectRatio:         "3:4",
		Description:         "With Stand - Premium Acrylic",
		AllowCustomQuantity: true,
		Tiers: []Tier{
			{Min: 1, Max: 1, Price: 259},
			{Min: 2, Max: 3, Price: 240},
			{Min: 4, Max: 7, Price: 205},
			{Min: 8, Price: 190},
		},
		Packages: []Package{
			{Quantity: 1, Price: 259},
			{Quantity: 2, Price: 480},
			{Quantity: 3, Price: 720},
			{Quantity: 4, Price: 820},
		},
	},
	{
		ID:                  "rectangle-without-stand",
		Name:                "Rectangle Photo Magnets",
		Category:            CategoryRectangleWithoutStand,
		AspectRatio:         "3:4",
		Description:         "Without Stand",
		AllowCustomQuantity: true,
		Tiers: []Tier{
			{Min: 1, Max: 1, Price: 229},
			{Min: 2, Max: 3, Price: 200},
			{Min: 4, Max: 7, Price: 162},
			{Min: 8, Price: 150},
		},
		Packages: []Package{
			{Quantity: 1, Price: 229},
			{Quantity: 2, Price: 400},
			{Quantity: 3, Price: 600},
			{Quantity: 4, Price: 648},
		},
	},
	{
		ID:                  "event-stall",
		Name:                "Live Photo Magnet Stall",
		Category:            CategoryEventStall,
		AspectRatio:         "1:1",
		Description:         "Event Special Offer - Just ₹99 per Magnet",
		MinimumOrder:        100,
		AllowCustomQuantity: true,
		Tiers: []Tier{
			{Min: 100, Max: 199, Price: 99},
			{Min: 200, Max: 299, Price: 95},
			{Min: 300, Max: 499, Price: 93},
			{Min: 500, Price: 89},
		},
		Packages: []Package{
			{Quantity: 100, Price: 9900, Label: "Min Order"},
			{Quantity: 150, Price: 14850},
			{Quantity: 250, Price: 23750},
			{Quantity: 300, Price: 27900},
			{Quantity: 500, Price: 44500},
		},
	},
}

// Products returns a copy of the catalog.
func Products() []Product {
	out := make([]Product, len(catalog))
	copy(out, catalog)
	return out
}

func ProductByID(id string) (Product, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
