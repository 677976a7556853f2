package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiersPartitionQuantities(t *testing.T) {
	for _, p := range Products() {
		t.Run(p.ID, func(t *testing.T) {
			require.NotEmpty(t, p.Tiers)
			first := p.Tiers[0].Min
			if p.MinimumOrder > 0 {
				assert.Equal(t, p.MinimumOrder, first)
			} else {
				assert.Equal(t, 1, first)
			}
			assert.Zero(t, p.Tiers[len(p.Tiers)-1].Max, "last tier must be unbounded")

			for q := first; q <= 1000; q++ {
				matches := 0
				for _, tier := range p.Tiers {
					if tier.Contains(q) {
						matches++
					}
				}
				require.Equal(t, 1, matches, "quantity %d", q)
				assert.Equal(t, UnitPrice(p, q)*q, TotalPrice(p, q))
				assert.Positive(t, UnitPrice(p, q))
			}
		})
	}
}

func TestUnitPrice(t *testing.T) {
	tests := []struct {
		product string
		qty     int
		want    int
	}{
		{"square-no-stand", 1, 99},
		{"square-no-stand", 3, 99},
		{"square-no-stand", 4, 95},
		{"square-no-stand", 15, 87},
		{"square-no-stand", 16, 80},
		{"square-no-stand", 500, 80},
		{"rectangle-with-stand", 1, 259},
		{"rectangle-with-stand", 2, 240},
		{"rectangle-with-stand", 7, 205},
		{"rectangle-with-stand", 8, 190},
		{"rectangle-without-stand", 1, 229},
		{"rectangle-without-stand", 2, 200},
		{"rectangle-without-stand", 4, 162},
		{"rectangle-without-stand", 9, 150},
		{"event-stall", 100, 99},
		{"event-stall", 250, 95},
		{"event-stall", 499, 93},
		{"event-stall", 500, 89},
		// no tier matches
		{"event-stall", 99, 0},
		{"square-no-stand", 0, 0},
		{"square-no-stand", -2, 0},
	}

	for _, tt := range tests {
		p, ok := ProductByID(tt.product)
		require.True(t, ok)
		assert.Equal(t, tt.want, UnitPrice(p, tt.qty), "%s x %d", tt.product, tt.qty)
	}
}

func TestDeliveryCharge(t *testing.T) {
	t.Run("square below four pays the flat fee", func(t *testing.T) {
		for q := 1; q <= 3; q++ {
			assert.Equal(t, SquareDeliveryFee, DeliveryCharge(CategorySquare, q, "Telangana"))
		}
	})

	t.Run("square from four is free", func(t *testing.T) {
		for q := 4; q <= 200; q++ {
			assert.Zero(t, DeliveryCharge(CategorySquare, q, "Andhra Pradesh"))
		}
	})

	t.Run("other categories are free", func(t *testing.T) {
		for _, c := range []Category{CategoryRectangleWithStand, CategoryRectangleWithoutStand, CategoryEventStall} {
			assert.Zero(t, DeliveryCharge(c, 1, "Telangana"))
		}
	})

	t.Run("unserviceable state is always zero", func(t *testing.T) {
		for _, c := range []Category{CategorySquare, CategoryRectangleWithStand, CategoryRectangleWithoutStand, CategoryEventStall} {
			for q := 1; q <= 10; q++ {
				assert.Zero(t, DeliveryCharge(c, q, "Karnataka"))
				assert.Zero(t, DeliveryCharge(c, q, ""))
			}
		}
	})
}

func TestIsServiceableState(t *testing.T) {
	assert.True(t, IsServiceableState("Telangana"))
	assert.True(t, IsServiceableState("Andhra Pradesh"))
	assert.False(t, IsServiceableState("telangana"))
	assert.False(t, IsServiceableState("Tamil Nadu"))
}

func TestProductStockKey(t *testing.T) {
	sq, _ := ProductByID("square-no-stand")
	pt, stand := sq.StockKey()
	assert.Equal(t, "square", string(pt))
	assert.Nil(t, stand)

	rs, _ := ProductByID("rectangle-with-stand")
	pt, stand = rs.StockKey()
	assert.Equal(t, "rectangle", string(pt))
	require.NotNil(t, stand)
	assert.True(t, *stand)

	rn, _ := ProductByID("rectangle-without-stand")
	_, stand = rn.StockKey()
	require.NotNil(t, stand)
	assert.False(t, *stand)
}
