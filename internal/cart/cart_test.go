package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvboschetti/acai-storefront/internal/catalog"
	"github.com/jvboschetti/acai-storefront/pkg/money"
)

var (
	acai    = catalog.Product{ID: "curitiba", Name: "Curitiba Açaí 500ml", PriceCents: 3390}
	cola    = catalog.Product{ID: "coca", Name: "Coca Cola Lata 350ml", PriceCents: 600}
	nutella = catalog.Additional{ID: "nutella", Name: "Nutella", PriceCents: 500}
	banana  = catalog.Additional{ID: "banana", Name: "Banana", PriceCents: 200}
)

func TestAddLineMergesOnSameAdditiveSet(t *testing.T) {
	c := &Cart{}

	c.AddLine(acai, []catalog.Additional{nutella, banana})
	c.AddLine(acai, []catalog.Additional{banana, nutella}) // order does not matter
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 2, c.Lines()[0].Quantity)

	c.AddLine(acai, []catalog.Additional{nutella})
	require.Len(t, c.Lines(), 2)

	c.AddLine(cola, nil)
	require.Len(t, c.Lines(), 3)
	assert.Equal(t, 4, c.ItemCount())
}

func TestLineAndCartTotals(t *testing.T) {
	c := &Cart{}
	c.AddLine(acai, []catalog.Additional{nutella})
	c.AddLine(acai, []catalog.Additional{nutella})

	// 33.90 + 5.00 additional, twice.
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, money.Cents(3890), c.Lines()[0].UnitTotalCents())
	assert.Equal(t, money.Cents(7780), c.TotalCents())
	assert.Equal(t, "77.80", c.TotalCents().String())
}

func TestUpdateQuantity(t *testing.T) {
	c := &Cart{}
	c.AddLine(acai, nil)
	c.AddLine(cola, nil)

	require.NoError(t, c.UpdateQuantity(0, 2))
	assert.Equal(t, 3, c.Lines()[0].Quantity)

	// dropping to zero removes the line
	require.NoError(t, c.UpdateQuantity(1, -1))
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, "curitiba", c.Lines()[0].ProductID)

	assert.ErrorIs(t, c.UpdateQuantity(5, 1), ErrIndexOutOfRange)
	assert.ErrorIs(t, c.UpdateQuantity(-1, 1), ErrIndexOutOfRange)
}

func TestRemoveLine(t *testing.T) {
	c := &Cart{}
	c.AddLine(acai, nil)
	c.AddLine(cola, nil)

	require.NoError(t, c.RemoveLine(0))
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, "coca", c.Lines()[0].ProductID)

	assert.ErrorIs(t, c.RemoveLine(1), ErrIndexOutOfRange)

	require.NoError(t, c.RemoveLine(0))
	assert.True(t, c.IsEmpty())
	assert.Equal(t, money.Cents(0), c.TotalCents())
}

func TestClear(t *testing.T) {
	c := &Cart{}
	c.AddLine(acai, []catalog.Additional{banana})
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.ItemCount())
}
