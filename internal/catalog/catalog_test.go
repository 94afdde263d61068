package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvboschetti/acai-storefront/pkg/enums"
	pkgerrors "github.com/jvboschetti/acai-storefront/pkg/errors"
	"github.com/jvboschetti/acai-storefront/pkg/money"
)

func TestDefaultCatalogContents(t *testing.T) {
	c := Default()

	assert.Len(t, c.Products(), 5)
	assert.Len(t, c.Additionals(), 8)
	assert.Len(t, c.ProductsByCategory(enums.ProductCategoryAcai), 3)
	assert.Len(t, c.ProductsByCategory(enums.ProductCategoryDrink), 2)
}

func TestDefaultMenuData(t *testing.T) {
	c := Default()

	wantProducts := []struct {
		id    string
		name  string
		desc  string
		price money.Cents
	}{
		{"pinheirinho", "Pinheirinho Açaí 500ml", "Açaí, leite condensado e leite em pó", 2290},
		{"curitiba", "Curitiba Açaí 500ml", "Açaí, Nutella, paçoca, leite condensado e leite em pó", 3390},
		{"parana", "Paraná Açaí 500ml", "Açaí, morango, banana, Nutella e paçoca", 3490},
		{"coca", "Coca Cola Lata 350ml", "Refrigerante gelado", 600},
		{"coca-zero", "Coca Cola Zero Lata 350ml", "Refrigerante zero açúcar gelado", 600},
	}
	for _, want := range wantProducts {
		p, err := c.FindProduct(want.id)
		require.NoError(t, err, want.id)
		assert.Equal(t, want.name, p.Name)
		assert.Equal(t, want.desc, p.Description)
		assert.Equal(t, want.price, p.PriceCents)
	}

	wantAdditionals := map[string]money.Cents{
		"morango":          300,
		"banana":           200,
		"nutella":          500,
		"pacoca":           300,
		"leite-condensado": 250,
		"leite-po":         200,
		"granola":          250,
		"chocolate":        200,
	}
	for id, price := range wantAdditionals {
		got, err := c.FindAdditionals([]string{id})
		require.NoError(t, err, id)
		assert.Equal(t, price, got[0].PriceCents, id)
	}
}

func TestFindProduct(t *testing.T) {
	c := Default()

	p, err := c.FindProduct("curitiba")
	require.NoError(t, err)
	assert.Equal(t, money.Cents(3390), p.PriceCents)
	assert.Equal(t, enums.ProductCategoryAcai, p.Category)

	_, err = c.FindProduct("bogus")
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestFindAdditionals(t *testing.T) {
	c := Default()

	got, err := c.FindAdditionals([]string{"nutella", "banana"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Nutella", got[0].Name)
	assert.Equal(t, money.Cents(500), got[0].PriceCents)

	t.Run("unknown id", func(t *testing.T) {
		_, err := c.FindAdditionals([]string{"nutella", "caviar"})
		appErr := pkgerrors.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := c.FindAdditionals([]string{"banana", "banana"})
		appErr := pkgerrors.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
	})
}
