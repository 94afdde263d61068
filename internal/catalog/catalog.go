package catalog

import (
	"github.com/jvboschetti/acai-storefront/pkg/enums"
	pkgerrors "github.com/jvboschetti/acai-storefront/pkg/errors"
	"github.com/jvboschetti/acai-storefront/pkg/money"
)

// Product is a purchasable catalog entry. The catalog is fixed at process
// start and never mutated.
type Product struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	PriceCents  money.Cents           `json:"price_cents"`
	Image       string                `json:"image"`
	Category    enums.ProductCategory `json:"category"`
}

// Additional is an optional topping attached to a cart line.
type Additional struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	PriceCents money.Cents `json:"price_cents"`
}

// Catalog holds the static product and additional listings with id indexes.
type Catalog struct {
	products    []Product
	additionals []Additional

	productsByID    map[string]Product
	additionalsByID map[string]Additional
}

// New builds a catalog from the provided listings.
func New(products []Product, additionals []Additional) *Catalog {
	c := &Catalog{
		products:        products,
		additionals:     additionals,
		productsByID:    make(map[string]Product, len(products)),
		additionalsByID: make(map[string]Additional, len(additionals)),
	}
	for _, p := range products {
		c.productsByID[p.ID] = p
	}
	for _, a := range additionals {
		c.additionalsByID[a.ID] = a
	}
	return c
}

// Default returns the storefront's fixed catalog.
func Default() *Catalog {
	return New(defaultProducts, defaultAdditionals)
}

// Products returns all products in display order.
func (c *Catalog) Products() []Product {
	return c.products
}

// ProductsByCategory filters products for one storefront section.
func (c *Catalog) ProductsByCategory(category enums.ProductCategory) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Additionals returns all additionals in display order.
func (c *Catalog) Additionals() []Additional {
	return c.additionals
}

// FindProduct resolves a product id.
func (c *Catalog) FindProduct(id string) (Product, error) {
	p, ok := c.productsByID[id]
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").WithDetails(map[string]any{"product_id": id})
	}
	return p, nil
}

// FindAdditionals resolves a list of additional ids, rejecting duplicates
// within the request since a line carries a set, not a bag.
func (c *Catalog) FindAdditionals(ids []string) ([]Additional, error) {
	seen := make(map[string]struct{}, len(ids))
	out := make([]Additional, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "duplicate additional in line").WithDetails(map[string]any{"additional_id": id})
		}
		seen[id] = struct{}{}
		a, ok := c.additionalsByID[id]
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "additional not found").WithDetails(map[string]any{"additional_id": id})
		}
		out = append(out, a)
	}
	return out, nil
}
