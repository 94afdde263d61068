package cart

import (
	"errors"

	"github.com/jvboschetti/acai-storefront/internal/catalog"
	"github.com/jvboschetti/acai-storefront/pkg/money"
)

// ErrIndexOutOfRange is returned when a line index does not address an
// existing cart line.
var ErrIndexOutOfRange = errors.New("cart line index out of range")

// Line is one cart entry: a product with a fixed additive set and a
// quantity. Two lines with the same product but different additionals
// stay separate.
type Line struct {
	ProductID      string               `json:"product_id"`
	ProductName    string               `json:"product_name"`
	UnitPriceCents money.Cents          `json:"unit_price_cents"`
	Additionals    []catalog.Additional `json:"additionals"`
	Quantity       int                  `json:"quantity"`
}

// UnitTotalCents is the price of one unit including its additionals.
func (l Line) UnitTotalCents() money.Cents {
	total := l.UnitPriceCents
	for _, a := range l.Additionals {
		total += a.PriceCents
	}
	return total
}

// TotalCents is the line total across its quantity.
func (l Line) TotalCents() money.Cents {
	return l.UnitTotalCents() * money.Cents(l.Quantity)
}

// Cart aggregates lines. It is not safe for concurrent use; callers
// serialize access (the checkout session manager holds the lock).
type Cart struct {
	lines []Line
}

// Lines returns the current lines in insertion order.
func (c *Cart) Lines() []Line {
	return c.lines
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddLine adds one unit of product with the given additionals. When an
// existing line matches both product and additive set the quantities
// merge, otherwise a new line is appended.
func (c *Cart) AddLine(product catalog.Product, additionals []catalog.Additional) {
	for i := range c.lines {
		if c.lines[i].ProductID == product.ID && sameAdditiveSet(c.lines[i].Additionals, additionals) {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID:      product.ID,
		ProductName:    product.Name,
		UnitPriceCents: product.PriceCents,
		Additionals:    additionals,
		Quantity:       1,
	})
}

// UpdateQuantity applies delta to the line at index. A resulting
// quantity of zero or less removes the line.
func (c *Cart) UpdateQuantity(index, delta int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrIndexOutOfRange
	}
	c.lines[index].Quantity += delta
	if c.lines[index].Quantity <= 0 {
		c.lines = append(c.lines[:index], c.lines[index+1:]...)
	}
	return nil
}

// RemoveLine drops the line at index regardless of quantity.
func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrIndexOutOfRange
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// TotalCents sums all line totals.
func (c *Cart) TotalCents() money.Cents {
	var total money.Cents
	for _, l := range c.lines {
		total += l.TotalCents()
	}
	return total
}

// ItemCount sums quantities across lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Clear resets the cart to empty.
func (c *Cart) Clear() {
	c.lines = nil
}

func sameAdditiveSet(a, b []catalog.Additional) bool {
	if len(a) != len(b) {
		return false
	}
	ids := make(map[string]struct{}, len(a))
	for _, x := range a {
		ids[x.ID] = struct{}{}
	}
	for _, y := range b {
		if _, ok := ids[y.ID]; !ok {
			return false
		}
	}
	return true
}
