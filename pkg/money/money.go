package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is an exact integer amount of BRL centavos. All pricing arithmetic in
// the storefront happens on this type; floats never touch money.
type Cents int64

// Decimal returns the amount shifted to whole reais with two decimal places.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(c)).Shift(-2)
}

// String renders the canonical two-decimal form, e.g. "22.90".
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// FormatBRL renders the storefront display form, e.g. "R$ 22,90".
func (c Cents) FormatBRL() string {
	return "R$ " + strings.ReplaceAll(c.Decimal().StringFixed(2), ".", ",")
}

// Parse converts a two-decimal string such as "33.90" into Cents.
func Parse(value string) (Cents, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	shifted := d.Shift(2)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than two decimal places", value)
	}
	return Cents(shifted.IntPart()), nil
}
