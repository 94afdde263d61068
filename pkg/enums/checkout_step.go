package enums

import "fmt"

// CheckoutStep is the position of a checkout session in its flow.
type CheckoutStep string

const (
	CheckoutStepCart         CheckoutStep = "cart"
	CheckoutStepCustomerInfo CheckoutStep = "customer_info"
	CheckoutStepPayment      CheckoutStep = "payment"
	CheckoutStepPixPending   CheckoutStep = "pix_pending"
	CheckoutStepConfirmed    CheckoutStep = "confirmed"
)

var validCheckoutSteps = []CheckoutStep{
	CheckoutStepCart,
	CheckoutStepCustomerInfo,
	CheckoutStepPayment,
	CheckoutStepPixPending,
	CheckoutStepConfirmed,
}

// String implements fmt.Stringer.
func (c CheckoutStep) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CheckoutStep.
func (c CheckoutStep) IsValid() bool {
	for _, candidate := range validCheckoutSteps {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCheckoutStep converts raw input into a CheckoutStep.
func ParseCheckoutStep(value string) (CheckoutStep, error) {
	for _, candidate := range validCheckoutSteps {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid checkout step %q", value)
}
