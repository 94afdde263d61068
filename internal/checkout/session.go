// Package checkout holds server-side checkout sessions and drives them
// through the cart, customer info, payment and confirmation steps.
package checkout

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jvboschetti/acai-storefront/internal/cart"
	"github.com/jvboschetti/acai-storefront/pkg/enums"
	pkgerrors "github.com/jvboschetti/acai-storefront/pkg/errors"
)

// CustomerInfo is the delivery contact collected before payment.
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (c CustomerInfo) complete() bool {
	return strings.TrimSpace(c.Name) != "" &&
		strings.TrimSpace(c.Phone) != "" &&
		strings.TrimSpace(c.Address) != ""
}

// Session is one customer's checkout in progress. All access goes
// through the Manager, which serializes it.
type Session struct {
	ID            uuid.UUID
	Step          enums.CheckoutStep
	Cart          *cart.Cart
	Customer      CustomerInfo
	PaymentMethod enums.PaymentMethod

	pix        *countdown
	finalizing bool
	touchedAt  time.Time
}

func newSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		Step:      enums.CheckoutStepCart,
		Cart:      &cart.Cart{},
		touchedAt: now,
	}
}

func stepConflict(from enums.CheckoutStep, action string) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeStateConflict, "cannot "+action+" from step "+from.String()).
		WithDetails(map[string]any{"step": from.String()})
}

// requireCartMutable rejects cart edits once the customer moved past
// the cart step.
func (s *Session) requireCartMutable() error {
	if s.Step != enums.CheckoutStepCart {
		return stepConflict(s.Step, "edit cart")
	}
	return nil
}

// beginCheckout moves cart -> customer_info. The cart must be
// non-empty.
func (s *Session) beginCheckout() error {
	if s.Step != enums.CheckoutStepCart {
		return stepConflict(s.Step, "begin checkout")
	}
	if s.Cart.IsEmpty() {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	s.Step = enums.CheckoutStepCustomerInfo
	return nil
}

// submitCustomerInfo moves customer_info -> payment once name, phone
// and address are all present.
func (s *Session) submitCustomerInfo(info CustomerInfo) error {
	if s.Step != enums.CheckoutStepCustomerInfo {
		return stepConflict(s.Step, "submit customer info")
	}
	if !info.complete() {
		return pkgerrors.New(pkgerrors.CodeValidation, "name, phone and address are required")
	}
	s.Customer = info
	s.Step = enums.CheckoutStepPayment
	return nil
}

// selectPayment records the method. Selecting pix enters pix_pending
// and arms the countdown; re-entry always resets it to the full
// window. Selecting cash stays on the payment step until confirm.
func (s *Session) selectPayment(method enums.PaymentMethod, window time.Duration, now time.Time, onExpire func()) error {
	if s.Step != enums.CheckoutStepPayment {
		return stepConflict(s.Step, "select payment method")
	}
	if !method.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}

	s.PaymentMethod = method
	if method == enums.PaymentMethodPix {
		s.releaseCountdown()
		s.pix = startCountdown(window, now, onExpire)
		s.Step = enums.CheckoutStepPixPending
	}
	return nil
}

// back walks one step toward the cart. Leaving pix_pending releases
// the countdown.
func (s *Session) back() error {
	switch s.Step {
	case enums.CheckoutStepCustomerInfo:
		s.Step = enums.CheckoutStepCart
	case enums.CheckoutStepPayment:
		s.PaymentMethod = ""
		s.Step = enums.CheckoutStepCustomerInfo
	case enums.CheckoutStepPixPending:
		s.releaseCountdown()
		s.Step = enums.CheckoutStepPayment
	default:
		return stepConflict(s.Step, "go back")
	}
	return nil
}

// checkConfirmable validates the finalize guards without mutating.
func (s *Session) checkConfirmable(now time.Time) error {
	switch {
	case s.Step == enums.CheckoutStepPayment && s.PaymentMethod == enums.PaymentMethodCash:
		return nil
	case s.Step == enums.CheckoutStepPixPending:
		if s.pix == nil || s.pix.expiredAt(now) {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "pix window expired, go back and re-enter payment")
		}
		return nil
	case s.Step == enums.CheckoutStepPayment:
		return pkgerrors.New(pkgerrors.CodeStateConflict, "select a payment method before confirming")
	default:
		return stepConflict(s.Step, "confirm")
	}
}

// resetAfterFinalize clears all checkout state back to an empty cart,
// keeping the session id alive.
func (s *Session) resetAfterFinalize() {
	s.releaseCountdown()
	s.Cart.Clear()
	s.Customer = CustomerInfo{}
	s.PaymentMethod = ""
	s.Step = enums.CheckoutStepCart
}

func (s *Session) releaseCountdown() {
	if s.pix != nil {
		s.pix.release()
		s.pix = nil
	}
}

// pixRemaining reports whole seconds left, zero when absent or run out.
func (s *Session) pixRemaining(now time.Time) int {
	if s.pix == nil {
		return 0
	}
	return s.pix.remainingSeconds(now)
}
