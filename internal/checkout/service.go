package checkout

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/google/uuid"

	"github.com/jvboschetti/acai-storefront/internal/cart"
	"github.com/jvboschetti/acai-storefront/internal/catalog"
	"github.com/jvboschetti/acai-storefront/internal/pix"
	"github.com/jvboschetti/acai-storefront/pkg/db/models"
	"github.com/jvboschetti/acai-storefront/pkg/enums"
	pkgerrors "github.com/jvboschetti/acai-storefront/pkg/errors"
	"github.com/jvboschetti/acai-storefront/pkg/logger"
	"github.com/jvboschetti/acai-storefront/pkg/money"
)

// OrderCreator persists finalized checkouts.
type OrderCreator interface {
	Create(ctx context.Context, order *models.Order) error
}

// PixDetails is the data the pix waiting screen needs.
type PixDetails struct {
	Key              string      `json:"key"`
	MerchantName     string      `json:"merchant_name"`
	AmountCents      money.Cents `json:"amount_cents"`
	Amount           string      `json:"amount"`
	Payload          string      `json:"payload"`
	RemainingSeconds int         `json:"remaining_seconds"`
}

// Service drives checkout sessions: cart edits, step transitions, pix
// payloads and the final order hand-off.
type Service struct {
	manager   *Manager
	catalog   *catalog.Catalog
	orders    OrderCreator
	pix       *pix.Builder
	pixWindow time.Duration
	logg      *logger.Logger
}

func NewService(manager *Manager, cat *catalog.Catalog, orders OrderCreator, pixBuilder *pix.Builder, pixWindow time.Duration, logg *logger.Logger) *Service {
	return &Service{
		manager:   manager,
		catalog:   cat,
		orders:    orders,
		pix:       pixBuilder,
		pixWindow: pixWindow,
		logg:      logg,
	}
}

// CreateSession opens a fresh session at the cart step.
func (s *Service) CreateSession(ctx context.Context) Snapshot {
	snap := s.manager.Create()
	s.logg.Info(s.logg.WithSessionID(ctx, snap.ID), "checkout session created")
	return snap
}

// GetSession returns the current snapshot.
func (s *Service) GetSession(_ context.Context, id uuid.UUID) (Snapshot, error) {
	return s.manager.Get(id)
}

// AddLine resolves the product and additionals and adds one unit to
// the cart, merging with an existing line on the same additive set.
func (s *Service) AddLine(_ context.Context, id uuid.UUID, productID string, additionalIDs []string) (Snapshot, error) {
	product, err := s.catalog.FindProduct(productID)
	if err != nil {
		return Snapshot{}, err
	}
	additionals, err := s.catalog.FindAdditionals(additionalIDs)
	if err != nil {
		return Snapshot{}, err
	}

	return s.manager.Update(id, func(sess *Session) error {
		if err := sess.requireCartMutable(); err != nil {
			return err
		}
		sess.Cart.AddLine(product, additionals)
		return nil
	})
}

// UpdateLineQuantity applies a delta to the line at index.
func (s *Service) UpdateLineQuantity(_ context.Context, id uuid.UUID, index, delta int) (Snapshot, error) {
	return s.manager.Update(id, func(sess *Session) error {
		if err := sess.requireCartMutable(); err != nil {
			return err
		}
		return wrapCartErr(sess.Cart.UpdateQuantity(index, delta))
	})
}

// RemoveLine drops the line at index.
func (s *Service) RemoveLine(_ context.Context, id uuid.UUID, index int) (Snapshot, error) {
	return s.manager.Update(id, func(sess *Session) error {
		if err := sess.requireCartMutable(); err != nil {
			return err
		}
		return wrapCartErr(sess.Cart.RemoveLine(index))
	})
}

// BeginCheckout advances cart -> customer_info.
func (s *Service) BeginCheckout(_ context.Context, id uuid.UUID) (Snapshot, error) {
	return s.manager.Update(id, func(sess *Session) error {
		return sess.beginCheckout()
	})
}

// SubmitCustomerInfo stores the contact fields and advances to payment.
func (s *Service) SubmitCustomerInfo(_ context.Context, id uuid.UUID, info CustomerInfo) (Snapshot, error) {
	return s.manager.Update(id, func(sess *Session) error {
		return sess.submitCustomerInfo(info)
	})
}

// SelectPaymentMethod records pix or cash. Pix enters the waiting step
// and arms the payment window.
func (s *Service) SelectPaymentMethod(ctx context.Context, id uuid.UUID, method enums.PaymentMethod) (Snapshot, error) {
	ctx = s.logg.WithSessionID(ctx, id.String())
	return s.manager.Update(id, func(sess *Session) error {
		return sess.selectPayment(method, s.pixWindow, time.Now(), func() {
			s.logg.Info(ctx, "pix payment window expired")
		})
	})
}

// Back walks one step toward the cart.
func (s *Service) Back(_ context.Context, id uuid.UUID) (Snapshot, error) {
	return s.manager.Update(id, func(sess *Session) error {
		return sess.back()
	})
}

// Confirm finalizes the checkout: the cart snapshot becomes a pending
// order. On persistence failure the session keeps its state for a
// manual retry.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (Snapshot, *models.Order, error) {
	draft, err := s.manager.BeginFinalize(id)
	if err != nil {
		return Snapshot{}, nil, err
	}

	order := buildOrder(draft)
	if err := s.orders.Create(ctx, order); err != nil {
		snap := s.manager.CompleteFinalize(id, false)
		return snap, nil, err
	}

	snap := s.manager.CompleteFinalize(id, true)
	s.logg.Info(s.logg.WithSessionID(ctx, id.String()), "checkout finalized")
	return snap, order, nil
}

// PixDetails returns the copyable payload and remaining window. Only
// available while the session waits on pix.
func (s *Service) PixDetails(_ context.Context, id uuid.UUID) (PixDetails, error) {
	var details PixDetails
	_, err := s.manager.Update(id, func(sess *Session) error {
		if sess.Step != enums.CheckoutStepPixPending {
			return stepConflict(sess.Step, "read pix details")
		}
		total := sess.Cart.TotalCents()
		details = PixDetails{
			Key:              s.pix.Merchant().Key,
			MerchantName:     s.pix.Merchant().Name,
			AmountCents:      total,
			Amount:           total.String(),
			Payload:          s.pix.Payload(total, pixTxid(sess.ID)),
			RemainingSeconds: sess.pixRemaining(time.Now()),
		}
		return nil
	})
	if err != nil {
		return PixDetails{}, err
	}
	return details, nil
}

// PixQR renders the current payload as a PNG.
func (s *Service) PixQR(_ context.Context, id uuid.UUID, size int) ([]byte, error) {
	var payload struct {
		total money.Cents
		txid  string
	}
	_, err := s.manager.Update(id, func(sess *Session) error {
		if sess.Step != enums.CheckoutStepPixPending {
			return stepConflict(sess.Step, "render pix qr code")
		}
		payload.total = sess.Cart.TotalCents()
		payload.txid = pixTxid(sess.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.pix.QRCode(payload.total, payload.txid, size)
}

// SessionCount exposes live session count for readiness reporting.
func (s *Service) SessionCount() int {
	return s.manager.Count()
}

func wrapCartErr(err error) error {
	if err == nil {
		return nil
	}
	if stdErrors.Is(err, cart.ErrIndexOutOfRange) {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "line index out of range")
	}
	return err
}

// pixTxid derives a short reconciliation id from the session. BR Code
// caps field 62-05 at 25 characters.
func pixTxid(id uuid.UUID) string {
	compact := make([]byte, 0, 25)
	for _, r := range id.String() {
		if r == '-' {
			continue
		}
		compact = append(compact, byte(r))
		if len(compact) == 25 {
			break
		}
	}
	return string(compact)
}

func buildOrder(draft FinalizeDraft) *models.Order {
	items := make([]models.OrderItem, 0, len(draft.Lines))
	for _, line := range draft.Lines {
		names := make([]string, 0, len(line.Additionals))
		for _, a := range line.Additionals {
			names = append(names, a.Name)
		}
		items = append(items, models.OrderItem{
			ProductName:    line.ProductName,
			UnitPriceCents: line.UnitPriceCents,
			Quantity:       line.Quantity,
			Additionals:    names,
			ItemTotalCents: line.TotalCents(),
		})
	}

	return &models.Order{
		CustomerName:    draft.Customer.Name,
		CustomerPhone:   draft.Customer.Phone,
		CustomerAddress: draft.Customer.Address,
		TotalCents:      draft.TotalCents,
		PaymentMethod:   draft.PaymentMethod,
		PaymentStatus:   enums.PaymentStatusPending,
		Items:           items,
	}
}
