package orders

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jvboschetti/acai-storefront/internal/realtime"
	"github.com/jvboschetti/acai-storefront/pkg/db/models"
	"github.com/jvboschetti/acai-storefront/pkg/enums"
	pkgerrors "github.com/jvboschetti/acai-storefront/pkg/errors"
	"github.com/jvboschetti/acai-storefront/pkg/logger"
	"github.com/jvboschetti/acai-storefront/pkg/metrics"
)

// Service applies order business rules on top of the repository and
// fans change notifications out to the realtime layer.
type Service struct {
	repo        Repository
	broadcaster *realtime.Broadcaster
	metrics     *metrics.StorefrontMetrics
	logg        *logger.Logger
}

func NewService(repo Repository, broadcaster *realtime.Broadcaster, m *metrics.StorefrontMetrics, logg *logger.Logger) *Service {
	return &Service{repo: repo, broadcaster: broadcaster, metrics: m, logg: logg}
}

// Create persists a finalized checkout. Single attempt; the caller
// decides what to do with a failure.
func (s *Service) Create(ctx context.Context, order *models.Order) error {
	if len(order.Items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "order requires at least one item")
	}
	if !order.PaymentMethod.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = enums.PaymentStatusPending
	}

	if err := s.repo.Insert(ctx, order); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodePersistence, err, "inserting order")
	}

	ctx = s.logg.WithOrderID(ctx, order.ID.String())
	s.logg.Info(ctx, "order created")
	s.metrics.IncOrderCreated(order.PaymentMethod.String())
	s.broadcaster.NotifyOrdersChanged(ctx)
	return nil
}

// List returns all orders newest-first.
func (s *Service) List(ctx context.Context) ([]models.Order, error) {
	out, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "listing orders")
	}
	return out, nil
}

// UpdateStatus applies an admin confirm/cancel decision. Pending is not
// an admissible target; beyond that, last write wins.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.PaymentStatus) error {
	if status != enums.PaymentStatusConfirmed && status != enums.PaymentStatusCancelled {
		return pkgerrors.New(pkgerrors.CodeValidation, "status must be confirmed or cancelled")
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodePersistence, err, "updating order status")
	}

	ctx = s.logg.WithOrderID(ctx, id.String())
	s.logg.Info(ctx, "order status updated: "+status.String())
	s.metrics.IncStatusUpdate(status.String())
	s.broadcaster.NotifyOrdersChanged(ctx)
	return nil
}
