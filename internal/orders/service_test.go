package orders

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jvboschetti/acai-storefront/internal/realtime"
	"github.com/jvboschetti/acai-storefront/pkg/db/models"
	"github.com/jvboschetti/acai-storefront/pkg/enums"
	pkgerrors "github.com/jvboschetti/acai-storefront/pkg/errors"
	"github.com/jvboschetti/acai-storefront/pkg/logger"
)

type stubRepo struct {
	insertErr error
	updateErr error
	listErr   error

	inserted []*models.Order
	updates  []enums.PaymentStatus
	orders   []models.Order
}

func (s *stubRepo) Insert(_ context.Context, order *models.Order) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	s.inserted = append(s.inserted, order)
	return nil
}

func (s *stubRepo) ListAll(_ context.Context) ([]models.Order, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.orders, nil
}

func (s *stubRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status enums.PaymentStatus) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updates = append(s.updates, status)
	return nil
}

func newTestService(repo Repository) (*Service, *realtime.Hub) {
	hub := realtime.NewHub()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	return NewService(repo, realtime.NewBroadcaster(hub, nil, logg), nil, logg), hub
}

func validOrder() *models.Order {
	return &models.Order{
		CustomerName:  "Maria",
		PaymentMethod: enums.PaymentMethodCash,
		TotalCents:    2290,
		Items: []models.OrderItem{
			{ProductName: "Pinheirinho Açaí 500ml", UnitPriceCents: 2290, Quantity: 1, ItemTotalCents: 2290},
		},
	}
}

func TestCreateDefaultsStatusAndNotifies(t *testing.T) {
	repo := &stubRepo{}
	svc, hub := newTestService(repo)

	notified := 0
	defer hub.Subscribe(func() { notified++ })()

	order := validOrder()
	require.NoError(t, svc.Create(context.Background(), order))

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, enums.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, 1, notified)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(&stubRepo{})

	empty := validOrder()
	empty.Items = nil
	err := svc.Create(context.Background(), empty)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	bad := validOrder()
	bad.PaymentMethod = "voucher"
	err = svc.Create(context.Background(), bad)
	appErr = pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestCreatePersistenceFailure(t *testing.T) {
	repo := &stubRepo{insertErr: errors.New("connection refused")}
	svc, hub := newTestService(repo)

	notified := 0
	defer hub.Subscribe(func() { notified++ })()

	err := svc.Create(context.Background(), validOrder())
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodePersistence, appErr.Code())
	assert.Equal(t, 0, notified, "no notification on failed insert")
}

func TestUpdateStatusRules(t *testing.T) {
	repo := &stubRepo{}
	svc, hub := newTestService(repo)

	notified := 0
	defer hub.Subscribe(func() { notified++ })()

	err := svc.UpdateStatus(context.Background(), uuid.New(), enums.PaymentStatusPending)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	require.NoError(t, svc.UpdateStatus(context.Background(), uuid.New(), enums.PaymentStatusConfirmed))
	assert.Equal(t, []enums.PaymentStatus{enums.PaymentStatusConfirmed}, repo.updates)
	assert.Equal(t, 1, notified)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := &stubRepo{updateErr: gorm.ErrRecordNotFound}
	svc, _ := newTestService(repo)

	err := svc.UpdateStatus(context.Background(), uuid.New(), enums.PaymentStatusCancelled)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestListWrapsPersistenceErrors(t *testing.T) {
	repo := &stubRepo{listErr: errors.New("timeout")}
	svc, _ := newTestService(repo)

	_, err := svc.List(context.Background())
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodePersistence, appErr.Code())
}
