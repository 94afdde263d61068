package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jvboschetti/acai-storefront/pkg/db"
	"github.com/jvboschetti/acai-storefront/pkg/db/models"
	"github.com/jvboschetti/acai-storefront/pkg/enums"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, conn.AutoMigrate(&models.Order{}, &models.OrderItem{}))
	return NewRepository(db.NewFromConn(conn))
}

func sampleOrder(name string) *models.Order {
	return &models.Order{
		CustomerName:    name,
		CustomerPhone:   "41999990000",
		CustomerAddress: "Rua das Araucárias, 100",
		TotalCents:      7780,
		PaymentMethod:   enums.PaymentMethodPix,
		PaymentStatus:   enums.PaymentStatusPending,
		Items: []models.OrderItem{
			{
				ProductName:    "Curitiba Açaí 500ml",
				UnitPriceCents: 3390,
				Quantity:       2,
				Additionals:    []string{"Nutella"},
				ItemTotalCents: 7780,
			},
		},
	}
}

func TestInsertAndListRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	order := sampleOrder("Maria")
	require.NoError(t, repo.Insert(ctx, order))
	assert.NotEqual(t, uuid.Nil, order.ID)

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Maria", got[0].CustomerName)
	assert.Equal(t, order.ID, got[0].ID)
	require.Len(t, got[0].Items, 1)
	assert.Equal(t, []string{"Nutella"}, got[0].Items[0].Additionals)
	assert.Equal(t, order.ID, got[0].Items[0].OrderID)
}

func TestListAllNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := sampleOrder("first")
	first.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Insert(ctx, first))

	second := sampleOrder("second")
	require.NoError(t, repo.Insert(ctx, second))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].CustomerName)
	assert.Equal(t, "first", got[1].CustomerName)
}

func TestUpdateStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	order := sampleOrder("Maria")
	require.NoError(t, repo.Insert(ctx, order))

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, enums.PaymentStatusConfirmed))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, enums.PaymentStatusConfirmed, got[0].PaymentStatus)

	err = repo.UpdateStatus(ctx, uuid.New(), enums.PaymentStatusCancelled)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
