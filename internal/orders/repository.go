package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jvboschetti/acai-storefront/pkg/db"
	"github.com/jvboschetti/acai-storefront/pkg/db/models"
	"github.com/jvboschetti/acai-storefront/pkg/enums"
)

// Repository is the persistence surface for orders.
type Repository interface {
	Insert(ctx context.Context, order *models.Order) error
	ListAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.PaymentStatus) error
}

type gormRepository struct {
	client *db.Client
}

// NewRepository builds the GORM-backed repository.
func NewRepository(client *db.Client) Repository {
	return &gormRepository{client: client}
}

// Insert creates the order and its line items in one transaction. IDs
// are assigned client-side so SQLite works without uuid defaults.
func (r *gormRepository) Insert(ctx context.Context, order *models.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
		order.Items[i].OrderID = order.ID
	}

	return r.client.WithTx(ctx, func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

// ListAll returns every order newest-first with line items preloaded.
func (r *gormRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	err := r.client.DB().
		WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus sets the payment status. Last write wins.
func (r *gormRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.PaymentStatus) error {
	result := r.client.DB().
		WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("payment_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
