package repository

import (
	"errors"
	"fmt"

	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
	"github.com/Chidozie222/Hackathon-sub000/internal/infrastructure/postgres/mappers"
	"github.com/Chidozie222/Hackathon-sub000/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.Create(orderModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrOrderExists
		}
		return err
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var orderModel models.OrderModel
	if err := r.DB.First(&orderModel, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

// UpdateOrderFields merges the given columns into the order row. The row is
// locked for the duration of the transaction so concurrent writers to the
// same order serialize instead of interleaving field-by-field.
func (r *DefaultOrderRepository) UpdateOrderFields(orderID string, fields map[string]any) (*domain.Order, error) {
	var orderModel models.OrderModel

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&orderModel, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOrderNotFound
			}
			return err
		}

		if err := tx.Model(&orderModel).Updates(fields).Error; err != nil {
			return fmt.Errorf("failed to update order %s: %w", orderID, err)
		}

		return tx.First(&orderModel, "id = ?", orderID).Error
	})
	if err != nil {
		return nil, err
	}

	return mappers.ToDomainOrder(&orderModel), nil
}

// ClaimOrder binds a courier with a single conditional UPDATE. When two
// couriers race for the same order only the first write matches the WHERE
// clause; the loser sees zero affected rows and gets ErrOrderUnavailable.
// Re-claiming by the already-bound courier matches as well, which makes the
// call idempotent.
func (r *DefaultOrderRepository) ClaimOrder(orderID, courierID string) (*domain.Order, error) {
	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND status = ? AND (courier_id = '' OR courier_id = ?)", orderID, domain.StatusPaid, courierID).
		Update("courier_id", courierID)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		if _, err := r.GetOrderByID(orderID); err != nil {
			return nil, err
		}
		return nil, domain.ErrOrderUnavailable
	}

	return r.GetOrderByID(orderID)
}

func (r *DefaultOrderRepository) ReleaseOrder(orderID, courierID string) (*domain.Order, error) {
	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND status = ? AND courier_id = ?", orderID, domain.StatusPaid, courierID).
		Update("courier_id", "")
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		if _, err := r.GetOrderByID(orderID); err != nil {
			return nil, err
		}
		return nil, domain.ErrOrderUnavailable
	}

	return r.GetOrderByID(orderID)
}

func (r *DefaultOrderRepository) GetOrdersBySellerID(sellerID string) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.DB.
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, err
	}
	return toDomainOrders(orderModels), nil
}

func (r *DefaultOrderRepository) GetOrdersByCourierID(courierID string) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.DB.
		Where("courier_id = ?", courierID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, err
	}
	return toDomainOrders(orderModels), nil
}

// GetAvailableOrders returns the claimable pool: paid platform-mode orders
// with no courier bound yet.
func (r *DefaultOrderRepository) GetAvailableOrders() ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.DB.
		Where("status = ? AND courier_mode = ? AND courier_id = ''", domain.StatusPaid, domain.ModePlatform).
		Order("created_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, err
	}
	return toDomainOrders(orderModels), nil
}

// FindPendingEscrows returns orders whose create-escrow submission landed
// without a resolvable address, for the reconciliation loop. The order may
// have moved past PAID in the meantime, so any unsettled status with a
// confirmed payment qualifies.
func (r *DefaultOrderRepository) FindPendingEscrows() ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	statuses := []domain.OrderStatus{domain.StatusPaid, domain.StatusDelivered, domain.StatusDisputed}
	if err := r.DB.
		Where("status IN ? AND escrow_account = '' AND settled_amount = '' AND payment_ref <> ''", statuses).
		Find(&orderModels).Error; err != nil {
		return nil, err
	}
	return toDomainOrders(orderModels), nil
}

func toDomainOrders(orderModels []models.OrderModel) []*domain.Order {
	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}
	return orders
}
