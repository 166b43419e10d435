package repository

import (
	"context"

	"reports-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportRepository reads consistent-at-call-time snapshots of the order data
// for the report generators. All joins and grouping happen in the service
// layer; this layer only filters and fetches.
type ReportRepository interface {
	OrdersByStatus(ctx context.Context, statuses []string) ([]model.Order, error)
	OrderItemsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]model.OrderItem, error)
	OrderItemsByIDs(ctx context.Context, itemIDs []uuid.UUID) ([]model.OrderItem, error)
	CustomersByIDs(ctx context.Context, customerIDs []uuid.UUID) ([]model.Customer, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// OrdersByStatus returns orders in any of the given statuses, oldest first.
// The explicit created_at ordering keeps order-sensitive accumulators
// (first, push) stable across calls.
func (r *reportRepository) OrdersByStatus(ctx context.Context, statuses []string) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *reportRepository) OrderItemsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]model.OrderItem, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	var items []model.OrderItem
	if err := r.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *reportRepository) OrderItemsByIDs(ctx context.Context, itemIDs []uuid.UUID) ([]model.OrderItem, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var items []model.OrderItem
	if err := r.db.WithContext(ctx).
		Where("id IN ?", itemIDs).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *reportRepository) CustomersByIDs(ctx context.Context, customerIDs []uuid.UUID) ([]model.Customer, error) {
	if len(customerIDs) == 0 {
		return nil, nil
	}
	var customers []model.Customer
	if err := r.db.WithContext(ctx).
		Where("id IN ?", customerIDs).
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
