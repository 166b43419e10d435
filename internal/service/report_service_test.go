package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"reports-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReportRepo serves fixture data with the same filtering behavior as the
// gorm repository: orders filtered by status in created_at order, items and
// customers filtered by id sets.
type fakeReportRepo struct {
	orders    []model.Order
	items     []model.OrderItem
	customers []model.Customer
	err       error
}

func (f *fakeReportRepo) OrdersByStatus(_ context.Context, statuses []string) ([]model.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	allowed := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}
	var out []model.Order
	for _, o := range f.orders {
		if allowed[o.Status] {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) OrderItemsByOrderIDs(_ context.Context, orderIDs []uuid.UUID) ([]model.OrderItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[uuid.UUID]bool, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = true
	}
	var out []model.OrderItem
	for _, it := range f.items {
		if wanted[it.OrderID] {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) OrderItemsByIDs(_ context.Context, itemIDs []uuid.UUID) ([]model.OrderItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[uuid.UUID]bool, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = true
	}
	var out []model.OrderItem
	for _, it := range f.items {
		if wanted[it.ID] {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) CustomersByIDs(_ context.Context, customerIDs []uuid.UUID) ([]model.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[uuid.UUID]bool, len(customerIDs))
	for _, id := range customerIDs {
		wanted[id] = true
	}
	var out []model.Customer
	for _, c := range f.customers {
		if wanted[c.ID] {
			out = append(out, c)
		}
	}
	return out, nil
}

func strPtr(s string) *string { return &s }

func money(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// newFixtureRepo builds the shared test dataset:
//
//	alice: completed 100 (2x P1, 2024-03-05), pending 40 (1x P2, 2024-03-05)
//	bob:   confirmed 60  (1x P1, 2024-03-06)
//	orphan customer ref: cancelled 25 (2024-02-10)
//	no customer ref:     completed 80 (1x P1, 2024-03-07)
func newFixtureRepo() (*fakeReportRepo, model.Customer, model.Customer) {
	alice := model.Customer{ID: uuid.New(), FullName: "Alice", Email: "alice@example.com", Phone: "111"}
	bob := model.Customer{ID: uuid.New(), FullName: "Bob", Email: "bob@example.com", Phone: "222"}
	orphanID := uuid.New()

	o1 := uuid.New() // alice completed
	o2 := uuid.New() // alice pending
	o3 := uuid.New() // orphan cancelled
	o4 := uuid.New() // bob confirmed
	o5 := uuid.New() // anonymous completed

	i1 := model.OrderItem{ID: uuid.New(), OrderID: o1, ProductID: "P1", Quantity: 2, UnitPrice: money(50), TotalPrice: money(100), Name: strPtr("Widget"), Category: strPtr("Gadgets")}
	i2 := model.OrderItem{ID: uuid.New(), OrderID: o2, ProductID: "P2", Quantity: 1, UnitPrice: money(40), TotalPrice: money(40)}
	i3 := model.OrderItem{ID: uuid.New(), OrderID: o3, ProductID: "P2", Quantity: 1, UnitPrice: money(25), TotalPrice: money(25)}
	i4 := model.OrderItem{ID: uuid.New(), OrderID: o4, ProductID: "P1", Quantity: 1, UnitPrice: money(60), TotalPrice: money(60), Name: strPtr("Widget"), Category: strPtr("Gadgets")}
	i5 := model.OrderItem{ID: uuid.New(), OrderID: o5, ProductID: "P1", Quantity: 1, UnitPrice: money(80), TotalPrice: money(80)}

	repo := &fakeReportRepo{
		orders: []model.Order{
			{ID: o3, CustomerID: &orphanID, ItemIDs: []uuid.UUID{i3.ID}, TotalPrice: money(25), Status: model.OrderStatusCancelled, CreatedAt: time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)},
			{ID: o1, CustomerID: &alice.ID, ItemIDs: []uuid.UUID{i1.ID}, TotalPrice: money(100), Status: model.OrderStatusCompleted, CreatedAt: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)},
			{ID: o2, CustomerID: &alice.ID, ItemIDs: []uuid.UUID{i2.ID}, TotalPrice: money(40), Status: model.OrderStatusPending, CreatedAt: time.Date(2024, 3, 5, 15, 0, 0, 0, time.UTC)},
			{ID: o4, CustomerID: &bob.ID, ItemIDs: []uuid.UUID{i4.ID}, TotalPrice: money(60), Status: model.OrderStatusConfirmed, CreatedAt: time.Date(2024, 3, 6, 11, 0, 0, 0, time.UTC)},
			{ID: o5, CustomerID: nil, ItemIDs: []uuid.UUID{i5.ID}, TotalPrice: money(80), Status: model.OrderStatusCompleted, CreatedAt: time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC)},
		},
		items:     []model.OrderItem{i1, i2, i3, i4, i5},
		customers: []model.Customer{alice, bob},
	}
	return repo, alice, bob
}

func TestGetDailySales(t *testing.T) {
	repo, _, _ := newFixtureRepo()
	svc := NewReportService(repo)

	rows, err := svc.GetDailySales(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// Newest day first
	assert.Equal(t, "2024-03-07", rows[0].Date)
	assert.Equal(t, "2024-03-06", rows[1].Date)
	assert.Equal(t, "2024-03-05", rows[2].Date)
	assert.Equal(t, "2024-02-10", rows[3].Date)

	// 2024-03-05: alice's completed + pending orders
	day := rows[2]
	assert.Equal(t, 2, day.TotalOrders)
	assert.Equal(t, "140", day.TotalSales.String())
	require.Len(t, day.Orders, 2)
	require.NotNil(t, day.Orders[0].CustomerName)
	assert.Equal(t, "Alice", *day.Orders[0].CustomerName)
	assert.Equal(t, model.OrderStatusCompleted, day.Orders[0].Status)
	require.Len(t, day.Orders[0].Items, 1)
	assert.Equal(t, "P1", day.Orders[0].Items[0].ProductID)

	// Unresolvable customer references keep the order with a nil name
	assert.Nil(t, rows[0].Orders[0].CustomerName)
	assert.Nil(t, rows[3].Orders[0].CustomerName)

	// Every order lands in exactly one bucket
	total := 0
	for _, row := range rows {
		total += row.TotalOrders
	}
	assert.Equal(t, 5, total)
}

func TestGetMonthlySales(t *testing.T) {
	repo, _, _ := newFixtureRepo()
	svc := NewReportService(repo)

	rows, err := svc.GetMonthlySales(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Newest month first
	assert.Equal(t, "2024-03", rows[0].Month)
	assert.Equal(t, 4, rows[0].TotalOrders)
	assert.Equal(t, "280", rows[0].TotalSales.String())

	assert.Equal(t, "2024-02", rows[1].Month)
	assert.Equal(t, 1, rows[1].TotalOrders)
	assert.Equal(t, "25", rows[1].TotalSales.String())
}

func TestGetOrderStatusReport(t *testing.T) {
	repo, alice, bob := newFixtureRepo()
	svc := NewReportService(repo)

	rep, err := svc.GetOrderStatusReport(context.Background())
	require.NoError(t, err)

	// The orphaned customer reference (cancelled order) and the order with
	// no customer at all are dropped, so those statuses have no surviving
	// group and are absent from the map.
	require.Len(t, rep, 3)
	assert.NotContains(t, rep, model.OrderStatusCancelled)

	completed := rep[model.OrderStatusCompleted]
	require.Len(t, completed, 1)
	assert.Equal(t, alice.ID, completed[0].CustomerID)
	assert.Equal(t, "Alice", completed[0].FullName)
	assert.Equal(t, 1, completed[0].TotalOrders)
	assert.Equal(t, 2, completed[0].TotalItems)
	assert.Equal(t, "100", completed[0].TotalSpent.String())
	assert.Equal(t, time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC), completed[0].LastOrderDate)

	pending := rep[model.OrderStatusPending]
	require.Len(t, pending, 1)
	assert.Equal(t, alice.ID, pending[0].CustomerID)

	confirmed := rep[model.OrderStatusConfirmed]
	require.Len(t, confirmed, 1)
	assert.Equal(t, bob.ID, confirmed[0].CustomerID)
}

func TestGetCustomerOrderReport(t *testing.T) {
	repo, alice, bob := newFixtureRepo()
	svc := NewReportService(repo)

	rows, err := svc.GetCustomerOrderReport(context.Background())
	require.NoError(t, err)

	// Only completed/confirmed orders count, so alice's pending order and
	// the cancelled order are excluded; the anonymous order is dropped.
	require.Len(t, rows, 2)

	// Top spenders first
	assert.Equal(t, alice.ID, rows[0].CustomerID)
	assert.Equal(t, 1, rows[0].TotalOrders)
	assert.Equal(t, 2, rows[0].TotalItems)
	assert.Equal(t, "100", rows[0].TotalSpent.String())

	assert.Equal(t, bob.ID, rows[1].CustomerID)
	assert.Equal(t, "60", rows[1].TotalSpent.String())
}

func TestGetProductSalesReport(t *testing.T) {
	repo, _, _ := newFixtureRepo()
	svc := NewReportService(repo)

	rows, err := svc.GetProductSalesReport(context.Background())
	require.NoError(t, err)

	// P1 appears in three settled orders (2+1+1), P2 only in pending and
	// cancelled ones, which are filtered out.
	require.Len(t, rows, 1)
	assert.Equal(t, "P1", rows[0].ProductID)
	assert.Equal(t, 4, rows[0].Quantity)
	assert.Equal(t, "240", rows[0].TotalPrice.String())

	// First item seen carries the denormalized display fields
	require.NotNil(t, rows[0].Name)
	assert.Equal(t, "Widget", *rows[0].Name)
	assert.Equal(t, "50", rows[0].UnitPrice.String())
}

func TestProductSalesSortedByQuantityDesc(t *testing.T) {
	repo, alice, _ := newFixtureRepo()

	// Add a settled order selling 10x P3 so it outranks P1
	o6 := uuid.New()
	i6 := model.OrderItem{ID: uuid.New(), OrderID: o6, ProductID: "P3", Quantity: 10, UnitPrice: money(5), TotalPrice: money(50)}
	repo.items = append(repo.items, i6)
	repo.orders = append(repo.orders, model.Order{
		ID: o6, CustomerID: &alice.ID, ItemIDs: []uuid.UUID{i6.ID},
		TotalPrice: money(50), Status: model.OrderStatusCompleted,
		CreatedAt: time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC),
	})

	svc := NewReportService(repo)
	rows, err := svc.GetProductSalesReport(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 2)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].Quantity, rows[i].Quantity)
	}
	assert.Equal(t, "P3", rows[0].ProductID)
	assert.Nil(t, rows[0].Name)
}

func TestReportsAreIdempotent(t *testing.T) {
	repo, _, _ := newFixtureRepo()
	svc := NewReportService(repo)
	ctx := context.Background()

	daily1, err := svc.GetDailySales(ctx)
	require.NoError(t, err)
	daily2, err := svc.GetDailySales(ctx)
	require.NoError(t, err)
	assert.Equal(t, daily1, daily2)

	status1, err := svc.GetOrderStatusReport(ctx)
	require.NoError(t, err)
	status2, err := svc.GetOrderStatusReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, status1, status2)

	products1, err := svc.GetProductSalesReport(ctx)
	require.NoError(t, err)
	products2, err := svc.GetProductSalesReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, products1, products2)
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	repo := &fakeReportRepo{err: errors.New("connection refused")}
	svc := NewReportService(repo)
	ctx := context.Background()

	_, err := svc.GetDailySales(ctx)
	assert.Error(t, err)
	_, err = svc.GetMonthlySales(ctx)
	assert.Error(t, err)
	_, err = svc.GetOrderStatusReport(ctx)
	assert.Error(t, err)
	_, err = svc.GetCustomerOrderReport(ctx)
	assert.Error(t, err)
	_, err = svc.GetProductSalesReport(ctx)
	assert.Error(t, err)
}
