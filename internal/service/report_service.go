package service

import (
	"context"
	"fmt"
	"sort"

	"reports-backend/internal/model"
	"reports-backend/internal/report"
	"reports-backend/internal/repository"

	"github.com/google/uuid"
)

// allReportStatuses is the effectively-unfiltered status set used by the
// daily, monthly and order-status reports.
var allReportStatuses = []string{
	model.OrderStatusPending,
	model.OrderStatusConfirmed,
	model.OrderStatusCancelled,
	model.OrderStatusCompleted,
}

// settledStatuses narrows the customer-order and product-sales reports to
// orders that actually count as sales.
var settledStatuses = []string{
	model.OrderStatusCompleted,
	model.OrderStatusConfirmed,
}

// ReportService computes the five admin report shapes. Every call recomputes
// from the source collections; no report state is held between calls.
type ReportService interface {
	GetDailySales(ctx context.Context) ([]model.DailySalesRow, error)
	GetMonthlySales(ctx context.Context) ([]model.MonthlySalesRow, error)
	GetOrderStatusReport(ctx context.Context) (model.OrderStatusReport, error)
	GetCustomerOrderReport(ctx context.Context) ([]model.CustomerSummary, error)
	GetProductSalesReport(ctx context.Context) ([]model.ProductSalesRow, error)
}

type reportService struct {
	repo repository.ReportRepository
}

func NewReportService(repo repository.ReportRepository) ReportService {
	return &reportService{repo: repo}
}

// GetDailySales groups the full order history by UTC calendar day. Each
// bucket counts its orders, sums their totals and lists every order with its
// line items and customer name. An order whose customer reference does not
// resolve is kept with a nil customer name.
func (s *reportService) GetDailySales(ctx context.Context) ([]model.DailySalesRow, error) {
	orders, err := s.repo.OrdersByStatus(ctx, allReportStatuses)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	items, err := s.repo.OrderItemsByOrderIDs(ctx, orderIDs(orders))
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	customers, err := s.repo.CustomersByIDs(ctx, customerIDs(orders))
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}

	itemsByOrder := report.IndexGroupBy(items, func(it model.OrderItem) uuid.UUID { return it.OrderID })
	customerByID := report.IndexBy(customers, func(c model.Customer) uuid.UUID { return c.ID })

	days, byDay := report.GroupBy(orders, func(o model.Order) string { return report.DayKey(o.CreatedAt) })

	rows := make([]model.DailySalesRow, 0, len(days))
	for _, day := range days {
		row := model.DailySalesRow{Date: day, Orders: []model.DailyOrderEntry{}}
		for _, o := range byDay[day] {
			row.TotalOrders++
			row.TotalSales = row.TotalSales.Add(o.TotalPrice)

			entry := model.DailyOrderEntry{
				Status: o.Status,
				Items:  itemsByOrder[o.ID],
				Total:  o.TotalPrice,
			}
			if o.CustomerID != nil {
				if c, ok := customerByID[*o.CustomerID]; ok {
					name := c.FullName
					entry.CustomerName = &name
				}
			}
			row.Orders = append(row.Orders, entry)
		}
		rows = append(rows, row)
	}

	// Most recent day first
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date > rows[j].Date })
	return rows, nil
}

// GetMonthlySales groups the full order history by UTC calendar month with
// order counts and sales totals only; no item or customer joins.
func (s *reportService) GetMonthlySales(ctx context.Context) ([]model.MonthlySalesRow, error) {
	orders, err := s.repo.OrdersByStatus(ctx, allReportStatuses)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	months, byMonth := report.GroupBy(orders, func(o model.Order) string { return report.MonthKey(o.CreatedAt) })

	rows := make([]model.MonthlySalesRow, 0, len(months))
	for _, month := range months {
		row := model.MonthlySalesRow{Month: month}
		for _, o := range byMonth[month] {
			row.TotalOrders++
			row.TotalSales = row.TotalSales.Add(o.TotalPrice)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Month > rows[j].Month })
	return rows, nil
}

// statusCustomerKey is the first-level grouping key of the order-status
// report: one group per (status, customer) pair.
type statusCustomerKey struct {
	status     string
	customerID uuid.UUID
}

// GetOrderStatusReport summarizes, per order status, each customer's orders
// in that status. A (status, customer) group whose customer reference has no
// matching Customer row is dropped (inner-join semantics), as are orders
// with no customer reference at all — they could never survive that join.
// Statuses with no surviving group are absent from the map.
func (s *reportService) GetOrderStatusReport(ctx context.Context) (model.OrderStatusReport, error) {
	orders, err := s.repo.OrdersByStatus(ctx, allReportStatuses)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	items, err := s.repo.OrderItemsByOrderIDs(ctx, orderIDs(orders))
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	customers, err := s.repo.CustomersByIDs(ctx, customerIDs(orders))
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}

	itemsByOrder := report.IndexGroupBy(items, func(it model.OrderItem) uuid.UUID { return it.OrderID })
	customerByID := report.IndexBy(customers, func(c model.Customer) uuid.UUID { return c.ID })

	withCustomer := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.CustomerID != nil {
			withCustomer = append(withCustomer, o)
		}
	}

	keys, groups := report.GroupBy(withCustomer, func(o model.Order) statusCustomerKey {
		return statusCustomerKey{status: o.Status, customerID: *o.CustomerID}
	})

	result := model.OrderStatusReport{}
	for _, k := range keys {
		customer, ok := customerByID[k.customerID]
		if !ok {
			continue // orphaned customer reference
		}
		summary := model.CustomerSummary{
			CustomerID: customer.ID,
			FullName:   customer.FullName,
			Email:      customer.Email,
			Phone:      customer.Phone,
		}
		for _, o := range groups[k] {
			summary.TotalOrders++
			summary.TotalSpent = summary.TotalSpent.Add(o.TotalPrice)
			for _, it := range itemsByOrder[o.ID] {
				summary.TotalItems += it.Quantity
			}
			if o.CreatedAt.After(summary.LastOrderDate) {
				summary.LastOrderDate = o.CreatedAt
			}
		}
		// Lists keep first-grouping order within each status
		result[k.status] = append(result[k.status], summary)
	}
	return result, nil
}

// GetCustomerOrderReport summarizes completed/confirmed orders per customer,
// top spenders first. Items are resolved through each order's own item_ids
// list; customers whose reference does not resolve are dropped.
func (s *reportService) GetCustomerOrderReport(ctx context.Context) ([]model.CustomerSummary, error) {
	orders, err := s.repo.OrdersByStatus(ctx, settledStatuses)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	items, err := s.repo.OrderItemsByIDs(ctx, referencedItemIDs(orders))
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	customers, err := s.repo.CustomersByIDs(ctx, customerIDs(orders))
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}

	itemByID := report.IndexBy(items, func(it model.OrderItem) uuid.UUID { return it.ID })
	customerByID := report.IndexBy(customers, func(c model.Customer) uuid.UUID { return c.ID })

	withCustomer := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.CustomerID != nil {
			withCustomer = append(withCustomer, o)
		}
	}

	ids, byCustomer := report.GroupBy(withCustomer, func(o model.Order) uuid.UUID { return *o.CustomerID })

	summaries := make([]model.CustomerSummary, 0, len(ids))
	for _, id := range ids {
		customer, ok := customerByID[id]
		if !ok {
			continue // orphaned customer reference
		}
		summary := model.CustomerSummary{
			CustomerID: customer.ID,
			FullName:   customer.FullName,
			Email:      customer.Email,
			Phone:      customer.Phone,
		}
		for _, o := range byCustomer[id] {
			summary.TotalOrders++
			summary.TotalSpent = summary.TotalSpent.Add(o.TotalPrice)
			for _, it := range report.CollectByKeys(o.ItemIDs, itemByID) {
				summary.TotalItems += it.Quantity
			}
			if o.CreatedAt.After(summary.LastOrderDate) {
				summary.LastOrderDate = o.CreatedAt
			}
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalSpent.Cmp(summaries[j].TotalSpent) > 0
	})
	return summaries, nil
}

// GetProductSalesReport flattens the line items of completed/confirmed
// orders and ranks products by quantity sold. Name, category and unit price
// are taken from the first item seen for the product (denormalized fields,
// possibly absent); no join against the product catalog happens here.
func (s *reportService) GetProductSalesReport(ctx context.Context) ([]model.ProductSalesRow, error) {
	orders, err := s.repo.OrdersByStatus(ctx, settledStatuses)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	items, err := s.repo.OrderItemsByIDs(ctx, referencedItemIDs(orders))
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}

	itemByID := report.IndexBy(items, func(it model.OrderItem) uuid.UUID { return it.ID })

	// One record per line item, in order/item-list order
	var flat []model.OrderItem
	for _, o := range orders {
		flat = append(flat, report.CollectByKeys(o.ItemIDs, itemByID)...)
	}

	productIDs, byProduct := report.GroupBy(flat, func(it model.OrderItem) string { return it.ProductID })

	rows := make([]model.ProductSalesRow, 0, len(productIDs))
	for _, id := range productIDs {
		group := byProduct[id]
		first := group[0]
		row := model.ProductSalesRow{
			ProductID: id,
			Name:      first.Name,
			Category:  first.Category,
			UnitPrice: first.UnitPrice,
		}
		for _, it := range group {
			row.Quantity += it.Quantity
			row.TotalPrice = row.TotalPrice.Add(it.TotalPrice)
		}
		rows = append(rows, row)
	}

	// Best sellers first
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Quantity > rows[j].Quantity })
	return rows, nil
}

func orderIDs(orders []model.Order) []uuid.UUID {
	ids := make([]uuid.UUID, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	return ids
}

func customerIDs(orders []model.Order) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(orders))
	var ids []uuid.UUID
	for _, o := range orders {
		if o.CustomerID == nil || seen[*o.CustomerID] {
			continue
		}
		seen[*o.CustomerID] = true
		ids = append(ids, *o.CustomerID)
	}
	return ids
}

func referencedItemIDs(orders []model.Order) []uuid.UUID {
	var ids []uuid.UUID
	for _, o := range orders {
		ids = append(ids, o.ItemIDs...)
	}
	return ids
}
