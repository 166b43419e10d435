package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyOrderEntry is one order as listed inside a daily sales bucket.
// CustomerName is nil when the order's customer reference does not resolve.
type DailyOrderEntry struct {
	CustomerName *string         `json:"customer_name"`
	Status       string          `json:"status"`
	Items        []OrderItem     `json:"items"`
	Total        decimal.Decimal `json:"total"`
}

// DailySalesRow aggregates all orders created on one UTC calendar day
type DailySalesRow struct {
	Date        string            `json:"date"` // "YYYY-MM-DD"
	TotalOrders int               `json:"total_orders"`
	TotalSales  decimal.Decimal   `json:"total_sales"`
	Orders      []DailyOrderEntry `json:"orders"`
}

// MonthlySalesRow aggregates all orders created in one UTC calendar month
type MonthlySalesRow struct {
	Month       string          `json:"month"` // "YYYY-MM"
	TotalOrders int             `json:"total_orders"`
	TotalSales  decimal.Decimal `json:"total_sales"`
}

// CustomerSummary accumulates a customer's orders, either within one status
// (order-status report) or across completed/confirmed orders
// (customer-order report).
type CustomerSummary struct {
	CustomerID    uuid.UUID       `json:"customer_id"`
	FullName      string          `json:"full_name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	TotalOrders   int             `json:"total_orders"`
	TotalItems    int             `json:"total_items"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	LastOrderDate time.Time       `json:"last_order_date"`
}

// OrderStatusReport maps an order status to the customers who have orders in
// that status. Statuses with no surviving customer group are absent keys.
type OrderStatusReport map[string][]CustomerSummary

// ProductSalesRow ranks one product by quantity sold. Name and Category come
// off the order items' denormalized fields and are nil when those rows never
// carried them.
type ProductSalesRow struct {
	ProductID  string          `json:"product_id"`
	Name       *string         `json:"name"`
	Category   *string         `json:"category"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
