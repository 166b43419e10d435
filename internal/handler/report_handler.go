package handler

import (
	"log"
	"net/http"

	"reports-backend/internal/middleware"
	"reports-backend/internal/service"
	"reports-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes binds the report endpoints behind the admin gate
func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/api/reports", middleware.RequireRole("admin"))
	{
		reports.GET("/daily-sales", h.GetDailySales)
		reports.GET("/monthly-sales", h.GetMonthlySales)
		reports.GET("/order-status", h.GetOrderStatusReport)
		reports.GET("/customer-orders", h.GetCustomerOrderReport)
		reports.GET("/product-sales", h.GetProductSalesReport)
	}
}

// internalError logs the real failure for operators and answers with an
// opaque message, per the error taxonomy for data-access failures.
func internalError(c *gin.Context, report string, err error) {
	log.Printf("%s report failed: %v", report, err)
	c.JSON(http.StatusInternalServerError, response.Error("internal server error"))
}

// GetDailySales handles GET /api/reports/daily-sales
// @Summary      Daily sales report
// @Description  Orders grouped by UTC calendar day with totals and per-order details, newest day first
// @Tags         reports
// @Produce      json
// @Success      200 {object} response.Success{report=[]model.DailySalesRow}
// @Failure      401 {object} response.Failure
// @Failure      403 {object} response.Failure
// @Failure      500 {object} response.Failure
// @Security     BearerAuth
// @Router       /api/reports/daily-sales [get]
func (h *ReportHandler) GetDailySales(c *gin.Context) {
	rows, err := h.reportService.GetDailySales(c.Request.Context())
	if err != nil {
		internalError(c, "daily sales", err)
		return
	}
	c.JSON(http.StatusOK, response.Report(rows))
}

// GetMonthlySales handles GET /api/reports/monthly-sales
// @Summary      Monthly sales report
// @Description  Order counts and sales totals grouped by UTC calendar month, newest month first
// @Tags         reports
// @Produce      json
// @Success      200 {object} response.Success{report=[]model.MonthlySalesRow}
// @Failure      401 {object} response.Failure
// @Failure      403 {object} response.Failure
// @Failure      500 {object} response.Failure
// @Security     BearerAuth
// @Router       /api/reports/monthly-sales [get]
func (h *ReportHandler) GetMonthlySales(c *gin.Context) {
	rows, err := h.reportService.GetMonthlySales(c.Request.Context())
	if err != nil {
		internalError(c, "monthly sales", err)
		return
	}
	c.JSON(http.StatusOK, response.Report(rows))
}

// GetOrderStatusReport handles GET /api/reports/order-status
// @Summary      Order status report
// @Description  Per order status, each customer's order count, item count, spend and last order date
// @Tags         reports
// @Produce      json
// @Success      200 {object} response.Success{report=model.OrderStatusReport}
// @Failure      401 {object} response.Failure
// @Failure      403 {object} response.Failure
// @Failure      500 {object} response.Failure
// @Security     BearerAuth
// @Router       /api/reports/order-status [get]
func (h *ReportHandler) GetOrderStatusReport(c *gin.Context) {
	rep, err := h.reportService.GetOrderStatusReport(c.Request.Context())
	if err != nil {
		internalError(c, "order status", err)
		return
	}
	c.JSON(http.StatusOK, response.Report(rep))
}

// GetCustomerOrderReport handles GET /api/reports/customer-orders
// @Summary      Customer order report
// @Description  Per-customer summary over completed and confirmed orders, top spenders first
// @Tags         reports
// @Produce      json
// @Success      200 {object} response.Success{report=[]model.CustomerSummary}
// @Failure      401 {object} response.Failure
// @Failure      403 {object} response.Failure
// @Failure      500 {object} response.Failure
// @Security     BearerAuth
// @Router       /api/reports/customer-orders [get]
func (h *ReportHandler) GetCustomerOrderReport(c *gin.Context) {
	rows, err := h.reportService.GetCustomerOrderReport(c.Request.Context())
	if err != nil {
		internalError(c, "customer order", err)
		return
	}
	c.JSON(http.StatusOK, response.Report(rows))
}

// GetProductSalesReport handles GET /api/reports/product-sales
// @Summary      Product sales report
// @Description  Products ranked by quantity sold across completed and confirmed orders
// @Tags         reports
// @Produce      json
// @Success      200 {object} response.Success{report=[]model.ProductSalesRow}
// @Failure      401 {object} response.Failure
// @Failure      403 {object} response.Failure
// @Failure      500 {object} response.Failure
// @Security     BearerAuth
// @Router       /api/reports/product-sales [get]
func (h *ReportHandler) GetProductSalesReport(c *gin.Context) {
	rows, err := h.reportService.GetProductSalesReport(c.Request.Context())
	if err != nil {
		internalError(c, "product sales", err)
		return
	}
	c.JSON(http.StatusOK, response.Report(rows))
}
