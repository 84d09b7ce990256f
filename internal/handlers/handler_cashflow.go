package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/dchu15/store_management_app/internal/core/ports/services"
	"github.com/dchu15/store_management_app/internal/dto"
	"github.com/dchu15/store_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// cashflowHandler handles HTTP requests for the cash-flow reports.
type cashflowHandler struct {
	cashflowService portssvc.CashflowService
}

// newCashflowHandler creates a new cashflowHandler.
func newCashflowHandler(cs portssvc.CashflowService) *cashflowHandler {
	return &cashflowHandler{
		cashflowService: cs,
	}
}

// RegisterCashflowRoutes registers the cash-flow report routes. Every route
// requires the cashflow/read capability on top of authentication.
func RegisterCashflowRoutes(rg *gin.RouterGroup, cashflowService portssvc.CashflowService, userService portssvc.UserSvcFacade) {
	h := newCashflowHandler(cashflowService)

	cashflow := rg.Group("/cashflow", middleware.RequirePermission(userService, "cashflow", "read"))
	{
		cashflow.GET("/customer-payments", h.getCustomerPayments)
		cashflow.GET("/customer-refunds", h.getCustomerRefunds)
		cashflow.GET("/supplier-payments", h.getSupplierPayments)
		cashflow.GET("/supplier-receipts", h.getSupplierReceipts)
		cashflow.GET("/summary", h.getSummary)
		cashflow.GET("/summary/export", h.exportSummary)
		cashflow.GET("/detailed", h.getDetailed)
	}
}

// getCustomerPayments godoc
// @Summary Customer payments report
// @Description Money received from customers: settled invoice payments plus exchange adjustment payments.
// @Tags cashflow
// @Produce json
// @Success 200 {object} dto.CustomerPaymentsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashflow/customer-payments [get]
func (h *cashflowHandler) getCustomerPayments(c *gin.Context) {
	report, err := h.cashflowService.GetCustomerPayments(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerPaymentsResponse(report))
}

// getCustomerRefunds godoc
// @Summary Customer adjustment refunds
// @Description Exchange adjustments where the business pays the customer the price difference.
// @Tags cashflow
// @Produce json
// @Success 200 {object} dto.AdjustmentRefundsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashflow/customer-refunds [get]
func (h *cashflowHandler) getCustomerRefunds(c *gin.Context) {
	report, err := h.cashflowService.ListCustomerAdjustmentRefunds(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAdjustmentRefundsResponse(report))
}

// getSupplierPayments godoc
// @Summary Supplier payments report
// @Description Money paid to suppliers, extracted from purchase transaction payment notes.
// @Tags cashflow
// @Produce json
// @Success 200 {object} dto.SupplierPaymentsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashflow/supplier-payments [get]
func (h *cashflowHandler) getSupplierPayments(c *gin.Context) {
	report, err := h.cashflowService.GetSupplierPayments(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierPaymentsResponse(report))
}

// getSupplierReceipts godoc
// @Summary Supplier receipts report
// @Description Money received back from suppliers for completed damaged-goods returns.
// @Tags cashflow
// @Produce json
// @Success 200 {object} dto.SupplierReceiptsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashflow/supplier-receipts [get]
func (h *cashflowHandler) getSupplierReceipts(c *gin.Context) {
	report, err := h.cashflowService.GetSupplierReceipts(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierReceiptsResponse(report))
}

// getSummary godoc
// @Summary Cash flow summary
// @Description Composes the four base reports into totals, a detailed breakdown and the overall cash position.
// @Tags cashflow
// @Produce json
// @Success 200 {object} dto.CashflowSummaryResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashflow/summary [get]
func (h *cashflowHandler) getSummary(c *gin.Context) {
	summary, err := h.cashflowService.GetCashflowSummary(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCashflowSummaryResponse(summary))
}

// getDetailed godoc
// @Summary Detailed cash flow view
// @Description The four base reports side by side (supplier receipts served under supplier_refunds).
// @Tags cashflow
// @Produce json
// @Success 200 {object} dto.DetailedCashflowResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashflow/detailed [get]
func (h *cashflowHandler) getDetailed(c *gin.Context) {
	ctx := c.Request.Context()

	payments, err := h.cashflowService.GetCustomerPayments(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	refunds, err := h.cashflowService.GetCustomerRefunds(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	supplierPayments, err := h.cashflowService.GetSupplierPayments(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	receipts, err := h.cashflowService.GetSupplierReceipts(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDetailedCashflowResponse(payments, refunds, supplierPayments, receipts))
}

// exportSummary godoc
// @Summary Export cash flow summary as xlsx
// @Description Renders the cash flow summary into a spreadsheet download.
// @Tags cashflow
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashflow/summary/export [get]
func (h *cashflowHandler) exportSummary(c *gin.Context) {
	summary, err := h.cashflowService.GetCashflowSummary(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := dto.ToCashflowSummaryResponse(summary)

	f := excelize.NewFile()
	sheet := "Cash Flow Summary"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Metric")
	f.SetCellValue(sheet, "B1", "Amount")
	f.SetCellValue(sheet, "A2", "Cash Inflow")
	f.SetCellValue(sheet, "B2", resp.CashInflow.TotalInflow)
	f.SetCellValue(sheet, "A3", "Cash Outflow")
	f.SetCellValue(sheet, "B3", resp.CashOutflow.TotalOutflow)
	f.SetCellValue(sheet, "A4", "Net Cashflow")
	f.SetCellValue(sheet, "B4", resp.NetCashflow)
	f.SetCellValue(sheet, "A5", "Cash Position")
	f.SetCellValue(sheet, "B5", resp.Summary.CashPosition)

	f.SetCellValue(sheet, "A7", "Category")
	f.SetCellValue(sheet, "B7", "Amount")
	f.SetCellValue(sheet, "C7", "Count")
	categories := []struct {
		name   string
		amount string
		count  int
	}{
		{"Customer Payments Received", resp.DetailedBreakdown.CustomerTransactions.PaymentsReceived.Amount, resp.DetailedBreakdown.CustomerTransactions.PaymentsReceived.Count},
		{"Customer Refunds Given", resp.DetailedBreakdown.CustomerTransactions.RefundsGiven.Amount, resp.DetailedBreakdown.CustomerTransactions.RefundsGiven.Count},
		{"Supplier Payments Made", resp.DetailedBreakdown.SupplierTransactions.PaymentsMade.Amount, resp.DetailedBreakdown.SupplierTransactions.PaymentsMade.Count},
		{"Supplier Refunds Received", resp.DetailedBreakdown.SupplierTransactions.RefundsReceived.Amount, resp.DetailedBreakdown.SupplierTransactions.RefundsReceived.Count},
	}
	for i, cat := range categories {
		row := i + 8
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), cat.name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), cat.amount)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), cat.count)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="cashflow_summary.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to write spreadsheet", slog.String("error", err.Error()))
	}
}

// fail writes the generic error payload used by every cash-flow endpoint.
func (h *cashflowHandler) fail(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Error("Cash flow report failed", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
