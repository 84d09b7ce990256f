package dto

import (
	"time"

	"github.com/dchu15/store_management_app/internal/core/domain"
	"github.com/dchu15/store_management_app/internal/utils"
)

// The cash-flow endpoints keep the snake_case wire format the frontend was
// built against; monetary values are fixed two-decimal strings.

// CustomerPaymentResponse represents one money-in line from a customer.
type CustomerPaymentResponse struct {
	PaymentID            string  `json:"payment_id"`
	InvoiceID            *int64  `json:"invoice_id"`
	CustomerID           int64   `json:"customer_id"`
	CustomerName         string  `json:"customer_name"`
	BusinessName         string  `json:"business_name"`
	AmountPaid           string  `json:"amount_paid"`
	PaymentMethod        string  `json:"payment_method"`
	PaymentDate          string  `json:"payment_date"`
	TransactionReference *string `json:"transaction_reference"`
	PaymentType          string  `json:"payment_type"`
	Status               string  `json:"status"`
	AdjustmentDetails    string  `json:"adjustment_details,omitempty"`
}

// CustomerPaymentsResponse is the body of the customer-payments endpoint.
type CustomerPaymentsResponse struct {
	CustomerPayments []CustomerPaymentResponse `json:"customer_payments"`
	TotalReceived    string                    `json:"total_received"`
	Count            int                       `json:"count"`
}

// CustomerRefundResponse represents one money-out line to a customer.
type CustomerRefundResponse struct {
	ReturnID         int64   `json:"return_id"`
	ReturnNumber     string  `json:"return_number"`
	CustomerID       int64   `json:"customer_id"`
	CustomerName     string  `json:"customer_name"`
	BusinessName     string  `json:"business_name"`
	ProductName      string  `json:"product_name"`
	RefundAmount     string  `json:"refund_amount"`
	RefundType       string  `json:"refund_type"`
	Reason           string  `json:"reason"`
	ReturnDate       string  `json:"return_date"`
	QuantityReturned int     `json:"quantity_returned"`
	ExchangeProduct  *string `json:"exchange_product"`
}

// CustomerRefundsResponse wraps customer refund lines with their total.
type CustomerRefundsResponse struct {
	CustomerRefunds []CustomerRefundResponse `json:"customer_refunds"`
	TotalRefunded   string                   `json:"total_refunded"`
	Count           int                      `json:"count"`
}

// SupplierPaymentResponse represents one money-out line to a supplier.
type SupplierPaymentResponse struct {
	TransactionID        int64    `json:"transaction_id"`
	SupplierID           int64    `json:"supplier_id"`
	SupplierName         string   `json:"supplier_name"`
	BusinessName         string   `json:"business_name"`
	Products             []string `json:"products"`
	Quantity             int      `json:"quantity"`
	AmountPaid           string   `json:"amount_paid"`
	PaymentMethod        *string  `json:"payment_method"`
	PaymentStatus        *string  `json:"payment_status"`
	TransactionDate      string   `json:"transaction_date"`
	ReferenceNumber      string   `json:"reference_number"`
	TransactionReference *string  `json:"transaction_reference"`
}

// SupplierPaymentsResponse is the body of the supplier-payments endpoint.
type SupplierPaymentsResponse struct {
	SupplierPayments []SupplierPaymentResponse `json:"supplier_payments"`
	TotalPaid        string                    `json:"total_paid"`
	Count            int                       `json:"count"`
}

// SupplierReceiptResponse represents one money-in line from a supplier refund.
type SupplierReceiptResponse struct {
	ReturnID         int64  `json:"return_id"`
	ReturnNumber     string `json:"return_number"`
	SupplierID       int64  `json:"supplier_id"`
	SupplierName     string `json:"supplier_name"`
	BusinessName     string `json:"business_name"`
	ProductName      string `json:"product_name"`
	RefundAmount     string `json:"refund_amount"`
	ReturnType       string `json:"return_type"`
	ReturnDate       string `json:"return_date"`
	QuantityReturned int    `json:"quantity_returned"`
	Status           string `json:"status"`
}

// SupplierReceiptsResponse is the body of the supplier-receipts endpoint.
type SupplierReceiptsResponse struct {
	SupplierReceipts []SupplierReceiptResponse `json:"supplier_receipts"`
	TotalReceived    string                    `json:"total_received"`
	Count            int                       `json:"count"`
}

// AdjustmentRefundResponse is one row of the dedicated customer-refunds
// endpoint, which serves only exchange adjustments in a narrower shape.
type AdjustmentRefundResponse struct {
	AdjustmentID   int64   `json:"adjustment_id"`
	ReturnNumber   string  `json:"return_number"`
	CustomerID     int64   `json:"customer_id"`
	CustomerName   string  `json:"customer_name"`
	BusinessName   string  `json:"business_name"`
	OldProduct     string  `json:"old_product"`
	NewProduct     *string `json:"new_product"`
	AmountPaid     string  `json:"amount_paid"`
	AdjustmentDate string  `json:"adjustment_date"`
	Status         string  `json:"status"`
	Reason         string  `json:"reason"`
}

// AdjustmentRefundsResponse is the body of the customer-refunds endpoint.
type AdjustmentRefundsResponse struct {
	CustomerAdjustmentRefunds []AdjustmentRefundResponse `json:"customer_adjustment_refunds"`
	TotalPaid                 string                     `json:"total_paid"`
	Count                     int                        `json:"count"`
}

// Transaction groups embedded in the summary's detailed breakdown.

type CustomerPaymentsGroupResponse struct {
	Amount       string                    `json:"amount"`
	Count        int                       `json:"count"`
	Transactions []CustomerPaymentResponse `json:"transactions"`
}

type CustomerRefundsGroupResponse struct {
	Amount       string                   `json:"amount"`
	Count        int                      `json:"count"`
	Transactions []CustomerRefundResponse `json:"transactions"`
}

type SupplierPaymentsGroupResponse struct {
	Amount       string                    `json:"amount"`
	Count        int                       `json:"count"`
	Transactions []SupplierPaymentResponse `json:"transactions"`
}

type SupplierReceiptsGroupResponse struct {
	Amount       string                    `json:"amount"`
	Count        int                       `json:"count"`
	Transactions []SupplierReceiptResponse `json:"transactions"`
}

// CashflowSummaryResponse is the body of the summary endpoint.
type CashflowSummaryResponse struct {
	CashInflow        CashInflowResponse        `json:"cash_inflow"`
	CashOutflow       CashOutflowResponse       `json:"cash_outflow"`
	NetCashflow       string                    `json:"net_cashflow"`
	DetailedBreakdown DetailedBreakdownResponse `json:"detailed_breakdown"`
	Summary           SummarySectionResponse    `json:"summary"`
}

// CashInflowResponse breaks cash received down by source. Supplier receipts go
// out under supplier_refunds here too, as the frontend has always consumed them.
type CashInflowResponse struct {
	CustomerPayments string `json:"customer_payments"`
	SupplierRefunds  string `json:"supplier_refunds"`
	TotalInflow      string `json:"total_inflow"`
}

// CashOutflowResponse breaks cash spent down by source.
type CashOutflowResponse struct {
	CustomerRefunds  string `json:"customer_refunds"`
	SupplierPayments string `json:"supplier_payments"`
	TotalOutflow     string `json:"total_outflow"`
}

type DetailedBreakdownResponse struct {
	CustomerTransactions CustomerTransactionsResponse `json:"customer_transactions"`
	SupplierTransactions SupplierTransactionsResponse `json:"supplier_transactions"`
}

type CustomerTransactionsResponse struct {
	PaymentsReceived CustomerPaymentsGroupResponse `json:"payments_received"`
	RefundsGiven     CustomerRefundsGroupResponse  `json:"refunds_given"`
}

type SupplierTransactionsResponse struct {
	PaymentsMade    SupplierPaymentsGroupResponse `json:"payments_made"`
	RefundsReceived SupplierReceiptsGroupResponse `json:"refunds_received"`
}

type SummarySectionResponse struct {
	TotalCustomerTransactions int    `json:"total_customer_transactions"`
	TotalSupplierTransactions int    `json:"total_supplier_transactions"`
	CashPosition              string `json:"cash_position"`
}

// DetailedCashflowResponse is the body of the detailed endpoint: the four base
// reports side by side. Supplier receipts are republished under the
// supplier_refunds key, as the frontend has always consumed them.
type DetailedCashflowResponse struct {
	CustomerPayments CustomerPaymentsResponse `json:"customer_payments"`
	CustomerRefunds  CustomerRefundsResponse  `json:"customer_refunds"`
	SupplierPayments SupplierPaymentsResponse `json:"supplier_payments"`
	SupplierRefunds  SupplierReceiptsResponse `json:"supplier_refunds"`
}

func formatDate(t time.Time) string {
	return t.Format(time.RFC3339)
}

func toCustomerPaymentResponse(line domain.CustomerPaymentLine) CustomerPaymentResponse {
	return CustomerPaymentResponse{
		PaymentID:            line.PaymentID,
		InvoiceID:            line.InvoiceID,
		CustomerID:           line.CustomerID,
		CustomerName:         line.CustomerName,
		BusinessName:         line.BusinessName,
		AmountPaid:           utils.FormatMoney(line.AmountPaid),
		PaymentMethod:        line.PaymentMethod,
		PaymentDate:          formatDate(line.PaymentDate),
		TransactionReference: line.TransactionReference,
		PaymentType:          line.PaymentType,
		Status:               line.Status,
		AdjustmentDetails:    line.AdjustmentDetails,
	}
}

// ToCustomerPaymentsResponse converts the customer payments report to its wire shape.
func ToCustomerPaymentsResponse(report *domain.CustomerPaymentsReport) CustomerPaymentsResponse {
	lines := make([]CustomerPaymentResponse, len(report.Payments))
	for i, p := range report.Payments {
		lines[i] = toCustomerPaymentResponse(p)
	}
	return CustomerPaymentsResponse{
		CustomerPayments: lines,
		TotalReceived:    utils.FormatMoney(report.TotalReceived),
		Count:            report.Count,
	}
}

func toCustomerRefundResponse(line domain.CustomerRefundLine) CustomerRefundResponse {
	return CustomerRefundResponse{
		ReturnID:         line.ReturnID,
		ReturnNumber:     line.ReturnNumber,
		CustomerID:       line.CustomerID,
		CustomerName:     line.CustomerName,
		BusinessName:     line.BusinessName,
		ProductName:      line.ProductName,
		RefundAmount:     utils.FormatMoney(line.RefundAmount),
		RefundType:       line.RefundType,
		Reason:           line.Reason,
		ReturnDate:       formatDate(line.ReturnDate),
		QuantityReturned: line.QuantityReturned,
		ExchangeProduct:  line.ExchangeProduct,
	}
}

// ToCustomerRefundsResponse converts the customer refunds report to its wire shape.
func ToCustomerRefundsResponse(report *domain.CustomerRefundsReport) CustomerRefundsResponse {
	lines := make([]CustomerRefundResponse, len(report.Refunds))
	for i, r := range report.Refunds {
		lines[i] = toCustomerRefundResponse(r)
	}
	return CustomerRefundsResponse{
		CustomerRefunds: lines,
		TotalRefunded:   utils.FormatMoney(report.TotalRefunded),
		Count:           report.Count,
	}
}

func toSupplierPaymentResponse(line domain.SupplierPaymentLine) SupplierPaymentResponse {
	return SupplierPaymentResponse{
		TransactionID:        line.TransactionID,
		SupplierID:           line.SupplierID,
		SupplierName:         line.SupplierName,
		BusinessName:         line.BusinessName,
		Products:             line.Products,
		Quantity:             line.Quantity,
		AmountPaid:           utils.FormatMoney(line.AmountPaid),
		PaymentMethod:        line.PaymentMethod,
		PaymentStatus:        line.PaymentStatus,
		TransactionDate:      formatDate(line.TransactionDate),
		ReferenceNumber:      line.ReferenceNumber,
		TransactionReference: line.TransactionReference,
	}
}

// ToSupplierPaymentsResponse converts the supplier payments report to its wire shape.
func ToSupplierPaymentsResponse(report *domain.SupplierPaymentsReport) SupplierPaymentsResponse {
	lines := make([]SupplierPaymentResponse, len(report.Payments))
	for i, p := range report.Payments {
		lines[i] = toSupplierPaymentResponse(p)
	}
	return SupplierPaymentsResponse{
		SupplierPayments: lines,
		TotalPaid:        utils.FormatMoney(report.TotalPaid),
		Count:            report.Count,
	}
}

func toSupplierReceiptResponse(line domain.SupplierReceiptLine) SupplierReceiptResponse {
	return SupplierReceiptResponse{
		ReturnID:         line.ReturnID,
		ReturnNumber:     line.ReturnNumber,
		SupplierID:       line.SupplierID,
		SupplierName:     line.SupplierName,
		BusinessName:     line.BusinessName,
		ProductName:      line.ProductName,
		RefundAmount:     utils.FormatMoney(line.RefundAmount),
		ReturnType:       line.ReturnType,
		ReturnDate:       formatDate(line.ReturnDate),
		QuantityReturned: line.QuantityReturned,
		Status:           line.Status,
	}
}

// ToSupplierReceiptsResponse converts the supplier receipts report to its wire shape.
func ToSupplierReceiptsResponse(report *domain.SupplierReceiptsReport) SupplierReceiptsResponse {
	lines := make([]SupplierReceiptResponse, len(report.Receipts))
	for i, r := range report.Receipts {
		lines[i] = toSupplierReceiptResponse(r)
	}
	return SupplierReceiptsResponse{
		SupplierReceipts: lines,
		TotalReceived:    utils.FormatMoney(report.TotalReceived),
		Count:            report.Count,
	}
}

// ToAdjustmentRefundsResponse converts the adjustment refund listing to its wire shape.
func ToAdjustmentRefundsResponse(report *domain.AdjustmentRefundsReport) AdjustmentRefundsResponse {
	lines := make([]AdjustmentRefundResponse, len(report.Refunds))
	for i, r := range report.Refunds {
		lines[i] = AdjustmentRefundResponse{
			AdjustmentID:   r.AdjustmentID,
			ReturnNumber:   r.ReturnNumber,
			CustomerID:     r.CustomerID,
			CustomerName:   r.CustomerName,
			BusinessName:   r.BusinessName,
			OldProduct:     r.OldProduct,
			NewProduct:     r.NewProduct,
			AmountPaid:     utils.FormatMoney(r.AmountPaid),
			AdjustmentDate: formatDate(r.AdjustmentDate),
			Status:         r.Status,
			Reason:         r.Reason,
		}
	}
	return AdjustmentRefundsResponse{
		CustomerAdjustmentRefunds: lines,
		TotalPaid:                 utils.FormatMoney(report.TotalPaid),
		Count:                     report.Count,
	}
}

// ToCashflowSummaryResponse converts the composed summary to its nested wire
// shape; each amount is formatted once at each level from the raw totals.
func ToCashflowSummaryResponse(summary *domain.CashflowSummary) CashflowSummaryResponse {
	payments := ToCustomerPaymentsResponse(&summary.CustomerPayments)
	refunds := ToCustomerRefundsResponse(&summary.CustomerRefunds)
	supplierPayments := ToSupplierPaymentsResponse(&summary.SupplierPayments)
	receipts := ToSupplierReceiptsResponse(&summary.SupplierReceipts)

	return CashflowSummaryResponse{
		CashInflow: CashInflowResponse{
			CustomerPayments: payments.TotalReceived,
			SupplierRefunds:  receipts.TotalReceived,
			TotalInflow:      utils.FormatMoney(summary.TotalInflow),
		},
		CashOutflow: CashOutflowResponse{
			CustomerRefunds:  refunds.TotalRefunded,
			SupplierPayments: supplierPayments.TotalPaid,
			TotalOutflow:     utils.FormatMoney(summary.TotalOutflow),
		},
		NetCashflow: utils.FormatMoney(summary.NetCashflow),
		DetailedBreakdown: DetailedBreakdownResponse{
			CustomerTransactions: CustomerTransactionsResponse{
				PaymentsReceived: CustomerPaymentsGroupResponse{
					Amount:       payments.TotalReceived,
					Count:        payments.Count,
					Transactions: payments.CustomerPayments,
				},
				RefundsGiven: CustomerRefundsGroupResponse{
					Amount:       refunds.TotalRefunded,
					Count:        refunds.Count,
					Transactions: refunds.CustomerRefunds,
				},
			},
			SupplierTransactions: SupplierTransactionsResponse{
				PaymentsMade: SupplierPaymentsGroupResponse{
					Amount:       supplierPayments.TotalPaid,
					Count:        supplierPayments.Count,
					Transactions: supplierPayments.SupplierPayments,
				},
				RefundsReceived: SupplierReceiptsGroupResponse{
					Amount:       receipts.TotalReceived,
					Count:        receipts.Count,
					Transactions: receipts.SupplierReceipts,
				},
			},
		},
		Summary: SummarySectionResponse{
			TotalCustomerTransactions: payments.Count + refunds.Count,
			TotalSupplierTransactions: supplierPayments.Count + receipts.Count,
			CashPosition:              string(summary.CashPosition),
		},
	}
}

// ToDetailedCashflowResponse assembles the combined detailed view from the
// four base reports.
func ToDetailedCashflowResponse(
	payments *domain.CustomerPaymentsReport,
	refunds *domain.CustomerRefundsReport,
	supplierPayments *domain.SupplierPaymentsReport,
	receipts *domain.SupplierReceiptsReport,
) DetailedCashflowResponse {
	return DetailedCashflowResponse{
		CustomerPayments: ToCustomerPaymentsResponse(payments),
		CustomerRefunds:  ToCustomerRefundsResponse(refunds),
		SupplierPayments: ToSupplierPaymentsResponse(supplierPayments),
		SupplierRefunds:  ToSupplierReceiptsResponse(receipts),
	}
}
