package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment type discriminators for customer payment lines.
const (
	PaymentTypeRegular    = "regular_payment"
	PaymentTypeAdjustment = "adjustment_payment"
)

// RefundTypeAdjustment replaces the stored return type on exchange refunds.
const RefundTypeAdjustment = "adjustment_refund"

// AdjustmentRefundReason is the synthesized reason on adjustment refunds,
// overriding whatever reason was stored with the return.
const AdjustmentRefundReason = "Adjustment - We pay customer extra amount for product exchange"

// UnknownProductName is the placeholder used when a product link is missing.
const UnknownProductName = "Unknown Product"

// CashPosition classifies the sign of the net cash flow.
type CashPosition string

const (
	CashPositionPositive CashPosition = "Positive"
	CashPositionNegative CashPosition = "Negative"
	CashPositionNeutral  CashPosition = "Neutral"
)

// CashPositionOf returns the position for a net amount; zero is Neutral.
func CashPositionOf(net decimal.Decimal) CashPosition {
	switch net.Sign() {
	case 1:
		return CashPositionPositive
	case -1:
		return CashPositionNegative
	default:
		return CashPositionNeutral
	}
}

// --- Rows materialized by the cashflow repository (joins resolved) ---

// SettledPayment is a payment row joined with its customer.
type SettledPayment struct {
	Payment
	CustomerName         string `json:"customerName"`
	CustomerBusinessName string `json:"customerBusinessName"`
}

// ReturnDetail is a product return joined with its customer, product and
// optional exchange-target product.
type ReturnDetail struct {
	ProductReturn
	CustomerName         string  `json:"customerName"`
	CustomerBusinessName string  `json:"customerBusinessName"`
	ProductName          string  `json:"productName"`
	ExchangeProductName  *string `json:"exchangeProductName"`
}

// PurchaseTransaction is a purchase stock transaction joined with its supplier.
type PurchaseTransaction struct {
	StockTransaction
	SupplierName         string `json:"supplierName"`
	SupplierBusinessName string `json:"supplierBusinessName"`
}

// SupplierReturnDetail is a supplier return joined with its supplier.
type SupplierReturnDetail struct {
	SupplierReturn
	SupplierName         string `json:"supplierName"`
	SupplierBusinessName string `json:"supplierBusinessName"`
}

// --- Report line items produced by the aggregator ---

// CustomerPaymentLine is one money-in line from a customer: either a regular
// invoice payment or an exchange adjustment where the customer pays extra.
// PaymentID is a string because adjustment lines synthesize a composite
// "ADJ-<id>" identifier that must not collide with payment ids.
type CustomerPaymentLine struct {
	PaymentID            string          `json:"paymentID"`
	InvoiceID            *int64          `json:"invoiceID"`
	CustomerID           int64           `json:"customerID"`
	CustomerName         string          `json:"customerName"`
	BusinessName         string          `json:"businessName"`
	AmountPaid           decimal.Decimal `json:"amountPaid"`
	PaymentMethod        string          `json:"paymentMethod"`
	PaymentDate          time.Time       `json:"paymentDate"`
	TransactionReference *string         `json:"transactionReference"`
	PaymentType          string          `json:"paymentType"`
	Status               string          `json:"status"`
	AdjustmentDetails    string          `json:"adjustmentDetails,omitempty"`
}

// CustomerRefundLine is one money-out line to a customer.
type CustomerRefundLine struct {
	ReturnID         int64           `json:"returnID"`
	ReturnNumber     string          `json:"returnNumber"`
	CustomerID       int64           `json:"customerID"`
	CustomerName     string          `json:"customerName"`
	BusinessName     string          `json:"businessName"`
	ProductName      string          `json:"productName"`
	RefundAmount     decimal.Decimal `json:"refundAmount"`
	RefundType       string          `json:"refundType"`
	Reason           string          `json:"reason"`
	ReturnDate       time.Time       `json:"returnDate"`
	QuantityReturned int             `json:"quantityReturned"`
	ExchangeProduct  *string         `json:"exchangeProduct"`
}

// SupplierPaymentLine is one money-out line to a supplier, extracted from a
// purchase transaction's embedded payment note.
type SupplierPaymentLine struct {
	TransactionID        int64           `json:"transactionID"`
	SupplierID           int64           `json:"supplierID"`
	SupplierName         string          `json:"supplierName"`
	BusinessName         string          `json:"businessName"`
	Products             []string        `json:"products"`
	Quantity             int             `json:"quantity"`
	AmountPaid           decimal.Decimal `json:"amountPaid"`
	PaymentMethod        *string         `json:"paymentMethod"`
	PaymentStatus        *string         `json:"paymentStatus"`
	TransactionDate      time.Time       `json:"transactionDate"`
	ReferenceNumber      string          `json:"referenceNumber"`
	TransactionReference *string         `json:"transactionReference"`
}

// SupplierReceiptLine is one money-in line from a supplier refund.
type SupplierReceiptLine struct {
	ReturnID         int64           `json:"returnID"`
	ReturnNumber     string          `json:"returnNumber"`
	SupplierID       int64           `json:"supplierID"`
	SupplierName     string          `json:"supplierName"`
	BusinessName     string          `json:"businessName"`
	ProductName      string          `json:"productName"`
	RefundAmount     decimal.Decimal `json:"refundAmount"`
	ReturnType       string          `json:"returnType"`
	ReturnDate       time.Time       `json:"returnDate"`
	QuantityReturned int             `json:"quantityReturned"`
	Status           string          `json:"status"`
}

// AdjustmentRefundLine is one row of the adjustment-refund listing served by
// the dedicated customer-refunds endpoint (a narrower shape than
// CustomerRefundLine, kept as observed in the original API).
type AdjustmentRefundLine struct {
	AdjustmentID   int64           `json:"adjustmentID"`
	ReturnNumber   string          `json:"returnNumber"`
	CustomerID     int64           `json:"customerID"`
	CustomerName   string          `json:"customerName"`
	BusinessName   string          `json:"businessName"`
	OldProduct     string          `json:"oldProduct"`
	NewProduct     *string         `json:"newProduct"`
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	AdjustmentDate time.Time       `json:"adjustmentDate"`
	Status         string          `json:"status"`
	Reason         string          `json:"reason"`
}

// --- Aggregated reports ---

// CustomerPaymentsReport lists money received from customers with its
// unrounded running total.
type CustomerPaymentsReport struct {
	Payments      []CustomerPaymentLine `json:"payments"`
	TotalReceived decimal.Decimal       `json:"totalReceived"`
	Count         int                   `json:"count"`
}

// CustomerRefundsReport lists money refunded to customers.
type CustomerRefundsReport struct {
	Refunds       []CustomerRefundLine `json:"refunds"`
	TotalRefunded decimal.Decimal      `json:"totalRefunded"`
	Count         int                  `json:"count"`
}

// SupplierPaymentsReport lists money paid to suppliers.
type SupplierPaymentsReport struct {
	Payments  []SupplierPaymentLine `json:"payments"`
	TotalPaid decimal.Decimal       `json:"totalPaid"`
	Count     int                   `json:"count"`
}

// SupplierReceiptsReport lists money received back from suppliers.
type SupplierReceiptsReport struct {
	Receipts      []SupplierReceiptLine `json:"receipts"`
	TotalReceived decimal.Decimal       `json:"totalReceived"`
	Count         int                   `json:"count"`
}

// AdjustmentRefundsReport is the result of the dedicated customer-refunds
// listing.
type AdjustmentRefundsReport struct {
	Refunds   []AdjustmentRefundLine `json:"refunds"`
	TotalPaid decimal.Decimal        `json:"totalPaid"`
	Count     int                    `json:"count"`
}

// CashflowSummary composes the four base reports into the overall position.
// Totals stay unrounded; display rounding happens at the API boundary.
type CashflowSummary struct {
	CustomerPayments CustomerPaymentsReport `json:"customerPayments"`
	CustomerRefunds  CustomerRefundsReport  `json:"customerRefunds"`
	SupplierPayments SupplierPaymentsReport `json:"supplierPayments"`
	SupplierReceipts SupplierReceiptsReport `json:"supplierReceipts"`
	TotalInflow      decimal.Decimal        `json:"totalInflow"`
	TotalOutflow     decimal.Decimal        `json:"totalOutflow"`
	NetCashflow      decimal.Decimal        `json:"netCashflow"`
	CashPosition     CashPosition           `json:"cashPosition"`
}
