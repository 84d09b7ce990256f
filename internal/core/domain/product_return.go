package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReturnType distinguishes a plain return from an exchange.
type ReturnType string

const (
	ReturnTypeReturn   ReturnType = "return"
	ReturnTypeExchange ReturnType = "exchange"
)

// ReturnStatus is the processing state of a product return.
type ReturnStatus string

const (
	ReturnPending   ReturnStatus = "Pending"
	ReturnProcessed ReturnStatus = "Processed"
	ReturnCompleted ReturnStatus = "Completed"
	ReturnCancelled ReturnStatus = "Cancelled"
)

// CashDirection is the cash movement a product return implies for the
// business, derived once from its two mutually exclusive amount fields.
type CashDirection int

const (
	// CashNone means the return moves no money.
	CashNone CashDirection = iota
	// CashInflow means the customer pays the business (exchange upcharge).
	CashInflow
	// CashOutflow means the business refunds the customer.
	CashOutflow
)

// ProductReturn is a customer return or exchange. An exchange encodes exactly
// one of two cash directions: RefundAmount > 0 (we pay the customer) or
// ExchangePriceDifference > 0 (the customer pays us).
type ProductReturn struct {
	ReturnID                int64           `json:"returnID"`
	ReturnNumber            string          `json:"returnNumber"`
	CustomerID              int64           `json:"customerID"`
	ProductID               int64           `json:"productID"`
	OriginalInvoiceID       *int64          `json:"originalInvoiceID"`
	ReturnType              ReturnType      `json:"returnType"`
	RefundAmount            decimal.Decimal `json:"refundAmount"`
	ExchangePriceDifference decimal.Decimal `json:"exchangePriceDifference"`
	Status                  ReturnStatus    `json:"status"`
	Reason                  string          `json:"reason"`
	QuantityReturned        int             `json:"quantityReturned"`
	ExchangeProductID       *int64          `json:"exchangeProductID"`
	ReturnDate              time.Time       `json:"returnDate"`
}

// CashDirection classifies the cash movement of the return. All sign checks
// on the two amount fields go through here so the convention lives in one
// place: an exchange where the customer pays the difference is an inflow, any
// positive refund is an outflow, everything else moves no money.
func (r ProductReturn) CashDirection() CashDirection {
	if r.ReturnType == ReturnTypeExchange &&
		r.ExchangePriceDifference.IsPositive() &&
		r.RefundAmount.IsZero() {
		return CashInflow
	}
	if r.RefundAmount.IsPositive() {
		return CashOutflow
	}
	return CashNone
}
