package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state of a customer payment.
type PaymentStatus string

const (
	PaymentSuccessful    PaymentStatus = "Successful"
	PaymentPartiallyPaid PaymentStatus = "Partially Paid"
	PaymentFailed        PaymentStatus = "Failed"
	PaymentPending       PaymentStatus = "Pending"
)

// Payment is a customer-to-business money transfer against an invoice.
type Payment struct {
	PaymentID            int64           `json:"paymentID"`
	InvoiceID            *int64          `json:"invoiceID"`
	CustomerID           int64           `json:"customerID"`
	AmountPaid           decimal.Decimal `json:"amountPaid"`
	PaymentMethod        string          `json:"paymentMethod"`
	PaymentStatus        PaymentStatus   `json:"paymentStatus"`
	PaymentDate          time.Time       `json:"paymentDate"`
	TransactionReference *string         `json:"transactionReference"`
}
