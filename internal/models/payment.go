package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a customer-to-business money transfer against an invoice.
type Payment struct {
	PaymentID            int64           `db:"id"`
	InvoiceID            *int64          `db:"invoice_id"`
	CustomerID           int64           `db:"customer_id"`
	AmountPaid           decimal.Decimal `db:"amount_paid"`
	PaymentMethod        string          `db:"payment_method"`
	PaymentStatus        string          `db:"payment_status"`
	PaymentDate          time.Time       `db:"payment_date"`
	TransactionReference *string         `db:"transaction_reference"`
}
