package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductReturn is a customer return or exchange. For exchanges, exactly one
// of RefundAmount (we pay the customer) and ExchangePriceDifference (the
// customer pays us) carries a positive amount.
type ProductReturn struct {
	ReturnID                int64           `db:"id"`
	ReturnNumber            string          `db:"return_number"`
	CustomerID              int64           `db:"customer_id"`
	ProductID               int64           `db:"product_id"`
	OriginalInvoiceID       *int64          `db:"original_invoice_id"`
	ReturnType              string          `db:"return_type"`
	RefundAmount            decimal.Decimal `db:"refund_amount"`
	ExchangePriceDifference decimal.Decimal `db:"exchange_price_difference"`
	Status                  string          `db:"status"`
	Reason                  string          `db:"reason"`
	QuantityReturned        int             `db:"quantity_returned"`
	ExchangeProductID       *int64          `db:"exchange_product_id"`
	ReturnDate              time.Time       `db:"return_date"`
}
