package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierReturn is a damaged-goods return sent back to a supplier, with the
// refund the supplier owes (or has paid) the business.
type SupplierReturn struct {
	ReturnID         int64           `db:"id"`
	ReturnNumber     string          `db:"return_number"`
	SupplierID       int64           `db:"supplier_id"`
	DamagedProductID *int64          `db:"damaged_product_id"`
	RefundAmount     decimal.Decimal `db:"refund_amount"`
	ReturnType       string          `db:"return_type"`
	Status           string          `db:"status"`
	QuantityReturned int             `db:"quantity_returned"`
	ReturnDate       time.Time       `db:"return_date"`
}
