package models

import (
	"database/sql"
	"time"
)

// StockTransaction is an inbound or outbound stock movement. Purchase rows may
// carry a free-form notes blob with an embedded payment sub-record; it is
// never trusted to be well-formed.
type StockTransaction struct {
	TransactionID   int64          `db:"id"`
	TransactionType string         `db:"transaction_type"`
	SupplierID      int64          `db:"supplier_id"`
	ProductID       int64          `db:"product_id"`
	Quantity        int            `db:"quantity"`
	TransactionDate time.Time      `db:"transaction_date"`
	ReferenceNumber string         `db:"reference_number"`
	Notes           sql.NullString `db:"notes"`
}
