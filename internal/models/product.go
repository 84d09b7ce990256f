package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item.
type Product struct {
	ProductID    int64           `db:"id"`
	ProductName  string          `db:"product_name"`
	SKU          string          `db:"sku"`
	SellingPrice decimal.Decimal `db:"selling_price"`
	CreatedAt    time.Time       `db:"created_at"`
}

// DamagedProduct records a damaged unit batch pending (or already part of) a
// return to the supplier. Supplier returns reference products through it.
type DamagedProduct struct {
	DamagedProductID int64     `db:"id"`
	ProductID        int64     `db:"product_id"`
	Quantity         int       `db:"quantity"`
	ReportedAt       time.Time `db:"reported_at"`
}
