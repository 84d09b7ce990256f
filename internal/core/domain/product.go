package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item.
type Product struct {
	ProductID    int64           `json:"productID"`
	ProductName  string          `json:"productName"`
	SKU          string          `json:"sku"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// DamagedProduct links a supplier return to the product that was damaged.
type DamagedProduct struct {
	DamagedProductID int64     `json:"damagedProductID"`
	ProductID        int64     `json:"productID"`
	Quantity         int       `json:"quantity"`
	ReportedAt       time.Time `json:"reportedAt"`
}
