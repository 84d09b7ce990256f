package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierReturn is a damaged-goods return sent back to a supplier.
type SupplierReturn struct {
	ReturnID         int64           `json:"returnID"`
	ReturnNumber     string          `json:"returnNumber"`
	SupplierID       int64           `json:"supplierID"`
	DamagedProductID *int64          `json:"damagedProductID"`
	RefundAmount     decimal.Decimal `json:"refundAmount"`
	ReturnType       string          `json:"returnType"`
	Status           ReturnStatus    `json:"status"`
	QuantityReturned int             `json:"quantityReturned"`
	ReturnDate       time.Time       `json:"returnDate"`
}
