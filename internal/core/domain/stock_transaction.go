package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of stock movement.
type TransactionType string

const (
	TransactionPurchase   TransactionType = "Purchase"
	TransactionSale       TransactionType = "Sale"
	TransactionAdjustment TransactionType = "Adjustment"
)

// StockTransaction is a stock movement. Purchase rows may carry a notes blob
// with an embedded payment sub-record.
type StockTransaction struct {
	TransactionID   int64           `json:"transactionID"`
	TransactionType TransactionType `json:"transactionType"`
	SupplierID      int64           `json:"supplierID"`
	ProductID       int64           `json:"productID"`
	Quantity        int             `json:"quantity"`
	TransactionDate time.Time       `json:"transactionDate"`
	ReferenceNumber string          `json:"referenceNumber"`
	Notes           *string         `json:"notes"`
}

// PurchaseNoteProduct is a line item embedded in a purchase note.
type PurchaseNoteProduct struct {
	Name string `json:"name"`
}

// PurchaseNote is the payment sub-record optionally embedded in a purchase
// transaction's notes blob. All fields are optional; PaymentAmount accepts
// both quoted and bare JSON numbers.
type PurchaseNote struct {
	PaymentAmount        decimal.Decimal       `json:"payment_amount"`
	PaymentMethod        *string               `json:"payment_method"`
	PaymentStatus        *string               `json:"payment_status"`
	TransactionReference *string               `json:"transaction_reference"`
	Products             []PurchaseNoteProduct `json:"products"`
}

// ParsePurchaseNote best-effort parses a notes blob into a PurchaseNote.
// Malformed syntax or wrong value types yield (nil, false): the note is
// treated as carrying no payment info, never as an error.
func ParsePurchaseNote(raw string) (*PurchaseNote, bool) {
	if raw == "" {
		return nil, false
	}
	var note PurchaseNote
	if err := json.Unmarshal([]byte(raw), &note); err != nil {
		return nil, false
	}
	return &note, true
}
