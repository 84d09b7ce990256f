package domain

import "time"

// Supplier is a vendor the business purchases stock from.
type Supplier struct {
	SupplierID    int64     `json:"supplierID"`
	Name          string    `json:"name"` // business name
	ContactPerson string    `json:"contactPerson"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	CreatedAt     time.Time `json:"createdAt"`
}
