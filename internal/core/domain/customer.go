package domain

import "time"

// Customer is a buyer of the business.
type Customer struct {
	CustomerID    int64     `json:"customerID"`
	ContactPerson string    `json:"contactPerson"`
	BusinessName  string    `json:"businessName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	CreatedAt     time.Time `json:"createdAt"`
}
