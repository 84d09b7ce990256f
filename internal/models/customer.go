package models

import "time"

// Customer is a buyer of the business. Display name comes from the contact
// person; invoices and payments reference it by id.
type Customer struct {
	CustomerID    int64     `db:"id"`
	ContactPerson string    `db:"contact_person"`
	BusinessName  string    `db:"business_name"`
	Email         string    `db:"email"`
	Phone         string    `db:"phone"`
	CreatedAt     time.Time `db:"created_at"`
}
