package models

import "time"

// Supplier is a vendor the business purchases stock from. Name holds the
// business name; ContactPerson is the display name used in reports.
type Supplier struct {
	SupplierID    int64     `db:"id"`
	Name          string    `db:"name"`
	ContactPerson string    `db:"contact_person"`
	Email         string    `db:"email"`
	Phone         string    `db:"phone"`
	CreatedAt     time.Time `db:"created_at"`
}
