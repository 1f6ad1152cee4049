package category

import (
	"time"
)

// Category is an admin-managed grouping stores and coupons are filed under
type Category struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
