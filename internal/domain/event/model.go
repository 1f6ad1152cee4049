package event

import (
	"time"
)

// Event is an admin-curated sale event (e.g. "Black Friday") that coupons
// can be associated with when they are created.
type Event struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
