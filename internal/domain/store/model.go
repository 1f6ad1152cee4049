package store

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Store represents a merchant whose coupons are listed on the site
type Store struct {
	ID           string          `json:"id" db:"id"`
	Name         string          `json:"name" db:"name"`
	LogoURL      string          `json:"logo_url" db:"logo_url"`
	Category     string          `json:"category" db:"category"`
	Description  string          `json:"description" db:"description"`
	FAQ          json.RawMessage `json:"faq,omitempty" db:"faq"`
	Stock        int             `json:"stock" db:"stock"`
	TotalRatings int             `json:"total_ratings" db:"total_ratings"`
	RatingsCount int             `json:"ratings_count" db:"ratings_count"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// AverageRating computes the mean of all submitted ratings.
// Returns zero when the store has no ratings yet.
func (s *Store) AverageRating() decimal.Decimal {
	if s.RatingsCount == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.TotalRatings)).
		Div(decimal.NewFromInt(int64(s.RatingsCount))).
		Round(2)
}

// FAQEntry is a single question/answer pair shown on the store page
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Rating is a single user-submitted store rating
type Rating struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	StoreID   string    `json:"store_id" db:"store_id"`
	Rating    int       `json:"rating" db:"rating"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Update is a partial update of a store. Nil fields are left untouched.
// The set of updatable fields is fixed here; the repository translates the
// non-nil fields into a single UPDATE statement.
type Update struct {
	Name        *string
	LogoURL     *string
	Category    *string
	Description *string
	FAQ         *json.RawMessage
}

// IsEmpty reports whether the update would change nothing
func (u Update) IsEmpty() bool {
	return u.Name == nil && u.LogoURL == nil && u.Category == nil &&
		u.Description == nil && u.FAQ == nil
}
