package dto

import (
	"encoding/json"
	"time"

	"github.com/Kal1-linux/CouponCo/internal/domain/store"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/types"
	"github.com/Kal1-linux/CouponCo/internal/validator"
	"github.com/shopspring/decimal"
)

// CreateStoreRequest represents the request to register a new store
type CreateStoreRequest struct {
	Name        string           `json:"name" validate:"required"`
	LogoURL     string           `json:"logo_url" validate:"omitempty,url"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	FAQ         []store.FAQEntry `json:"faq,omitempty"`
}

// Validate validates the CreateStoreRequest
func (r *CreateStoreRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToStore converts the request into a domain store
func (r *CreateStoreRequest) ToStore() (*store.Store, error) {
	now := time.Now().UTC()
	s := &store.Store{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_STORE),
		Name:        r.Name,
		LogoURL:     r.LogoURL,
		Category:    r.Category,
		Description: r.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if len(r.FAQ) > 0 {
		raw, err := json.Marshal(r.FAQ)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("FAQ entries could not be encoded").
				Mark(ierr.ErrValidation)
		}
		s.FAQ = raw
	}
	return s, nil
}

// UpdateStoreRequest represents a partial update of a store.
// Only the provided fields are changed.
type UpdateStoreRequest struct {
	Name        *string           `json:"name,omitempty"`
	LogoURL     *string           `json:"logo_url,omitempty" validate:"omitempty,url"`
	Category    *string           `json:"category,omitempty"`
	Description *string           `json:"description,omitempty"`
	FAQ         *[]store.FAQEntry `json:"faq,omitempty"`
}

// Validate validates the UpdateStoreRequest
func (r *UpdateStoreRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Name != nil && *r.Name == "" {
		return ierr.NewError("name cannot be empty").
			WithHint("Please provide a store name").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToUpdate converts the request into a domain update
func (r *UpdateStoreRequest) ToUpdate() (store.Update, error) {
	update := store.Update{
		Name:        r.Name,
		LogoURL:     r.LogoURL,
		Category:    r.Category,
		Description: r.Description,
	}
	if r.FAQ != nil {
		raw, err := json.Marshal(*r.FAQ)
		if err != nil {
			return store.Update{}, ierr.WithError(err).
				WithHint("FAQ entries could not be encoded").
				Mark(ierr.ErrValidation)
		}
		rawMsg := json.RawMessage(raw)
		update.FAQ = &rawMsg
	}
	return update, nil
}

// UpdateStoreFAQRequest replaces the store's FAQ list
type UpdateStoreFAQRequest struct {
	FAQ []store.FAQEntry `json:"faq" validate:"required,min=1,dive"`
}

// Validate validates the UpdateStoreFAQRequest
func (r *UpdateStoreFAQRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	for _, entry := range r.FAQ {
		if entry.Question == "" || entry.Answer == "" {
			return ierr.NewError("faq entries need both question and answer").
				WithHint("Each FAQ entry must have a question and an answer").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// AddRatingRequest records one user's rating of a store
type AddRatingRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// Validate validates the AddRatingRequest
func (r *AddRatingRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// StoreResponse represents a store in API responses. Coupons is populated
// only on single-store reads; list responses carry the bare store.
type StoreResponse struct {
	*store.Store
	AverageRating decimal.Decimal   `json:"average_rating"`
	Coupons       []*CouponResponse `json:"coupons,omitempty"`
}

// NewStoreResponse builds the response with the derived rating average
func NewStoreResponse(s *store.Store) *StoreResponse {
	return &StoreResponse{
		Store:         s,
		AverageRating: s.AverageRating(),
	}
}

// ListStoresResponse represents a paginated list of stores
type ListStoresResponse struct {
	Items []*StoreResponse `json:"items"`
	Total int              `json:"total"`
}
