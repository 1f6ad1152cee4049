package dto

import (
	"time"

	"github.com/Kal1-linux/CouponCo/internal/domain/event"
	"github.com/Kal1-linux/CouponCo/internal/types"
	"github.com/Kal1-linux/CouponCo/internal/validator"
)

// CreateEventRequest represents the request to add a sale event
type CreateEventRequest struct {
	Name string `json:"name" validate:"required"`
}

// Validate validates the CreateEventRequest
func (r *CreateEventRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToEvent converts the request into a domain event
func (r *CreateEventRequest) ToEvent() *event.Event {
	return &event.Event{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EVENT),
		Name:      r.Name,
		CreatedAt: time.Now().UTC(),
	}
}

// ListEventsResponse lists all sale events
type ListEventsResponse struct {
	Items []*event.Event `json:"items"`
	Total int            `json:"total"`
}
