package dto

import (
	"time"

	"github.com/Kal1-linux/CouponCo/internal/domain/category"
	"github.com/Kal1-linux/CouponCo/internal/types"
	"github.com/Kal1-linux/CouponCo/internal/validator"
)

// CreateCategoryRequest represents the request to add a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// Validate validates the CreateCategoryRequest
func (r *CreateCategoryRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToCategory converts the request into a domain category
func (r *CreateCategoryRequest) ToCategory() *category.Category {
	return &category.Category{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CATEGORY),
		Name:      r.Name,
		CreatedAt: time.Now().UTC(),
	}
}

// ListCategoriesResponse lists all categories
type ListCategoriesResponse struct {
	Items []*category.Category `json:"items"`
	Total int                  `json:"total"`
}
