package category

import (
	"context"
)

// Repository defines the interface for category data access
type Repository interface {
	Create(ctx context.Context, category *Category) error
	List(ctx context.Context) ([]*Category, error)
}
