package postgres

import (
	"context"

	"github.com/Kal1-linux/CouponCo/internal/domain/category"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/logger"
	"github.com/Kal1-linux/CouponCo/internal/postgres"
)

type categoryRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewCategoryRepository(db *postgres.DB, logger *logger.Logger) category.Repository {
	return &categoryRepository{db: db, logger: logger}
}

func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (id, name, created_at)
		VALUES (:id, :name, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		if isUniqueViolation(err) {
			return ierr.WithError(err).
				WithHintf("Category %s already exists", c.Name).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create category").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	query := `SELECT * FROM categories ORDER BY name ASC`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list categories").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	categories := make([]*category.Category, 0)
	for rows.Next() {
		var c category.Category
		if err := rows.StructScan(&c); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to list categories").
				Mark(ierr.ErrDatabase)
		}
		categories = append(categories, &c)
	}
	return categories, nil
}
