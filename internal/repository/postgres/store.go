package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Kal1-linux/CouponCo/internal/domain/store"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/logger"
	"github.com/Kal1-linux/CouponCo/internal/postgres"
	"github.com/Kal1-linux/CouponCo/internal/types"
)

type storeRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewStoreRepository(db *postgres.DB, logger *logger.Logger) store.Repository {
	return &storeRepository{db: db, logger: logger}
}

func (r *storeRepository) Create(ctx context.Context, s *store.Store) error {
	query := `
		INSERT INTO stores (
			id, name, logo_url, category, description, faq,
			stock, total_ratings, ratings_count, created_at, updated_at
		) VALUES (
			:id, :name, :logo_url, :category, :description, :faq,
			:stock, :total_ratings, :ratings_count, :created_at, :updated_at
		)`

	r.logger.Debugw("creating store", "store_id", s.ID, "name", s.Name)

	_, err := r.db.NamedExecContext(ctx, query, s)
	if err != nil {
		if isUniqueViolation(err) {
			return ierr.WithError(err).
				WithHint("A store with this name already exists").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create store").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *storeRepository) Get(ctx context.Context, id string) (*store.Store, error) {
	query := `SELECT * FROM stores WHERE id = :id`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get store").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("store not found").
			WithHintf("Store %s was not found", id).
			WithReportableDetails(map[string]any{"store_id": id}).
			Mark(ierr.ErrNotFound)
	}

	var s store.Store
	if err := rows.StructScan(&s); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get store").
			Mark(ierr.ErrDatabase)
	}
	return &s, nil
}

func (r *storeRepository) List(ctx context.Context, filter *types.StoreFilter) ([]*store.Store, error) {
	if filter == nil {
		filter = &types.StoreFilter{}
	}

	query := `SELECT * FROM stores WHERE 1=1`
	params := map[string]interface{}{
		"limit":  filter.GetLimit(),
		"offset": filter.GetOffset(),
	}
	if filter.Category != "" {
		query += ` AND category = :category`
		params["category"] = filter.Category
	}
	query += ` ORDER BY name ASC LIMIT :limit OFFSET :offset`

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list stores").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	stores := make([]*store.Store, 0)
	for rows.Next() {
		var s store.Store
		if err := rows.StructScan(&s); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to list stores").
				Mark(ierr.ErrDatabase)
		}
		stores = append(stores, &s)
	}
	return stores, nil
}

func (r *storeRepository) Update(ctx context.Context, id string, update store.Update) error {
	if update.IsEmpty() {
		return nil
	}

	// Build the SET clause from the enumerated updatable fields only; column
	// names never come from caller input.
	sets := []string{"updated_at = NOW()"}
	params := map[string]interface{}{"id": id}

	if update.Name != nil {
		sets = append(sets, "name = :name")
		params["name"] = *update.Name
	}
	if update.LogoURL != nil {
		sets = append(sets, "logo_url = :logo_url")
		params["logo_url"] = *update.LogoURL
	}
	if update.Category != nil {
		sets = append(sets, "category = :category")
		params["category"] = *update.Category
	}
	if update.Description != nil {
		sets = append(sets, "description = :description")
		params["description"] = *update.Description
	}
	if update.FAQ != nil {
		sets = append(sets, "faq = :faq")
		params["faq"] = []byte(*update.FAQ)
	}

	query := fmt.Sprintf(`UPDATE stores SET %s WHERE id = :id`, strings.Join(sets, ", "))

	result, err := r.db.NamedExecContext(ctx, query, params)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update store").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, id, "store")
}

func (r *storeRepository) IncrementStock(ctx context.Context, id string) error {
	query := `UPDATE stores SET stock = stock + 1, updated_at = NOW() WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update store stock").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, id, "store")
}

func (r *storeRepository) DecrementStock(ctx context.Context, id string) error {
	// GREATEST keeps the counter from going negative when removals race
	query := `UPDATE stores SET stock = GREATEST(stock - 1, 0), updated_at = NOW() WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update store stock").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, id, "store")
}

func (r *storeRepository) InsertRating(ctx context.Context, rating *store.Rating) error {
	query := `
		INSERT INTO store_ratings (id, user_id, store_id, rating, created_at)
		VALUES (:id, :user_id, :store_id, :rating, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, rating)
	if err != nil {
		if isUniqueViolation(err) {
			return ierr.WithError(err).
				WithHint("You have already rated this store").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to record rating").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *storeRepository) ApplyRating(ctx context.Context, storeID string, rating int) error {
	query := `
		UPDATE stores
		SET total_ratings = total_ratings + :rating,
			ratings_count = ratings_count + 1,
			updated_at = NOW()
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":     storeID,
		"rating": rating,
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to record rating").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, storeID, "store")
}

// requireRowAffected turns a zero-row UPDATE into a not found error
func requireRowAffected(result sql.Result, id string, entity string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Database operation failed").
			Mark(ierr.ErrDatabase)
	}
	if affected == 0 {
		return ierr.NewError(fmt.Sprintf("%s not found", entity)).
			WithHintf("The %s %s was not found", entity, id).
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
