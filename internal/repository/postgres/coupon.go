package postgres

import (
	"context"

	"github.com/Kal1-linux/CouponCo/internal/domain/coupon"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/logger"
	"github.com/Kal1-linux/CouponCo/internal/postgres"
	"github.com/Kal1-linux/CouponCo/internal/types"
)

type couponRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewCouponRepository(db *postgres.DB, logger *logger.Logger) coupon.Repository {
	return &couponRepository{db: db, logger: logger}
}

func (r *couponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	query := `
		INSERT INTO coupons (
			id, store_id, title, code, kind, category, link,
			due_date, description, times_redeemed, created_at, updated_at
		) VALUES (
			:id, :store_id, :title, :code, :kind, :category, :link,
			:due_date, :description, :times_redeemed, :created_at, :updated_at
		)`

	r.logger.Debugw("creating coupon", "coupon_id", c.ID, "store_id", c.StoreID)

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		if isUniqueViolation(err) {
			return ierr.WithError(err).
				WithHint("A coupon with this ID already exists").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create coupon").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *couponRepository) Get(ctx context.Context, id string) (*coupon.Coupon, error) {
	query := `SELECT * FROM coupons WHERE id = :id`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get coupon").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("coupon not found").
			WithHintf("Coupon %s was not found", id).
			WithReportableDetails(map[string]any{"coupon_id": id}).
			Mark(ierr.ErrNotFound)
	}

	var c coupon.Coupon
	if err := rows.StructScan(&c); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get coupon").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func (r *couponRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM coupons WHERE id = :id`

	r.logger.Debugw("deleting coupon", "coupon_id", id)

	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete coupon").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, id, "coupon")
}

func (r *couponRepository) List(ctx context.Context, filter *types.CouponFilter) ([]*coupon.Coupon, error) {
	if filter == nil {
		filter = &types.CouponFilter{}
	}

	query := `SELECT * FROM coupons WHERE 1=1`
	params := map[string]interface{}{
		"limit":  filter.GetLimit(),
		"offset": filter.GetOffset(),
	}
	if filter.StoreID != "" {
		query += ` AND store_id = :store_id`
		params["store_id"] = filter.StoreID
	}
	if filter.Kind != "" {
		query += ` AND kind = :kind`
		params["kind"] = filter.Kind
	}
	if filter.Category != "" {
		query += ` AND category = :category`
		params["category"] = filter.Category
	}
	if filter.EventID != "" {
		query += ` AND EXISTS (
			SELECT 1 FROM coupon_events ce
			WHERE ce.coupon_id = coupons.id AND ce.event_id = :event_id
		)`
		params["event_id"] = filter.EventID
	}
	query += ` ORDER BY due_date ASC LIMIT :limit OFFSET :offset`

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list coupons").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	coupons := make([]*coupon.Coupon, 0)
	for rows.Next() {
		var c coupon.Coupon
		if err := rows.StructScan(&c); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to list coupons").
				Mark(ierr.ErrDatabase)
		}
		coupons = append(coupons, &c)
	}
	return coupons, nil
}

func (r *couponRepository) AttachEvents(ctx context.Context, couponID string, eventIDs []string) error {
	query := `
		INSERT INTO coupon_events (coupon_id, event_id)
		VALUES (:coupon_id, :event_id)`

	for _, eventID := range eventIDs {
		_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
			"coupon_id": couponID,
			"event_id":  eventID,
		})
		if err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return ierr.WithError(err).
				WithHint("Failed to associate coupon with event").
				Mark(ierr.ErrDatabase)
		}
	}
	return nil
}

func (r *couponRepository) IncrementRedemptions(ctx context.Context, id string) error {
	query := `UPDATE coupons SET times_redeemed = times_redeemed + 1, updated_at = NOW() WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update redemption count").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, id, "coupon")
}
