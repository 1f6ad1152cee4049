package postgres

import (
	"context"

	"github.com/Kal1-linux/CouponCo/internal/domain/redemption"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/logger"
	"github.com/Kal1-linux/CouponCo/internal/postgres"
)

type redemptionRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewRedemptionRepository(db *postgres.DB, logger *logger.Logger) redemption.Repository {
	return &redemptionRepository{db: db, logger: logger}
}

// Create inserts a ledger entry. Duplicate (user, coupon) pairs are rejected
// by the table's unique constraint, which makes the insert the linearization
// point for concurrent redemption attempts.
func (r *redemptionRepository) Create(ctx context.Context, red *redemption.Redemption) error {
	query := `
		INSERT INTO redemptions (id, user_id, coupon_id, redeemed_at)
		VALUES (:id, :user_id, :coupon_id, :redeemed_at)`

	r.logger.Debugw("recording redemption",
		"user_id", red.UserID,
		"coupon_id", red.CouponID,
	)

	_, err := r.db.NamedExecContext(ctx, query, red)
	if err != nil {
		if isUniqueViolation(err) {
			return ierr.NewError("coupon already redeemed").
				WithHint("You have already redeemed this coupon").
				WithReportableDetails(map[string]any{
					"coupon_id": red.CouponID,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to record redemption").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *redemptionRepository) Exists(ctx context.Context, userID, couponID string) (bool, error) {
	query := `SELECT 1 FROM redemptions WHERE user_id = :user_id AND coupon_id = :coupon_id`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"user_id":   userID,
		"coupon_id": couponID,
	})
	if err != nil {
		return false, ierr.WithError(err).
			WithHint("Failed to check redemption").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	return rows.Next(), nil
}

func (r *redemptionRepository) ListByUser(ctx context.Context, userID string) ([]*redemption.Redemption, error) {
	query := `SELECT * FROM redemptions WHERE user_id = :user_id ORDER BY redeemed_at DESC`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list redemptions").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	redemptions := make([]*redemption.Redemption, 0)
	for rows.Next() {
		var red redemption.Redemption
		if err := rows.StructScan(&red); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to list redemptions").
				Mark(ierr.ErrDatabase)
		}
		redemptions = append(redemptions, &red)
	}
	return redemptions, nil
}
