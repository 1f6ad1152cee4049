package postgres

import (
	"context"

	"github.com/Kal1-linux/CouponCo/internal/domain/event"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/logger"
	"github.com/Kal1-linux/CouponCo/internal/postgres"
)

type eventRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewEventRepository(db *postgres.DB, logger *logger.Logger) event.Repository {
	return &eventRepository{db: db, logger: logger}
}

func (r *eventRepository) Create(ctx context.Context, e *event.Event) error {
	query := `
		INSERT INTO events (id, name, created_at)
		VALUES (:id, :name, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, e)
	if err != nil {
		if isUniqueViolation(err) {
			return ierr.WithError(err).
				WithHintf("Event %s already exists", e.Name).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create event").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *eventRepository) Get(ctx context.Context, id string) (*event.Event, error) {
	query := `SELECT * FROM events WHERE id = :id`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get event").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("event not found").
			WithHintf("Event %s was not found", id).
			WithReportableDetails(map[string]any{"event_id": id}).
			Mark(ierr.ErrNotFound)
	}

	var e event.Event
	if err := rows.StructScan(&e); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get event").
			Mark(ierr.ErrDatabase)
	}
	return &e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*event.Event, error) {
	query := `SELECT * FROM events ORDER BY name ASC`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list events").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	events := make([]*event.Event, 0)
	for rows.Next() {
		var e event.Event
		if err := rows.StructScan(&e); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to list events").
				Mark(ierr.ErrDatabase)
		}
		events = append(events, &e)
	}
	return events, nil
}
