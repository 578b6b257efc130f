package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/models"
)

type reminderRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewReminderRepository(db *DB, logger *logger.Logger) ReminderRepository {
	logger.Debug().Msg("creating reminder repository")
	return &reminderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reminderRepository) GetOrCreate(ctx context.Context, ownerID int64) (models.ReminderSubscription, error) {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createSubscriptionIfAbsent, ownerID); err != nil {
		log.Err(err).Str("func", "*reminderRepository.GetOrCreate").Msg("error creating subscription")
		return models.ReminderSubscription{}, fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	var sub models.ReminderSubscription
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, findSubscription, ownerID).Scan(&sub.OwnerID, &sub.Enabled)
	})
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.GetOrCreate").Msg("error selecting subscription")
		return models.ReminderSubscription{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return sub, nil
}

func (r *reminderRepository) SetEnabled(ctx context.Context, ownerID int64, enabled bool) error {
	if _, err := r.db.ExecContext(ctx, upsertSubscription, ownerID, enabled); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reminderRepository.SetEnabled").Msg("error saving subscription")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

func (r *reminderRepository) Disable(ctx context.Context, ownerID int64) error {
	if _, err := r.db.ExecContext(ctx, disableSubscription, ownerID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reminderRepository.Disable").Msg("error disabling subscription")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

func (r *reminderRepository) List(ctx context.Context, onlyEnabled bool) ([]models.ReminderSubscription, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSubscriptionsQuery(onlyEnabled)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.List").Msg("error listing subscriptions")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	subs := make([]models.ReminderSubscription, 0)
	for rows.Next() {
		var sub models.ReminderSubscription
		if err := rows.Scan(&sub.OwnerID, &sub.Enabled); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return subs, nil
}
