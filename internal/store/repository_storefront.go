package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/models"
)

type storefrontRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewStorefrontRepository(db *DB, logger *logger.Logger) StorefrontRepository {
	logger.Debug().Msg("creating storefront repository")
	return &storefrontRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStorefront(row rowScanner) (models.StorefrontEntry, error) {
	var e models.StorefrontEntry
	err := row.Scan(&e.OwnerID, &e.Date, &e.OfferIDs[0], &e.OfferIDs[1], &e.OfferIDs[2], &e.OfferIDs[3], &e.ExpiresAt)
	if err != nil {
		return models.StorefrontEntry{}, err
	}
	e.Date = models.CalendarDate(e.Date)
	e.ExpiresAt = e.ExpiresAt.UTC()
	return e, nil
}

func (r *storefrontRepository) Find(ctx context.Context, ownerID int64, date time.Time) (models.StorefrontEntry, error) {
	log := logger.FromContext(ctx)

	var entry models.StorefrontEntry
	err := r.db.withRetry(ctx, func() error {
		var scanErr error
		entry, scanErr = scanStorefront(r.db.QueryRowContext(ctx, findStorefront, ownerID, models.CalendarDate(date)))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.StorefrontEntry{}, ErrStorefrontNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*storefrontRepository.Find").Int64("owner_id", ownerID).Msg("error selecting storefront")
		return models.StorefrontEntry{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return entry, nil
}

// InsertIfAbsent leans on the (user_id, store_date) primary key: the second
// concurrent writer hits ON CONFLICT DO NOTHING and sees zero rows affected.
func (r *storefrontRepository) InsertIfAbsent(ctx context.Context, entry models.StorefrontEntry) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, insertStorefrontIfAbsent,
		entry.OwnerID, models.CalendarDate(entry.Date),
		entry.OfferIDs[0], entry.OfferIDs[1], entry.OfferIDs[2], entry.OfferIDs[3],
		entry.ExpiresAt.UTC())
	if err != nil {
		if r.db.isUniqueViolation(err) {
			return false, nil
		}
		log.Err(err).Str("func", "*storefrontRepository.InsertIfAbsent").Int64("owner_id", entry.OwnerID).Msg("error inserting storefront")
		return false, fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (r *storefrontRepository) CountForDate(ctx context.Context, date time.Time) (int, error) {
	query, args, err := buildCountStorefrontsForDateQuery(models.CalendarDate(date))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var count int
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*storefrontRepository.CountForDate").Msg("error counting storefronts")
		return 0, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *storefrontRepository) History(ctx context.Context, ownerID int64, from, to time.Time) ([]models.StorefrontEntry, error) {
	log := logger.FromContext(ctx)

	if !from.IsZero() {
		from = models.CalendarDate(from)
	}
	if !to.IsZero() {
		to = models.CalendarDate(to)
	}
	query, args, err := buildStorefrontHistoryQuery(ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*storefrontRepository.History").Msg("error selecting storefront history")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.StorefrontEntry, 0)
	for rows.Next() {
		entry, err := scanStorefront(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return entries, nil
}
