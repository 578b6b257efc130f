package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/cyphers-laptop/internal/logger"
)

type wishlistRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewWishlistRepository(db *DB, logger *logger.Logger) WishlistRepository {
	logger.Debug().Msg("creating wishlist repository")
	return &wishlistRepository{
		db:     db,
		logger: logger,
	}
}

func (r *wishlistRepository) Add(ctx context.Context, ownerID int64, offerID string) error {
	if _, err := r.db.ExecContext(ctx, insertWishlistItem, ownerID, strings.ToLower(offerID)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*wishlistRepository.Add").Msg("error adding wishlist item")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

func (r *wishlistRepository) Remove(ctx context.Context, ownerID int64, offerID string) error {
	if _, err := r.db.ExecContext(ctx, deleteWishlistItem, ownerID, strings.ToLower(offerID)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*wishlistRepository.Remove").Msg("error removing wishlist item")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

func (r *wishlistRepository) List(ctx context.Context, ownerID int64, offerIDs ...string) ([]string, error) {
	query, args, err := buildListWishlistQuery(ownerID, offerIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*wishlistRepository.List").Msg("error listing wishlist")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return ids, nil
}
