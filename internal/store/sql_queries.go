package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// Table and column names match the layout the chat layer reads directly.
const (
	tableCredentials   = "valorant_login"
	tableSubscriptions = "store_reminder"
	tableStorefronts   = "cached_stores"
	tableWishlist      = "wishlist"
)

var schemaTables = []string{tableCredentials, tableSubscriptions, tableStorefronts, tableWishlist}

var storefrontColumns = []string{"user_id", "store_date", "skin1_uuid", "skin2_uuid", "skin3_uuid", "skin4_uuid", "expires_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	checkTableExists = `SELECT 1 FROM %s WHERE 1 = 0;`

	insertCredential = `INSERT INTO valorant_login (user_id, username, password, region)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT DO NOTHING;`

	findCredentialByOwner = `SELECT user_id, username, password, region
	FROM valorant_login
	WHERE user_id = $1;`

	findCredentialByAccount = `SELECT user_id, username, password, region
	FROM valorant_login
	WHERE username = $1;`

	updateCredentialSecret = `UPDATE valorant_login
	SET password = $1
	WHERE username = $2;`

	deleteCredentialByOwner = `DELETE FROM valorant_login WHERE user_id = $1;`

	findStorefront = `SELECT user_id, store_date, skin1_uuid, skin2_uuid, skin3_uuid, skin4_uuid, expires_at
	FROM cached_stores
	WHERE user_id = $1 AND store_date = $2;`

	insertStorefrontIfAbsent = `INSERT INTO cached_stores (user_id, store_date, skin1_uuid, skin2_uuid, skin3_uuid, skin4_uuid, expires_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (user_id, store_date) DO NOTHING;`

	createSubscriptionIfAbsent = `INSERT INTO store_reminder (user_id, enabled)
	VALUES ($1, FALSE)
	ON CONFLICT (user_id) DO NOTHING;`

	findSubscription = `SELECT user_id, enabled FROM store_reminder WHERE user_id = $1;`

	upsertSubscription = `INSERT INTO store_reminder (user_id, enabled)
	VALUES ($1, $2)
	ON CONFLICT (user_id) DO UPDATE SET enabled = excluded.enabled;`

	disableSubscription = `UPDATE store_reminder SET enabled = FALSE WHERE user_id = $1;`

	insertWishlistItem = `INSERT INTO wishlist (user_id, skin_uuid)
	VALUES ($1, $2)
	ON CONFLICT (user_id, skin_uuid) DO NOTHING;`

	deleteWishlistItem = `DELETE FROM wishlist WHERE user_id = $1 AND skin_uuid = $2;`
)

// buildListSubscriptionsQuery selects every subscription in owner order.
// onlyEnabled narrows the result to opted-in owners.
func buildListSubscriptionsQuery(onlyEnabled bool) (string, []any, error) {
	q := psql.Select("user_id", "enabled").
		From(tableSubscriptions).
		OrderBy("user_id")
	if onlyEnabled {
		q = q.Where(sq.Eq{"enabled": true})
	}
	return q.ToSql()
}

// buildStorefrontHistoryQuery selects an owner's cached storefronts with
// store_date in [from, to], newest first. A zero bound is open.
func buildStorefrontHistoryQuery(ownerID int64, from, to time.Time) (string, []any, error) {
	q := psql.Select(storefrontColumns...).
		From(tableStorefronts).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("store_date DESC")
	if !from.IsZero() {
		q = q.Where(sq.GtOrEq{"store_date": from})
	}
	if !to.IsZero() {
		q = q.Where(sq.LtOrEq{"store_date": to})
	}
	return q.ToSql()
}

// buildCountStorefrontsForDateQuery counts the cache entries written for date.
func buildCountStorefrontsForDateQuery(date time.Time) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(tableStorefronts).
		Where(sq.Eq{"store_date": date}).
		ToSql()
}

// buildListWishlistQuery selects an owner's wishlist, optionally restricted to
// the given offer ids.
func buildListWishlistQuery(ownerID int64, offerIDs []string) (string, []any, error) {
	q := psql.Select("skin_uuid").
		From(tableWishlist).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("skin_uuid")
	if len(offerIDs) > 0 {
		q = q.Where(sq.Eq{"skin_uuid": offerIDs})
	}
	return q.ToSql()
}
