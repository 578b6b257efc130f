package store

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistRepository_AddLowercases(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWishlistRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO wishlist").
		WithArgs(int64(4), "abc-def").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Add(testContext(), 4, "ABC-DEF"))
}

func TestWishlistRepository_Remove(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWishlistRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM wishlist").
		WithArgs(int64(4), "abc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Remove(testContext(), 4, "abc"))
}

func TestWishlistRepository_ListMatching(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWishlistRepository(db, logger.Nop())

	mock.ExpectQuery("FROM wishlist WHERE user_id = \\$1 AND skin_uuid IN \\(\\$2,\\$3\\)").
		WithArgs(int64(4), "o1", "o2").
		WillReturnRows(sqlmock.NewRows([]string{"skin_uuid"}).AddRow("o2"))

	ids, err := repo.List(testContext(), 4, "o1", "o2")
	require.NoError(t, err)
	assert.Equal(t, []string{"o2"}, ids)
}
