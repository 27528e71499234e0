package store

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStoreFindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "first_name", "last_name", "password", "created_at", "updated_at"}).
		AddRow("jason", "jason", "Jason", "Seifer", "hash", testTime, testTime)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = ?")).
		WithArgs("jason").
		WillReturnRows(rows)

	s := NewUserStore(db)
	user, err := s.FindByID("jason")
	require.NoError(t, err)
	assert.Equal(t, "Jason Seifer", user.FullName())
}

func TestUserStoreFindByIDMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = ?")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "first_name", "last_name", "password", "created_at", "updated_at"}))

	s := NewUserStore(db)
	_, err = s.FindByID("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStoreSearch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "first_name", "last_name", "created_at"}).
		AddRow("mike", "mike", "Mike", "Hendrickson", testTime)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("%mike%", "%mike%", 20).
		WillReturnRows(rows)

	s := NewUserStore(db)
	users, err := s.Search("mike", 20)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "mike", users[0].Username)
}
