package store

import (
	"regexp"
	"testing"
	"time"

	"friendbook/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func testFriendship() *models.Friendship {
	return &models.Friendship{
		ID:          "f1",
		RequesterID: "jason",
		RecipientID: "mike",
		State:       models.StatePending,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func TestFriendshipStoreCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO friendships")).
		WithArgs("f1", "jason", "mike", models.StatePending, testTime, testTime,
			"jason", "mike", "mike", "jason").
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := NewFriendshipStore(db)
	require.NoError(t, s.Create(testFriendship()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendshipStoreCreateExistingPair(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// The guarded insert matches an existing row in either direction and
	// affects nothing.
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO friendships")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	s := NewFriendshipStore(db)
	assert.ErrorIs(t, s.Create(testFriendship()), ErrAlreadyRelated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendshipStoreFindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "requester_id", "recipient_id", "state", "created_at", "updated_at"}).
		AddRow("f1", "jason", "mike", "pending", testTime, testTime)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, requester_id, recipient_id, state, created_at, updated_at FROM friendships WHERE id = ?")).
		WithArgs("f1").
		WillReturnRows(rows)

	s := NewFriendshipStore(db)
	f, err := s.FindByID("f1")
	require.NoError(t, err)
	assert.Equal(t, "jason", f.RequesterID)
	assert.Equal(t, models.StatePending, f.State)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendshipStoreFindByIDMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM friendships WHERE id = ?")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "requester_id", "recipient_id", "state", "created_at", "updated_at"}))

	s := NewFriendshipStore(db)
	_, err = s.FindByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFriendshipStoreAccept(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE friendships SET state = ?, updated_at = ? WHERE id = ? AND state = ?")).
		WithArgs(models.StateAccepted, testTime, "f1", models.StatePending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := NewFriendshipStore(db)
	transitioned, err := s.Accept("f1", testTime)
	require.NoError(t, err)
	assert.True(t, transitioned)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendshipStoreAcceptAlreadyAccepted(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE friendships SET state = ?")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	s := NewFriendshipStore(db)
	transitioned, err := s.Accept("f1", testTime)
	require.NoError(t, err)
	assert.False(t, transitioned)
}

func TestFriendshipStoreListForUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "requester_id", "recipient_id", "state", "created_at", "updated_at",
		"id", "username", "first_name", "last_name", "created_at",
	}).
		AddRow("f2", "jim", "jason", "accepted", testTime, testTime,
			"jim", "jim", "Jim", "Hoskins", testTime).
		AddRow("f1", "jason", "mike", "pending", testTime, testTime,
			"mike", "mike", "Mike", "Hendrickson", testTime)
	mock.ExpectQuery(regexp.QuoteMeta("FROM friendships f")).
		WithArgs("jason", "jason", "jason").
		WillReturnRows(rows)

	s := NewFriendshipStore(db)
	listed, err := s.ListForUser("jason")
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Counterpart is always the other side, whether the user requested or
	// received.
	assert.Equal(t, "jim", listed[0].Counterpart.ID)
	assert.Equal(t, "Jim Hoskins", listed[0].Counterpart.FullName)
	assert.Equal(t, "mike", listed[1].Counterpart.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
