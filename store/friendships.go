package store

import (
	"database/sql"
	"fmt"
	"time"

	"friendbook/models"
)

type FriendshipStore struct {
	db *sql.DB
}

func NewFriendshipStore(db *sql.DB) *FriendshipStore {
	return &FriendshipStore{db: db}
}

// Create inserts a friendship only if no record exists for the pair in either
// direction. The presence check and the insert are a single statement, so two
// racing requests for the same pair cannot both succeed.
func (s *FriendshipStore) Create(f *models.Friendship) error {
	result, err := s.db.Exec(`
		INSERT INTO friendships (id, requester_id, recipient_id, state, created_at, updated_at)
		SELECT ?, ?, ?, ?, ?, ?
		FROM DUAL
		WHERE NOT EXISTS (
			SELECT 1 FROM friendships
			WHERE (requester_id = ? AND recipient_id = ?)
			   OR (requester_id = ? AND recipient_id = ?)
		)
	`, f.ID, f.RequesterID, f.RecipientID, f.State, f.CreatedAt, f.UpdatedAt,
		f.RequesterID, f.RecipientID, f.RecipientID, f.RequesterID)
	if err != nil {
		return fmt.Errorf("insert friendship: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert friendship: %w", err)
	}
	if affected == 0 {
		return ErrAlreadyRelated
	}
	return nil
}

func (s *FriendshipStore) FindByID(id string) (*models.Friendship, error) {
	var f models.Friendship
	err := s.db.QueryRow(
		"SELECT id, requester_id, recipient_id, state, created_at, updated_at FROM friendships WHERE id = ?",
		id,
	).Scan(&f.ID, &f.RequesterID, &f.RecipientID, &f.State, &f.CreatedAt, &f.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query friendship: %w", err)
	}
	return &f, nil
}

// Accept moves a pending friendship to accepted and stamps the acceptance
// time. It reports whether a row actually transitioned; false means the
// friendship was not pending (or does not exist), which callers distinguish
// with FindByID.
func (s *FriendshipStore) Accept(id string, at time.Time) (bool, error) {
	result, err := s.db.Exec(
		"UPDATE friendships SET state = ?, updated_at = ? WHERE id = ? AND state = ?",
		models.StateAccepted, at, id, models.StatePending,
	)
	if err != nil {
		return false, fmt.Errorf("accept friendship: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("accept friendship: %w", err)
	}
	return affected > 0, nil
}

// ListForUser returns every friendship the user participates in, as requester
// or recipient, joined with the counterpart user, newest first.
func (s *FriendshipStore) ListForUser(userID string) ([]models.FriendshipWithUser, error) {
	rows, err := s.db.Query(`
		SELECT f.id, f.requester_id, f.recipient_id, f.state, f.created_at, f.updated_at,
			   u.id, u.username, u.first_name, u.last_name, u.created_at
		FROM friendships f
		JOIN users u ON u.id = IF(f.requester_id = ?, f.recipient_id, f.requester_id)
		WHERE f.requester_id = ? OR f.recipient_id = ?
		ORDER BY f.created_at DESC
	`, userID, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("list friendships: %w", err)
	}
	defer rows.Close()

	var friendships []models.FriendshipWithUser
	for rows.Next() {
		var f models.FriendshipWithUser
		var user models.User
		if err := rows.Scan(
			&f.ID, &f.RequesterID, &f.RecipientID, &f.State, &f.CreatedAt, &f.UpdatedAt,
			&user.ID, &user.Username, &user.FirstName, &user.LastName, &user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan friendship: %w", err)
		}
		f.Counterpart = *user.ToResponse()
		friendships = append(friendships, f)
	}
	return friendships, rows.Err()
}
