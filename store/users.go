package store

import (
	"database/sql"
	"fmt"

	"friendbook/models"
)

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(user *models.User) error {
	_, err := s.db.Exec(
		"INSERT INTO users (id, username, first_name, last_name, password, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		user.ID, user.Username, user.FirstName, user.LastName, user.Password, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *UserStore) FindByID(id string) (*models.User, error) {
	return s.findOne("SELECT id, username, first_name, last_name, password, created_at, updated_at FROM users WHERE id = ?", id)
}

func (s *UserStore) FindByUsername(username string) (*models.User, error) {
	return s.findOne("SELECT id, username, first_name, last_name, password, created_at, updated_at FROM users WHERE username = ?", username)
}

func (s *UserStore) findOne(query, arg string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(query, arg).Scan(
		&user.ID, &user.Username, &user.FirstName, &user.LastName, &user.Password, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &user, nil
}

func (s *UserStore) UsernameTaken(username string) (bool, error) {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)", username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return exists, nil
}

// Search matches usernames and names against a substring, for finding a
// friend to request.
func (s *UserStore) Search(q string, limit int) ([]models.User, error) {
	pattern := "%" + q + "%"
	rows, err := s.db.Query(`
		SELECT id, username, first_name, last_name, created_at
		FROM users
		WHERE username LIKE ? OR CONCAT(first_name, ' ', last_name) LIKE ?
		ORDER BY username
		LIMIT ?
	`, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.FirstName, &user.LastName, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
