package repository

import (
	"database/sql"
	"fmt"

	"budget-service/internal/models"
)

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id`
	err := r.db.QueryRow(query, user.Username, user.PasswordHash).Scan(&user.ID)
	if isUniqueViolation(err) {
		return ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// ListUsers retrieves all users
func (r *Repository) ListUsers() ([]models.User, error) {
	rows, err := r.db.Query(`SELECT id, username, password_hash FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

// FindUserByID retrieves a user by id
func (r *Repository) FindUserByID(id int64) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password_hash FROM users WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// FindUserByUsername retrieves a user by username
func (r *Repository) FindUserByUsername(username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password_hash FROM users WHERE username = $1`
	err := r.db.QueryRow(query, username).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateUser replaces both mutable fields of the user. It is not a merge:
// whatever the caller supplies is written verbatim.
func (r *Repository) UpdateUser(user *models.User) error {
	query := `UPDATE users SET username = $1, password_hash = $2 WHERE id = $3`
	res, err := r.db.Exec(query, user.Username, user.PasswordHash, user.ID)
	if isUniqueViolation(err) {
		return ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes a user. Owned expenses are left in place; the orphan
// sweep job reports them.
func (r *Repository) DeleteUser(id int64) error {
	res, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
