package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrNotFound is returned when no row exists for the requested identity.
var ErrNotFound = errors.New("not found")

// ErrDuplicateUsername is returned when the unique constraint on
// users.username rejects an insert or update.
var ErrDuplicateUsername = errors.New("username already exists")

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// expenses.user_id carries no foreign key on purpose: deleting a user must
// neither cascade to its expenses nor fail because they exist.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id SERIAL PRIMARY KEY,
		title TEXT,
		description TEXT NOT NULL,
		amount TEXT NOT NULL,
		date TEXT NOT NULL,
		category TEXT NOT NULL,
		user_id INTEGER
	)`,
}

// EnsureSchema creates the tables if they do not exist.
func (r *Repository) EnsureSchema() error {
	for _, stmt := range schema {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
