package repository

import (
	"database/sql"
	"fmt"

	"budget-service/internal/models"
)

// CreateExpense creates a new expense in the database
func (r *Repository) CreateExpense(e *models.Expense) error {
	query := `
		INSERT INTO expenses (title, description, amount, date, category, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRow(query, e.Title, e.Description, e.Amount, e.Date, e.Category, e.UserID).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// ListExpenses retrieves all expenses
func (r *Repository) ListExpenses() ([]models.Expense, error) {
	query := `SELECT id, title, description, amount, date, category, user_id FROM expenses`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Amount, &e.Date, &e.Category, &e.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

// FindExpenseByID retrieves an expense by id
func (r *Repository) FindExpenseByID(id int64) (*models.Expense, error) {
	e := &models.Expense{}
	query := `SELECT id, title, description, amount, date, category, user_id FROM expenses WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&e.ID, &e.Title, &e.Description, &e.Amount, &e.Date, &e.Category, &e.UserID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	return e, nil
}

// UpdateExpense writes the full expense row. Merge semantics live in the
// service; by the time a record reaches here every field is final.
func (r *Repository) UpdateExpense(e *models.Expense) error {
	query := `
		UPDATE expenses
		SET title = $1, description = $2, amount = $3, date = $4, category = $5, user_id = $6
		WHERE id = $7`
	res, err := r.db.Exec(query, e.Title, e.Description, e.Amount, e.Date, e.Category, e.UserID, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExpense removes an expense by id
func (r *Repository) DeleteExpense(id int64) error {
	res, err := r.db.Exec(`DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountOrphanExpenses counts expenses whose user_id no longer resolves to an
// existing user.
func (r *Repository) CountOrphanExpenses() (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM expenses e
		WHERE e.user_id IS NOT NULL
		  AND NOT EXISTS (SELECT 1 FROM users u WHERE u.id = e.user_id)`
	var n int64
	if err := r.db.QueryRow(query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count orphan expenses: %w", err)
	}
	return n, nil
}
