package repository

import (
	"database/sql"
	"testing"

	"budget-service/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestEnsureSchemaCreatesBothTables(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS expenses").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserAssignsID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	user := &models.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, repo.CreateUser(user))
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hash").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.CreateUser(&models.User{Username: "alice", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestFindUserByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, username, password_hash FROM users").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUserMissingRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE users SET").
		WithArgs("bob", "hash", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateUser(&models.User{ID: 42, Username: "bob", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUserReportsAbsence(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteUser(1))
	assert.ErrorIs(t, repo.DeleteUser(1), ErrNotFound)
}

func TestCreateExpenseAssignsID(t *testing.T) {
	repo, mock := newMockRepo(t)

	userID := int64(3)
	mock.ExpectQuery("INSERT INTO expenses").
		WithArgs("Lunch", "pizza", "12.50", "2025-06-01", "Food", &userID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	e := &models.Expense{
		Title:       "Lunch",
		Description: "pizza",
		Amount:      "12.50",
		Date:        "2025-06-01",
		Category:    "Food",
		UserID:      &userID,
	}
	require.NoError(t, repo.CreateExpense(e))
	assert.Equal(t, int64(11), e.ID)
}

func TestFindExpenseByIDScansNullOwner(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "amount", "date", "category", "user_id"}).
		AddRow(5, "Lunch", "pizza", "12.50", "2025-06-01", "Food", nil)
	mock.ExpectQuery("SELECT id, title, description, amount, date, category, user_id FROM expenses").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	e, err := repo.FindExpenseByID(5)
	require.NoError(t, err)
	assert.Nil(t, e.UserID)
	assert.Equal(t, "Food", e.Category)
}

func TestUpdateExpenseMissingRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE expenses").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateExpense(&models.Expense{ID: 99, Description: "x", Amount: "1", Date: "2025-06-01", Category: "Food"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListExpensesEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, title, description, amount, date, category, user_id FROM expenses").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "amount", "date", "category", "user_id"}))

	expenses, err := repo.ListExpenses()
	require.NoError(t, err)
	assert.NotNil(t, expenses)
	assert.Len(t, expenses, 0)
}

func TestCountOrphanExpenses(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.CountOrphanExpenses()
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
