package service

import (
	"errors"
	"time"

	"budget-service/internal/models"
	"budget-service/internal/repository"
)

// ExpenseInput carries a full or partial set of expense fields. A nil field
// was not supplied by the caller.
type ExpenseInput struct {
	Title       *string
	Description *string
	Amount      *string
	Category    *string
	UserID      *int64
}

// CreateExpense validates and persists a new expense. The date is always the
// server's current day; caller-supplied dates are ignored.
func (s *Service) CreateExpense(in ExpenseInput) (*models.Expense, error) {
	if err := models.ValidateCategory(in.Category); err != nil {
		return nil, err
	}
	if err := s.checkOwner(in.UserID); err != nil {
		return nil, err
	}

	e := &models.Expense{
		UserID:      in.UserID,
		Title:       strVal(in.Title),
		Description: strVal(in.Description),
		Amount:      strVal(in.Amount),
		Category:    strVal(in.Category),
		Date:        time.Now().Format("2006-01-02"),
	}
	if err := s.store.CreateExpense(e); err != nil {
		return nil, err
	}

	s.log.Infof("Expense created: %d", e.ID)
	return e, nil
}

// ListExpenses returns all expenses
func (s *Service) ListExpenses() ([]models.Expense, error) {
	return s.store.ListExpenses()
}

// GetExpense returns a single expense by id
func (s *Service) GetExpense(id int64) (*models.Expense, error) {
	return s.store.FindExpenseByID(id)
}

// UpdateExpense merges the supplied fields into the stored record. Fields
// absent from the input keep their stored value; the date is always carried
// forward unchanged.
func (s *Service) UpdateExpense(id int64, in ExpenseInput) (*models.Expense, error) {
	e, err := s.store.FindExpenseByID(id)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateCategory(in.Category); err != nil {
		return nil, err
	}
	if in.UserID != nil {
		if err := s.checkOwner(in.UserID); err != nil {
			return nil, err
		}
		e.UserID = in.UserID
	}

	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Amount != nil {
		e.Amount = *in.Amount
	}
	if in.Category != nil {
		e.Category = *in.Category
	}

	if err := s.store.UpdateExpense(e); err != nil {
		return nil, err
	}

	s.log.Infof("Expense updated: %d", e.ID)
	return e, nil
}

// DeleteExpense removes an expense permanently
func (s *Service) DeleteExpense(id int64) error {
	if err := s.store.DeleteExpense(id); err != nil {
		return err
	}
	s.log.Infof("Expense deleted: %d", id)
	return nil
}

// checkOwner verifies the referenced user exists. There is no foreign key on
// expenses.user_id, so this is the only referential check that runs.
func (s *Service) checkOwner(userID *int64) error {
	if userID == nil {
		return nil
	}
	_, err := s.store.FindUserByID(*userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUnknownUser
	}
	return err
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
