package handler

import (
	"encoding/json"
	"net/http"

	"budget-service/internal/service"
)

// expenseRequest is the body of expense create and update. Every field is
// optional so the service can tell "absent" from "set to empty". There is no
// date field: the server assigns the date and never updates it.
type expenseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Amount      *string `json:"amount"`
	Category    *string `json:"category"`
	UserID      *int64  `json:"user_id"`
}

func (req *expenseRequest) toInput() service.ExpenseInput {
	return service.ExpenseInput{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		UserID:      req.UserID,
	}
}

// ListExpenses returns all expenses
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svc.ListExpenses()
	if err != nil {
		h.writeServiceError(w, "Expense", err)
		return
	}
	writeSuccess(w, http.StatusOK, "Expenses retrieved successfully", expenses)
}

// GetExpense returns a single expense by id
func (h *Handler) GetExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}

	expense, err := h.svc.GetExpense(id)
	if err != nil {
		h.writeServiceError(w, "Expense", err)
		return
	}
	writeSuccess(w, http.StatusOK, "Expense retrieved successfully", expense)
}

// CreateExpense handles expense creation
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.svc.CreateExpense(req.toInput()); err != nil {
		h.writeServiceError(w, "Expense", err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Expense created successfully", nil)
}

// UpdateExpense merges the supplied fields into an existing expense
func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.svc.UpdateExpense(id, req.toInput()); err != nil {
		h.writeServiceError(w, "Expense", err)
		return
	}
	writeSuccess(w, http.StatusOK, "Expense updated successfully", nil)
}

// DeleteExpense removes an expense permanently
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}

	if err := h.svc.DeleteExpense(id); err != nil {
		h.writeServiceError(w, "Expense", err)
		return
	}
	writeSuccess(w, http.StatusOK, "Expense deleted successfully", nil)
}
