package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"budget-service/internal/middleware"
	"budget-service/internal/models"
)

// credentialsRequest is the body of both register and login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userView is the read shape of a user. The password hash never leaves the
// server.
type userView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type loginView struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

func toUserView(u *models.User) userView {
	return userView{ID: u.ID, Username: u.Username}
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.svc.Register(req.Username, req.Password); err != nil {
		h.writeServiceError(w, "User", err)
		return
	}
	writeSuccess(w, http.StatusCreated, "User registered successfully", nil)
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		h.writeServiceError(w, "User", err)
		return
	}
	writeSuccess(w, http.StatusOK, "Login successful", loginView{
		UserID:   user.ID,
		Username: user.Username,
		Token:    token,
	})
}

// ListUsers returns all users without their password hashes
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers()
	if err != nil {
		h.writeServiceError(w, "User", err)
		return
	}

	views := make([]userView, 0, len(users))
	for i := range users {
		views = append(views, toUserView(&users[i]))
	}
	writeSuccess(w, http.StatusOK, "Users retrieved successfully", views)
}

// GetUser returns a single user by id
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.svc.GetUser(id)
	if err != nil {
		h.writeServiceError(w, "User", err)
		return
	}
	writeSuccess(w, http.StatusOK, "User retrieved successfully", toUserView(user))
}

// UpdateUser replaces a user's username and password
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.UpdateUser(id, req.Username, req.Password); err != nil {
		h.writeServiceError(w, "User", err)
		return
	}
	writeSuccess(w, http.StatusOK, "User updated successfully", nil)
}

// DeleteUser removes a user permanently
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.svc.DeleteUser(id); err != nil {
		h.writeServiceError(w, "User", err)
		return
	}
	writeSuccess(w, http.StatusOK, "User deleted successfully", nil)
}

// Me returns the user identified by the bearer token
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	sub, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok || sub == "" {
		writeError(w, http.StatusUnauthorized, "Invalid Credentials")
		return
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid Credentials")
		return
	}

	user, err := h.svc.GetUser(id)
	if err != nil {
		h.writeServiceError(w, "User", err)
		return
	}
	writeSuccess(w, http.StatusOK, "User retrieved successfully", toUserView(user))
}
