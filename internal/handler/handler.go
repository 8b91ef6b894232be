package handler

import (
	"errors"
	"net/http"
	"strconv"

	"budget-service/internal/config"
	"budget-service/internal/middleware"
	"budget-service/internal/models"
	"budget-service/internal/repository"
	"budget-service/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Router builds the full API route table.
func (h *Handler) Router(cfg *config.Config) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/health", h.Health).Methods("GET")

	// Public routes
	r.HandleFunc("/api/register", h.Register).Methods("POST")
	r.HandleFunc("/api/login", h.Login).Methods("POST")

	r.HandleFunc("/api/users", h.ListUsers).Methods("GET")
	r.HandleFunc("/api/users/{id}", h.GetUser).Methods("GET")
	r.HandleFunc("/api/users/{id}", h.UpdateUser).Methods("PUT")
	r.HandleFunc("/api/users/{id}", h.DeleteUser).Methods("DELETE")

	r.HandleFunc("/api/expenses", h.ListExpenses).Methods("GET")
	r.HandleFunc("/api/expenses/{id}", h.GetExpense).Methods("GET")
	r.HandleFunc("/api/expenses", h.CreateExpense).Methods("POST")
	r.HandleFunc("/api/expenses/{id}", h.UpdateExpense).Methods("PUT")
	r.HandleFunc("/api/expenses/{id}", h.DeleteExpense).Methods("DELETE")

	// Protected routes
	authRouter := r.PathPrefix("/api/me").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("", h.Me).Methods("GET")

	return r
}

// Health reports service liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, "API is healthy", nil)
}

// pathID extracts the {id} route variable. A non-integer id is a client
// error, reported in the envelope rather than left to the router.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// writeServiceError maps domain errors to envelope + status once, at the
// transport boundary. Anything unrecognized is a persistence-level fault.
func (h *Handler) writeServiceError(w http.ResponseWriter, entity string, err error) {
	var catErr *models.CategoryError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, repository.ErrDuplicateUsername):
		writeError(w, http.StatusConflict, "Username already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid Credentials")
	case errors.Is(err, service.ErrUnknownUser):
		writeError(w, http.StatusBadRequest, "User does not exist")
	case errors.As(err, &catErr):
		writeError(w, http.StatusBadRequest, catErr.Error())
	default:
		h.log.Errorf("Unexpected error: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
