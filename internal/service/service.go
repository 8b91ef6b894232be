package service

import (
	"errors"

	"budget-service/internal/config"
	"budget-service/internal/models"

	"github.com/sirupsen/logrus"
)

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password. Callers must not be able to tell which usernames exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnknownUser is returned when an expense references a user id that does
// not exist.
var ErrUnknownUser = errors.New("user does not exist")

// Store is the persistence surface the service depends on. It is implemented
// by *repository.Repository.
type Store interface {
	CreateUser(user *models.User) error
	ListUsers() ([]models.User, error)
	FindUserByID(id int64) (*models.User, error)
	FindUserByUsername(username string) (*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id int64) error

	CreateExpense(e *models.Expense) error
	ListExpenses() ([]models.Expense, error)
	FindExpenseByID(id int64) (*models.Expense, error)
	UpdateExpense(e *models.Expense) error
	DeleteExpense(id int64) error
}

// Mailer delivers account notifications. A nil Mailer disables them.
type Mailer interface {
	SendWelcome(to, username string) error
}

// Service handles business logic
type Service struct {
	store  Store
	mailer Mailer
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service
func NewService(store Store, mailer Mailer, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{store: store, mailer: mailer, log: log, config: cfg}
}
