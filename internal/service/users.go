package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"budget-service/internal/models"
	"budget-service/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new user with a hashed password
func (s *Service) Register(username, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}

	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}

	// Usernames that are mail addresses get a welcome mail. Delivery failure
	// never fails the registration.
	if s.mailer != nil && strings.Contains(user.Username, "@") {
		if err := s.mailer.SendWelcome(user.Username, user.Username); err != nil {
			s.log.Errorf("Failed to send welcome email to %s: %v", user.Username, err)
		}
	}

	s.log.Infof("User registered: %s", user.Username)
	return user, nil
}

// Login authenticates a user and returns the user plus a signed JWT token
func (s *Service) Login(username, password string) (*models.User, string, error) {
	user, err := s.store.FindUserByUsername(username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	// Generate JWT
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(user.ID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Username)
	return user, tokenString, nil
}

// ListUsers returns all users
func (s *Service) ListUsers() ([]models.User, error) {
	return s.store.ListUsers()
}

// GetUser returns a single user by id
func (s *Service) GetUser(id int64) (*models.User, error) {
	return s.store.FindUserByID(id)
}

// UpdateUser replaces both fields of the user. This is deliberately not a
// merge: an omitted field arrives empty and is written as such.
func (s *Service) UpdateUser(id int64, username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           id,
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := s.store.UpdateUser(user); err != nil {
		return err
	}

	s.log.Infof("User updated: %d", id)
	return nil
}

// DeleteUser removes a user permanently. Expenses owned by the user are not
// touched.
func (s *Service) DeleteUser(id int64) error {
	if err := s.store.DeleteUser(id); err != nil {
		return err
	}
	s.log.Infof("User deleted: %d", id)
	return nil
}
