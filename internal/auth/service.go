package auth

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mybooksapp/mybooks/internal/config"
	"github.com/mybooksapp/mybooks/internal/entities"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
)

// UserStore defines the interface for user data access.
type UserStore interface {
	Create(user *entities.User) error
	GetByUsername(username string) (*entities.User, error)
}

// Service handles credential verification and implicit signup.
type Service struct {
	users  UserStore
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(users UserStore, cfg config.Auth) *Service {
	return &Service{
		users:  users,
		config: cfg,
	}
}

// Authenticate verifies a username/password pair against the user store.
//
// An unknown username is an implicit signup: the account is created with the
// hashed password and returned with created=true. A known username must
// match its stored hash or the call fails with ErrInvalidCredentials.
// Exactly one user row is created or zero, never more.
func (s *Service) Authenticate(username, password string) (user *entities.User, created bool, err error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, false, ErrUsernameRequired
	}
	if password == "" {
		return nil, false, ErrPasswordRequired
	}

	existing, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.signup(username, password)
		}
		return nil, false, fmt.Errorf("failed to find user: %w", err)
	}

	if err := CheckPassword(password, existing.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return nil, false, ErrInvalidCredentials
		}
		return nil, false, fmt.Errorf("failed to verify password: %w", err)
	}

	return existing, false, nil
}

// signup creates the account for a first-time username.
func (s *Service) signup(username, password string) (*entities.User, bool, error) {
	passwordHash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := s.users.Create(user); err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	return user, true, nil
}
