package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/RealZimboGuy/flowbuilder/internal/domain"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/core"
)

var (
	ErrUserExists      = errors.New("username already exists")
	ErrInvalidUser     = errors.New("username and password are required")
	ErrInvalidPassword = errors.New("invalid username or password")
)

type UserManager struct {
	UserRepo UserRepo
	clock    core.Clock
}

func NewUserManager(userRepo UserRepo, clock core.Clock) *UserManager {
	if clock == nil {
		clock = core.NewRealClock()
	}
	return &UserManager{UserRepo: userRepo, clock: clock}
}

// CreateUser stores a new enabled user with a bcrypt hashed password. An
// empty apiKey leaves the key unset.
func (um *UserManager) CreateUser(ctx context.Context, username, password, apiKey string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidUser
	}
	existing, err := um.UserRepo.FindByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{
		Username: username,
		Password: string(hashed),
		Created:  um.clock.Now().UTC(),
		Enabled:  true,
	}
	if apiKey != "" {
		user.ApiKey = sql.NullString{String: apiKey, Valid: true}
	}
	if _, err := um.UserRepo.Save(user); err != nil {
		return nil, fmt.Errorf("save user %s: %w", username, err)
	}
	slog.InfoContext(ctx, "Created user", "username", username, "api_key", user.ApiKey.Valid)
	return user, nil
}

// Authenticate checks a username/password pair against the stored hash.
// Disabled users never authenticate.
func (um *UserManager) Authenticate(username, password string) (*domain.User, error) {
	u, err := um.UserRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.Enabled {
		return nil, ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}
	return u, nil
}

// AuthenticateApiKey resolves an enabled user by API key.
func (um *UserManager) AuthenticateApiKey(apiKey string) (*domain.User, error) {
	u, err := um.UserRepo.FindByApiKey(apiKey)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.Enabled {
		return nil, ErrInvalidPassword
	}
	return u, nil
}

func (um *UserManager) ListUsers() ([]domain.User, error) {
	return um.UserRepo.FindAll()
}
