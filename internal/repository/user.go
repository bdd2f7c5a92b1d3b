package repository

import (
	"database/sql"
	"errors"

	"github.com/RealZimboGuy/flowbuilder/internal/domain"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/core"
)

// UserRepository provides persistence methods for the users table.
type UserRepository struct {
	db    *sql.DB
	clock core.Clock
}

func NewUserRepository(db *sql.DB, clock core.Clock) *UserRepository {
	return &UserRepository{db: db, clock: clock}
}

const userColumns = `id, username, password, api_key, created, enabled`

// Save inserts a new user and returns its generated id.
// Created is set to now when it is zero.
func (r *UserRepository) Save(u *domain.User) (int64, error) {
	if u.Created.IsZero() {
		u.Created = r.clock.Now().UTC()
	}

	base := `
        INSERT INTO users (username, password, api_key, created, enabled)
        VALUES (` + placeholders(5) + `)
    `

	var id int64
	if supportsReturning() {
		err := r.db.QueryRow(base+" RETURNING id", u.Username, u.Password, u.ApiKey, u.Created, u.Enabled).Scan(&id)
		if err != nil {
			return 0, err
		}
	} else {
		res, err := r.db.Exec(base, u.Username, u.Password, u.ApiKey, u.Created, u.Enabled)
		if err != nil {
			return 0, err
		}
		if id, err = res.LastInsertId(); err != nil {
			return 0, err
		}
	}
	u.ID = id
	return id, nil
}

// FindByUsername fetches a user by exact username. Returns (nil, nil) if not found.
func (r *UserRepository) FindByUsername(username string) (*domain.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM users WHERE username = `+placeholder(1), username)
}

// FindByApiKey fetches a user by api_key (exact match). Returns (nil, nil) if not found.
func (r *UserRepository) FindByApiKey(apiKey string) (*domain.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM users WHERE api_key = `+placeholder(1), apiKey)
}

func (r *UserRepository) findOne(query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(query, arg).Scan(&u.ID, &u.Username, &u.Password, &u.ApiKey, &u.Created, &u.Enabled)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindAll returns all users ordered by id ascending.
func (r *UserRepository) FindAll() ([]domain.User, error) {
	rows, err := r.db.Query(`SELECT ` + userColumns + ` FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.ApiKey, &u.Created, &u.Enabled); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
