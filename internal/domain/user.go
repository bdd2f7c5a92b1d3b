package domain

import (
	"database/sql"
	"time"
)

type User struct {
	ID       int64          `json:"id"`
	Username string         `json:"username"`
	Password string         `json:"-"` // bcrypt hash
	ApiKey   sql.NullString `json:"-"`
	Created  time.Time      `json:"created"`
	Enabled  bool           `json:"enabled"`
}
