package userservice

import (
	"database/sql"
	"time"
)

type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  Password  `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Password never exposes the plaintext; only the bcrypt hash is persisted.
type Password struct {
	Plain string `json:"-"`
	hash  []byte
}

type UserModel struct {
	db *sql.DB
}

type UserService struct {
	m *UserModel
}
