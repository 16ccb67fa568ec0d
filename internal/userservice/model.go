package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmorales/blogapi/internal/common"
)

var ErrNotFound = errors.New("user not found")

func newUserModel(db *sql.DB) *UserModel {
	return &UserModel{db: db}
}

func (m *UserModel) insertUser(ctx context.Context, u *User) (*common.Result, error) {
	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id`

	args := []any{
		u.Name,
		u.Email,
		u.Password.hash,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&u.ID)
	if err != nil {
		return nil, err
	}

	return &common.Result{AffectedRows: 1, InsertId: u.ID}, nil
}

func (m *UserModel) getUserByName(ctx context.Context, name string) (*User, error) {
	query := `
		SELECT id, name, email, password, created_at
		FROM users
		WHERE name = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, name).Scan(&u.ID, &u.Name, &u.Email, &u.Password.hash, &u.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}
