package userservice

import (
	"context"
	"database/sql"

	"github.com/dmorales/blogapi/internal/common"
)

func NewUserService(db *sql.DB) *UserService {
	return &UserService{m: newUserModel(db)}
}

// CreateUser hashes the password and inserts the user, returning the mutation
// summary.
func (s *UserService) CreateUser(ctx context.Context, name, email, password string) (*common.Result, error) {
	u := User{Name: name, Email: email}
	if err := u.Password.set(password); err != nil {
		return nil, err
	}

	return s.m.insertUser(ctx, &u)
}

// Login returns the user matching the given credentials. An unknown name and
// a wrong password are both reported as ErrNotFound so the two cases are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, name, password string) (*User, error) {
	u, err := s.m.getUserByName(ctx, name)
	if err != nil {
		return nil, err
	}

	ok, err := u.Password.compare(password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	return u, nil
}
