package userservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmorales/blogapi/internal/common"
)

func TestCreateUser(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewUserService(db)

	ctx := context.Background()

	result, err := s.CreateUser(ctx, "alice", "alice@example.com", "Pa55word!")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.AffectedRows)
	assert.NotZero(t, result.InsertId)

	// the row holds a bcrypt hash, not the plaintext
	var stored []byte
	err = db.QueryRow("SELECT password FROM users WHERE id = $1", result.InsertId).Scan(&stored)
	assert.NoError(t, err)
	assert.NotEqual(t, []byte("Pa55word!"), stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword(stored, []byte("Pa55word!")))

	// duplicate name violates the unique constraint and propagates as-is
	_, err = s.CreateUser(ctx, "alice", "other@example.com", "Pa55word!")
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewUserService(db)

	ctx := context.Background()

	created, err := s.CreateUser(ctx, "alice", "alice@example.com", "Pa55word!")
	assert.NoError(t, err)

	testCases := []struct {
		name        string
		username    string
		password    string
		expectedErr error
	}{
		{
			name:        "valid credentials",
			username:    "alice",
			password:    "Pa55word!",
			expectedErr: nil,
		},
		{
			name:        "wrong password",
			username:    "alice",
			password:    "not-the-password",
			expectedErr: ErrNotFound,
		},
		{
			name:        "unknown username",
			username:    "nobody",
			password:    "Pa55word!",
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := s.Login(ctx, tc.username, tc.password)
			assert.Equal(t, tc.expectedErr, err)

			if err == nil {
				assert.Equal(t, created.InsertId, user.ID)
				assert.Equal(t, "alice", user.Name)
				assert.Equal(t, "alice@example.com", user.Email)
			}
		})
	}
}
