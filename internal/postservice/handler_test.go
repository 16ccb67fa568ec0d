package postservice

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmorales/blogapi/internal/common"
)

func setupTestUser(t *testing.T, db *sql.DB, name string) int {
	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int
	err := db.QueryRow(query, name, name+"@example.com", []byte("x")).Scan(&id)
	if err != nil {
		t.Fatal(err)
	}

	return id
}

func TestCreatePost(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewPostService(db)

	userId := setupTestUser(t, db, "alice")
	image := "aGVsbG8="

	testCases := []struct {
		name        string
		req         *CreatePostRequest
		expectedErr error
	}{
		{
			name: "valid post",
			req: &CreatePostRequest{
				Title:   "Test Post",
				Content: "This is a test post.",
				UserID:  userId,
			},
			expectedErr: nil,
		},
		{
			name: "valid post with image",
			req: &CreatePostRequest{
				Title:   "Image Post",
				Content: "With an image.",
				UserID:  userId,
				Image:   &image,
			},
			expectedErr: nil,
		},
		{
			name: "unknown user",
			req: &CreatePostRequest{
				Title:   "Orphan Post",
				Content: "No such author.",
				UserID:  999999,
			},
			expectedErr: ErrUserForeignKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			result, err := s.CreatePost(ctx, tc.req)
			assert.Equal(t, tc.expectedErr, err)

			if err == nil {
				assert.Equal(t, int64(1), result.AffectedRows)
				assert.NotZero(t, result.InsertId)

				post, err := s.GetPostByID(ctx, result.InsertId)
				assert.NoError(t, err)
				assert.Equal(t, tc.req.Title, post.Title)
				assert.Equal(t, tc.req.Content, post.Content)
				assert.Equal(t, "alice", post.Author)
			}
		})
	}
}

func TestGetPostByID(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewPostService(db)

	userId := setupTestUser(t, db, "alice")

	ctx := context.Background()

	result, err := s.CreatePost(ctx, &CreatePostRequest{Title: "Test Post", Content: "Content.", UserID: userId})
	assert.NoError(t, err)

	t.Run("existing post", func(t *testing.T) {
		post, err := s.GetPostByID(ctx, result.InsertId)
		assert.NoError(t, err)
		assert.Equal(t, result.InsertId, post.ID)
		assert.Equal(t, userId, post.UserID)
		assert.Nil(t, post.Image)
	})

	t.Run("absent post", func(t *testing.T) {
		post, err := s.GetPostByID(ctx, 999999)
		assert.ErrorIs(t, err, ErrRecordNotFound)
		assert.Nil(t, post)
	})
}

// The posts-by-user query must filter by the id it is given.
func TestGetPostsByUserID(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewPostService(db)

	aliceId := setupTestUser(t, db, "alice")
	bobId := setupTestUser(t, db, "bob")

	ctx := context.Background()

	_, err := s.CreatePost(ctx, &CreatePostRequest{Title: "Alice Post", Content: "By alice.", UserID: aliceId})
	assert.NoError(t, err)
	_, err = s.CreatePost(ctx, &CreatePostRequest{Title: "Bob Post", Content: "By bob.", UserID: bobId})
	assert.NoError(t, err)

	posts, err := s.GetPostsByUserID(ctx, bobId)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "Bob Post", posts[0].Title)
	assert.Equal(t, bobId, posts[0].UserID)

	// an unknown user is an empty result, not an error
	posts, err = s.GetPostsByUserID(ctx, 999999)
	assert.NoError(t, err)
	assert.Empty(t, posts)
}

func TestUpdatePost(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewPostService(db)

	userId := setupTestUser(t, db, "alice")

	ctx := context.Background()

	created, err := s.CreatePost(ctx, &CreatePostRequest{Title: "Old Title", Content: "Old content.", UserID: userId})
	assert.NoError(t, err)

	t.Run("existing post", func(t *testing.T) {
		result, err := s.UpdatePost(ctx, created.InsertId, "New Title", "New content.")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.AffectedRows)

		post, err := s.GetPostByID(ctx, created.InsertId)
		assert.NoError(t, err)
		assert.Equal(t, "New Title", post.Title)
		assert.Equal(t, "New content.", post.Content)
	})

	t.Run("absent post", func(t *testing.T) {
		result, err := s.UpdatePost(ctx, 999999, "New Title", "New content.")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), result.AffectedRows)
	})
}

func TestDeletePost(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewPostService(db)

	userId := setupTestUser(t, db, "alice")

	ctx := context.Background()

	created, err := s.CreatePost(ctx, &CreatePostRequest{Title: "Doomed Post", Content: "Short lived.", UserID: userId})
	assert.NoError(t, err)

	result, err := s.DeletePost(ctx, created.InsertId)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.AffectedRows)

	_, err = s.GetPostByID(ctx, created.InsertId)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	result, err = s.DeletePost(ctx, created.InsertId)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), result.AffectedRows)
}
