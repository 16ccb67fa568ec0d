package postservice

import (
	"context"
	"database/sql"

	"github.com/dmorales/blogapi/internal/common"
)

func NewPostService(db *sql.DB) *PostService {
	return &PostService{m: newPostModel(db)}
}

type CreatePostRequest struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	UserID  int     `json:"userId"`
	Image   *string `json:"image"`
}

// CreatePost inserts a new post and returns the mutation summary.
func (s *PostService) CreatePost(ctx context.Context, req *CreatePostRequest) (*common.Result, error) {
	return s.m.insert(ctx, req.Title, req.Content, req.UserID, req.Image)
}

// GetPostByID returns a post joined with its author, or ErrRecordNotFound.
func (s *PostService) GetPostByID(ctx context.Context, id int) (*Post, error) {
	return s.m.getPostById(ctx, id)
}

// GetAllPosts returns every post joined with its author.
func (s *PostService) GetAllPosts(ctx context.Context) ([]Post, error) {
	return s.m.getAllPosts(ctx)
}

// GetPostsByUserID returns the posts written by the given user. An unknown
// user yields an empty slice, not an error.
func (s *PostService) GetPostsByUserID(ctx context.Context, userId int) ([]Post, error) {
	return s.m.getPostsByUserId(ctx, userId)
}

// UpdatePost rewrites title and content of a post. A zero AffectedRows in the
// summary means the post does not exist.
func (s *PostService) UpdatePost(ctx context.Context, id int, title, content string) (*common.Result, error) {
	return s.m.updatePost(ctx, id, title, content)
}

// DeletePost removes a post. A zero AffectedRows in the summary means the
// post does not exist.
func (s *PostService) DeletePost(ctx context.Context, id int) (*common.Result, error) {
	return s.m.deletePost(ctx, id)
}
