package commentservice

import (
	"context"
	"database/sql"
)

func NewCommentService(db *sql.DB) *CommentService {
	return &CommentService{m: newCommentModel(db)}
}

// GetCommentsByPostID returns every comment on the given post, joined with
// the commenter's name. An unknown post yields an empty slice.
func (s *CommentService) GetCommentsByPostID(ctx context.Context, postId int) ([]Comment, error) {
	return s.m.getCommentsByPostId(ctx, postId)
}

// GetMostPopularComment returns the comment with the most likes on the given
// post, or ErrRecordNotFound when the post has no comments.
func (s *CommentService) GetMostPopularComment(ctx context.Context, postId int) (*Comment, error) {
	return s.m.getMostPopularComment(ctx, postId)
}
