package commentservice

import (
	"context"
	"database/sql"
	"errors"
)

var ErrRecordNotFound = errors.New("record not found")

func newCommentModel(db *sql.DB) *CommentModel {
	return &CommentModel{db: db}
}

func (m *CommentModel) getCommentsByPostId(ctx context.Context, postId int) ([]Comment, error) {
	query := `
		SELECT c.id, c.content, c.date, c.likes, u.id, u.name
		FROM comments c
		INNER JOIN comment_details d ON c.id = d.comment_id
		INNER JOIN users u ON d.user_id = u.id
		WHERE d.post_id = $1`

	rows, err := m.db.QueryContext(ctx, query, postId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		var c Comment
		err := rows.Scan(&c.ID, &c.Content, &c.Date, &c.Likes, &c.UserID, &c.Author)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// getMostPopularComment returns the comment with the highest like count among
// those linked to the post.
func (m *CommentModel) getMostPopularComment(ctx context.Context, postId int) (*Comment, error) {
	query := `
		SELECT c.id, c.content, c.date, c.likes, u.id, u.name
		FROM comments c
		INNER JOIN comment_details d ON c.id = d.comment_id
		INNER JOIN users u ON d.user_id = u.id
		WHERE d.post_id = $1
		ORDER BY c.likes DESC
		LIMIT 1`

	row := m.db.QueryRowContext(ctx, query, postId)

	var c Comment
	err := row.Scan(&c.ID, &c.Content, &c.Date, &c.Likes, &c.UserID, &c.Author)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &c, nil
}
