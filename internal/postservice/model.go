package postservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmorales/blogapi/internal/common"
	"github.com/lib/pq"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUserForeignKey = errors.New("user_id does not exist")
)

func newPostModel(db *sql.DB) *PostModel {
	return &PostModel{db: db}
}

// ForeignKeyError reports whether err is a violation of the named foreign key
// constraint.
func ForeignKeyError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23503" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

func (m *PostModel) insert(ctx context.Context, title, content string, userId int, image *string) (*common.Result, error) {
	query := `
		INSERT INTO posts (title, content, user_id, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int
	err := m.db.QueryRowContext(ctx, query, title, content, userId, image).Scan(&id)
	if err != nil {
		switch {
		case ForeignKeyError(err, "posts_user_id_fkey"):
			return nil, ErrUserForeignKey
		default:
			return nil, err
		}
	}

	return &common.Result{AffectedRows: 1, InsertId: id}, nil
}

// getPostById returns a single post joined with the author's name.
func (m *PostModel) getPostById(ctx context.Context, id int) (*Post, error) {
	query := `
		SELECT p.id, p.title, p.content, p.user_id, p.image, p.created_at, u.name
		FROM posts p
		INNER JOIN users u ON p.user_id = u.id
		WHERE p.id = $1`

	row := m.db.QueryRowContext(ctx, query, id)

	var post Post
	err := row.Scan(&post.ID, &post.Title, &post.Content, &post.UserID, &post.Image, &post.CreatedAt, &post.Author)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &post, nil
}

func (m *PostModel) getAllPosts(ctx context.Context) ([]Post, error) {
	query := `
		SELECT p.id, p.title, p.content, p.user_id, p.image, p.created_at, u.name
		FROM posts p
		INNER JOIN users u ON p.user_id = u.id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		var post Post
		err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.UserID, &post.Image, &post.CreatedAt, &post.Author)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (m *PostModel) getPostsByUserId(ctx context.Context, userId int) ([]Post, error) {
	query := `
		SELECT p.id, p.title, p.content, p.user_id, p.image, p.created_at, u.name
		FROM posts p
		INNER JOIN users u ON p.user_id = u.id
		WHERE u.id = $1`

	rows, err := m.db.QueryContext(ctx, query, userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		var post Post
		err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.UserID, &post.Image, &post.CreatedAt, &post.Author)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (m *PostModel) updatePost(ctx context.Context, id int, title, content string) (*common.Result, error) {
	query := `
		UPDATE posts
		SET title = $1, content = $2
		WHERE id = $3`

	res, err := m.db.ExecContext(ctx, query, title, content, id)
	if err != nil {
		return nil, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}

	return &common.Result{AffectedRows: rows}, nil
}

func (m *PostModel) deletePost(ctx context.Context, id int) (*common.Result, error) {
	query := `
		DELETE FROM posts
		WHERE id = $1`

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return nil, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}

	return &common.Result{AffectedRows: rows}, nil
}
