package commentservice

import (
	"database/sql"
	"time"
)

// Comment is read-only in this service; rows are created outside the HTTP
// surface. Every comment is joined with its detail row and commenter name.
type Comment struct {
	ID      int       `json:"id"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
	Likes   int       `json:"likes"`
	UserID  int       `json:"user_id"`
	Author  string    `json:"author"`
}

type CommentModel struct {
	db *sql.DB
}

type CommentService struct {
	m *CommentModel
}
