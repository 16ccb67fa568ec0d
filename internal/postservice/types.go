package postservice

import (
	"database/sql"
	"time"
)

type Post struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  int    `json:"user_id"`
	// Image holds a base64 encoded payload, if any.
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	// Author is the display name of the owning user, joined on every read.
	Author string `json:"author"`
}

type PostModel struct {
	db *sql.DB
}

type PostService struct {
	m *PostModel
}
