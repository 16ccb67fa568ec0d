package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmorales/blogapi/internal/commentservice"
	"github.com/dmorales/blogapi/internal/common"
	"github.com/dmorales/blogapi/internal/postservice"
	"github.com/dmorales/blogapi/internal/userservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAccessLogger(t *testing.T) *accessLogger {
	al, err := newAccessLogger(filepath.Join(t.TempDir(), "log.txt"), testLogger())
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { al.Close() })

	return al
}

// newTestApplication wires the full application against a disposable
// database.
func newTestApplication(t *testing.T) (*application, *sql.DB) {
	db := common.TestDB("file://../../migrations", t)

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)

	app := &application{
		config:         cfg,
		logger:         testLogger(),
		accessLog:      testAccessLogger(t),
		postService:    postservice.NewPostService(db),
		commentService: commentservice.NewCommentService(db),
		userService:    userservice.NewUserService(db),
	}

	return app, db
}

// newFallbackApplication carries no database; only the middleware chain and
// fallback handlers are reachable.
func newFallbackApplication(t *testing.T) *application {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)

	return &application{
		config:    cfg,
		logger:    testLogger(),
		accessLog: testAccessLogger(t),
	}
}

func createTestUser(t *testing.T, db *sql.DB, name, email, password string) int {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		t.Fatal(err)
	}

	var id int
	err = db.QueryRow("INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id", name, email, hash).Scan(&id)
	if err != nil {
		t.Fatal(err)
	}

	return id
}

func createTestPost(t *testing.T, db *sql.DB, title, content string, userId int) int {
	var id int
	err := db.QueryRow("INSERT INTO posts (title, content, user_id) VALUES ($1, $2, $3) RETURNING id", title, content, userId).Scan(&id)
	if err != nil {
		t.Fatal(err)
	}

	return id
}

func createTestComment(t *testing.T, db *sql.DB, postId, userId int, content string, likes int) int {
	var id int
	err := db.QueryRow("INSERT INTO comments (content, date, likes) VALUES ($1, $2, $3) RETURNING id", content, time.Now(), likes).Scan(&id)
	if err != nil {
		t.Fatal(err)
	}

	_, err = db.Exec("INSERT INTO comment_details (comment_id, post_id, user_id) VALUES ($1, $2, $3)", id, postId, userId)
	if err != nil {
		t.Fatal(err)
	}

	return id
}

func readResponse(t *testing.T, res *http.Response) (int, []byte) {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, body
}

func (ts *testServer) do(t *testing.T, method, path string, payload any) (int, []byte) {
	var body io.Reader

	if payload != nil {
		if raw, ok := payload.([]byte); ok {
			body = bytes.NewReader(raw)
		} else {
			jsonPayload, err := json.Marshal(payload)
			if err != nil {
				t.Fatal(err)
			}
			body = bytes.NewReader(jsonPayload)
		}
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) get(t *testing.T, path string) (int, []byte) {
	return ts.do(t, http.MethodGet, path, nil)
}

func (ts *testServer) post(t *testing.T, path string, payload any) (int, []byte) {
	return ts.do(t, http.MethodPost, path, payload)
}

func (ts *testServer) put(t *testing.T, path string, payload any) (int, []byte) {
	return ts.do(t, http.MethodPut, path, payload)
}

func (ts *testServer) delete(t *testing.T, path string) (int, []byte) {
	return ts.do(t, http.MethodDelete, path, nil)
}
