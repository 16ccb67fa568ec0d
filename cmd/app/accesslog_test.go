package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func readLogLines(t *testing.T, path string) []string {
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	assert.NoError(t, scanner.Err())

	return lines
}

func TestAccessLoggerConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	al, err := newAccessLogger(path, testLogger())
	assert.NoError(t, err)

	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			al.record(accessEntry{
				Time:     time.Now().UTC(),
				Endpoint: fmt.Sprintf("/posts/%d", i),
				Method:   http.MethodGet,
				Payload:  json.RawMessage("{}"),
				Response: http.StatusOK,
			})
		}(i)
	}
	wg.Wait()

	assert.NoError(t, al.Close())

	// every line must be a complete JSON object, never an interleaved fragment
	lines := readLogLines(t, path)
	assert.Len(t, lines, n)
	for _, line := range lines {
		var e accessEntry
		assert.NoError(t, json.Unmarshal([]byte(line), &e))
		assert.Equal(t, http.MethodGet, e.Method)
		assert.Equal(t, http.StatusOK, e.Response)
	}
}

func TestAccessLoggerEntryFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	al, err := newAccessLogger(path, testLogger())
	assert.NoError(t, err)

	al.record(accessEntry{
		Time:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Endpoint: "/posts",
		Method:   http.MethodPost,
		Payload:  json.RawMessage(`{"title":"hi"}`),
		Response: http.StatusOK,
	})

	assert.NoError(t, al.Close())

	lines := readLogLines(t, path)
	assert.Len(t, lines, 1)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal([]byte(lines[0]), &decoded))
	for _, key := range []string{"time", "endpoint", "method", "payload", "response"} {
		assert.Contains(t, decoded, key)
	}
	assert.Equal(t, "/posts", decoded["endpoint"])
	assert.Equal(t, map[string]any{"title": "hi"}, decoded["payload"])
	assert.Equal(t, float64(http.StatusOK), decoded["response"])
}

func TestLogAccessMiddleware(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	al, err := newAccessLogger(path, testLogger())
	assert.NoError(t, err)

	app := &application{
		config:    &Config{},
		logger:    testLogger(),
		accessLog: al,
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	middleware := app.parseBody(app.logAccess(handler))

	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"title":"hi"}`))
	res := httptest.NewRecorder()

	middleware.ServeHTTP(res, req)

	assert.Equal(t, http.StatusNotFound, res.Code)

	assert.NoError(t, al.Close())

	lines := readLogLines(t, path)
	assert.Len(t, lines, 1)

	var e accessEntry
	assert.NoError(t, json.Unmarshal([]byte(lines[0]), &e))
	assert.Equal(t, "/posts", e.Endpoint)
	assert.Equal(t, http.MethodPost, e.Method)
	assert.Equal(t, `{"title":"hi"}`, string(e.Payload))
	assert.Equal(t, http.StatusNotFound, e.Response)
	assert.WithinDuration(t, time.Now().UTC(), e.Time, time.Minute)
}
