package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *application) enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Origin")
		w.Header().Add("Vary", "Access-Control-Request-Method")

		origin := r.Header.Get("Origin")
		if origin != "" {
			for i := range app.config.TrustedOrigins {
				if origin == app.config.TrustedOrigins[i] {
					w.Header().Set("Access-Control-Allow-Origin", origin)

					if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
						w.Header().Set("Access-Control-Allow-Methods", "OPTIONS, PUT, PATCH, DELETE")
						w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
						w.WriteHeader(http.StatusOK)
						return
					}

					break
				}
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) rateLimit(next http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(app.config.RateLimitRPS), app.config.RateLimitBurst)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.RateLimitEnabled && !limiter.Allow() {
			app.rateLimitExceededResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// parseBody rejects syntactically invalid JSON bodies centrally so no handler
// has to. The body is buffered and restored so the access logger and the
// handlers can both read it.
func (app *application) parseBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut {
			r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)

			body, err := io.ReadAll(r.Body)
			if err != nil {
				app.invalidJSONBodyResponse(w, r)
				return
			}

			if len(body) > 0 && !json.Valid(body) {
				app.invalidJSONBodyResponse(w, r)
				return
			}

			r = app.createBodyContext(r, body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// logAccess appends one JSON line per request once the response has
// completed. The write is fire-and-forget: it can never fail or delay the
// response.
func (app *application) logAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := accessEntry{
			Time:     time.Now().UTC(),
			Endpoint: r.URL.Path,
			Method:   r.Method,
			Payload:  json.RawMessage("{}"),
		}

		if body := app.getBodyContext(r); len(body) > 0 {
			entry.Payload = json.RawMessage(body)
		}

		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			entry.Response = sr.status
			app.accessLog.record(entry)
		}()

		next.ServeHTTP(sr, r)
	})
}

// checkMethod rejects verbs the API does not implement at all. Unknown paths
// under an implemented verb are handled by the router's NotFound fallback.
func (app *application) checkMethod(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
			next.ServeHTTP(w, r)
		default:
			app.notImplementedResponse(w, r)
		}
	})
}
