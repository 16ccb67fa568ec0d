package main

import (
	"context"
	"net/http"
)

type contextKey string

const bodyContextKey = contextKey("body")

func (app *application) createBodyContext(r *http.Request, body []byte) *http.Request {
	ctx := context.WithValue(r.Context(), bodyContextKey, body)
	return r.WithContext(ctx)
}

func (app *application) getBodyContext(r *http.Request) []byte {
	body, ok := r.Context().Value(bodyContextKey).([]byte)
	if !ok {
		return nil
	}
	return body
}
