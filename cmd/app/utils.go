package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
)

type envelope map[string]any

func (app *application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	json, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	for key, values := range headers {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(json)

	return nil
}

// parseJSON decodes the request body. Syntax is already checked centrally by
// the parseBody middleware, so a failure here is a type mismatch.
func (app *application) parseJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// readIDParam reads a numeric path parameter. A malformed id falls through as
// zero, which matches no row, so lookups report absence instead of a 400.
func (app *application) readIDParam(r *http.Request, key string) int {
	params := httprouter.ParamsFromContext(r.Context())

	id, _ := strconv.Atoi(params.ByName(key))

	return id
}
