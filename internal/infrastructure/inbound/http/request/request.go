package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"blogsite-service/internal/custom_errors"
	model "blogsite-service/internal/domain/models"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads a JSON object into dest. An empty body, a JSON null or a
// non-object value is ErrInvalidBody; malformed JSON is ErrInvalidJSON.
func DecodeJSON(r *http.Request, dest any) error {
	if r.Body == nil {
		return custom_errors.ErrInvalidBody
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", custom_errors.ErrInvalidJSON, err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return custom_errors.ErrInvalidBody
	}
	if !json.Valid(data) {
		return custom_errors.ErrInvalidJSON
	}
	if data[0] != '{' {
		return custom_errors.ErrInvalidBody
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: %v", custom_errors.ErrInvalidJSON, err)
	}
	return nil
}

// IntQuery returns the named query parameter, or def when it is absent or not an integer.
func IntQuery(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func PageRequest(r *http.Request, defaultPerPage int) model.PageRequest {
	return model.PageRequest{
		Page:    IntQuery(r, "page", 1),
		PerPage: IntQuery(r, "per_page", defaultPerPage),
	}.Normalize(defaultPerPage)
}

// OptionalID parses an id filter. Missing, malformed and zero values mean no filter.
func OptionalID(r *http.Request, name string) *int64 {
	v, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil || v == 0 {
		return nil
	}
	return &v
}

// PathID reads the {id} route variable. Routes restrict it to digits, so the
// only failure left is overflow, which no stored row can match.
func PathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
