package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/validator"
)

// idParam parses the {id} URL segment as a positive integer.
func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validator.ValidationErrors{
			{Field: name, Message: "must be a positive integer"},
		}
	}
	return id, nil
}

// queryInt64 parses an optional integer query parameter; 0 means absent.
func queryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, validator.ValidationErrors{
			{Field: name, Message: "must be a positive integer"},
		}
	}
	return v, nil
}

// queryInt parses an optional integer query parameter; 0 means absent.
func queryInt(r *http.Request, name string) (int, error) {
	v, err := queryInt64(r, name)
	return int(v), err
}

// queryLimit parses an optional integer query parameter without a
// positivity check; the service clamps non-positive values to the default
// rather than rejecting them.
func queryLimit(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validator.ValidationErrors{
			{Field: name, Message: "must be an integer"},
		}
	}
	return v, nil
}

// queryDate validates an optional YYYY-MM-DD query parameter and returns
// it untouched; nil means absent.
func queryDate(r *http.Request, name string) (*string, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	if _, ok := validator.IsValidDate(raw); !ok {
		return nil, validator.ValidationErrors{
			{Field: name, Message: "must be YYYY-MM-DD"},
		}
	}
	return &raw, nil
}

// queryString returns an optional string query parameter; nil means absent.
func queryString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}
