package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ashchan-dev/ashchan/internal/errors"
)

// parseUuidParam reads a uuid path parameter.
func parseUuidParam(r *http.Request, paramName string) (uuid.UUID, error) {
	raw := chi.URLParam(r, paramName)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, errors.Validation(fmt.Sprintf("invalid %s: must be a uuid", paramName))
	}
	return id, nil
}

// optionalIntQuery reads an optional integer query parameter. Absent
// parameters come back as nil so services can apply their defaults.
func optionalIntQuery(r *http.Request, paramName string) (*int, error) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return nil, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Validation(fmt.Sprintf("invalid %s: must be an integer", paramName))
	}
	return &val, nil
}

// boolQuery reads a boolean query parameter, defaulting when absent.
func boolQuery(r *http.Request, paramName string, def bool) (bool, error) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return def, nil
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Validation(fmt.Sprintf("invalid %s: must be a boolean", paramName))
	}
	return val, nil
}
