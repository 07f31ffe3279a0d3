package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperrors "github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

type idResponse struct {
	ID string `json:"id"`
}

type errorDetail struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Message string        `json:"message"`
	Errors  []errorDetail `json:"errors,omitempty"`
}

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// decode reads a single JSON document into dst. Unknown fields are ignored.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.BadRequest("request body is empty")
		}
		return apperrors.BadRequest("malformed request body")
	}
	return nil
}

// errorWriter turns use case errors into responses for one resource.
type errorWriter struct {
	resource string
	metrics  *Metrics
}

func (e errorWriter) write(w http.ResponseWriter, r *http.Request, err error) {
	appErr := classify(err)

	body := errorResponse{Message: appErr.Message}
	switch appErr.Type {
	case apperrors.ErrorTypeValidation:
		body.Errors = make([]errorDetail, 0, len(appErr.Details))
		for _, d := range appErr.Details {
			body.Errors = append(body.Errors, errorDetail{Message: d})
		}
		if e.metrics != nil {
			e.metrics.ValidationFailed(e.resource)
		}
	case apperrors.ErrorTypeInternal:
		logger.FromContext(r.Context()).Error("request failed",
			interfaces.String("resource", e.resource),
			interfaces.Error(err),
		)
	}

	writeJSON(w, appErr.HTTPStatus(), body)
}
