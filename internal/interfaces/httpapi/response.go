package httpapi

import (
	"context"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-registry/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	detailConflict   = "Club with this name already exists"
	detailNotFound   = "Club not found"
	detailStorage    = "Database error occurred"
	detailUnexpected = "An unexpected error occurred"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

type mappedError struct {
	HTTPStatus int
	Detail     string
}

// writeJSON encodes payload into a pooled buffer first so an encode failure
// can still produce a clean 500 instead of a truncated body.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		buf.Reset()
		_, _ = buf.WriteString(`{"detail":"` + detailUnexpected + `"}` + "\n")
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, data)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)
	writeJSON(ctx, w, mapped.HTTPStatus, errorResponse{Detail: mapped.Detail})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Detail: detailUnexpected})
}

func mapError(err error) mappedError {
	switch {
	case crerr.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusUnprocessableEntity,
			Detail:     invalidInputDetail(err),
		}
	case crerr.Is(err, usecase.ErrConflict):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Detail:     detailConflict,
		}
	case crerr.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Detail:     detailNotFound,
		}
	case crerr.Is(err, usecase.ErrStorage):
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Detail:     detailStorage,
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Detail:     detailUnexpected,
		}
	}
}

// invalidInput builds a request error whose message is returned to the caller verbatim.
func invalidInput(format string, args ...any) error {
	return crerr.Mark(crerr.Newf(format, args...), usecase.ErrInvalidInput)
}

// invalidInputDetail returns the innermost message, which for invalidInput
// errors is the text the caller should see.
func invalidInputDetail(err error) string {
	return crerr.UnwrapAll(err).Error()
}
