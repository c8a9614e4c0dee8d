package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-registry/internal/usecase"
)

func TestWriteSuccess_BareBody(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Length"); got != strconv.Itoa(rec.Body.Len()) {
		t.Fatalf("unexpected Content-Length %q for body of %d bytes", got, rec.Body.Len())
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if got, _ := body["status"].(string); got != "ok" {
		t.Fatalf("expected status=ok, got %v", body["status"])
	}
}

func TestWriteJSON_EncodeFailureFallsBackTo500(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(context.Background(), rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "invalid input keeps message",
			err:        invalidInput("club_id must be an integer"),
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "club_id must be an integer",
		},
		{
			name:       "conflict",
			err:        crerr.Wrapf(usecase.ErrConflict, "club name=%q", "River"),
			wantStatus: http.StatusBadRequest,
			wantDetail: "Club with this name already exists",
		},
		{
			name:       "not found",
			err:        crerr.Wrapf(usecase.ErrNotFound, "club id=%d", 3),
			wantStatus: http.StatusNotFound,
			wantDetail: "Club not found",
		},
		{
			name:       "storage",
			err:        crerr.Mark(errors.New("pq: too many connections"), usecase.ErrStorage),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Database error occurred",
		},
		{
			name:       "unexpected",
			err:        errors.New("nil map write"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			if got.HTTPStatus != tt.wantStatus || got.Detail != tt.wantDetail {
				t.Fatalf("mapError()=%+v want status=%d detail=%q", got, tt.wantStatus, tt.wantDetail)
			}
		})
	}
}
