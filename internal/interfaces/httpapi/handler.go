package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/club-registry/internal/platform/logging"
	"github.com/riskibarqy/club-registry/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

// requestJSON rejects invalid UTF-8 and raw control characters in strings.
var requestJSON = sonic.Config{ValidateString: true, CopyString: true}.Froze()

type Handler struct {
	clubService *usecase.ClubService
	logger      *logging.Logger
	validator   *validator.Validate
}

func NewHandler(clubService *usecase.ClubService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		clubService: clubService,
		logger:      logger,
		validator:   newValidator(),
	}
}

// newValidator reports fields by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r.Context(), "Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeJSON(ctx context.Context, r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes+1))
	if err != nil {
		return invalidInput("could not read request body")
	}
	if len(body) > maxRequestBodyBytes {
		return invalidInput("request body is too large")
	}
	if err := requestJSON.Unmarshal(body, dst); err != nil {
		return invalidInput("request body is not valid JSON for this resource")
	}

	return nil
}

// decodeObject reads a body that must be a JSON object. Values stay raw so
// each field can be coerced to its own type.
func (h *Handler) decodeObject(ctx context.Context, r *http.Request) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := h.decodeJSON(ctx, r, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, invalidInput("request body must be a JSON object")
	}
	return raw, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return invalidInput("validation failed: %s", validationSummary(err))
	}

	return nil
}
