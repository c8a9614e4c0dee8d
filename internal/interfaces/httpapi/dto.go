package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/club-registry/internal/domain/club"
)

type clubDTO struct {
	ID             int64   `json:"id"`
	SoccerName     string  `json:"soccer_name"`
	FoundationDate string  `json:"foundation_date"`
	AmountTitles   int64   `json:"amount_titles"`
	Stadium        *string `json:"stadium"`
}

// clubPayloadRequest is the body of create and full replace. Pointers let the
// validator tell a missing or null field from a zero value.
type clubPayloadRequest struct {
	SoccerName     *string `json:"soccer_name" validate:"required"`
	FoundationDate *string `json:"foundation_date" validate:"required"`
	AmountTitles   *int64  `json:"amount_titles" validate:"required"`
	Stadium        *string `json:"stadium"`
}

// payloadFromRaw fills a clubPayloadRequest, coercing scalars to each
// field's type. Unknown keys, including id, are ignored.
func payloadFromRaw(raw map[string]json.RawMessage) (clubPayloadRequest, error) {
	var (
		req clubPayloadRequest
		err error
	)
	if req.SoccerName, err = optionalString(raw, "soccer_name"); err != nil {
		return clubPayloadRequest{}, err
	}
	if req.FoundationDate, err = optionalString(raw, "foundation_date"); err != nil {
		return clubPayloadRequest{}, err
	}
	if req.AmountTitles, err = optionalInt(raw, "amount_titles"); err != nil {
		return clubPayloadRequest{}, err
	}
	if req.Stadium, err = optionalString(raw, "stadium"); err != nil {
		return clubPayloadRequest{}, err
	}
	return req, nil
}

func (r clubPayloadRequest) toDraft() club.Draft {
	return club.Draft{
		SoccerName:     *r.SoccerName,
		FoundationDate: *r.FoundationDate,
		AmountTitles:   *r.AmountTitles,
		Stadium:        r.Stadium,
	}
}

func clubToDTO(item club.Club) clubDTO {
	return clubDTO{
		ID:             item.ID,
		SoccerName:     item.SoccerName,
		FoundationDate: item.FoundationDate,
		AmountTitles:   item.AmountTitles,
		Stadium:        item.Stadium,
	}
}

func clubsToDTO(items []club.Club) []clubDTO {
	out := make([]clubDTO, 0, len(items))
	for _, item := range items {
		out = append(out, clubToDTO(item))
	}
	return out
}

// patchFromRaw converts a sparse JSON object into a club.Patch. Keys outside
// the mutable fields are ignored. Only stadium accepts null.
func patchFromRaw(raw map[string]json.RawMessage) (club.Patch, error) {
	var patch club.Patch

	if v, ok := raw["soccer_name"]; ok {
		s, err := nonNull(v, "soccer_name", coerceString)
		if err != nil {
			return club.Patch{}, err
		}
		patch.SoccerName = club.Some(s)
	}
	if v, ok := raw["foundation_date"]; ok {
		s, err := nonNull(v, "foundation_date", coerceString)
		if err != nil {
			return club.Patch{}, err
		}
		patch.FoundationDate = club.Some(s)
	}
	if v, ok := raw["amount_titles"]; ok {
		n, err := nonNull(v, "amount_titles", coerceInt)
		if err != nil {
			return club.Patch{}, err
		}
		patch.AmountTitles = club.Some(n)
	}
	if _, ok := raw["stadium"]; ok {
		stadium, err := optionalString(raw, "stadium")
		if err != nil {
			return club.Patch{}, err
		}
		patch.Stadium = club.Some(stadium)
	}

	return patch, nil
}

func nonNull[T any](raw json.RawMessage, field string, coerce func(json.RawMessage, string) (T, error)) (T, error) {
	if isJSONNull(raw) {
		var zero T
		return zero, invalidInput("%s may not be null", field)
	}
	return coerce(raw, field)
}

// optionalString returns nil when field is missing or null.
func optionalString(raw map[string]json.RawMessage, field string) (*string, error) {
	v, ok := raw[field]
	if !ok || isJSONNull(v) {
		return nil, nil
	}
	s, err := coerceString(v, field)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func optionalInt(raw map[string]json.RawMessage, field string) (*int64, error) {
	v, ok := raw[field]
	if !ok || isJSONNull(v) {
		return nil, nil
	}
	n, err := coerceInt(v, field)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// coerceString accepts a JSON string, or a number kept as its literal text.
func coerceString(raw json.RawMessage, field string) (string, error) {
	text := bytes.TrimSpace(raw)
	switch {
	case isJSONString(text):
		var s string
		if err := requestJSON.Unmarshal(text, &s); err != nil || !utf8.ValidString(s) {
			return "", invalidInput("%s must be a valid UTF-8 string", field)
		}
		return s, nil
	case isJSONNumber(text):
		return string(text), nil
	default:
		return "", invalidInput("%s has an invalid type", field)
	}
}

// coerceInt accepts an integral JSON number (4, 4.0, 4e1) or a string
// holding a base 10 integer ("4").
func coerceInt(raw json.RawMessage, field string) (int64, error) {
	text := bytes.TrimSpace(raw)
	switch {
	case isJSONString(text):
		var s string
		if err := requestJSON.Unmarshal(text, &s); err != nil {
			return 0, invalidInput("%s has an invalid type", field)
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, invalidInput("%s must be an integer", field)
		}
		return n, nil
	case isJSONNumber(text):
		if n, err := strconv.ParseInt(string(text), 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(string(text), 64)
		if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, invalidInput("%s must be an integer", field)
		}
		return int64(f), nil
	default:
		return 0, invalidInput("%s has an invalid type", field)
	}
}

func isJSONNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func isJSONString(text []byte) bool {
	return len(text) > 0 && text[0] == '"'
}

func isJSONNumber(text []byte) bool {
	return len(text) > 0 && (text[0] == '-' || (text[0] >= '0' && text[0] <= '9'))
}

func validationSummary(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			parts = append(parts, fe.Field()+" is required")
			continue
		}
		parts = append(parts, fe.Field()+" is invalid")
	}
	return strings.Join(parts, ", ")
}
