package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/club-registry/internal/domain/club"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r.Context(), "ListClubs")
	defer span.End()

	items, err := h.clubService.ListClubs(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list clubs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubsToDTO(items))
}

func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r.Context(), "CreateClub")
	defer span.End()

	draft, err := h.decodeClubPayload(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.clubService.CreateClub(ctx, draft)
	if err != nil {
		h.logFailure(ctx, "create club failed", err, "soccer_name", draft.SoccerName)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, clubToDTO(created))
}

func (h *Handler) ReplaceClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r.Context(), "ReplaceClub")
	defer span.End()

	clubID, err := parseClubID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(attribute.Int64("club.id", clubID))
	draft, err := h.decodeClubPayload(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.clubService.ReplaceClub(ctx, clubID, draft)
	if err != nil {
		h.logFailure(ctx, "replace club failed", err, "club_id", clubID, "soccer_name", draft.SoccerName)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubToDTO(updated))
}

func (h *Handler) PatchClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r.Context(), "PatchClub")
	defer span.End()

	clubID, err := parseClubID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(attribute.Int64("club.id", clubID))

	raw, err := h.decodeObject(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	patch, err := patchFromRaw(raw)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.clubService.PatchClub(ctx, clubID, patch)
	if err != nil {
		h.logFailure(ctx, "patch club failed", err, "club_id", clubID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubToDTO(updated))
}

func (h *Handler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r.Context(), "DeleteClub")
	defer span.End()

	clubID, err := parseClubID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(attribute.Int64("club.id", clubID))

	deleted, err := h.clubService.DeleteClub(ctx, clubID)
	if err != nil {
		h.logFailure(ctx, "delete club failed", err, "club_id", clubID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubToDTO(deleted))
}

func (h *Handler) decodeClubPayload(ctx context.Context, r *http.Request) (club.Draft, error) {
	raw, err := h.decodeObject(ctx, r)
	if err != nil {
		return club.Draft{}, err
	}
	req, err := payloadFromRaw(raw)
	if err != nil {
		return club.Draft{}, err
	}
	if err := h.validateRequest(ctx, req); err != nil {
		return club.Draft{}, err
	}
	return req.toDraft(), nil
}

// logFailure logs client errors at warn and server errors at error.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
		return
	}
	h.logger.WarnContext(ctx, msg, args...)
}

func parseClubID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("club_id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalidInput("club_id must be an integer")
	}
	return id, nil
}
