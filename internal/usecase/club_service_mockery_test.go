package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-registry/internal/domain/club"
	clubmock "github.com/riskibarqy/club-registry/internal/mocks/domain/club"
	"github.com/riskibarqy/club-registry/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestClubService_ListClubs_StorageFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-123")
	repo := clubmock.NewRepository(t)
	service := NewClubService(repo, logging.NewNop())

	repo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(nil, errors.New("dial tcp: connection refused")).
		Once()

	_, err := service.ListClubs(ctx)
	if !crerr.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestClubService_CreateClub_StorageFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := clubmock.NewRepository(t)
	service := NewClubService(repo, logging.NewNop())
	draft := club.Draft{SoccerName: "Racing", AmountTitles: 2}

	repo.
		On("Create", mock.Anything, draft).
		Return(club.Club{}, errors.New("disk full")).
		Once()

	_, err := service.CreateClub(ctx, draft)
	if !crerr.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
	if errors.Is(err, ErrConflict) {
		t.Fatalf("storage failure must not be reported as conflict")
	}
}

func TestClubService_ReplaceClub_RowVanishedUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := clubmock.NewRepository(t)
	service := NewClubService(repo, logging.NewNop())

	repo.
		On("Update", mock.Anything, club.Club{ID: 3, SoccerName: "Racing"}).
		Return(club.Club{}, false, nil).
		Once()

	_, err := service.ReplaceClub(ctx, 3, club.Draft{SoccerName: "Racing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClubService_PatchClub_RowVanishedBeforeWriteUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := clubmock.NewRepository(t)
	service := NewClubService(repo, logging.NewNop())

	existing := club.Club{ID: 4, SoccerName: "Independiente", AmountTitles: 16}
	repo.
		On("GetByID", mock.Anything, int64(4)).
		Return(existing, true, nil).
		Once()
	repo.
		On("Update", mock.Anything, club.Club{ID: 4, SoccerName: "Independiente", AmountTitles: 17}).
		Return(club.Club{}, false, nil).
		Once()

	_, err := service.PatchClub(ctx, 4, club.Patch{AmountTitles: club.Some(int64(17))})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClubService_PatchClub_EmptyPatchSkipsWriteUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var logs bytes.Buffer
	repo := clubmock.NewRepository(t)
	service := NewClubService(repo, logging.NewJSONWriter(&logs, logging.LevelDebug))

	existing := club.Club{ID: 5, SoccerName: "San Lorenzo"}
	repo.
		On("GetByID", mock.Anything, int64(5)).
		Return(existing, true, nil).
		Once()

	got, err := service.PatchClub(ctx, 5, club.Patch{})
	if err != nil {
		t.Fatalf("patch club: %v", err)
	}
	if got.ID != 5 {
		t.Fatalf("unexpected club: %+v", got)
	}
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	if !strings.Contains(logs.String(), "empty club patch, nothing written") {
		t.Fatalf("expected debug entry, got %q", logs.String())
	}
}

func TestClubService_DeleteClub_StorageFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := clubmock.NewRepository(t)
	service := NewClubService(repo, logging.NewNop())

	repo.
		On("Delete", mock.Anything, int64(9)).
		Return(club.Club{}, false, errors.New("timeout")).
		Once()

	_, err := service.DeleteClub(ctx, 9)
	if !crerr.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}
