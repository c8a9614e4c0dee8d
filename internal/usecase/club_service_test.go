package usecase

import (
	"errors"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/club-registry/internal/domain/club"
	"github.com/riskibarqy/club-registry/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-registry/internal/platform/logging"
)

func strPtr(v string) *string { return &v }

func newMemoryService(seed ...club.Draft) *ClubService {
	return NewClubService(memory.NewClubRepository(seed...), logging.NewNop())
}

func TestClubService_CreateThenList(t *testing.T) {
	t.Parallel()

	service := newMemoryService()
	ctx := t.Context()

	created, err := service.CreateClub(ctx, club.Draft{
		SoccerName:     "River",
		FoundationDate: "1901-05-25",
		AmountTitles:   4,
		Stadium:        strPtr("Monumental"),
	})
	if err != nil {
		t.Fatalf("create club: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected storage-assigned id")
	}

	items, err := service.ListClubs(ctx)
	if err != nil {
		t.Fatalf("list clubs: %v", err)
	}
	if diff := cmp.Diff([]club.Club{created}, items); diff != "" {
		t.Fatalf("unexpected list (-want +got):\n%s", diff)
	}
}

func TestClubService_ListEmpty(t *testing.T) {
	t.Parallel()

	items, err := newMemoryService().ListClubs(t.Context())
	if err != nil {
		t.Fatalf("list clubs: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no clubs, got %d", len(items))
	}
}

func TestClubService_CreateDuplicateIsConflict(t *testing.T) {
	t.Parallel()

	service := newMemoryService(club.Draft{SoccerName: "River"})

	_, err := service.CreateClub(t.Context(), club.Draft{SoccerName: "River", AmountTitles: 1})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	items, _ := service.ListClubs(t.Context())
	if len(items) != 1 {
		t.Fatalf("expected store unchanged, got %d clubs", len(items))
	}
}

func TestClubService_ReplaceClub(t *testing.T) {
	t.Parallel()

	service := newMemoryService(
		club.Draft{SoccerName: "River", FoundationDate: "1901-05-25", AmountTitles: 4, Stadium: strPtr("Monumental")},
		club.Draft{SoccerName: "Boca"},
	)
	ctx := t.Context()

	t.Run("overwrites every field", func(t *testing.T) {
		got, err := service.ReplaceClub(ctx, 1, club.Draft{SoccerName: "River Plate", FoundationDate: "1901", AmountTitles: 5})
		if err != nil {
			t.Fatalf("replace club: %v", err)
		}
		want := club.Club{ID: 1, SoccerName: "River Plate", FoundationDate: "1901", AmountTitles: 5}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("unexpected club (-want +got):\n%s", diff)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := service.ReplaceClub(ctx, 99, club.Draft{SoccerName: "Ghost"})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("name collision", func(t *testing.T) {
		_, err := service.ReplaceClub(ctx, 1, club.Draft{SoccerName: "Boca"})
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestClubService_PatchClub(t *testing.T) {
	t.Parallel()

	service := newMemoryService(
		club.Draft{SoccerName: "River", FoundationDate: "1901-05-25", AmountTitles: 4, Stadium: strPtr("Monumental")},
		club.Draft{SoccerName: "Boca"},
	)
	ctx := t.Context()

	t.Run("only amount titles changes", func(t *testing.T) {
		got, err := service.PatchClub(ctx, 1, club.Patch{AmountTitles: club.Some(int64(5))})
		if err != nil {
			t.Fatalf("patch club: %v", err)
		}
		want := club.Club{ID: 1, SoccerName: "River", FoundationDate: "1901-05-25", AmountTitles: 5, Stadium: strPtr("Monumental")}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("unexpected club (-want +got):\n%s", diff)
		}
	})

	t.Run("empty patch returns stored club", func(t *testing.T) {
		got, err := service.PatchClub(ctx, 2, club.Patch{})
		if err != nil {
			t.Fatalf("patch club: %v", err)
		}
		if got.SoccerName != "Boca" {
			t.Fatalf("unexpected club: %+v", got)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := service.PatchClub(ctx, 99, club.Patch{AmountTitles: club.Some(int64(1))})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("rename onto taken name", func(t *testing.T) {
		_, err := service.PatchClub(ctx, 2, club.Patch{SoccerName: club.Some("River")})
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestClubService_DeleteClub(t *testing.T) {
	t.Parallel()

	service := newMemoryService(club.Draft{SoccerName: "River", AmountTitles: 4})
	ctx := t.Context()

	deleted, err := service.DeleteClub(ctx, 1)
	if err != nil {
		t.Fatalf("delete club: %v", err)
	}
	if deleted.SoccerName != "River" || deleted.AmountTitles != 4 {
		t.Fatalf("expected pre-deletion snapshot, got %+v", deleted)
	}

	_, err = service.DeleteClub(ctx, 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	if _, err := service.CreateClub(ctx, club.Draft{SoccerName: "River"}); err != nil {
		t.Fatalf("expected name to be free after delete, got %v", err)
	}
}

func TestStorageError_KeepsCauseAndMark(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := storageError(cause, "list clubs")

	if !crerr.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage mark, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to stay in chain, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("storage error must not look like not found")
	}
}
