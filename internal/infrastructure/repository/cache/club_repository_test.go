package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/club-registry/internal/domain/club"
	clubmock "github.com/riskibarqy/club-registry/internal/mocks/domain/club"
	basecache "github.com/riskibarqy/club-registry/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

func strPtr(v string) *string { return &v }

func TestClubRepository_ListIsCachedUntilWrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := clubmock.NewRepository(t)
	repo := NewClubRepository(next, basecache.NewStore(time.Minute))

	river := club.Club{ID: 1, SoccerName: "River", FoundationDate: "1901-05-25", AmountTitles: 4}
	boca := club.Club{ID: 2, SoccerName: "Boca", FoundationDate: "1905-04-03", AmountTitles: 5}

	next.On("List", mock.Anything).Return([]club.Club{river}, nil).Once()
	for i := 0; i < 3; i++ {
		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list clubs: %v", err)
		}
		if diff := cmp.Diff([]club.Club{river}, got); diff != "" {
			t.Fatalf("unexpected list (-want +got):\n%s", diff)
		}
	}

	next.On("Create", mock.Anything, boca.Draft()).Return(boca, nil).Once()
	if _, err := repo.Create(ctx, boca.Draft()); err != nil {
		t.Fatalf("create club: %v", err)
	}

	next.On("List", mock.Anything).Return([]club.Club{river, boca}, nil).Once()
	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list clubs after create: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected list to be reloaded after create, got %d clubs", len(got))
	}
}

func TestClubRepository_GetByIDCachesMisses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := clubmock.NewRepository(t)
	repo := NewClubRepository(next, basecache.NewStore(time.Minute))

	next.On("GetByID", mock.Anything, int64(7)).Return(club.Club{}, false, nil).Once()
	for i := 0; i < 2; i++ {
		_, ok, err := repo.GetByID(ctx, 7)
		if err != nil || ok {
			t.Fatalf("expected cached miss, got ok=%v err=%v", ok, err)
		}
	}
}

func TestClubRepository_WritesInvalidateEvenOnFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := clubmock.NewRepository(t)
	repo := NewClubRepository(next, basecache.NewStore(time.Minute))

	river := club.Club{ID: 1, SoccerName: "River"}
	next.On("GetByID", mock.Anything, int64(1)).Return(river, true, nil).Twice()
	if _, _, err := repo.GetByID(ctx, 1); err != nil {
		t.Fatalf("get club: %v", err)
	}

	next.On("Update", mock.Anything, mock.Anything).Return(club.Club{}, true, club.ErrDuplicateName).Once()
	if _, _, err := repo.Update(ctx, club.Club{ID: 1, SoccerName: "Boca"}); !errors.Is(err, club.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	if _, _, err := repo.GetByID(ctx, 1); err != nil {
		t.Fatalf("get club after update: %v", err)
	}
}

func TestClubRepository_DeleteDropsCachedRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := clubmock.NewRepository(t)
	repo := NewClubRepository(next, basecache.NewStore(time.Minute))

	river := club.Club{ID: 1, SoccerName: "River"}
	next.On("GetByID", mock.Anything, int64(1)).Return(river, true, nil).Once()
	if _, ok, _ := repo.GetByID(ctx, 1); !ok {
		t.Fatalf("expected club to exist")
	}

	next.On("Delete", mock.Anything, int64(1)).Return(river, true, nil).Once()
	if _, ok, err := repo.Delete(ctx, 1); err != nil || !ok {
		t.Fatalf("delete club: ok=%v err=%v", ok, err)
	}

	next.On("GetByID", mock.Anything, int64(1)).Return(club.Club{}, false, nil).Once()
	if _, ok, _ := repo.GetByID(ctx, 1); ok {
		t.Fatalf("expected deleted club to be gone")
	}
}

func TestClubRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := clubmock.NewRepository(t)
	repo := NewClubRepository(next, basecache.NewStore(time.Minute))

	next.On("List", mock.Anything).Return([]club.Club{{ID: 1, SoccerName: "River", Stadium: strPtr("Monumental")}}, nil).Once()

	first, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list clubs: %v", err)
	}
	*first[0].Stadium = "mutated"

	second, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list clubs again: %v", err)
	}
	if *second[0].Stadium != "Monumental" {
		t.Fatalf("expected cached value to be isolated, got %q", *second[0].Stadium)
	}
}
