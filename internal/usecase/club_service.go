package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-registry/internal/domain/club"
	"github.com/riskibarqy/club-registry/internal/platform/logging"
)

type ClubService struct {
	repo   club.Repository
	logger *logging.Logger
}

func NewClubService(repo club.Repository, logger *logging.Logger) *ClubService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ClubService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ClubService) ListClubs(ctx context.Context) ([]club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "ListClubs")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, failSpan(span, storageError(err, "list clubs"))
	}

	return items, nil
}

func (s *ClubService) CreateClub(ctx context.Context, draft club.Draft) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "CreateClub")
	defer span.End()

	created, err := s.repo.Create(ctx, draft)
	if err != nil {
		if crerr.Is(err, club.ErrDuplicateName) {
			return club.Club{}, crerr.Wrapf(ErrConflict, "club name=%q", draft.SoccerName)
		}
		return club.Club{}, failSpan(span, storageError(err, "create club"))
	}

	s.logger.InfoContext(ctx, "club created",
		"club_id", created.ID,
		"soccer_name", created.SoccerName,
	)
	return created, nil
}

// ReplaceClub overwrites every mutable field of the club with id.
func (s *ClubService) ReplaceClub(ctx context.Context, id int64, draft club.Draft) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "ReplaceClub", clubIDAttr(id))
	defer span.End()

	updated, err := s.update(ctx, club.Club{ID: id}.Replace(draft))
	if err != nil {
		return club.Club{}, failSpan(span, err)
	}

	s.logger.InfoContext(ctx, "club replaced", "club_id", updated.ID)
	return updated, nil
}

// PatchClub merges the set fields of patch onto the stored club. An empty
// patch returns the stored club without writing.
func (s *ClubService) PatchClub(ctx context.Context, id int64, patch club.Patch) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "PatchClub", clubIDAttr(id))
	defer span.End()

	existing, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return club.Club{}, failSpan(span, storageError(err, "get club"))
	}
	if !exists {
		return club.Club{}, crerr.Wrapf(ErrNotFound, "club id=%d", id)
	}
	if patch.IsEmpty() {
		s.logger.DebugContext(ctx, "empty club patch, nothing written", "club_id", id)
		return existing, nil
	}

	updated, err := s.update(ctx, existing.Apply(patch))
	if err != nil {
		return club.Club{}, failSpan(span, err)
	}

	s.logger.InfoContext(ctx, "club patched", "club_id", updated.ID)
	return updated, nil
}

func (s *ClubService) DeleteClub(ctx context.Context, id int64) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "DeleteClub", clubIDAttr(id))
	defer span.End()

	deleted, exists, err := s.repo.Delete(ctx, id)
	if err != nil {
		return club.Club{}, failSpan(span, storageError(err, "delete club"))
	}
	if !exists {
		return club.Club{}, crerr.Wrapf(ErrNotFound, "club id=%d", id)
	}

	s.logger.InfoContext(ctx, "club deleted", "club_id", deleted.ID)
	return deleted, nil
}

func (s *ClubService) update(ctx context.Context, item club.Club) (club.Club, error) {
	updated, exists, err := s.repo.Update(ctx, item)
	if err != nil {
		if crerr.Is(err, club.ErrDuplicateName) {
			return club.Club{}, crerr.Wrapf(ErrConflict, "club name=%q", item.SoccerName)
		}
		return club.Club{}, storageError(err, "update club")
	}
	if !exists {
		return club.Club{}, crerr.Wrapf(ErrNotFound, "club id=%d", item.ID)
	}

	return updated, nil
}

func storageError(err error, op string) error {
	return crerr.Mark(crerr.Wrap(err, op), ErrStorage)
}

func isStorageError(err error) bool {
	return crerr.Is(err, ErrStorage)
}
