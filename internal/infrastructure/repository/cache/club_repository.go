package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/club-registry/internal/domain/club"
	basecache "github.com/riskibarqy/club-registry/internal/platform/cache"
)

const (
	clubKeyPrefix = "club:"
	clubListKey   = clubKeyPrefix + "list"
)

// ClubRepository serves reads from the store and drops every club key after a write.
type ClubRepository struct {
	next  club.Repository
	cache *basecache.Store
}

func NewClubRepository(next club.Repository, cache *basecache.Store) *ClubRepository {
	return &ClubRepository{next: next, cache: cache}
}

func (r *ClubRepository) List(ctx context.Context) ([]club.Club, error) {
	v, err := r.cache.GetOrLoad(ctx, clubListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return cloneClubs(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]club.Club)
	return cloneClubs(items), nil
}

func (r *ClubRepository) GetByID(ctx context.Context, id int64) (club.Club, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, clubIDKey(id), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedClubByID{value: cloneClub(item), exists: exists}, nil
	})
	if err != nil {
		return club.Club{}, false, err
	}

	cached, _ := v.(cachedClubByID)
	return cloneClub(cached.value), cached.exists, nil
}

func (r *ClubRepository) Create(ctx context.Context, draft club.Draft) (club.Club, error) {
	defer r.invalidate(ctx)
	return r.next.Create(ctx, draft)
}

func (r *ClubRepository) Update(ctx context.Context, item club.Club) (club.Club, bool, error) {
	defer r.invalidate(ctx)
	return r.next.Update(ctx, item)
}

func (r *ClubRepository) Delete(ctx context.Context, id int64) (club.Club, bool, error) {
	defer r.invalidate(ctx)
	return r.next.Delete(ctx, id)
}

func (r *ClubRepository) invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, clubKeyPrefix)
}

type cachedClubByID struct {
	value  club.Club
	exists bool
}

func clubIDKey(id int64) string {
	return clubKeyPrefix + "id:" + strconv.FormatInt(id, 10)
}

func cloneClub(item club.Club) club.Club {
	return club.Club{ID: item.ID}.Replace(item.Draft())
}

func cloneClubs(items []club.Club) []club.Club {
	out := make([]club.Club, 0, len(items))
	for _, item := range items {
		out = append(out, cloneClub(item))
	}
	return out
}
