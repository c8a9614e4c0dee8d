package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/club-registry/internal/domain/club"
)

// ClubRepository keeps clubs in process memory. IDs come from a monotonic
// sequence and are never reused, like a serial primary key.
type ClubRepository struct {
	mu     sync.RWMutex
	seq    int64
	byID   map[int64]club.Club
	byName map[string]int64
}

func NewClubRepository(seed ...club.Draft) *ClubRepository {
	r := &ClubRepository{
		byID:   make(map[int64]club.Club),
		byName: make(map[string]int64),
	}
	for _, draft := range seed {
		_, _ = r.Create(context.Background(), draft)
	}
	return r
}

func (r *ClubRepository) List(_ context.Context) ([]club.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]club.Club, 0, len(r.byID))
	for _, item := range r.byID {
		out = append(out, copyClub(item))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *ClubRepository) GetByID(_ context.Context, id int64) (club.Club, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	if !ok {
		return club.Club{}, false, nil
	}
	return copyClub(item), true, nil
}

func (r *ClubRepository) Create(_ context.Context, draft club.Draft) (club.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[draft.SoccerName]; taken {
		return club.Club{}, club.ErrDuplicateName
	}

	r.seq++
	item := club.Club{ID: r.seq}.Replace(draft)
	r.byID[item.ID] = item
	r.byName[item.SoccerName] = item.ID

	return copyClub(item), nil
}

func (r *ClubRepository) Update(_ context.Context, item club.Club) (club.Club, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[item.ID]
	if !ok {
		return club.Club{}, false, nil
	}
	if ownerID, taken := r.byName[item.SoccerName]; taken && ownerID != item.ID {
		return club.Club{}, true, club.ErrDuplicateName
	}

	delete(r.byName, existing.SoccerName)
	stored := copyClub(item)
	r.byID[item.ID] = stored
	r.byName[stored.SoccerName] = stored.ID

	return copyClub(stored), true, nil
}

func (r *ClubRepository) Delete(_ context.Context, id int64) (club.Club, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[id]
	if !ok {
		return club.Club{}, false, nil
	}
	delete(r.byID, id)
	delete(r.byName, existing.SoccerName)

	return existing, true, nil
}

func copyClub(item club.Club) club.Club {
	return club.Club{ID: item.ID}.Replace(item.Draft())
}
