package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"art-portfolio-back/internal/domain/portfolio"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MemoryStore keeps everything in-process. It backs handler tests and local
// development without a database.
type MemoryStore struct {
	mu        sync.RWMutex
	artworks  map[string]portfolio.Artwork
	favorites map[string]portfolio.Favorite
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		artworks:  make(map[string]portfolio.Artwork),
		favorites: make(map[string]portfolio.Favorite),
	}
}

func (m *MemoryStore) CreateArtwork(_ context.Context, a *portfolio.Artwork) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Visibility == "" {
		a.Visibility = portfolio.VisibilityPublic
	}
	a.LikedBy, a.Likes = normalizeLikedBy(a.LikedBy)
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	m.artworks[a.ID] = *a
	return nil
}

func matchesFilter(a portfolio.Artwork, f ArtworkFilter) bool {
	if f.Visibility != "" && a.Visibility != f.Visibility {
		return false
	}
	if f.UserEmail != "" && a.UserEmail != f.UserEmail {
		return false
	}
	if f.Category != "" && a.Category != f.Category {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Title), needle) &&
			!strings.Contains(strings.ToLower(a.UserName), needle) &&
			!strings.Contains(strings.ToLower(a.Category), needle) {
			return false
		}
	}
	return true
}

func (m *MemoryStore) ListArtworks(_ context.Context, f ArtworkFilter) ([]portfolio.Artwork, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]portfolio.Artwork, 0, len(m.artworks))
	for _, a := range m.artworks {
		if matchesFilter(a, f) {
			res = append(res, a)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	if f.Limit > 0 && len(res) > f.Limit {
		res = res[:f.Limit]
	}
	return res, nil
}

func (m *MemoryStore) GetArtwork(_ context.Context, id string) (portfolio.Artwork, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.artworks[id]
	return a, ok, nil
}

func (m *MemoryStore) ReplaceArtwork(_ context.Context, id string, a portfolio.Artwork) (*portfolio.Artwork, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.artworks[id]
	if !ok {
		return nil, nil
	}
	a.ID = id
	a.CreatedAt = cur.CreatedAt
	if a.Visibility == "" {
		a.Visibility = portfolio.VisibilityPublic
	}
	a.LikedBy, a.Likes = normalizeLikedBy(a.LikedBy)
	m.artworks[id] = a
	return &a, nil
}

func (m *MemoryStore) ToggleLike(_ context.Context, id, email string) (int, bool, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.artworks[id]
	if !ok {
		return 0, false, false, nil
	}
	set := make(datatypes.JSONSlice[string], 0, len(a.LikedBy)+1)
	for _, e := range a.LikedBy {
		if e != email {
			set = append(set, e)
		}
	}
	liked := len(set) == len(a.LikedBy)
	if liked {
		set = append(set, email)
	}
	a.LikedBy = set
	a.Likes = len(set)
	m.artworks[id] = a
	return a.Likes, liked, true, nil
}

func (m *MemoryStore) DeleteArtwork(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.artworks[id]; !ok {
		return 0, nil
	}
	delete(m.artworks, id)
	return 1, nil
}

func (m *MemoryStore) CountArtworksByOwner(_ context.Context, email string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, a := range m.artworks {
		if a.UserEmail == email {
			count++
		}
	}
	return count, nil
}

func (m *MemoryStore) AddFavorite(_ context.Context, artworkID, email string) (portfolio.Favorite, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.favorites {
		if f.ArtworkID == artworkID && f.UserEmail == email {
			return portfolio.Favorite{}, false, nil
		}
	}
	fav := portfolio.Favorite{
		ID:        uuid.NewString(),
		ArtworkID: artworkID,
		UserEmail: email,
		CreatedAt: time.Now().UTC(),
	}
	m.favorites[fav.ID] = fav
	return fav, true, nil
}

func (m *MemoryStore) ListFavorites(_ context.Context, email string) ([]portfolio.FavoriteWithArtwork, error) {
	out := []portfolio.FavoriteWithArtwork{}
	if email == "" {
		return out, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	favs := make([]portfolio.Favorite, 0, len(m.favorites))
	for _, f := range m.favorites {
		if f.UserEmail == email {
			favs = append(favs, f)
		}
	}
	sort.Slice(favs, func(i, j int) bool {
		return favs[i].CreatedAt.After(favs[j].CreatedAt)
	})
	for _, f := range favs {
		a, ok := m.artworks[f.ArtworkID]
		if !ok {
			continue
		}
		out = append(out, portfolio.FavoriteWithArtwork{ID: f.ID, Artwork: a})
	}
	return out, nil
}

func (m *MemoryStore) DeleteFavorite(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.favorites[id]; !ok {
		return 0, nil
	}
	delete(m.favorites, id)
	return 1, nil
}

func (m *MemoryStore) OwnerStats(_ context.Context, email string) (portfolio.OwnerStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var stats portfolio.OwnerStats
	for _, a := range m.artworks {
		if a.UserEmail == email {
			stats.TotalArtworks++
			stats.TotalLikes += int64(a.Likes)
		}
	}
	for _, f := range m.favorites {
		if f.UserEmail == email {
			stats.TotalFavorites++
		}
	}
	return stats, nil
}

func (m *MemoryStore) RecentArtworks(ctx context.Context, email string, limit int) ([]portfolio.Artwork, error) {
	return m.ListArtworks(ctx, ArtworkFilter{UserEmail: email, Limit: limit})
}

func (m *MemoryStore) CategoryCounts(_ context.Context, email string) ([]portfolio.CategoryCount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[string]int64)
	for _, a := range m.artworks {
		if a.UserEmail == email {
			counts[a.Category]++
		}
	}
	out := make([]portfolio.CategoryCount, 0, len(counts))
	for cat, n := range counts {
		out = append(out, portfolio.CategoryCount{Category: cat, Count: n})
	}
	return out, nil
}
