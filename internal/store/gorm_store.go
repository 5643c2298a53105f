package store

import (
	"context"
	"errors"
	"time"

	"art-portfolio-back/internal/domain/portfolio"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store on GORM + Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// normalizeLikedBy deduplicates the liked-by set and returns the matching
// like count, keeping the likes == len(likedBy) invariant regardless of what
// the caller supplied.
func normalizeLikedBy(in []string) (datatypes.JSONSlice[string], int) {
	out := make(datatypes.JSONSlice[string], 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, e := range in {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out, len(out)
}

func (s *GormStore) CreateArtwork(ctx context.Context, a *portfolio.Artwork) error {
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
	return s.db.WithContext(ctx).Create(a).Error
}

func (s *GormStore) ListArtworks(ctx context.Context, f ArtworkFilter) ([]portfolio.Artwork, error) {
	q := s.db.WithContext(ctx).Model(&portfolio.Artwork{})
	if f.Visibility != "" {
		q = q.Where("visibility = ?", f.Visibility)
	}
	if f.UserEmail != "" {
		q = q.Where("user_email = ?", f.UserEmail)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("title ILIKE ? OR user_name ILIKE ? OR category ILIKE ?", pattern, pattern, pattern)
	}
	q = q.Order("created_at DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	out := []portfolio.Artwork{}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) GetArtwork(ctx context.Context, id string) (portfolio.Artwork, bool, error) {
	var a portfolio.Artwork
	if err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return portfolio.Artwork{}, false, nil
		}
		return portfolio.Artwork{}, false, err
	}
	return a, true, nil
}

func (s *GormStore) ReplaceArtwork(ctx context.Context, id string, a portfolio.Artwork) (*portfolio.Artwork, error) {
	a.ID = id
	a.LikedBy, a.Likes = normalizeLikedBy(a.LikedBy)
	if a.Visibility == "" {
		a.Visibility = portfolio.VisibilityPublic
	}
	res := s.db.WithContext(ctx).Model(&portfolio.Artwork{}).
		Where("id = ?", id).
		Select("*").Omit("id", "created_at").
		Updates(a)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	var out portfolio.Artwork
	if err := s.db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleLike runs inside a transaction with the artwork row locked, so
// concurrent toggles for the same artwork serialize instead of losing
// updates.
func (s *GormStore) ToggleLike(ctx context.Context, id, email string) (int, bool, bool, error) {
	var likes int
	var liked bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a portfolio.Artwork
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&a, "id = ?", id).Error; err != nil {
			return err
		}
		set := make(datatypes.JSONSlice[string], 0, len(a.LikedBy)+1)
		for _, e := range a.LikedBy {
			if e != email {
				set = append(set, e)
			}
		}
		liked = len(set) == len(a.LikedBy)
		if liked {
			set = append(set, email)
		}
		likes = len(set)
		return tx.Model(&portfolio.Artwork{}).Where("id = ?", id).
			Updates(map[string]interface{}{"likes": likes, "liked_by": set}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, false, nil
		}
		return 0, false, false, err
	}
	return likes, liked, true, nil
}

func (s *GormStore) DeleteArtwork(ctx context.Context, id string) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&portfolio.Artwork{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (s *GormStore) CountArtworksByOwner(ctx context.Context, email string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&portfolio.Artwork{}).
		Where("user_email = ?", email).Count(&count).Error
	return count, err
}

// AddFavorite relies on the (artwork_id, user_email) unique index: the
// duplicate case is decided by the database, not by a racy pre-check.
func (s *GormStore) AddFavorite(ctx context.Context, artworkID, email string) (portfolio.Favorite, bool, error) {
	fav := portfolio.Favorite{
		ID:        uuid.NewString(),
		ArtworkID: artworkID,
		UserEmail: email,
		CreatedAt: time.Now().UTC(),
	}
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "artwork_id"}, {Name: "user_email"}},
		DoNothing: true,
	}).Create(&fav)
	if res.Error != nil {
		return portfolio.Favorite{}, false, res.Error
	}
	if res.RowsAffected == 0 {
		return portfolio.Favorite{}, false, nil
	}
	return fav, true, nil
}

func (s *GormStore) ListFavorites(ctx context.Context, email string) ([]portfolio.FavoriteWithArtwork, error) {
	out := []portfolio.FavoriteWithArtwork{}
	if email == "" {
		return out, nil
	}
	var favs []portfolio.Favorite
	if err := s.db.WithContext(ctx).Where("user_email = ?", email).
		Order("created_at DESC").Find(&favs).Error; err != nil {
		return nil, err
	}
	if len(favs) == 0 {
		return out, nil
	}
	ids := make([]string, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.ArtworkID)
	}
	var artworks []portfolio.Artwork
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&artworks).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]portfolio.Artwork, len(artworks))
	for _, a := range artworks {
		byID[a.ID] = a
	}
	for _, f := range favs {
		a, ok := byID[f.ArtworkID]
		if !ok {
			// orphaned favorite, artwork was deleted
			continue
		}
		out = append(out, portfolio.FavoriteWithArtwork{ID: f.ID, Artwork: a})
	}
	return out, nil
}

func (s *GormStore) DeleteFavorite(ctx context.Context, id string) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&portfolio.Favorite{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (s *GormStore) OwnerStats(ctx context.Context, email string) (portfolio.OwnerStats, error) {
	var stats portfolio.OwnerStats
	if err := s.db.WithContext(ctx).Model(&portfolio.Artwork{}).
		Where("user_email = ?", email).Count(&stats.TotalArtworks).Error; err != nil {
		return portfolio.OwnerStats{}, err
	}
	if err := s.db.WithContext(ctx).Model(&portfolio.Artwork{}).
		Where("user_email = ?", email).
		Select("COALESCE(SUM(likes), 0)").Scan(&stats.TotalLikes).Error; err != nil {
		return portfolio.OwnerStats{}, err
	}
	if err := s.db.WithContext(ctx).Model(&portfolio.Favorite{}).
		Where("user_email = ?", email).Count(&stats.TotalFavorites).Error; err != nil {
		return portfolio.OwnerStats{}, err
	}
	return stats, nil
}

func (s *GormStore) RecentArtworks(ctx context.Context, email string, limit int) ([]portfolio.Artwork, error) {
	return s.ListArtworks(ctx, ArtworkFilter{UserEmail: email, Limit: limit})
}

func (s *GormStore) CategoryCounts(ctx context.Context, email string) ([]portfolio.CategoryCount, error) {
	out := []portfolio.CategoryCount{}
	err := s.db.WithContext(ctx).Model(&portfolio.Artwork{}).
		Select("category, COUNT(*) AS count").
		Where("user_email = ?", email).
		Group("category").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
