package store

import (
	"context"

	"art-portfolio-back/internal/domain/portfolio"
)

// ArtworkFilter narrows artwork listings. Zero-value fields are inactive.
// Search matches title, userName or category as a case-insensitive substring
// and is ANDed with the exact-match fields.
type ArtworkFilter struct {
	Visibility string
	UserEmail  string
	Category   string
	Search     string
	Limit      int
}

// Store defines persistence operations for artworks and favorites.
type Store interface {
	// artworks
	CreateArtwork(ctx context.Context, a *portfolio.Artwork) error
	ListArtworks(ctx context.Context, f ArtworkFilter) ([]portfolio.Artwork, error)
	GetArtwork(ctx context.Context, id string) (portfolio.Artwork, bool, error)
	// ReplaceArtwork overwrites every mutable field of the artwork with id.
	// It returns nil when the id matched nothing.
	ReplaceArtwork(ctx context.Context, id string, a portfolio.Artwork) (*portfolio.Artwork, error)
	// ToggleLike atomically flips email's membership in the liked-by set and
	// adjusts the like count in the same write. found is false when the
	// artwork does not exist.
	ToggleLike(ctx context.Context, id, email string) (likes int, liked bool, found bool, err error)
	DeleteArtwork(ctx context.Context, id string) (deleted int64, err error)
	CountArtworksByOwner(ctx context.Context, email string) (int64, error)

	// favorites
	// AddFavorite inserts the (artworkID, email) pair unless it already
	// exists; created is false for the duplicate case and no row is written.
	AddFavorite(ctx context.Context, artworkID, email string) (fav portfolio.Favorite, created bool, err error)
	// ListFavorites resolves each favorite's artwork and drops orphans.
	ListFavorites(ctx context.Context, email string) ([]portfolio.FavoriteWithArtwork, error)
	DeleteFavorite(ctx context.Context, id string) (deleted int64, err error)

	// dashboard
	OwnerStats(ctx context.Context, email string) (portfolio.OwnerStats, error)
	RecentArtworks(ctx context.Context, email string, limit int) ([]portfolio.Artwork, error)
	CategoryCounts(ctx context.Context, email string) ([]portfolio.CategoryCount, error)
}
