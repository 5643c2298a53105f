package portfolio

import "time"

// Favorite marks an artwork as saved by a user. ArtworkID is a plain
// reference, not a foreign key: it may dangle after the artwork is deleted,
// and listings filter such orphans out instead of cleaning them up.
type Favorite struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	ArtworkID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_favorites_artwork_email,priority:1" json:"artworkId"`
	UserEmail string    `gorm:"not null;index;uniqueIndex:idx_favorites_artwork_email,priority:2" json:"userEmail"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Favorite) TableName() string { return "favorites" }

// FavoriteWithArtwork is the listing projection: the favorite's own id plus
// the resolved artwork document.
type FavoriteWithArtwork struct {
	ID      string  `json:"_id"`
	Artwork Artwork `json:"artwork"`
}
