package portfolio

import (
	"time"

	"gorm.io/datatypes"
)

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Artwork is a single portfolio piece. JSON field names follow the wire
// contract the frontend already consumes, including the "_id" key.
type Artwork struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`

	Image       string  `json:"image"`
	Title       string  `json:"title"`
	Category    string  `gorm:"index" json:"category"`
	Medium      string  `json:"medium"`
	Description string  `json:"description"`
	Dimensions  string  `json:"dimensions"`
	Price       float64 `json:"price"`

	Visibility string `gorm:"type:text;not null;default:'public';index" json:"visibility"`

	UserName  string `json:"userName"`
	UserEmail string `gorm:"index" json:"userEmail"`

	// Likes always equals len(LikedBy); both are mutated together.
	Likes   int                         `gorm:"not null;default:0" json:"likes"`
	LikedBy datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"likedBy"`

	ArtistPhoto string `json:"artistPhoto"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Artwork) TableName() string { return "artworks" }

// HasLiked reports whether email is present in the liked-by set.
func (a Artwork) HasLiked(email string) bool {
	for _, e := range a.LikedBy {
		if e == email {
			return true
		}
	}
	return false
}

// CategoryCount is one bucket of the per-category breakdown.
type CategoryCount struct {
	Category string `gorm:"column:category" json:"_id"`
	Count    int64  `gorm:"column:count" json:"count"`
}

// OwnerStats is the dashboard summary for one user.
type OwnerStats struct {
	TotalArtworks  int64 `json:"totalArtworks"`
	TotalLikes     int64 `json:"totalLikes"`
	TotalFavorites int64 `json:"totalFavorites"`
}
