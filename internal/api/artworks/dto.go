package artworks

import "art-portfolio-back/internal/domain/portfolio"

// ---------- requests

// ArtworkInput is the strict request model for create and replace. Unknown
// JSON fields are rejected by the decoder; visibility must be one of the
// known values when present.
type ArtworkInput struct {
	Image       string   `json:"image"`
	Title       string   `json:"title" binding:"required"`
	Category    string   `json:"category"`
	Medium      string   `json:"medium"`
	Description string   `json:"description"`
	Dimensions  string   `json:"dimensions"`
	Price       float64  `json:"price" binding:"omitempty,min=0"`
	Visibility  string   `json:"visibility" binding:"omitempty,artwork_visibility"`
	UserName    string   `json:"userName"`
	UserEmail   string   `json:"userEmail" binding:"omitempty,email"`
	Likes       int      `json:"likes" binding:"omitempty,min=0"`
	LikedBy     []string `json:"likedBy" binding:"omitempty,dive,email"`
	ArtistPhoto string   `json:"artistPhoto"`
}

func (in ArtworkInput) toModel() portfolio.Artwork {
	return portfolio.Artwork{
		Image:       in.Image,
		Title:       in.Title,
		Category:    in.Category,
		Medium:      in.Medium,
		Description: in.Description,
		Dimensions:  in.Dimensions,
		Price:       in.Price,
		Visibility:  in.Visibility,
		UserName:    in.UserName,
		UserEmail:   in.UserEmail,
		Likes:       in.Likes,
		LikedBy:     in.LikedBy,
		ArtistPhoto: in.ArtistPhoto,
	}
}

type LikeRequest struct {
	UserEmail string `json:"userEmail" binding:"required,email"`
}

// ---------- responses

// ArtworkDetail is the single-artwork view: the document plus how many
// artworks its owner has in total.
type ArtworkDetail struct {
	portfolio.Artwork
	TotalArtworks int64 `json:"totalArtworks"`
}

type LikeResponse struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
