package favorites

type AddFavoriteRequest struct {
	ArtworkID string `json:"artworkId" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required,email"`
}

type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
