package favorites

import (
	"log"
	"net/http"

	"art-portfolio-back/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store store.Store
}

func NewHandler(st store.Store) *Handler {
	return &Handler{store: st}
}

func serverError(c *gin.Context, err error) {
	log.Printf("favorites: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}

// POST /favorites
//
// Re-favoriting an already saved artwork is a no-op answered with an
// "Already added" marker instead of an error or a duplicate record.
func (h *Handler) Add(c *gin.Context) {
	var in AddFavoriteRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "artworkId and userEmail are required"})
		return
	}
	fav, created, err := h.store.AddFavorite(c.Request.Context(), in.ArtworkID, in.UserEmail)
	if err != nil {
		serverError(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "Already added"})
		return
	}
	c.JSON(http.StatusOK, fav)
}

// GET /favorites?email=
//
// Favorites whose artwork has since been deleted are dropped from the
// listing, not cleaned up.
func (h *Handler) List(c *gin.Context) {
	res, err := h.store.ListFavorites(c.Request.Context(), c.Query("email"))
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DELETE /favorites/:id
func (h *Handler) Delete(c *gin.Context) {
	deleted, err := h.store.DeleteFavorite(c.Request.Context(), c.Param("id"))
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{DeletedCount: deleted})
}
