package artworks

import (
	"log"
	"net/http"

	"art-portfolio-back/internal/domain/portfolio"
	"art-portfolio-back/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const featuredLimit = 6

type Handler struct {
	store store.Store
}

func NewHandler(st store.Store) *Handler {
	return &Handler{store: st}
}

// RegisterValidators installs the custom binding rules this package uses.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("artwork_visibility", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == portfolio.VisibilityPublic || s == portfolio.VisibilityPrivate
		})
	}
}

func serverError(c *gin.Context, err error) {
	log.Printf("artworks: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}

// POST /artworks
func (h *Handler) Create(c *gin.Context) {
	var in ArtworkInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid artwork payload"})
		return
	}
	a := in.toModel()
	if err := h.store.CreateArtwork(c.Request.Context(), &a); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// GET /artworks?visibility=&search=&email=&category=
func (h *Handler) List(c *gin.Context) {
	filter := store.ArtworkFilter{
		Visibility: c.Query("visibility"),
		UserEmail:  c.Query("email"),
		Category:   c.Query("category"),
		Search:     c.Query("search"),
	}
	res, err := h.store.ListArtworks(c.Request.Context(), filter)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /artworks/featured
func (h *Handler) Featured(c *gin.Context) {
	res, err := h.store.ListArtworks(c.Request.Context(), store.ArtworkFilter{
		Visibility: portfolio.VisibilityPublic,
		Limit:      featuredLimit,
	})
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /artworks/:id
func (h *Handler) GetByID(c *gin.Context) {
	a, found, err := h.store.GetArtwork(c.Request.Context(), c.Param("id"))
	if err != nil {
		serverError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Artwork not found"})
		return
	}
	total, err := h.store.CountArtworksByOwner(c.Request.Context(), a.UserEmail)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, ArtworkDetail{Artwork: a, TotalArtworks: total})
}

// PATCH /artworks/:id
//
// Answers 200 with a null body when the id matched nothing; existing callers
// rely on that instead of a 404.
func (h *Handler) Update(c *gin.Context) {
	var in ArtworkInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid artwork payload"})
		return
	}
	updated, err := h.store.ReplaceArtwork(c.Request.Context(), c.Param("id"), in.toModel())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// PATCH /artworks/:id/like
func (h *Handler) ToggleLike(c *gin.Context) {
	var in LikeRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userEmail is required"})
		return
	}
	likes, liked, found, err := h.store.ToggleLike(c.Request.Context(), c.Param("id"), in.UserEmail)
	if err != nil {
		serverError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Artwork not found"})
		return
	}
	c.JSON(http.StatusOK, LikeResponse{Likes: likes, Liked: liked})
}

// DELETE /artworks/:id
func (h *Handler) Delete(c *gin.Context) {
	deleted, err := h.store.DeleteArtwork(c.Request.Context(), c.Param("id"))
	if err != nil {
		serverError(c, err)
		return
	}
	// zero matches is a normal outcome, not an error
	c.JSON(http.StatusOK, DeleteResponse{DeletedCount: deleted})
}
