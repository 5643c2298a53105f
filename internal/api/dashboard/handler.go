package dashboard

import (
	"log"
	"net/http"

	"art-portfolio-back/internal/domain/portfolio"
	"art-portfolio-back/internal/store"

	"github.com/gin-gonic/gin"
)

const recentLimit = 5

type Handler struct {
	store store.Store
}

func NewHandler(st store.Store) *Handler {
	return &Handler{store: st}
}

func serverError(c *gin.Context, err error) {
	log.Printf("dashboard: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}

// GET /dashboard/stats?email=
func (h *Handler) Stats(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}
	stats, err := h.store.OwnerStats(c.Request.Context(), email)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /dashboard/recent-artworks?email=
func (h *Handler) RecentArtworks(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []portfolio.Artwork{})
		return
	}
	res, err := h.store.RecentArtworks(c.Request.Context(), email, recentLimit)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /dashboard/category-stats?email=
//
// Email is required here for the same reason as on /dashboard/stats: without
// it the breakdown would silently span every user.
func (h *Handler) CategoryStats(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}
	res, err := h.store.CategoryCounts(c.Request.Context(), email)
	if err != nil {
		serverError(c, err)
		return
	}
	if res == nil {
		res = []portfolio.CategoryCount{}
	}
	c.JSON(http.StatusOK, res)
}
