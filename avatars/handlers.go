package avatars

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Weslleykacau1/AvatarForge/gallery"
	"github.com/Weslleykacau1/AvatarForge/generation"
	"github.com/Weslleykacau1/AvatarForge/models"
	"github.com/Weslleykacau1/AvatarForge/processing"
)

type Handler struct {
	Repo gallery.Repository[models.Avatar]
}

func NewHandler(repo gallery.Repository[models.Avatar]) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) ListAvatars(c *gin.Context) {
	avatars, err := h.Repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve avatars"})
		return
	}
	c.JSON(http.StatusOK, avatars)
}

func (h *Handler) GetAvatar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid avatar ID"})
		return
	}

	avatar, err := h.Repo.GetByID(c.Request.Context(), uint(id))
	if err == gallery.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Avatar not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, avatar)
}

func (h *Handler) UpsertAvatar(c *gin.Context) {
	var avatar models.Avatar
	if err := c.ShouldBindJSON(&avatar); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if avatar.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	if err := h.Repo.Upsert(c.Request.Context(), &avatar); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save avatar"})
		return
	}
	c.JSON(http.StatusOK, avatar)
}

func (h *Handler) DeleteAvatar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid avatar ID"})
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), uint(id)); err != nil {
		if err == gallery.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Avatar not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete avatar"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

type AnalyzeImageRequest struct {
	PhotoDataURI string `json:"photo_data_uri" binding:"required"`
}

// AnalyzeImage builds a full influencer profile from a reference photo.
func (h *Handler) AnalyzeImage(c *gin.Context) {
	var req AnalyzeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tc, err := generation.NewTextClient()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	profile, err := processing.AnalyzeAvatarImage(c.Request.Context(), tc, req.PhotoDataURI)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

type AnalyzeTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// AnalyzeText extracts an influencer's name and niche from free text.
func (h *Handler) AnalyzeText(c *gin.Context) {
	var req AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tc, err := generation.NewTextClient()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	profile, err := processing.AnalyzeText(c.Request.Context(), tc, req.Text)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}
