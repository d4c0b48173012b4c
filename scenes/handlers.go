package scenes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Weslleykacau1/AvatarForge/gallery"
	"github.com/Weslleykacau1/AvatarForge/generation"
	"github.com/Weslleykacau1/AvatarForge/models"
	"github.com/Weslleykacau1/AvatarForge/processing"
)

type Handler struct {
	DB    *gorm.DB
	Redis *redis.Client
	Repo  gallery.Repository[models.Scene]
}

func NewHandler(db *gorm.DB, rdb *redis.Client) *Handler {
	return &Handler{
		DB:    db,
		Redis: rdb,
		Repo:  gallery.NewGormRepository[models.Scene](db),
	}
}

func (h *Handler) ListScenes(c *gin.Context) {
	scenes, err := h.Repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve scenes"})
		return
	}
	c.JSON(http.StatusOK, scenes)
}

func (h *Handler) GetScene(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scene ID"})
		return
	}

	scene, err := h.Repo.GetByID(c.Request.Context(), uint(id))
	if err == gallery.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scene not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, scene)
}

func (h *Handler) UpsertScene(c *gin.Context) {
	var scene models.Scene
	if err := c.ShouldBindJSON(&scene); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if scene.Scenario == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Scenario is required"})
		return
	}
	if !models.ValidDuration(scene.DurationSeconds) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Duration must be one of 5, 6, 7 or 8 seconds"})
		return
	}
	if !models.ValidAspectRatio(scene.AspectRatio) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aspect ratio must be 9:16, 16:9 or 1:1"})
		return
	}

	if err := h.Repo.Upsert(c.Request.Context(), &scene); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save scene"})
		return
	}
	c.JSON(http.StatusOK, scene)
}

func (h *Handler) DeleteScene(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scene ID"})
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), uint(id)); err != nil {
		if err == gallery.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Scene not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete scene"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

type AnalyzeImageRequest struct {
	PhotoDataURI string `json:"photo_data_uri" binding:"required"`
}

// AnalyzeImage describes the scenery of a reference photo.
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

	description, err := processing.AnalyzeSceneImage(c.Request.Context(), tc, req.PhotoDataURI)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, description)
}
