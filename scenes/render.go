package scenes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Weslleykacau1/AvatarForge/models"
	"github.com/Weslleykacau1/AvatarForge/tasks"
)

type RenderSceneRequest struct {
	AvatarID  uint  `json:"avatar_id" binding:"required"`
	ProductID *uint `json:"product_id"`
}

// RenderScene freezes a stored scene plus its avatar (and optional
// product) into a job and queues it for the worker.
func (h *Handler) RenderScene(c *gin.Context) {
	sceneID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scene ID"})
		return
	}

	var req RenderSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var scene models.Scene
	if err := h.DB.First(&scene, sceneID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Scene not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	var avatar models.Avatar
	if err := h.DB.First(&avatar, req.AvatarID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Avatar not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	payload := tasks.SceneRenderPayload{Avatar: avatar, Scene: scene}
	if req.ProductID != nil {
		var product models.Product
		if err := h.DB.First(&product, *req.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			}
			return
		}
		payload.Product = &product
	}

	h.enqueueJob(c, "scene", tasks.QueueSceneRender, payload)
}

// RenderInline accepts a self-contained render payload, for callers that
// do not keep records in the galleries.
func (h *Handler) RenderInline(c *gin.Context) {
	var payload tasks.SceneRenderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.Scene.Scenario == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Scenario is required"})
		return
	}
	if !models.ValidDuration(payload.Scene.DurationSeconds) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Duration must be one of 5, 6, 7 or 8 seconds"})
		return
	}
	if !models.ValidAspectRatio(payload.Scene.AspectRatio) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aspect ratio must be 9:16, 16:9 or 1:1"})
		return
	}

	h.enqueueJob(c, "scene", tasks.QueueSceneRender, payload)
}

type RenderScriptRequest struct {
	Script models.Script `json:"script" binding:"required"`
}

// RenderScript queues a structured-script render. Only the first scene of
// the script is rendered.
func (h *Handler) RenderScript(c *gin.Context) {
	var req RenderScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Script.Scenes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Script must contain at least one scene"})
		return
	}

	h.enqueueJob(c, "script", tasks.QueueScriptRender, tasks.ScriptRenderPayload{Script: req.Script})
}

// GetJob reports job status and, when complete, the rendered asset.
func (h *Handler) GetJob(c *gin.Context) {
	var job models.SceneJob
	if err := h.DB.First(&job, "public_id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}
	c.JSON(http.StatusOK, job)
}

// enqueueJob persists a pending job with its frozen payload and pushes the
// task to the given queue.
func (h *Handler) enqueueJob(c *gin.Context, kind, queue string, payload interface{}) {
	payloadStr, err := tasks.Marshal(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode payload"})
		return
	}

	job := models.SceneJob{
		PublicID: uuid.NewString(),
		Kind:     kind,
		Status:   models.JobStatusPending,
		Payload:  payloadStr,
	}
	if err := h.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}

	taskStr, err := tasks.Marshal(tasks.RenderTaskPayload{JobID: job.PublicID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode task"})
		return
	}
	if err := h.Redis.LPush(c.Request.Context(), queue, taskStr).Err(); err != nil {
		log.Printf("Error pushing job %s to queue %s: %v", job.PublicID, queue, err)
		h.DB.Model(&job).Update("status", "failed_queue")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue job"})
		return
	}

	log.Printf("Queued %s job %s on %s", kind, job.PublicID, queue)
	c.JSON(http.StatusAccepted, job)
}
