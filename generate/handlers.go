// Package generate exposes the synchronous generation flows over HTTP:
// title, action, dialogue, SEO copy and full scripts.
package generate

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Weslleykacau1/AvatarForge/generation"
	"github.com/Weslleykacau1/AvatarForge/processing"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type ContextRequest struct {
	Context string `json:"context" binding:"required"`
}

type ScenarioRequest struct {
	Scenario string `json:"scenario" binding:"required"`
}

type ScriptRequest struct {
	InfluencerDetails string `json:"influencer_details" binding:"required"`
	SceneDetails      string `json:"scene_details" binding:"required"`
	OutputFormat      string `json:"output_format" binding:"required"`
}

func (h *Handler) GenerateTitle(c *gin.Context) {
	var req ContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respond(c, func(ctx context.Context, tc *generation.TextClient) (interface{}, error) {
		title, err := processing.GenerateTitle(ctx, tc, req.Context)
		return gin.H{"title": title}, err
	})
}

func (h *Handler) GenerateAction(c *gin.Context) {
	var req ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respond(c, func(ctx context.Context, tc *generation.TextClient) (interface{}, error) {
		action, err := processing.GenerateAction(ctx, tc, req.Scenario)
		return gin.H{"action": action}, err
	})
}

func (h *Handler) GenerateDialogue(c *gin.Context) {
	var req ContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respond(c, func(ctx context.Context, tc *generation.TextClient) (interface{}, error) {
		dialogue, err := processing.GenerateDialogue(ctx, tc, req.Context)
		return gin.H{"dialogue": dialogue}, err
	})
}

func (h *Handler) GenerateSEO(c *gin.Context) {
	var req ContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respond(c, func(ctx context.Context, tc *generation.TextClient) (interface{}, error) {
		seo, err := processing.GenerateSEO(ctx, tc, req.Context)
		return gin.H{"seo": seo}, err
	})
}

func (h *Handler) GenerateScript(c *gin.Context) {
	var req ScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respond(c, func(ctx context.Context, tc *generation.TextClient) (interface{}, error) {
		script, err := processing.GenerateScript(ctx, tc, req.InfluencerDetails, req.SceneDetails, req.OutputFormat)
		return gin.H{"script": script}, err
	})
}

func (h *Handler) respond(c *gin.Context, run func(ctx context.Context, tc *generation.TextClient) (interface{}, error)) {
	tc, err := generation.NewTextClient()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := run(c.Request.Context(), tc)
	if err != nil {
		status := http.StatusBadGateway
		if _, ok := err.(*generation.ValidationError); ok {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
