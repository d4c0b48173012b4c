package auth

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type TokenRequest struct {
	ClientName string `json:"client_name" binding:"required"`
	AccessKey  string `json:"access_key" binding:"required"`
}

// IssueToken exchanges the shared access key for a bearer token.
func (h *Handler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessKey := os.Getenv("API_ACCESS_KEY")
	if accessKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API_ACCESS_KEY environment variable not set"})
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.AccessKey), []byte(accessKey)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid access key"})
		return
	}

	token, err := GenerateJWT(req.ClientName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
