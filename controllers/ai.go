package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// CorrectName proxies a single name to the correction provider. Provider
// failures surface as 502; the caller falls back to the original name.
func CorrectName(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = strings.TrimSpace(input.Text)
	}
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if corrector == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "GROQ_API_KEY not configured on server"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 8*time.Second)
	defer cancel()

	corrected, err := corrector.CorrectName(ctx, name)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI provider call failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "corrected": corrected})
}
