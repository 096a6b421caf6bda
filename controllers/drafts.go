package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"restaurant-pos/models"
	"restaurant-pos/services"
	"restaurant-pos/store"
)

func ListDrafts(c *gin.Context) {
	drafts, err := draftService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "drafts": drafts})
}

// SaveDraft creates a draft when the body carries no id, otherwise updates
// that draft.
func SaveDraft(c *gin.Context) {
	var input models.DraftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, created, err := draftService.Save(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingTable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Table number is required"})
		case errors.Is(err, services.ErrTableConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": fmt.Sprintf("Table Number %q is already in use by another active order.", input.TableNumber),
			})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found for update"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"success": true, "draft": draft})
}

func DeleteDraft(c *gin.Context) {
	draftID := c.Param("id")

	// The client might send a URL-encoded id; try the decoded form first,
	// then the raw one.
	err := store.ErrNotFound
	if decoded, decErr := url.PathUnescape(draftID); decErr == nil {
		err = draftService.Delete(c.Request.Context(), decoded)
	}
	if errors.Is(err, store.ErrNotFound) {
		err = draftService.Delete(c.Request.Context(), draftID)
	}

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
