package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"restaurant-pos/services"
)

// ParseOrder turns free-text order lines into catalog-priced items. Names
// that miss the catalog go through the AI corrector (when configured);
// lines that still match nothing come back in "invalid" and are excluded
// from the finalize-able set.
func ParseOrder(c *gin.Context) {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(input.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	products, err := productStore.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	catalog := services.NewCatalog(products)
	lines := services.ParseText(input.Text)
	result := services.ResolveItems(c.Request.Context(), catalog, corrector, lines)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"items":   result.Items,
		"invalid": result.Invalid,
		"total":   result.Total,
	})
}
