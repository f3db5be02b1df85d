package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response envelope helpers. Every success body carries success=true;
// error bodies are rendered by the error middleware.

func respondItem(c *gin.Context, status int, item interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"item":    item,
	})
}

func respondList(c *gin.Context, items interface{}, total, page, perPage int) {
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"items":       items,
		"total":       total,
		"totalPages":  totalPages,
		"currentPage": page,
	})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
	})
}
