package utils

import "github.com/gin-gonic/gin"

// JSONError writes the wire error shape used by every endpoint.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
