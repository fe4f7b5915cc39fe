package handlers

import (
	"errors"
	"net/http"

	"github.com/Karthikeyagundu12/Nutrikart/apperr"
	"github.com/Karthikeyagundu12/Nutrikart/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError turns a classified error into a structured JSON response.
// Unclassified errors are logged and surfaced as a generic 500 without
// leaking internals.
func respondError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		body := gin.H{"error": ae.Message}
		for k, v := range ae.Meta {
			body[k] = v
		}
		c.JSON(ae.Kind.HTTPStatus(), body)
		return
	}

	config.Log.Error("unhandled error",
		zap.String("path", c.FullPath()),
		zap.String("method", c.Request.Method),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
