package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sanctuary-builder/backend/models"
)

// localeFromQuery reads and validates the ?locale= parameter. Unknown
// locales are rejected with a 400; a missing value falls back to the
// default. Returns false when the response has already been written.
func localeFromQuery(c *gin.Context) (models.Locale, bool) {
	raw := c.DefaultQuery("locale", string(models.DefaultLocale))
	loc, err := models.ParseLocale(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported locale, expected en or zh"})
		return "", false
	}
	return loc, true
}
