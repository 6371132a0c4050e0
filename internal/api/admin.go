package api

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealsmith/recipe-service/internal/service"
)

// AdminHandler handles administrative requests
type AdminHandler struct {
	preferences *service.PreferenceService
	secretKey   string
}

// NewAdminHandler creates a new AdminHandler instance
func NewAdminHandler(preferences *service.PreferenceService, secretKey string) *AdminHandler {
	return &AdminHandler{preferences: preferences, secretKey: secretKey}
}

// RegisterRoutes registers the admin routes
func (h *AdminHandler) RegisterRoutes(router *gin.Engine) {
	admin := router.Group("/admin")
	{
		admin.DELETE("/clean-database", h.CleanDatabase)
	}
}

// CleanDatabase handles DELETE /admin/clean-database. It wipes all stored
// preferences (for testing purposes) and requires the shared secret key.
func (h *AdminHandler) CleanDatabase(c *gin.Context) {
	provided := c.Query("secret_key")
	if h.secretKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(h.secretKey)) != 1 {
		log.Printf("Invalid secret key provided for clean-database")
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid secret key"})
		return
	}

	deleted, err := h.preferences.DeleteAll(c.Request.Context())
	if err != nil {
		log.Printf("Failed to clean database: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clean database"})
		return
	}

	log.Printf("Database cleaned: %d preference records deleted", deleted)
	c.JSON(http.StatusOK, gin.H{
		"message": "database cleaned successfully",
		"deleted": deleted,
	})
}
