package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mealsmith/recipe-service/internal/models"
	"github.com/mealsmith/recipe-service/internal/service"
)

// PreferenceHandler handles ingredient preference requests
type PreferenceHandler struct {
	preferences *service.PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler instance
func NewPreferenceHandler(preferences *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

// RegisterRoutes registers the ingredient preference routes
func (h *PreferenceHandler) RegisterRoutes(router *gin.Engine) {
	ingredients := router.Group("/ingredients")
	{
		ingredients.POST("/", h.CreatePreference)
		ingredients.GET("/", h.ListPreferences)
		ingredients.GET("/:ingredient", h.GetPreference)
		ingredients.PUT("/:ingredient", h.UpdatePreference)
		ingredients.DELETE("/:ingredient", h.DeletePreference)
	}
}

type createPreferenceRequest struct {
	UserID     int                   `json:"user_id" binding:"min=0"`
	Ingredient string                `json:"ingredient" binding:"required"`
	Preference models.PreferenceType `json:"preference" binding:"required,oneof=liked disliked"`
}

type updatePreferenceRequest struct {
	Preference models.PreferenceType `json:"preference" binding:"required,oneof=liked disliked"`
}

// CreatePreference handles POST /ingredients/
func (h *PreferenceHandler) CreatePreference(c *gin.Context) {
	var req createPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("Creating ingredient preference for user %d and ingredient %q", req.UserID, req.Ingredient)

	pref, err := h.preferences.Create(c.Request.Context(), req.UserID, req.Ingredient, req.Preference)
	if err != nil {
		if errors.Is(err, service.ErrContradictoryPreference) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to create preference: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create preference"})
		return
	}

	c.JSON(http.StatusCreated, pref)
}

// GetPreference handles GET /ingredients/:ingredient
func (h *PreferenceHandler) GetPreference(c *gin.Context) {
	userID, ok := userIDFromQuery(c)
	if !ok {
		return
	}
	ingredient := c.Param("ingredient")

	pref, err := h.preferences.Get(c.Request.Context(), userID, ingredient)
	if err != nil {
		log.Printf("Failed to read preference: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read preference"})
		return
	}
	if pref == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrPreferenceNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, pref)
}

// ListPreferences handles GET /ingredients/
func (h *PreferenceHandler) ListPreferences(c *gin.Context) {
	userID, ok := userIDFromQuery(c)
	if !ok {
		return
	}

	skip, ok := nonNegativeQueryInt(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := nonNegativeQueryInt(c, "limit", 100)
	if !ok {
		return
	}

	prefs, err := h.preferences.List(c.Request.Context(), userID, skip, limit)
	if err != nil {
		log.Printf("Failed to list preferences: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list preferences"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpdatePreference handles PUT /ingredients/:ingredient
func (h *PreferenceHandler) UpdatePreference(c *gin.Context) {
	userID, ok := userIDFromQuery(c)
	if !ok {
		return
	}
	ingredient := c.Param("ingredient")

	var req updatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("Updating ingredient %q for user %d", ingredient, userID)

	pref, err := h.preferences.Update(c.Request.Context(), userID, ingredient, req.Preference)
	if err != nil {
		if errors.Is(err, service.ErrPreferenceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to update preference: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update preference"})
		return
	}

	c.JSON(http.StatusOK, pref)
}

// DeletePreference handles DELETE /ingredients/:ingredient
func (h *PreferenceHandler) DeletePreference(c *gin.Context) {
	userID, ok := userIDFromQuery(c)
	if !ok {
		return
	}
	ingredient := c.Param("ingredient")

	log.Printf("Deleting ingredient %q for user %d", ingredient, userID)

	pref, err := h.preferences.Delete(c.Request.Context(), userID, ingredient)
	if err != nil {
		if errors.Is(err, service.ErrPreferenceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to delete preference: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete preference"})
		return
	}

	c.JSON(http.StatusOK, pref)
}

// userIDFromQuery parses the required positive user_id query parameter,
// writing a 400 response on failure.
func userIDFromQuery(c *gin.Context) (int, bool) {
	raw := c.Query("user_id")
	userID, err := strconv.Atoi(raw)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a positive integer"})
		return 0, false
	}
	return userID, true
}

// nonNegativeQueryInt parses an optional non-negative integer query
// parameter, writing a 400 response on failure.
func nonNegativeQueryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a non-negative integer"})
		return 0, false
	}
	return value, true
}
