package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealsmith/recipe-service/internal/service"
)

// minIngredients is the request-validation floor: fewer ingredients are
// rejected before the preference filter runs.
const minIngredients = 3

// RecipeHandler handles recipe generation requests
type RecipeHandler struct {
	recipes *service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.Engine, middlewares ...gin.HandlerFunc) {
	recipes := router.Group("/recipes", middlewares...)
	{
		recipes.GET("/", h.GenerateRecipes)
	}
}

// GenerateRecipes handles GET /recipes/. The requested ingredients are
// filtered against the user's stored preferences before any generation work;
// a single disliked ingredient rejects the whole request.
func (h *RecipeHandler) GenerateRecipes(c *gin.Context) {
	userID, ok := userIDFromQuery(c)
	if !ok {
		return
	}

	ingredients := c.QueryArray("ingredients")
	if len(ingredients) < minIngredients {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least 3 ingredients are required"})
		return
	}

	annotated, err := h.recipes.PrepareIngredients(c.Request.Context(), userID, ingredients)
	if err != nil {
		if errors.Is(err, service.ErrDislikedIngredient) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to load preferences for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preferences"})
		return
	}

	log.Printf("Generating recipes for user %d from %d ingredients", userID, len(ingredients))

	recipes, err := h.recipes.GenerateRecipes(c.Request.Context(), annotated)
	if err != nil {
		if errors.Is(err, service.ErrNoRecipesFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Recipe generation failed for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate recipes"})
		return
	}

	c.JSON(http.StatusOK, recipes)
}
