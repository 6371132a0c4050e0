package service

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/mealsmith/recipe-service/internal/llm"
	"github.com/mealsmith/recipe-service/internal/models"
)

// Sampling parameters for recipe generation.
const (
	generationTemperature = 0.6
	generationMaxTokens   = 4096
)

// RecipeService filters recipe requests against stored preferences and
// delegates generation to the LLM client. It holds no per-request state.
type RecipeService struct {
	db  *gorm.DB
	llm llm.Client
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, client llm.Client) *RecipeService {
	return &RecipeService{db: db, llm: client}
}

// PrepareIngredients loads the user's stored preferences for the requested
// ingredients in a single batched query and annotates each ingredient with
// its preference, or "no preference" when none is stored. The whole request
// fails with ErrDislikedIngredient if any requested ingredient is disliked;
// no generation is attempted in that case.
func (s *RecipeService) PrepareIngredients(ctx context.Context, userID int, ingredients []string) (map[string]string, error) {
	var prefs []models.IngredientPreference
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND ingredient IN ?", userID, ingredients).
		Find(&prefs).Error
	if err != nil {
		return nil, err
	}

	stored := make(map[string]models.PreferenceType, len(prefs))
	for _, p := range prefs {
		stored[p.Ingredient] = p.Preference
	}

	for _, pref := range stored {
		if pref == models.PreferenceDisliked {
			return nil, ErrDislikedIngredient
		}
	}

	annotated := make(map[string]string, len(ingredients))
	for _, ingredient := range ingredients {
		if pref, ok := stored[ingredient]; ok {
			annotated[ingredient] = string(pref)
		} else {
			annotated[ingredient] = models.NoPreference
		}
	}
	return annotated, nil
}

// GenerateRecipes renders the generation prompt from the annotated map and
// invokes the LLM with the recipe-list schema. An empty result fails with
// ErrNoRecipesFound; transport and parse failures wrap ErrRecipeGeneration.
func (s *RecipeService) GenerateRecipes(ctx context.Context, annotated map[string]string) (models.RecipeList, error) {
	prompt := s.llm.BuildPrompt(
		llm.RecipesGenerationSystemPrompt,
		nil,
		llm.RenderRecipeInstruction(annotated),
	)

	raw, err := s.llm.GenerateStructured(ctx, prompt, llm.RecipeListSchema(), generationTemperature, generationMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecipeGeneration, err)
	}

	// Structured decoding binds the payload to an object wrapping the list.
	var payload struct {
		Recipes models.RecipeList `json:"recipes"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to parse recipe list: %w", ErrRecipeGeneration, err)
	}

	if len(payload.Recipes) == 0 {
		return nil, ErrNoRecipesFound
	}
	return payload.Recipes, nil
}
