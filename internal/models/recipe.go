package models

// IngredientQuantity pairs an ingredient name with the quantity used in a
// recipe.
type IngredientQuantity struct {
	Ingredient string `json:"ingredient"`
	Quantity   string `json:"quantity"`
}

// Recipe is a single generated recipe. Recipes are produced transiently per
// request and never persisted.
type Recipe struct {
	Name                  string               `json:"name"`
	IngredientsQuantities []IngredientQuantity `json:"ingredients_quantities"`
	Instructions          string               `json:"instructions"`
	EstimatedCookingTime  string               `json:"estimated_cooking_time"`
	DifficultyLevel       string               `json:"difficulty_level"`
	Calories              string               `json:"calories"`
	Servings              int                  `json:"servings"`
}

// RecipeList is an ordered sequence of generated recipes.
type RecipeList []Recipe
