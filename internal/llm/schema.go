package llm

// RecipeListSchema declares the JSON shape recipe completions are bound to.
// Structured decoding requires an object root, so the list is wrapped in a
// "recipes" field; the service unwraps it after parsing.
func RecipeListSchema() ResponseSchema {
	return ResponseSchema{
		Name:        "recipe_list",
		Description: "A list of recipes generated from the provided ingredients.",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"recipes": map[string]any{
					"type":        "array",
					"description": "List of generated recipes. Empty if no complete recipe can be made.",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name": map[string]any{
								"type":        "string",
								"description": "The title of the recipe.",
							},
							"ingredients_quantities": map[string]any{
								"type":        "array",
								"description": "List of ingredients with their quantities.",
								"items": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"ingredient": map[string]any{
											"type":        "string",
											"description": "The name of the ingredient.",
										},
										"quantity": map[string]any{
											"type":        "string",
											"description": "The quantity of the ingredient.",
										},
									},
									"required":             []string{"ingredient", "quantity"},
									"additionalProperties": false,
								},
							},
							"instructions": map[string]any{
								"type":        "string",
								"description": "Detailed recipe instructions.",
							},
							"estimated_cooking_time": map[string]any{
								"type":        "string",
								"description": "Estimated cooking time in minutes.",
							},
							"difficulty_level": map[string]any{
								"type":        "string",
								"description": "Difficulty level of the recipe (Easy/Medium/Hard).",
							},
							"calories": map[string]any{
								"type":        "string",
								"description": "Calories per serving.",
							},
							"servings": map[string]any{
								"type":        "integer",
								"description": "Number of servings.",
							},
						},
						"required": []string{
							"name",
							"ingredients_quantities",
							"instructions",
							"estimated_cooking_time",
							"difficulty_level",
							"calories",
							"servings",
						},
						"additionalProperties": false,
					},
				},
			},
			"required":             []string{"recipes"},
			"additionalProperties": false,
		},
	}
}
