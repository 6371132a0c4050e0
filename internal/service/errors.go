package service

import "errors"

var (
	// ErrContradictoryPreference is returned when a create asserts a
	// preference value conflicting with the stored value for the same
	// (user, ingredient) pair.
	ErrContradictoryPreference = errors.New("contradictory preference detected")

	// ErrPreferenceNotFound is returned by reads, updates and deletes
	// targeting a pair with no stored record.
	ErrPreferenceNotFound = errors.New("ingredient not found for the given user")

	// ErrDislikedIngredient rejects a recipe request containing any
	// ingredient the user has marked disliked. No generation is attempted.
	ErrDislikedIngredient = errors.New("cannot generate recipes with disliked ingredients")

	// ErrNoRecipesFound is returned when generation produced an empty
	// recipe list.
	ErrNoRecipesFound = errors.New("no recipes could be generated from the given ingredients")

	// ErrRecipeGeneration wraps upstream LLM failures: exhausted retries or
	// a payload that does not parse as a recipe list.
	ErrRecipeGeneration = errors.New("recipe generation failed")
)
