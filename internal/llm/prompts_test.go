package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRecipeInstruction(t *testing.T) {
	instruction := RenderRecipeInstruction(map[string]string{
		"tomato": "liked",
		"rice":   "no preference",
	})

	assert.Contains(t, instruction, `'''{"rice": "no preference", "tomato": "liked"}'''`)
	assert.Contains(t, instruction, "Return an empty list if no recipes can be generated")
	assert.Contains(t, instruction, "up to five")
}

func TestRenderRecipeInstructionDeterministic(t *testing.T) {
	annotated := map[string]string{
		"pepper":  "liked",
		"salt":    "no preference",
		"chicken": "liked",
		"garlic":  "no preference",
	}

	first := RenderRecipeInstruction(annotated)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, RenderRecipeInstruction(annotated))
	}

	// Keys come out sorted regardless of map iteration order.
	assert.Less(t,
		strings.Index(first, `"chicken"`),
		strings.Index(first, `"garlic"`),
	)
	assert.Less(t,
		strings.Index(first, `"pepper"`),
		strings.Index(first, `"salt"`),
	)
}

func TestBuildPrompt(t *testing.T) {
	messages := buildPrompt(RecipesGenerationSystemPrompt, nil, "generate something")

	require.Len(t, messages, 2)
	assert.Equal(t, RoleSystem, messages[0].Role)
	assert.Equal(t, RecipesGenerationSystemPrompt, messages[0].Content)
	assert.Equal(t, RoleUser, messages[1].Role)
	assert.Equal(t, "generate something", messages[1].Content)
}

func TestBuildPromptWithExamples(t *testing.T) {
	examples := []Example{
		{Input: "first question", Output: "first answer"},
		{Input: "second question", Output: "second answer"},
	}

	messages := buildPrompt("system", examples, "final question")

	require.Len(t, messages, 6)
	assert.Equal(t, []Message{
		{Role: RoleSystem, Content: "system"},
		{Role: RoleUser, Content: "first question"},
		{Role: RoleAssistant, Content: "first answer"},
		{Role: RoleUser, Content: "second question"},
		{Role: RoleAssistant, Content: "second answer"},
		{Role: RoleUser, Content: "final question"},
	}, messages)
}

func TestBuildPromptWithoutSystemPrompt(t *testing.T) {
	messages := buildPrompt("", nil, "just the instruction")

	require.Len(t, messages, 1)
	assert.Equal(t, RoleUser, messages[0].Role)
}

func TestRecipeListSchema(t *testing.T) {
	schema := RecipeListSchema()

	assert.Equal(t, "recipe_list", schema.Name)
	assert.Equal(t, "object", schema.Schema["type"])
	assert.Equal(t, []string{"recipes"}, schema.Schema["required"])

	props, ok := schema.Schema["properties"].(map[string]any)
	require.True(t, ok)
	recipes, ok := props["recipes"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "array", recipes["type"])

	items, ok := recipes["items"].(map[string]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{
		"name",
		"ingredients_quantities",
		"instructions",
		"estimated_cooking_time",
		"difficulty_level",
		"calories",
		"servings",
	}, items["required"])
}
