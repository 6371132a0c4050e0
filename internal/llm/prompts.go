package llm

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// RecipesGenerationSystemPrompt describes the assistant's role for recipe
// generation.
const RecipesGenerationSystemPrompt = "You are a helpful assistant that generates delicious and nutritive recipes from a list of ingredients enclosed in triple quotes."

// recipesGenerationInstruction is the fixed instruction template. The
// annotated ingredient map is embedded where %s appears. The up-to-five cap
// is a prompt-level instruction only; the code does not truncate the result.
const recipesGenerationInstruction = `Generate recipes using the user's preferences enclosed in triple quotes. Prioritize the user's liked ingredients over the ones without preferences.

Return an empty list if no recipes can be generated (i.e., insufficient ingredients for being considered complete with culinary sense).

List of ingredients and preferences:
'''%s'''

The number of recipes to generate is up to five, depending on the number of available ingredients. The recipes should be complete and make culinary sense.`

// RenderRecipeInstruction embeds the annotated ingredient map into the
// instruction template. Keys are rendered in sorted order so the same
// annotation map always produces the same prompt.
func RenderRecipeInstruction(annotated map[string]string) string {
	names := make([]string, 0, len(annotated))
	for name := range annotated {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		key, _ := json.Marshal(name)
		val, _ := json.Marshal(annotated[name])
		b.Write(key)
		b.WriteString(": ")
		b.Write(val)
	}
	b.WriteByte('}')

	return fmt.Sprintf(recipesGenerationInstruction, b.String())
}
