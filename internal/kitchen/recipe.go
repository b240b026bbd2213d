package kitchen

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var ErrInvalidRecipe = errors.New("invalid recipe")

// CuttingRecipe turns Input into Output after ProgressMax cuts.
type CuttingRecipe struct {
	Input       ItemKind
	Output      ItemKind
	ProgressMax int
}

// RecipeBook is a small recipe table looked up by linear scan.
type RecipeBook []CuttingRecipe

// DefaultCuttingRecipes is the authored cutting table.
var DefaultCuttingRecipes = RecipeBook{
	{Input: ItemTomato, Output: ItemTomatoSlices, ProgressMax: 3},
	{Input: ItemCheeseBlock, Output: ItemCheeseSlices, ProgressMax: 5},
	{Input: ItemCabbage, Output: ItemCabbageSlices, ProgressMax: 5},
}

// Find returns the recipe whose input is kind.
func (b RecipeBook) Find(kind ItemKind) (CuttingRecipe, bool) {
	for _, r := range b {
		if r.Input == kind {
			return r, true
		}
	}
	return CuttingRecipe{}, false
}

func (b RecipeBook) HasRecipe(kind ItemKind) bool {
	_, ok := b.Find(kind)
	return ok
}

// Output returns the output kind for input, or ItemNone.
func (b RecipeBook) Output(input ItemKind) ItemKind {
	if r, ok := b.Find(input); ok {
		return r.Output
	}
	return ItemNone
}

// Validate checks counts, kinds and duplicate inputs.
func (b RecipeBook) Validate() error {
	seen := make(map[ItemKind]bool, len(b))
	for i, r := range b {
		if _, ok := ItemTypes[r.Input]; !ok {
			return fmt.Errorf("%w: recipe %d: input %v", ErrInvalidRecipe, i, r.Input)
		}
		if _, ok := ItemTypes[r.Output]; !ok {
			return fmt.Errorf("%w: recipe %d: output %v", ErrInvalidRecipe, i, r.Output)
		}
		if r.ProgressMax <= 0 {
			return fmt.Errorf("%w: recipe %d: progress max %d", ErrInvalidRecipe, i, r.ProgressMax)
		}
		if seen[r.Input] {
			return fmt.Errorf("%w: recipe %d: duplicate input %v", ErrInvalidRecipe, i, r.Input)
		}
		seen[r.Input] = true
	}
	return nil
}

type recipeFile struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	ProgressMax int    `json:"progress_max"`
}

// LoadRecipes reads a JSON array of {"input","output","progress_max"}
// entries keyed by item names.
func LoadRecipes(r io.Reader) (RecipeBook, error) {
	var raw []recipeFile
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}
	book := make(RecipeBook, 0, len(raw))
	for _, e := range raw {
		in, err := ParseItemKind(e.Input)
		if err != nil {
			return nil, fmt.Errorf("recipe input: %w", err)
		}
		out, err := ParseItemKind(e.Output)
		if err != nil {
			return nil, fmt.Errorf("recipe output: %w", err)
		}
		book = append(book, CuttingRecipe{Input: in, Output: out, ProgressMax: e.ProgressMax})
	}
	if err := book.Validate(); err != nil {
		return nil, err
	}
	return book, nil
}
