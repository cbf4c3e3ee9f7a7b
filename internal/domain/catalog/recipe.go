package catalog

import (
	"fmt"

	"github.com/andrescamacho/logistics-go/internal/domain/shared"
)

// RecipeInput is one required input line of a recipe
type RecipeInput struct {
	Resource *Resource
	Amount   int
}

// Recipe is an immutable catalog entry describing a conversion rule:
// a fixed set of inputs is consumed when a job starts, and after Duration
// ticks the output is added to the facility's storage. Recipes are shared
// by reference; a facility may run the same recipe in several parallel
// workshops.
type Recipe struct {
	symbol       string
	output       *Resource
	outputAmount int
	inputs       []RecipeInput
	duration     int
	benefit      float64
}

// NewRecipe creates a recipe catalog entry with validation.
// The input order is preserved and drives deterministic iteration in
// pull-request computation and job starts.
func NewRecipe(symbol string, output *Resource, outputAmount int, inputs []RecipeInput, duration int, benefit float64) (*Recipe, error) {
	if symbol == "" {
		return nil, shared.NewInvalidRecipeDataError("recipe symbol cannot be empty")
	}
	if output == nil {
		return nil, shared.NewInvalidRecipeDataError("recipe output cannot be nil")
	}
	if outputAmount <= 0 {
		return nil, shared.NewInvalidRecipeDataError("recipe output_amount must be positive")
	}
	if duration <= 0 {
		return nil, shared.NewInvalidRecipeDataError("recipe duration must be positive")
	}
	for _, input := range inputs {
		if input.Resource == nil {
			return nil, shared.NewInvalidRecipeDataError("recipe input resource cannot be nil")
		}
		if input.Amount <= 0 {
			return nil, shared.NewInvalidRecipeDataError(
				fmt.Sprintf("recipe input amount for %s must be positive", input.Resource.Symbol()))
		}
	}

	return &Recipe{
		symbol:       symbol,
		output:       output,
		outputAmount: outputAmount,
		inputs:       inputs,
		duration:     duration,
		benefit:      benefit,
	}, nil
}

// Symbol returns the unique recipe identifier
func (r *Recipe) Symbol() string {
	return r.symbol
}

// Output returns the produced resource
func (r *Recipe) Output() *Resource {
	return r.output
}

// OutputAmount returns units produced per completed job
func (r *Recipe) OutputAmount() int {
	return r.outputAmount
}

// Inputs returns the required input lines in declaration order.
// Callers must not mutate the returned slice.
func (r *Recipe) Inputs() []RecipeInput {
	return r.inputs
}

// Duration returns the job duration in ticks
func (r *Recipe) Duration() int {
	return r.duration
}

// Benefit returns the heuristic benefit scalar. Advisory only; the core
// never enforces it.
func (r *Recipe) Benefit() float64 {
	return r.benefit
}

// Consumes checks whether the recipe requires the given resource as input
func (r *Recipe) Consumes(resource *Resource) bool {
	for _, input := range r.inputs {
		if input.Resource == resource {
			return true
		}
	}
	return false
}

func (r *Recipe) String() string {
	return fmt.Sprintf("Recipe(%s -> %dx %s)", r.symbol, r.outputAmount, r.output.Symbol())
}
