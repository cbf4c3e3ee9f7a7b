package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/logistics-go/internal/domain/catalog"
)

func TestNewResource_Validation(t *testing.T) {
	tests := []struct {
		name       string
		symbol     string
		baseValue  float64
		unitVolume float64
		wantErr    bool
	}{
		{"valid", "ORE", 10, 1, false},
		{"zero base value is allowed", "SLAG", 0, 1, false},
		{"empty symbol", "", 10, 1, true},
		{"negative base value", "ORE", -1, 1, true},
		{"zero unit volume", "ORE", 10, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resource, err := catalog.NewResource(tt.symbol, tt.symbol, tt.baseValue, tt.unitVolume)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, resource)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.symbol, resource.Symbol())
		})
	}
}

func TestNewRecipe_Validation(t *testing.T) {
	ore, err := catalog.NewResource("ORE", "Iron Ore", 10, 1)
	require.NoError(t, err)
	metal, err := catalog.NewResource("METAL_BAR", "Metal Bar", 40, 2)
	require.NoError(t, err)
	inputs := []catalog.RecipeInput{{Resource: ore, Amount: 2}}

	t.Run("valid", func(t *testing.T) {
		recipe, err := catalog.NewRecipe("SMELT", metal, 1, inputs, 10, 5)
		require.NoError(t, err)
		assert.Equal(t, metal, recipe.Output())
		assert.Equal(t, 10, recipe.Duration())
	})

	t.Run("nil output", func(t *testing.T) {
		_, err := catalog.NewRecipe("SMELT", nil, 1, inputs, 10, 0)
		assert.Error(t, err)
	})

	t.Run("zero duration", func(t *testing.T) {
		_, err := catalog.NewRecipe("SMELT", metal, 1, inputs, 0, 0)
		assert.Error(t, err)
	})

	t.Run("non-positive input amount", func(t *testing.T) {
		_, err := catalog.NewRecipe("SMELT", metal, 1, []catalog.RecipeInput{{Resource: ore, Amount: 0}}, 10, 0)
		assert.Error(t, err)
	})
}

func TestRecipe_Consumes(t *testing.T) {
	ore, err := catalog.NewResource("ORE", "Iron Ore", 10, 1)
	require.NoError(t, err)
	energy, err := catalog.NewResource("ENERGY_CELL", "Energy Cell", 15, 0.5)
	require.NoError(t, err)
	metal, err := catalog.NewResource("METAL_BAR", "Metal Bar", 40, 2)
	require.NoError(t, err)

	recipe, err := catalog.NewRecipe("SMELT", metal, 1, []catalog.RecipeInput{{Resource: ore, Amount: 2}}, 10, 0)
	require.NoError(t, err)

	assert.True(t, recipe.Consumes(ore))
	assert.False(t, recipe.Consumes(energy))
	assert.False(t, recipe.Consumes(metal))
}

func TestResourceAmount_Volume(t *testing.T) {
	energy, err := catalog.NewResource("ENERGY_CELL", "Energy Cell", 15, 0.5)
	require.NoError(t, err)

	line := catalog.NewResourceAmount(energy, 8)

	assert.Equal(t, 4.0, line.Volume())
}
