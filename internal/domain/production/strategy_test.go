package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/logistics-go/internal/domain/catalog"
	"github.com/andrescamacho/logistics-go/internal/domain/production"
	"github.com/andrescamacho/logistics-go/test/helpers"
)

func TestDefaultStrategy_RequestsOneJobsWorth(t *testing.T) {
	// Arrange
	ore := helpers.NewResource(t, "ORE", 10, 1)
	energy := helpers.NewResource(t, "ENERGY_CELL", 15, 0.5)
	metal := helpers.NewResource(t, "METAL_BAR", 40, 2)
	smelt := helpers.NewRecipe(t, "SMELT", metal, 1, []catalog.RecipeInput{
		{Resource: ore, Amount: 2},
		{Resource: energy, Amount: 1},
	}, 10)

	facility := helpers.NewFacility(t, "smelter-1", 0, 0)
	facility.AddWorkshops(smelt, 1)

	// Act
	requests := production.DefaultStrategy{}.Requests(facility)

	// Assert
	require.Len(t, requests, 2)
	assert.Equal(t, ore, requests[0].Resource)
	assert.Equal(t, 2, requests[0].Amount)
	assert.Equal(t, energy, requests[1].Resource)
	assert.Equal(t, 1, requests[1].Amount)
}

func TestDefaultStrategy_CountsIncomingTowardNeed(t *testing.T) {
	// Arrange - 1 ore on hand, 1 underway: only 1 of the 2 needed remains
	ore := helpers.NewResource(t, "ORE", 10, 1)
	metal := helpers.NewResource(t, "METAL_BAR", 40, 2)
	smelt := helpers.NewRecipe(t, "SMELT", metal, 1, []catalog.RecipeInput{
		{Resource: ore, Amount: 3},
	}, 10)

	facility := helpers.NewFacility(t, "smelter-1", 0, 0)
	facility.AddWorkshops(smelt, 1)
	facility.Storage().Add(ore, 1)
	facility.Storage().MarkIncoming(ore, 1)

	// Act
	requests := production.DefaultStrategy{}.Requests(facility)

	// Assert
	require.Len(t, requests, 1)
	assert.Equal(t, 1, requests[0].Amount)
}

func TestDefaultStrategy_SatisfiedNeedYieldsNoRequest(t *testing.T) {
	// Arrange
	ore := helpers.NewResource(t, "ORE", 10, 1)
	metal := helpers.NewResource(t, "METAL_BAR", 40, 2)
	smelt := helpers.NewRecipe(t, "SMELT", metal, 1, []catalog.RecipeInput{
		{Resource: ore, Amount: 2},
	}, 10)

	facility := helpers.NewFacility(t, "smelter-1", 0, 0)
	facility.AddWorkshops(smelt, 1)
	facility.Storage().MarkIncoming(ore, 5)

	// Act
	requests := production.DefaultStrategy{}.Requests(facility)

	// Assert
	assert.Empty(t, requests)
}

func TestSustainedStrategy_PlansForHorizon(t *testing.T) {
	// Arrange - 2 workshops, duration 10, horizon 500:
	// 500 * 2 / 10 = 100 jobs, so 200 ore and 100 energy
	ore := helpers.NewResource(t, "ORE", 10, 1)
	energy := helpers.NewResource(t, "ENERGY_CELL", 15, 0.5)
	metal := helpers.NewResource(t, "METAL_BAR", 40, 2)
	smelt := helpers.NewRecipe(t, "SMELT", metal, 1, []catalog.RecipeInput{
		{Resource: ore, Amount: 2},
		{Resource: energy, Amount: 1},
	}, 10)

	facility := helpers.NewFacility(t, "smelter-1", 0, 0)
	facility.AddWorkshops(smelt, 2)
	facility.SetPullStrategy(production.NewSustainedStrategy(500))

	// Act
	requests := facility.PullRequests()

	// Assert
	require.Len(t, requests, 2)
	assert.Equal(t, ore, requests[0].Resource)
	assert.Equal(t, 200, requests[0].Amount)
	assert.Equal(t, energy, requests[1].Resource)
	assert.Equal(t, 100, requests[1].Amount)
}

func TestSustainedStrategy_IgnoresIncomingReservations(t *testing.T) {
	// Arrange - on-hand stock reduces the request, incoming does not
	ore := helpers.NewResource(t, "ORE", 10, 1)
	metal := helpers.NewResource(t, "METAL_BAR", 40, 2)
	smelt := helpers.NewRecipe(t, "SMELT", metal, 1, []catalog.RecipeInput{
		{Resource: ore, Amount: 2},
	}, 10)

	facility := helpers.NewFacility(t, "smelter-1", 0, 0)
	facility.AddWorkshops(smelt, 1)
	facility.Storage().Add(ore, 30)
	facility.Storage().MarkIncoming(ore, 1000)

	// Act - 500 * 1 / 10 = 50 jobs -> 100 ore, minus 30 on hand
	requests := production.NewSustainedStrategy(500).Requests(facility)

	// Assert
	require.Len(t, requests, 1)
	assert.Equal(t, 70, requests[0].Amount)
}
