package demand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/logistics-go/internal/domain/catalog"
	"github.com/andrescamacho/logistics-go/internal/domain/demand"
	"github.com/andrescamacho/logistics-go/internal/domain/production"
	"github.com/andrescamacho/logistics-go/internal/domain/shared"
	"github.com/andrescamacho/logistics-go/test/helpers"
)

func TestDemandManager_AggregatesPullsAcrossFacilities(t *testing.T) {
	// Arrange - two facilities with the same recipe, different workshop counts
	ore := helpers.NewResource(t, "ORE", 10, 1)
	metal := helpers.NewResource(t, "METAL_BAR", 40, 2)
	smelt := helpers.NewRecipe(t, "SMELT", metal, 1, []catalog.RecipeInput{
		{Resource: ore, Amount: 2},
	}, 10)

	smelterA := helpers.NewFacility(t, "smelter-a", 0, 0)
	smelterA.AddWorkshops(smelt, 1)
	smelterB := helpers.NewFacility(t, "smelter-b", 5, 0)
	smelterB.AddWorkshops(smelt, 1)
	smelterB.SetPullStrategy(production.NewSustainedStrategy(100))

	manager := demand.NewDemandManager()

	// Act
	manager.Refresh([]*production.Facility{smelterA, smelterB})

	// Assert - A wants one job's worth (2), B wants 100/10 jobs' worth (20)
	assert.Equal(t, 22, manager.GlobalPull(ore))
	assert.Equal(t, 2, manager.FacilityPull("smelter-a", ore))
	assert.Equal(t, 20, manager.FacilityPull("smelter-b", ore))
	assert.Equal(t, 22, manager.PlayerPull(shared.MustNewPlayerID(1), ore))
}

func TestDemandManager_AggregatesIncomingReservations(t *testing.T) {
	// Arrange
	ore := helpers.NewResource(t, "ORE", 10, 1)
	smelterA := helpers.NewFacility(t, "smelter-a", 0, 0)
	smelterA.Storage().MarkIncoming(ore, 7)
	smelterB := helpers.NewFacility(t, "smelter-b", 5, 0)
	smelterB.Storage().MarkIncoming(ore, 3)

	manager := demand.NewDemandManager()

	// Act
	manager.Refresh([]*production.Facility{smelterA, smelterB})

	// Assert
	assert.Equal(t, 10, manager.GlobalIncoming(ore))
	assert.Equal(t, 7, manager.FacilityIncoming("smelter-a", ore))
	assert.Equal(t, 3, manager.FacilityIncoming("smelter-b", ore))
	assert.Equal(t, 10, manager.PlayerIncoming(shared.MustNewPlayerID(1), ore))
}

func TestDemandManager_RefreshDiscardsStaleState(t *testing.T) {
	// Arrange
	ore := helpers.NewResource(t, "ORE", 10, 1)
	metal := helpers.NewResource(t, "METAL_BAR", 40, 2)
	smelt := helpers.NewRecipe(t, "SMELT", metal, 1, []catalog.RecipeInput{
		{Resource: ore, Amount: 2},
	}, 10)

	smelter := helpers.NewFacility(t, "smelter-1", 0, 0)
	smelter.AddWorkshops(smelt, 1)

	manager := demand.NewDemandManager()
	manager.Refresh([]*production.Facility{smelter})
	assert.Equal(t, 2, manager.GlobalPull(ore))

	// Act - the need is now covered; a refresh must drop the old demand
	smelter.Storage().Add(ore, 2)
	manager.Refresh([]*production.Facility{smelter})

	// Assert
	assert.Equal(t, 0, manager.GlobalPull(ore))
	assert.Equal(t, 0, manager.FacilityPull("smelter-1", ore))
}

func TestDemandManager_UnknownKeysDefaultToZero(t *testing.T) {
	// Arrange
	ore := helpers.NewResource(t, "ORE", 10, 1)
	manager := demand.NewDemandManager()

	// Assert
	assert.Equal(t, 0, manager.GlobalPull(ore))
	assert.Equal(t, 0, manager.PlayerPull(shared.MustNewPlayerID(9), ore))
	assert.Equal(t, 0, manager.FacilityPull("nowhere", ore))
	assert.Equal(t, 0, manager.GlobalIncoming(ore))
	assert.Equal(t, 0, manager.PlayerIncoming(shared.MustNewPlayerID(9), ore))
	assert.Equal(t, 0, manager.FacilityIncoming("nowhere", ore))
}
