package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/logistics-go/internal/domain/catalog"
	"github.com/andrescamacho/logistics-go/internal/domain/events"
	"github.com/andrescamacho/logistics-go/internal/domain/production"
	"github.com/andrescamacho/logistics-go/internal/domain/trading"
	"github.com/andrescamacho/logistics-go/internal/domain/transport"
	"github.com/andrescamacho/logistics-go/internal/engine"
	"github.com/andrescamacho/logistics-go/test/helpers"
)

func TestSimulation_EndToEndProductionChain(t *testing.T) {
	// Arrange - a depot of ore feeds a smelter via one hauler
	ore := helpers.NewResource(t, "ORE", 10, 1)
	metal := helpers.NewResource(t, "METAL_BAR", 40, 2)
	smelt := helpers.NewRecipe(t, "SMELT", metal, 1, []catalog.RecipeInput{
		{Resource: ore, Amount: 2},
	}, 2)

	depot := helpers.NewFacility(t, "depot-1", 0, 0)
	depot.Storage().Add(ore, 20)
	smelter := helpers.NewFacility(t, "smelter-1", 0, 4)
	smelter.AddWorkshops(smelt, 1)

	hauler := helpers.NewTransporter(t, "hauler-1", 0, 0, 2, 100)

	sim := engine.NewSimulation(
		trading.NewMatcher(),
		[]*production.Facility{depot, smelter},
		[]*transport.Transporter{hauler},
	)

	// Act
	sim.RunTicks(30)

	// Assert - ore flowed from the depot into finished metal
	assert.Greater(t, smelter.Storage().GetAmount(metal), 0)
	assert.Less(t, depot.Storage().GetAmount(ore), 20)
	assert.Equal(t, int64(30), sim.CurrentTick())
}

func TestSimulation_TransportAloneConservesStock(t *testing.T) {
	// Arrange - the smelter's recipe also needs energy, which nothing
	// supplies, so jobs never start and ore can only move around
	ore := helpers.NewResource(t, "ORE", 10, 1)
	energy := helpers.NewResource(t, "ENERGY_CELL", 15, 0.5)
	metal := helpers.NewResource(t, "METAL_BAR", 40, 2)
	smelt := helpers.NewRecipe(t, "SMELT", metal, 1, []catalog.RecipeInput{
		{Resource: ore, Amount: 2},
		{Resource: energy, Amount: 1},
	}, 10)

	depot := helpers.NewFacility(t, "depot-1", 0, 0)
	depot.Storage().Add(ore, 15)
	smelter := helpers.NewFacility(t, "smelter-1", 0, 6)
	smelter.AddWorkshops(smelt, 1)
	smelter.SetPullStrategy(production.NewSustainedStrategy(500))

	hauler := helpers.NewTransporter(t, "hauler-1", 0, 0, 2, 10)

	sim := engine.NewSimulation(
		trading.NewMatcher(),
		[]*production.Facility{depot, smelter},
		[]*transport.Transporter{hauler},
	)

	// Act / Assert - every unit is always in exactly one storage or hold
	for tick := 0; tick < 40; tick++ {
		sim.Tick()
		require.Equal(t, 15, sim.TotalOnHand(ore), "tick %d", sim.CurrentTick())
	}
	assert.Greater(t, smelter.Storage().GetAmount(ore), 0)
}

func TestSimulation_DestructionRemovesCargoFromTheTotal(t *testing.T) {
	// Arrange
	ore := helpers.NewResource(t, "ORE", 10, 1)
	energy := helpers.NewResource(t, "ENERGY_CELL", 15, 0.5)
	metal := helpers.NewResource(t, "METAL_BAR", 40, 2)
	smelt := helpers.NewRecipe(t, "SMELT", metal, 1, []catalog.RecipeInput{
		{Resource: ore, Amount: 2},
		{Resource: energy, Amount: 1},
	}, 10)

	depot := helpers.NewFacility(t, "depot-1", 0, 0)
	depot.Storage().Add(ore, 15)
	smelter := helpers.NewFacility(t, "smelter-1", 0, 50)
	smelter.AddWorkshops(smelt, 1)
	smelter.SetPullStrategy(production.NewSustainedStrategy(500))

	hauler := helpers.NewTransporter(t, "hauler-1", 0, 0, 1, 10)

	sim := engine.NewSimulation(
		trading.NewMatcher(),
		[]*production.Facility{depot, smelter},
		[]*transport.Transporter{hauler},
	)

	// Act - tick 1 assigns and picks up (hauler starts at the depot), then
	// the loaded hauler is destroyed mid-route
	sim.RunTicks(3)
	carried := 0
	for _, line := range hauler.Cargo() {
		carried += line.Amount
	}
	require.Greater(t, carried, 0)
	hauler.TakeDamage(1000, sim.CurrentTick(), "raider")

	// Assert
	assert.Equal(t, 15-carried, sim.TotalOnHand(ore))
}

func TestSimulation_EventsAreMergedChronologically(t *testing.T) {
	// Arrange
	ore := helpers.NewResource(t, "ORE", 10, 1)
	metal := helpers.NewResource(t, "METAL_BAR", 40, 2)
	smelt := helpers.NewRecipe(t, "SMELT", metal, 1, []catalog.RecipeInput{
		{Resource: ore, Amount: 2},
	}, 2)

	depot := helpers.NewFacility(t, "depot-1", 0, 0)
	depot.Storage().Add(ore, 20)
	smelter := helpers.NewFacility(t, "smelter-1", 0, 4)
	smelter.AddWorkshops(smelt, 1)

	hauler := helpers.NewTransporter(t, "hauler-1", 0, 0, 2, 100)

	sim := engine.NewSimulation(
		trading.NewMatcher(),
		[]*production.Facility{depot, smelter},
		[]*transport.Transporter{hauler},
	)

	// Act
	sim.RunTicks(20)
	merged := sim.Events()

	// Assert - ticks never decrease and multiple entities are represented
	require.NotEmpty(t, merged)
	seen := map[string]bool{}
	for i, evt := range merged {
		seen[evt.Entity] = true
		if i > 0 {
			require.GreaterOrEqual(t, evt.Tick, merged[i-1].Tick)
		}
	}
	assert.True(t, seen["smelter-1"])
	assert.True(t, seen["hauler-1"])

	var kinds []events.Kind
	for _, evt := range merged {
		kinds = append(kinds, evt.Kind)
	}
	assert.Contains(t, kinds, events.KindTradeAssigned)
	assert.Contains(t, kinds, events.KindJobCompleted)
}

func TestSimulation_DemandReflectsCurrentState(t *testing.T) {
	// Arrange
	ore := helpers.NewResource(t, "ORE", 10, 1)
	metal := helpers.NewResource(t, "METAL_BAR", 40, 2)
	smelt := helpers.NewRecipe(t, "SMELT", metal, 1, []catalog.RecipeInput{
		{Resource: ore, Amount: 2},
	}, 10)

	smelter := helpers.NewFacility(t, "smelter-1", 0, 0)
	smelter.AddWorkshops(smelt, 1)

	sim := engine.NewSimulation(trading.NewMatcher(), []*production.Facility{smelter}, nil)

	// Act / Assert - the snapshot is rebuilt on every call
	assert.Equal(t, 2, sim.Demand().GlobalPull(ore))
	smelter.Storage().Add(ore, 2)
	assert.Equal(t, 0, sim.Demand().GlobalPull(ore))
}

func TestSimulation_RunIDIsAssigned(t *testing.T) {
	// Arrange / Act
	simA := engine.NewSimulation(trading.NewMatcher(), nil, nil)
	simB := engine.NewSimulation(trading.NewMatcher(), nil, nil)

	// Assert
	assert.NotEmpty(t, simA.RunID())
	assert.NotEqual(t, simA.RunID(), simB.RunID())
}
