package transport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/logistics-go/internal/domain/catalog"
	"github.com/andrescamacho/logistics-go/internal/domain/events"
	"github.com/andrescamacho/logistics-go/internal/domain/transport"
	"github.com/andrescamacho/logistics-go/test/helpers"
)

func TestTransporter_FullTaskCycle(t *testing.T) {
	// Arrange - source 10 units up the y axis, destination at the origin,
	// speed 3: four ticks out (snapping onto the target), pickup on
	// arrival, four ticks back, delivery
	ore := helpers.NewResource(t, "ORE", 10, 1)
	depot := helpers.NewFacility(t, "depot-1", 0, 10)
	depot.Storage().Add(ore, 50)
	smelter := helpers.NewFacility(t, "smelter-1", 0, 0)
	smelter.Storage().MarkIncoming(ore, 5)

	hauler := helpers.NewTransporter(t, "hauler-1", 0, 0, 3, 100)
	task := transport.NewTransportTask(depot, smelter, []*catalog.ResourceAmount{
		catalog.NewResourceAmount(ore, 5),
	})
	hauler.Enqueue(task, 0)

	// Act - ticks 1..3 move toward the source
	for tick := int64(1); tick <= 3; tick++ {
		hauler.Tick(tick)
	}

	// Assert
	assert.Equal(t, transport.StateMovingToSource, hauler.State())
	assert.Empty(t, hauler.Cargo())

	// Act - tick 4 arrives and picks up; the stop consumes the tick
	hauler.Tick(4)

	// Assert
	assert.Equal(t, transport.StateMovingToDestination, hauler.State())
	require.Len(t, hauler.Cargo(), 1)
	assert.Equal(t, 5, hauler.Cargo()[0].Amount)
	assert.Equal(t, 45, depot.Storage().GetAmount(ore))
	assert.True(t, hauler.Position().Equals(depot.Position()))

	// Act - ticks 5..7 move back, tick 8 arrives and delivers
	for tick := int64(5); tick <= 8; tick++ {
		hauler.Tick(tick)
	}

	// Assert
	assert.True(t, hauler.IsIdle())
	assert.Empty(t, hauler.Cargo())
	assert.Equal(t, 5, smelter.Storage().GetAmount(ore))
	assert.Equal(t, 0, smelter.Storage().GetIncomingAmount(ore))
}

func TestTransporter_PickupClampsToVolumeAndStock(t *testing.T) {
	// Arrange - 20 requested, hold fits 15, source has only 10
	ore := helpers.NewResource(t, "ORE", 10, 1)
	depot := helpers.NewFacility(t, "depot-1", 0, 0)
	depot.Storage().Add(ore, 10)
	smelter := helpers.NewFacility(t, "smelter-1", 0, 5)

	hauler := helpers.NewTransporter(t, "hauler-1", 0, 0, 5, 15)
	task := transport.NewTransportTask(depot, smelter, []*catalog.ResourceAmount{
		catalog.NewResourceAmount(ore, 20),
	})
	hauler.Enqueue(task, 0)

	// Act - already at the source: tick 1 picks up
	hauler.Tick(1)

	// Assert
	require.Len(t, hauler.Cargo(), 1)
	assert.Equal(t, 10, hauler.Cargo()[0].Amount)
	assert.Equal(t, 0, depot.Storage().GetAmount(ore))

	// Act - tick 2 arrives at the destination and delivers what it carries
	hauler.Tick(2)

	// Assert - 10 of 20 delivered, the rest accounted as shortfall
	assert.Equal(t, 10, smelter.Storage().GetAmount(ore))
	entries := hauler.Log().Entries()
	last := entries[len(entries)-1]
	assert.Equal(t, events.KindDeliveryPartial, last.Kind)
	assert.Equal(t, 10, last.Shortfall)
}

func TestTransporter_EmptySourceStillCompletesTheTask(t *testing.T) {
	// Arrange - nothing to pick up; the task proceeds empty-handed rather
	// than waiting for stock
	ore := helpers.NewResource(t, "ORE", 10, 1)
	depot := helpers.NewFacility(t, "depot-1", 0, 0)
	smelter := helpers.NewFacility(t, "smelter-1", 0, 5)

	hauler := helpers.NewTransporter(t, "hauler-1", 0, 0, 5, 100)
	task := transport.NewTransportTask(depot, smelter, []*catalog.ResourceAmount{
		catalog.NewResourceAmount(ore, 5),
	})
	hauler.Enqueue(task, 0)

	// Act
	hauler.Tick(1)
	hauler.Tick(2)

	// Assert
	assert.True(t, hauler.IsIdle())
	assert.Equal(t, 0, smelter.Storage().GetAmount(ore))

	kinds := make([]events.Kind, 0)
	for _, entry := range hauler.Log().Entries() {
		kinds = append(kinds, entry.Kind)
	}
	assert.Contains(t, kinds, events.KindPickupFailed)
	assert.Contains(t, kinds, events.KindDeliveryFailed)
}

func TestTransporter_QueueIsFIFO(t *testing.T) {
	// Arrange - two tasks from co-located facilities so each stop is one
	// tick apart
	ore := helpers.NewResource(t, "ORE", 10, 1)
	energy := helpers.NewResource(t, "ENERGY_CELL", 15, 0.5)
	depot := helpers.NewFacility(t, "depot-1", 0, 0)
	depot.Storage().Add(ore, 5)
	depot.Storage().Add(energy, 5)
	smelter := helpers.NewFacility(t, "smelter-1", 0, 0)

	hauler := helpers.NewTransporter(t, "hauler-1", 0, 0, 5, 100)
	hauler.Enqueue(transport.NewTransportTask(depot, smelter, []*catalog.ResourceAmount{
		catalog.NewResourceAmount(ore, 5),
	}), 0)
	hauler.Enqueue(transport.NewTransportTask(depot, smelter, []*catalog.ResourceAmount{
		catalog.NewResourceAmount(energy, 5),
	}), 0)

	// Act - tick 1 picks up ore, tick 2 delivers it
	hauler.Tick(1)
	hauler.Tick(2)

	// Assert - first task done, second still queued
	assert.Equal(t, 5, smelter.Storage().GetAmount(ore))
	assert.Equal(t, 0, smelter.Storage().GetAmount(energy))
	require.Len(t, hauler.QueuedTasks(), 1)

	// Act
	hauler.Tick(3)
	hauler.Tick(4)

	// Assert
	assert.Equal(t, 5, smelter.Storage().GetAmount(energy))
	assert.True(t, hauler.IsIdle())
}

func TestTransporter_DamageBelowHullIsSurvivable(t *testing.T) {
	// Arrange
	hauler := helpers.NewTransporter(t, "hauler-1", 0, 0, 5, 100)

	// Act
	destroyed := hauler.TakeDamage(40, 3, "raider")

	// Assert
	assert.False(t, destroyed)
	assert.False(t, hauler.IsDestroyed())
	assert.Equal(t, 60, hauler.Hull())

	entries := hauler.Log().Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, events.KindDamageTaken, entries[0].Kind)
	assert.Equal(t, 60, entries[0].Hull)
	assert.Equal(t, "raider", entries[0].Attacker)
}

func TestTransporter_DestructionDrainsCargoAndQueue(t *testing.T) {
	// Arrange - destroy mid-haul with cargo on board and a task queued
	ore := helpers.NewResource(t, "ORE", 10, 1)
	depot := helpers.NewFacility(t, "depot-1", 0, 0)
	depot.Storage().Add(ore, 5)
	smelter := helpers.NewFacility(t, "smelter-1", 0, 50)

	hauler := helpers.NewTransporter(t, "hauler-1", 0, 0, 5, 100)
	hauler.Enqueue(transport.NewTransportTask(depot, smelter, []*catalog.ResourceAmount{
		catalog.NewResourceAmount(ore, 5),
	}), 0)
	hauler.Enqueue(transport.NewTransportTask(depot, smelter, []*catalog.ResourceAmount{
		catalog.NewResourceAmount(ore, 5),
	}), 0)
	hauler.Tick(1) // picks up the first 5 ore

	// Act
	destroyed := hauler.TakeDamage(200, 2, "raider")

	// Assert - terminal state, cargo lost, queue discarded
	assert.True(t, destroyed)
	assert.Equal(t, transport.StateDestroyed, hauler.State())
	assert.False(t, hauler.IsIdle())
	assert.Empty(t, hauler.Cargo())
	assert.Empty(t, hauler.QueuedTasks())
	assert.Nil(t, hauler.CurrentTask())

	entries := hauler.Log().Entries()
	var lost, wrecked bool
	for _, entry := range entries {
		if entry.Kind == events.KindCargoLost && entry.Amount == 5 {
			lost = true
		}
		if entry.Kind == events.KindDestroyed {
			wrecked = true
		}
	}
	assert.True(t, lost)
	assert.True(t, wrecked)

	// Act - further ticks and damage are no-ops
	hauler.Tick(3)
	assert.True(t, hauler.TakeDamage(10, 3, "raider"))
	assert.Empty(t, hauler.Log().Entries()[len(entries):])
}

func TestTransporter_EnqueueLogsAssignmentPerLine(t *testing.T) {
	// Arrange
	ore := helpers.NewResource(t, "ORE", 10, 1)
	energy := helpers.NewResource(t, "ENERGY_CELL", 15, 0.5)
	depot := helpers.NewFacility(t, "depot-1", 0, 0)
	smelter := helpers.NewFacility(t, "smelter-1", 0, 5)
	hauler := helpers.NewTransporter(t, "hauler-1", 0, 0, 5, 100)

	// Act
	hauler.Enqueue(transport.NewTransportTask(depot, smelter, []*catalog.ResourceAmount{
		catalog.NewResourceAmount(ore, 5),
		catalog.NewResourceAmount(energy, 2),
	}), 7)

	// Assert
	entries := hauler.Log().Entries()
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, events.KindTradeAssigned, entry.Kind)
		assert.Equal(t, int64(7), entry.Tick)
		assert.Equal(t, "depot-1", entry.Source)
		assert.Equal(t, "smelter-1", entry.Destination)
	}
}
