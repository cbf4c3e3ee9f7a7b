package demand

import (
	"github.com/andrescamacho/logistics-go/internal/domain/catalog"
	"github.com/andrescamacho/logistics-go/internal/domain/production"
	"github.com/andrescamacho/logistics-go/internal/domain/shared"
)

// DemandManager is a read-only aggregator over facility pull requests and
// incoming reservations, grouped globally, per player and per facility.
//
// Refresh rebuilds every aggregate from scratch; this is a pull-based
// snapshot, not a live subscription. Staleness is the caller's problem:
// call Refresh before reading if facilities may have changed.
type DemandManager struct {
	globalPull   map[*catalog.Resource]int
	playerPull   map[shared.PlayerID]map[*catalog.Resource]int
	facilityPull map[string]map[*catalog.Resource]int

	globalIncoming   map[*catalog.Resource]int
	playerIncoming   map[shared.PlayerID]map[*catalog.Resource]int
	facilityIncoming map[string]map[*catalog.Resource]int
}

// NewDemandManager creates an empty demand manager
func NewDemandManager() *DemandManager {
	m := &DemandManager{}
	m.clear()
	return m
}

func (m *DemandManager) clear() {
	m.globalPull = make(map[*catalog.Resource]int)
	m.playerPull = make(map[shared.PlayerID]map[*catalog.Resource]int)
	m.facilityPull = make(map[string]map[*catalog.Resource]int)
	m.globalIncoming = make(map[*catalog.Resource]int)
	m.playerIncoming = make(map[shared.PlayerID]map[*catalog.Resource]int)
	m.facilityIncoming = make(map[string]map[*catalog.Resource]int)
}

// Refresh discards all aggregates and recomputes them from the given
// facilities' current pull requests and incoming reservations
func (m *DemandManager) Refresh(facilities []*production.Facility) {
	m.clear()

	for _, facility := range facilities {
		player := facility.PlayerID()

		for _, pull := range facility.PullRequests() {
			m.globalPull[pull.Resource] += pull.Amount
			m.bump(m.playerPull, player, pull.Resource, pull.Amount)
			m.bumpByID(m.facilityPull, facility.ID(), pull.Resource, pull.Amount)
		}

		store := facility.Storage()
		for _, resource := range store.IncomingResources() {
			amount := store.GetIncomingAmount(resource)
			if amount <= 0 {
				continue
			}
			m.globalIncoming[resource] += amount
			m.bump(m.playerIncoming, player, resource, amount)
			m.bumpByID(m.facilityIncoming, facility.ID(), resource, amount)
		}
	}
}

func (m *DemandManager) bump(agg map[shared.PlayerID]map[*catalog.Resource]int, player shared.PlayerID, resource *catalog.Resource, amount int) {
	if agg[player] == nil {
		agg[player] = make(map[*catalog.Resource]int)
	}
	agg[player][resource] += amount
}

func (m *DemandManager) bumpByID(agg map[string]map[*catalog.Resource]int, id string, resource *catalog.Resource, amount int) {
	if agg[id] == nil {
		agg[id] = make(map[*catalog.Resource]int)
	}
	agg[id][resource] += amount
}

// Queries: all return 0 for unknown keys, never fail.

// GlobalPull returns total outstanding pull amount for a resource
func (m *DemandManager) GlobalPull(resource *catalog.Resource) int {
	return m.globalPull[resource]
}

// PlayerPull returns one player's outstanding pull amount for a resource
func (m *DemandManager) PlayerPull(player shared.PlayerID, resource *catalog.Resource) int {
	return m.playerPull[player][resource]
}

// FacilityPull returns one facility's outstanding pull amount for a resource
func (m *DemandManager) FacilityPull(facilityID string, resource *catalog.Resource) int {
	return m.facilityPull[facilityID][resource]
}

// GlobalIncoming returns total reserved-in-flight amount for a resource
func (m *DemandManager) GlobalIncoming(resource *catalog.Resource) int {
	return m.globalIncoming[resource]
}

// PlayerIncoming returns one player's reserved-in-flight amount for a resource
func (m *DemandManager) PlayerIncoming(player shared.PlayerID, resource *catalog.Resource) int {
	return m.playerIncoming[player][resource]
}

// FacilityIncoming returns one facility's reserved-in-flight amount for a resource
func (m *DemandManager) FacilityIncoming(facilityID string, resource *catalog.Resource) int {
	return m.facilityIncoming[facilityID][resource]
}
