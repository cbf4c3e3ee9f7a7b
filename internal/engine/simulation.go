package engine

import (
	"github.com/google/uuid"

	"github.com/andrescamacho/logistics-go/internal/domain/catalog"
	"github.com/andrescamacho/logistics-go/internal/domain/demand"
	"github.com/andrescamacho/logistics-go/internal/domain/events"
	"github.com/andrescamacho/logistics-go/internal/domain/production"
	"github.com/andrescamacho/logistics-go/internal/domain/trading"
	"github.com/andrescamacho/logistics-go/internal/domain/transport"
)

// Simulation wires facilities, transporters and the trade matcher onto one
// ticker. Per-tick order is fixed by contract: trade assignment first,
// then production, then transporter movement.
type Simulation struct {
	runID        string
	ticker       *Ticker
	matcher      *trading.Matcher
	demand       *demand.DemandManager
	facilities   []*production.Facility
	transporters []*transport.Transporter
}

// matcherDriver adapts the trade matcher to the Tickable interface,
// closing over the simulation's entity collections.
type matcherDriver struct {
	sim *Simulation
}

func (d *matcherDriver) Tick(currentTick int64) {
	d.sim.matcher.AssignIdle(currentTick, d.sim.facilities, d.sim.transporters)
}

// NewSimulation assembles a simulation and registers all components in the
// contractual tick order
func NewSimulation(matcher *trading.Matcher, facilities []*production.Facility, transporters []*transport.Transporter) *Simulation {
	sim := &Simulation{
		runID:        uuid.NewString(),
		ticker:       NewTicker(),
		matcher:      matcher,
		demand:       demand.NewDemandManager(),
		facilities:   facilities,
		transporters: transporters,
	}

	sim.ticker.Register(&matcherDriver{sim: sim})
	for _, facility := range facilities {
		sim.ticker.Register(facility)
	}
	for _, transporter := range transporters {
		sim.ticker.Register(transporter)
	}
	return sim
}

// RunID identifies this simulation run (used to key persisted events)
func (s *Simulation) RunID() string {
	return s.runID
}

// CurrentTick returns the last completed tick number
func (s *Simulation) CurrentTick() int64 {
	return s.ticker.Current()
}

// Tick advances the simulation by one tick
func (s *Simulation) Tick() {
	s.ticker.Tick()
}

// RunTicks advances the simulation by n ticks
func (s *Simulation) RunTicks(n int) {
	s.ticker.RunTicks(n)
}

// Facilities returns the registered facilities in registration order
func (s *Simulation) Facilities() []*production.Facility {
	return s.facilities
}

// Transporters returns the registered transporters in registration order
func (s *Simulation) Transporters() []*transport.Transporter {
	return s.transporters
}

// Demand refreshes and returns the demand snapshot for the current state
func (s *Simulation) Demand() *demand.DemandManager {
	s.demand.Refresh(s.facilities)
	return s.demand
}

// Events merges every entity log into one chronological slice
func (s *Simulation) Events() []events.Event {
	var logs []*events.Log
	for _, facility := range s.facilities {
		logs = append(logs, facility.Log())
	}
	for _, transporter := range s.transporters {
		logs = append(logs, transporter.Log())
	}
	return events.MergeChronological(logs...)
}

// TotalOnHand sums the physical units of a resource across all facility
// storages and all transporter cargo. Incoming reservations are advisory
// and excluded; transport alone never changes this total, production adds
// to it and destruction-with-cargo subtracts from it.
func (s *Simulation) TotalOnHand(resource *catalog.Resource) int {
	total := 0
	for _, facility := range s.facilities {
		total += facility.Storage().GetAmount(resource)
	}
	for _, transporter := range s.transporters {
		for _, line := range transporter.Cargo() {
			if line.Resource == resource {
				total += line.Amount
			}
		}
	}
	return total
}
