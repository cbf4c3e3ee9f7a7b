package steps

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/logistics-go/internal/domain/catalog"
	"github.com/andrescamacho/logistics-go/internal/domain/events"
	"github.com/andrescamacho/logistics-go/internal/domain/production"
	"github.com/andrescamacho/logistics-go/internal/domain/shared"
	"github.com/andrescamacho/logistics-go/internal/domain/trading"
	"github.com/andrescamacho/logistics-go/internal/domain/transport"
	"github.com/andrescamacho/logistics-go/internal/engine"
)

type simulationContext struct {
	resources    map[string]*catalog.Resource
	recipes      map[string]*catalog.Recipe
	facilities   map[string]*production.Facility
	facilityList []*production.Facility
	transporters map[string]*transport.Transporter
	haulerList   []*transport.Transporter
	sim          *engine.Simulation
}

func (sc *simulationContext) reset() {
	sc.resources = make(map[string]*catalog.Resource)
	sc.recipes = make(map[string]*catalog.Recipe)
	sc.facilities = make(map[string]*production.Facility)
	sc.facilityList = nil
	sc.transporters = make(map[string]*transport.Transporter)
	sc.haulerList = nil
	sc.sim = nil
}

// ensureSim assembles the simulation on first use so every declared entity
// is registered before the first tick
func (sc *simulationContext) ensureSim() *engine.Simulation {
	if sc.sim == nil {
		sc.sim = engine.NewSimulation(trading.NewMatcher(), sc.facilityList, sc.haulerList)
	}
	return sc.sim
}

func (sc *simulationContext) resource(symbol string) (*catalog.Resource, error) {
	resource, ok := sc.resources[symbol]
	if !ok {
		return nil, fmt.Errorf("unknown resource %q", symbol)
	}
	return resource, nil
}

func (sc *simulationContext) facility(id string) (*production.Facility, error) {
	facility, ok := sc.facilities[id]
	if !ok {
		return nil, fmt.Errorf("unknown facility %q", id)
	}
	return facility, nil
}

func (sc *simulationContext) transporter(id string) (*transport.Transporter, error) {
	transporter, ok := sc.transporters[id]
	if !ok {
		return nil, fmt.Errorf("unknown transporter %q", id)
	}
	return transporter, nil
}

// World setup steps

func (sc *simulationContext) aResourceWith(symbol string, baseValue, unitVolume float64) error {
	resource, err := catalog.NewResource(symbol, symbol, baseValue, unitVolume)
	if err != nil {
		return err
	}
	sc.resources[symbol] = resource
	return nil
}

func (sc *simulationContext) aRecipeProducing(symbol string, outputAmount int, output string, duration int, table *godog.Table) error {
	outputResource, err := sc.resource(output)
	if err != nil {
		return err
	}

	var inputs []catalog.RecipeInput
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		resource, err := sc.resource(row.Cells[0].Value)
		if err != nil {
			return err
		}
		amount, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return err
		}
		inputs = append(inputs, catalog.RecipeInput{Resource: resource, Amount: amount})
	}

	recipe, err := catalog.NewRecipe(symbol, outputResource, outputAmount, inputs, duration, 0)
	if err != nil {
		return err
	}
	sc.recipes[symbol] = recipe
	return nil
}

func (sc *simulationContext) aFacilityAt(id string, x, y float64) error {
	facility, err := production.NewFacility(id, id, shared.NewPosition(x, y), shared.MustNewPlayerID(1))
	if err != nil {
		return err
	}
	sc.facilities[id] = facility
	sc.facilityList = append(sc.facilityList, facility)
	return nil
}

func (sc *simulationContext) facilityHasWorkshopsFor(id string, count int, recipeSymbol string) error {
	facility, err := sc.facility(id)
	if err != nil {
		return err
	}
	recipe, ok := sc.recipes[recipeSymbol]
	if !ok {
		return fmt.Errorf("unknown recipe %q", recipeSymbol)
	}
	facility.AddWorkshops(recipe, count)
	return nil
}

func (sc *simulationContext) facilityStores(id string, amount int, resourceSymbol string) error {
	facility, err := sc.facility(id)
	if err != nil {
		return err
	}
	resource, err := sc.resource(resourceSymbol)
	if err != nil {
		return err
	}
	facility.Storage().Add(resource, amount)
	return nil
}

func (sc *simulationContext) facilityUsesSustainedStrategy(id string, horizon int) error {
	facility, err := sc.facility(id)
	if err != nil {
		return err
	}
	facility.SetPullStrategy(production.NewSustainedStrategy(horizon))
	return nil
}

func (sc *simulationContext) aTransporterAt(id string, x, y, speed, maxVolume float64) error {
	transporter, err := transport.NewTransporter(id, id, shared.MustNewPlayerID(1), shared.NewPosition(x, y), speed, maxVolume, 100)
	if err != nil {
		return err
	}
	sc.transporters[id] = transporter
	sc.haulerList = append(sc.haulerList, transporter)
	return nil
}

func (sc *simulationContext) transporterIsTasked(id string, amount int, resourceSymbol, sourceID, destinationID string) error {
	transporter, err := sc.transporter(id)
	if err != nil {
		return err
	}
	resource, err := sc.resource(resourceSymbol)
	if err != nil {
		return err
	}
	source, err := sc.facility(sourceID)
	if err != nil {
		return err
	}
	destination, err := sc.facility(destinationID)
	if err != nil {
		return err
	}

	task := transport.NewTransportTask(source, destination, []*catalog.ResourceAmount{
		catalog.NewResourceAmount(resource, amount),
	})
	transporter.Enqueue(task, 0)
	return nil
}

// Action steps

func (sc *simulationContext) iRunTheSimulationForTicks(n int) error {
	sc.ensureSim().RunTicks(n)
	return nil
}

func (sc *simulationContext) transporterTakesDamageFrom(id string, damage int, attacker string) error {
	transporter, err := sc.transporter(id)
	if err != nil {
		return err
	}
	tick := int64(0)
	if sc.sim != nil {
		tick = sc.sim.CurrentTick()
	}
	transporter.TakeDamage(damage, tick, attacker)
	return nil
}

// Assertion steps

func (sc *simulationContext) facilityShouldHave(id string, want int, resourceSymbol string) error {
	facility, err := sc.facility(id)
	if err != nil {
		return err
	}
	resource, err := sc.resource(resourceSymbol)
	if err != nil {
		return err
	}
	got := facility.Storage().GetAmount(resource)
	if got != want {
		return fmt.Errorf("facility %s has %d %s, expected %d", id, got, resourceSymbol, want)
	}
	return nil
}

func (sc *simulationContext) facilityShouldHaveAtLeast(id string, want int, resourceSymbol string) error {
	facility, err := sc.facility(id)
	if err != nil {
		return err
	}
	resource, err := sc.resource(resourceSymbol)
	if err != nil {
		return err
	}
	got := facility.Storage().GetAmount(resource)
	if got < want {
		return fmt.Errorf("facility %s has %d %s, expected at least %d", id, got, resourceSymbol, want)
	}
	return nil
}

func (sc *simulationContext) facilityShouldHaveIncoming(id string, want int, resourceSymbol string) error {
	facility, err := sc.facility(id)
	if err != nil {
		return err
	}
	resource, err := sc.resource(resourceSymbol)
	if err != nil {
		return err
	}
	got := facility.Storage().GetIncomingAmount(resource)
	if got != want {
		return fmt.Errorf("facility %s has %d incoming %s, expected %d", id, got, resourceSymbol, want)
	}
	return nil
}

func (sc *simulationContext) facilityShouldRequest(id string, want int, resourceSymbol string) error {
	facility, err := sc.facility(id)
	if err != nil {
		return err
	}
	resource, err := sc.resource(resourceSymbol)
	if err != nil {
		return err
	}
	got := 0
	for _, request := range facility.PullRequests() {
		if request.Resource == resource {
			got += request.Amount
		}
	}
	if got != want {
		return fmt.Errorf("facility %s requests %d %s, expected %d", id, got, resourceSymbol, want)
	}
	return nil
}

func (sc *simulationContext) transporterShouldBeIdle(id string) error {
	transporter, err := sc.transporter(id)
	if err != nil {
		return err
	}
	if !transporter.IsIdle() {
		return fmt.Errorf("transporter %s is %s, expected idle", id, transporter.State())
	}
	return nil
}

func (sc *simulationContext) transporterShouldNotBeIdle(id string) error {
	transporter, err := sc.transporter(id)
	if err != nil {
		return err
	}
	if transporter.IsIdle() {
		return fmt.Errorf("transporter %s is idle, expected busy", id)
	}
	return nil
}

func (sc *simulationContext) transporterShouldBeDestroyed(id string) error {
	transporter, err := sc.transporter(id)
	if err != nil {
		return err
	}
	if !transporter.IsDestroyed() {
		return fmt.Errorf("transporter %s is not destroyed", id)
	}
	return nil
}

func (sc *simulationContext) transporterShouldNotBeDestroyed(id string) error {
	transporter, err := sc.transporter(id)
	if err != nil {
		return err
	}
	if transporter.IsDestroyed() {
		return fmt.Errorf("transporter %s is destroyed", id)
	}
	return nil
}

func (sc *simulationContext) transporterShouldHaveHull(id string, want int) error {
	transporter, err := sc.transporter(id)
	if err != nil {
		return err
	}
	if transporter.Hull() != want {
		return fmt.Errorf("transporter %s has hull %d, expected %d", id, transporter.Hull(), want)
	}
	return nil
}

func (sc *simulationContext) entityLog(id string) (*events.Log, error) {
	if facility, ok := sc.facilities[id]; ok {
		return facility.Log(), nil
	}
	if transporter, ok := sc.transporters[id]; ok {
		return transporter.Log(), nil
	}
	return nil, fmt.Errorf("unknown entity %q", id)
}

func (sc *simulationContext) logShouldContainEventWithShortfall(id, kind string, shortfall int) error {
	log, err := sc.entityLog(id)
	if err != nil {
		return err
	}
	for _, evt := range log.Entries() {
		if evt.Kind == events.Kind(kind) && evt.Shortfall == shortfall {
			return nil
		}
	}
	return fmt.Errorf("no %s event with shortfall %d in the log of %s", kind, shortfall, id)
}

func (sc *simulationContext) logShouldContainEventFor(id, kind string, amount int, resourceSymbol string) error {
	log, err := sc.entityLog(id)
	if err != nil {
		return err
	}
	for _, evt := range log.Entries() {
		if evt.Kind == events.Kind(kind) && evt.Amount == amount && evt.Resource == resourceSymbol {
			return nil
		}
	}
	return fmt.Errorf("no %s event for %dx %s in the log of %s", kind, amount, resourceSymbol, id)
}

// InitializeSimulationScenario registers the simulation step definitions
func InitializeSimulationScenario(scenario *godog.ScenarioContext) {
	ctx := &simulationContext{}

	scenario.Before(func(c context.Context, s *godog.Scenario) (context.Context, error) {
		ctx.reset()
		return c, nil
	})

	// World setup
	scenario.Step(`^a resource "([^"]*)" with base value ([0-9.]+) and unit volume ([0-9.]+)$`, ctx.aResourceWith)
	scenario.Step(`^a recipe "([^"]*)" producing (\d+) "([^"]*)" over (\d+) ticks with inputs:$`, ctx.aRecipeProducing)
	scenario.Step(`^a facility "([^"]*)" at (-?[0-9.]+), (-?[0-9.]+)$`, ctx.aFacilityAt)
	scenario.Step(`^facility "([^"]*)" has (\d+) workshops? for "([^"]*)"$`, ctx.facilityHasWorkshopsFor)
	scenario.Step(`^facility "([^"]*)" stores (\d+) "([^"]*)"$`, ctx.facilityStores)
	scenario.Step(`^facility "([^"]*)" uses the sustained strategy with horizon (\d+)$`, ctx.facilityUsesSustainedStrategy)
	scenario.Step(`^a transporter "([^"]*)" at (-?[0-9.]+), (-?[0-9.]+) with speed ([0-9.]+) and max volume ([0-9.]+)$`, ctx.aTransporterAt)
	scenario.Step(`^transporter "([^"]*)" is tasked to haul (\d+) "([^"]*)" from "([^"]*)" to "([^"]*)"$`, ctx.transporterIsTasked)

	// Actions
	scenario.Step(`^I run the simulation for (\d+) ticks?$`, ctx.iRunTheSimulationForTicks)
	scenario.Step(`^transporter "([^"]*)" takes (\d+) damage from "([^"]*)"$`, ctx.transporterTakesDamageFrom)

	// Assertions
	scenario.Step(`^facility "([^"]*)" should have (\d+) "([^"]*)"$`, ctx.facilityShouldHave)
	scenario.Step(`^facility "([^"]*)" should have at least (\d+) "([^"]*)"$`, ctx.facilityShouldHaveAtLeast)
	scenario.Step(`^facility "([^"]*)" should have (\d+) incoming "([^"]*)"$`, ctx.facilityShouldHaveIncoming)
	scenario.Step(`^facility "([^"]*)" should request (\d+) "([^"]*)"$`, ctx.facilityShouldRequest)
	scenario.Step(`^transporter "([^"]*)" should be idle$`, ctx.transporterShouldBeIdle)
	scenario.Step(`^transporter "([^"]*)" should not be idle$`, ctx.transporterShouldNotBeIdle)
	scenario.Step(`^transporter "([^"]*)" should be destroyed$`, ctx.transporterShouldBeDestroyed)
	scenario.Step(`^transporter "([^"]*)" should not be destroyed$`, ctx.transporterShouldNotBeDestroyed)
	scenario.Step(`^transporter "([^"]*)" should have hull (\d+)$`, ctx.transporterShouldHaveHull)
	scenario.Step(`^the log of "([^"]*)" should contain a "([^"]*)" event with shortfall (\d+)$`, ctx.logShouldContainEventWithShortfall)
	scenario.Step(`^the log of "([^"]*)" should contain a "([^"]*)" event for (\d+) "([^"]*)"$`, ctx.logShouldContainEventFor)
}
