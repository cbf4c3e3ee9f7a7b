package production

import (
	"fmt"

	"github.com/andrescamacho/logistics-go/internal/domain/catalog"
	"github.com/andrescamacho/logistics-go/internal/domain/events"
	"github.com/andrescamacho/logistics-go/internal/domain/shared"
	"github.com/andrescamacho/logistics-go/internal/domain/storage"
)

// Facility is a fixed production site. It exclusively owns one
// ResourceStorage and a set of recipe-to-workshop assignments, advances
// in-progress jobs each tick, and starts new jobs when inputs and idle
// workshop capacity allow.
//
// Invariants:
// - active jobs per recipe never exceed the assigned workshop count
// - job starts consume the whole input set atomically or not at all
// - recipe iteration follows workshop-assignment insertion order, keeping
//   runs reproducible for the same setup order
//
// The facility's position never changes; it is used for distance
// calculations only.
type Facility struct {
	id       string
	name     string
	position shared.Position
	playerID shared.PlayerID

	storage   *storage.ResourceStorage
	recipes   []*catalog.Recipe
	workshops map[*catalog.Recipe]int
	jobs      map[*catalog.Recipe][]*ProductionJob

	strategy  PullRequestStrategy
	lastPulls []*catalog.ResourceAmount

	log      *events.Log
	lastTick int64
}

// NewFacility creates a facility with empty storage and the default pull
// strategy
func NewFacility(id, name string, position shared.Position, playerID shared.PlayerID) (*Facility, error) {
	if id == "" {
		return nil, shared.NewInvalidFacilityDataError("facility id cannot be empty")
	}
	if playerID.IsZero() {
		return nil, shared.NewInvalidFacilityDataError("facility player_id must be set")
	}

	return &Facility{
		id:        id,
		name:      name,
		position:  position,
		playerID:  playerID,
		storage:   storage.NewResourceStorage(),
		workshops: make(map[*catalog.Recipe]int),
		jobs:      make(map[*catalog.Recipe][]*ProductionJob),
		strategy:  DefaultStrategy{},
		log:       events.NewLog(id),
	}, nil
}

// Getters

func (f *Facility) ID() string {
	return f.id
}

func (f *Facility) Name() string {
	return f.name
}

func (f *Facility) Position() shared.Position {
	return f.position
}

func (f *Facility) PlayerID() shared.PlayerID {
	return f.playerID
}

// Storage returns the facility's inventory ledger. Production consumes
// from it directly; everything outside the facility goes through
// TryExport/ReceiveImport or MarkIncoming instead of mutating it.
func (f *Facility) Storage() *storage.ResourceStorage {
	return f.storage
}

// Recipes returns assigned recipes in assignment order
func (f *Facility) Recipes() []*catalog.Recipe {
	return f.recipes
}

// WorkshopCount returns the workshop capacity assigned to a recipe
func (f *Facility) WorkshopCount(recipe *catalog.Recipe) int {
	return f.workshops[recipe]
}

// ActiveJobs returns the in-progress jobs for a recipe
func (f *Facility) ActiveJobs(recipe *catalog.Recipe) []*ProductionJob {
	return f.jobs[recipe]
}

// Log returns the facility's append-only event log
func (f *Facility) Log() *events.Log {
	return f.log
}

// SetPullStrategy swaps the pull policy at runtime
func (f *Facility) SetPullStrategy(strategy PullRequestStrategy) {
	f.strategy = strategy
}

// PullStrategy returns the current pull policy
func (f *Facility) PullStrategy() PullRequestStrategy {
	return f.strategy
}

// AddWorkshops assigns additional parallel production capacity for a
// recipe, creating the job list for a previously-unseen recipe.
func (f *Facility) AddWorkshops(recipe *catalog.Recipe, count int) {
	if count <= 0 {
		return
	}
	if _, seen := f.workshops[recipe]; !seen {
		f.recipes = append(f.recipes, recipe)
		f.jobs[recipe] = nil
	}
	f.workshops[recipe] += count

	f.log.Append(events.Event{
		Tick:   f.lastTick,
		Kind:   events.KindWorkshopsAdded,
		Recipe: recipe.Symbol(),
		Amount: count,
	})
}

// Tick advances production by one tick in two ordered phases: first every
// active job progresses (completions book output and free their slot),
// then freed capacity tries to start new jobs. The phases must not be
// reordered; a slot freed this tick may be refilled this tick.
func (f *Facility) Tick(currentTick int64) {
	f.lastTick = currentTick
	f.progressJobs(currentTick)
	f.startJobs(currentTick)
}

func (f *Facility) progressJobs(currentTick int64) {
	for _, recipe := range f.recipes {
		kept := f.jobs[recipe][:0]
		for _, job := range f.jobs[recipe] {
			if !job.Advance() {
				kept = append(kept, job)
				continue
			}
			f.storage.Add(recipe.Output(), recipe.OutputAmount())
			f.log.Append(events.Event{
				Tick:     currentTick,
				Kind:     events.KindJobCompleted,
				Recipe:   recipe.Symbol(),
				Resource: recipe.Output().Symbol(),
				Amount:   recipe.OutputAmount(),
			})
		}
		f.jobs[recipe] = kept
	}
}

func (f *Facility) startJobs(currentTick int64) {
	for _, recipe := range f.recipes {
		available := f.workshops[recipe] - len(f.jobs[recipe])
		for slot := 0; slot < available; slot++ {
			// All-or-nothing across the recipe's whole input set. The
			// first failure stops further slots for this recipe this tick.
			if !f.storage.TryConsumeAll(recipe.Inputs()) {
				break
			}
			f.jobs[recipe] = append(f.jobs[recipe], NewProductionJob(recipe))
			f.log.Append(events.Event{
				Tick:   currentTick,
				Kind:   events.KindJobStarted,
				Recipe: recipe.Symbol(),
			})
		}
	}
}

// PushOffers yields the facility's declared surplus: every resource in
// storage with a positive amount that none of the facility's own recipes
// consume. A facility never offers to give away something it still needs.
func (f *Facility) PushOffers() []*catalog.ResourceAmount {
	var offers []*catalog.ResourceAmount
	for _, resource := range f.storage.Resources() {
		amount := f.storage.GetAmount(resource)
		if amount <= 0 {
			continue
		}
		if f.consumesResource(resource) {
			continue
		}
		offers = append(offers, catalog.NewResourceAmount(resource, amount))
	}
	return offers
}

// PullRequests delegates to the configured pull strategy and caches the
// result for external inspection. The cache is never read internally.
func (f *Facility) PullRequests() []*catalog.ResourceAmount {
	f.lastPulls = f.strategy.Requests(f)
	return f.lastPulls
}

// LastPullRequests returns the result of the most recent PullRequests call
func (f *Facility) LastPullRequests() []*catalog.ResourceAmount {
	return f.lastPulls
}

// TicksUntilNextEvent returns 0 if any recipe could start a job right now,
// otherwise the minimum remaining duration across active jobs. The second
// return is false when nothing is active and nothing could start. Callers
// may use this for event-driven scheduling; correctness never depends on
// it.
func (f *Facility) TicksUntilNextEvent() (int, bool) {
	for _, recipe := range f.recipes {
		if f.workshops[recipe]-len(f.jobs[recipe]) <= 0 {
			continue
		}
		if f.hasInputsFor(recipe) {
			return 0, true
		}
	}

	minRemaining := -1
	for _, recipe := range f.recipes {
		for _, job := range f.jobs[recipe] {
			if minRemaining < 0 || job.Remaining() < minRemaining {
				minRemaining = job.Remaining()
			}
		}
	}
	if minRemaining < 0 {
		return 0, false
	}
	return minRemaining, true
}

// TryExport atomically removes amount from storage for pickup by a
// transporter. Never partially succeeds; callers must pre-clamp to the
// available amount.
func (f *Facility) TryExport(resource *catalog.Resource, amount int) bool {
	return f.storage.Consume(resource, amount)
}

// ReceiveImport books delivered goods into storage, draining any matching
// incoming reservation
func (f *Facility) ReceiveImport(resource *catalog.Resource, amount int) {
	f.storage.Add(resource, amount)
}

func (f *Facility) consumesResource(resource *catalog.Resource) bool {
	for _, recipe := range f.recipes {
		if recipe.Consumes(resource) {
			return true
		}
	}
	return false
}

func (f *Facility) hasInputsFor(recipe *catalog.Recipe) bool {
	for _, input := range recipe.Inputs() {
		if f.storage.GetAmount(input.Resource) < input.Amount {
			return false
		}
	}
	return true
}

func (f *Facility) String() string {
	return fmt.Sprintf("Facility(%s)", f.id)
}
