package transport

import (
	"fmt"

	"github.com/andrescamacho/logistics-go/internal/domain/catalog"
	"github.com/andrescamacho/logistics-go/internal/domain/events"
	"github.com/andrescamacho/logistics-go/internal/domain/shared"
	"github.com/andrescamacho/logistics-go/pkg/utils"
)

// State represents a transporter's position in its task cycle
type State string

const (
	StateIdle                State = "IDLE"
	StateMovingToSource      State = "MOVING_TO_SOURCE"
	StateMovingToDestination State = "MOVING_TO_DESTINATION"
	StateDestroyed           State = "DESTROYED"
)

// Transporter is a mobile agent hauling goods between facilities.
//
// Task cycle: Idle -> MovingToSource -> (pick up) -> MovingToDestination
// -> (deliver) -> Idle, then the next queued task if any. Pickup and
// delivery happen within the arrival tick; movement is a straight line at
// up to speed per tick, snapping exactly onto the target on arrival.
//
// Cargo is volume-constrained. Pickup clamps each line to free volume and
// source stock and never retries; delivery hands over min(carried,
// requested) per line and accounts the rest as shortfall.
//
// TakeDamage may be called at any point in the cycle; destruction drains
// cargo and tasks and leaves the transporter in a terminal state.
type Transporter struct {
	id       string
	name     string
	playerID shared.PlayerID

	position  shared.Position
	speed     float64
	maxVolume float64
	hull      int

	cargo   []*catalog.ResourceAmount
	queue   []*TransportTask
	current *TransportTask
	target  *shared.Position

	destroyed bool
	log       *events.Log
}

// NewTransporter creates an idle transporter with empty cargo and queue
func NewTransporter(id, name string, playerID shared.PlayerID, position shared.Position, speed, maxVolume float64, hull int) (*Transporter, error) {
	if id == "" {
		return nil, shared.NewInvalidTransporterDataError("transporter id cannot be empty")
	}
	if playerID.IsZero() {
		return nil, shared.NewInvalidTransporterDataError("transporter player_id must be set")
	}
	if speed <= 0 {
		return nil, shared.NewInvalidTransporterDataError("transporter speed must be positive")
	}
	if maxVolume <= 0 {
		return nil, shared.NewInvalidTransporterDataError("transporter max_volume must be positive")
	}
	if hull <= 0 {
		return nil, shared.NewInvalidTransporterDataError("transporter hull must be positive")
	}

	return &Transporter{
		id:        id,
		name:      name,
		playerID:  playerID,
		position:  position,
		speed:     speed,
		maxVolume: maxVolume,
		hull:      hull,
		log:       events.NewLog(id),
	}, nil
}

// Getters

func (t *Transporter) ID() string {
	return t.id
}

func (t *Transporter) Name() string {
	return t.name
}

func (t *Transporter) PlayerID() shared.PlayerID {
	return t.playerID
}

func (t *Transporter) Position() shared.Position {
	return t.position
}

func (t *Transporter) Speed() float64 {
	return t.speed
}

func (t *Transporter) MaxVolume() float64 {
	return t.maxVolume
}

func (t *Transporter) Hull() int {
	return t.hull
}

// Cargo returns the carried cargo lines
func (t *Transporter) Cargo() []*catalog.ResourceAmount {
	return t.cargo
}

// CurrentTask returns the task in progress, nil when idle
func (t *Transporter) CurrentTask() *TransportTask {
	return t.current
}

// QueuedTasks returns pending tasks in FIFO order
func (t *Transporter) QueuedTasks() []*TransportTask {
	return t.queue
}

// Log returns the transporter's append-only event log
func (t *Transporter) Log() *events.Log {
	return t.log
}

// IsDestroyed reports whether the transporter has been destroyed
func (t *Transporter) IsDestroyed() bool {
	return t.destroyed
}

// IsIdle reports whether the transporter is operational with no current and
// no queued task, i.e. eligible for trade assignment
func (t *Transporter) IsIdle() bool {
	return !t.destroyed && t.current == nil && len(t.queue) == 0
}

// State derives the transporter's current cycle state
func (t *Transporter) State() State {
	switch {
	case t.destroyed:
		return StateDestroyed
	case t.current == nil:
		return StateIdle
	case !t.current.PickedUp():
		return StateMovingToSource
	default:
		return StateMovingToDestination
	}
}

// CarriedVolume returns the total volume of carried cargo
func (t *Transporter) CarriedVolume() float64 {
	volume := 0.0
	for _, line := range t.cargo {
		volume += line.Volume()
	}
	return volume
}

// Enqueue appends a task to the FIFO queue and records the assignment.
// One trade-assigned event is logged per cargo line.
func (t *Transporter) Enqueue(task *TransportTask, tick int64) {
	t.queue = append(t.queue, task)
	for _, line := range task.Cargo() {
		t.log.Append(events.Event{
			Tick:        tick,
			Kind:        events.KindTradeAssigned,
			Resource:    line.Resource.Symbol(),
			Amount:      line.Amount,
			Source:      task.Source().ID(),
			Destination: task.Destination().ID(),
		})
	}
}

// Tick advances the transporter by one tick: dequeue a task if idle, then
// move toward the target, and on arrival process the pickup or delivery
// stop. A stop consumes the rest of the tick.
func (t *Transporter) Tick(currentTick int64) {
	if t.destroyed {
		return
	}

	if t.current == nil {
		if len(t.queue) == 0 {
			return
		}
		t.current = t.queue[0]
		t.queue = t.queue[1:]
		source := t.current.Source().Position()
		t.target = &source
	}

	t.position = t.position.MoveToward(*t.target, t.speed)
	if !t.position.Equals(*t.target) {
		return
	}

	if !t.current.PickedUp() {
		t.pickUp(currentTick)
		return
	}
	t.deliver(currentTick)
}

// pickUp processes every cargo line at the source facility. Each line is
// clamped to free cargo volume and to the source's actual stock; a line
// that yields nothing logs a failure and the task moves on regardless.
// The task is marked picked-up even when every line failed.
func (t *Transporter) pickUp(currentTick int64) {
	task := t.current
	for _, line := range task.Cargo() {
		freeVolume := t.maxVolume - t.CarriedVolume()
		unitCap := int(freeVolume / line.Resource.UnitVolume())
		available := task.Source().Storage().GetAmount(line.Resource)

		amount := utils.Min3(line.Amount, unitCap, available)
		if amount <= 0 || !task.Source().TryExport(line.Resource, amount) {
			t.log.Append(events.Event{
				Tick:      currentTick,
				Kind:      events.KindPickupFailed,
				Resource:  line.Resource.Symbol(),
				Requested: line.Amount,
				Source:    task.Source().ID(),
			})
			continue
		}

		t.addCargo(line.Resource, amount)
		t.log.Append(events.Event{
			Tick:     currentTick,
			Kind:     events.KindPickedUp,
			Resource: line.Resource.Symbol(),
			Amount:   amount,
			Source:   task.Source().ID(),
		})
	}

	task.MarkPickedUp()
	destination := task.Destination().Position()
	t.target = &destination
}

// deliver hands over min(carried, requested) per cargo line, accounts the
// shortfall, emits the partial/failed summary event, and returns the
// transporter to idle.
func (t *Transporter) deliver(currentTick int64) {
	task := t.current
	delivered := 0
	shortfall := 0

	for _, line := range task.Cargo() {
		carried := t.findCargo(line.Resource)
		amount := 0
		if carried != nil {
			amount = utils.Min(carried.Amount, line.Amount)
		}
		if amount > 0 {
			task.Destination().ReceiveImport(line.Resource, amount)
			carried.Amount -= amount
			delivered += amount
			t.log.Append(events.Event{
				Tick:        currentTick,
				Kind:        events.KindDelivered,
				Resource:    line.Resource.Symbol(),
				Amount:      amount,
				Destination: task.Destination().ID(),
			})
		}
		shortfall += line.Amount - amount
	}

	if shortfall > 0 {
		kind := events.KindDeliveryPartial
		if delivered == 0 {
			kind = events.KindDeliveryFailed
		}
		t.log.Append(events.Event{
			Tick:        currentTick,
			Kind:        kind,
			Destination: task.Destination().ID(),
			Shortfall:   shortfall,
		})
	}

	t.dropEmptyCargo()
	t.current = nil
	t.target = nil
}

// TakeDamage applies combat damage. On destruction the current task, the
// queue and all cargo are discarded (each carried line logged as lost) and
// the transporter enters a terminal idle-like state. Safe to call at any
// point in the task cycle. Returns true when the transporter is destroyed.
func (t *Transporter) TakeDamage(damage int, currentTick int64, attacker string) bool {
	if t.destroyed {
		return true
	}

	t.hull -= damage
	t.log.Append(events.Event{
		Tick:     currentTick,
		Kind:     events.KindDamageTaken,
		Damage:   damage,
		Attacker: attacker,
		Hull:     t.hull,
	})

	if t.hull > 0 {
		return false
	}

	t.destroyed = true
	for _, line := range t.cargo {
		if line.Amount <= 0 {
			continue
		}
		t.log.Append(events.Event{
			Tick:     currentTick,
			Kind:     events.KindCargoLost,
			Resource: line.Resource.Symbol(),
			Amount:   line.Amount,
		})
	}
	t.cargo = nil
	t.queue = nil
	t.current = nil
	t.target = nil

	t.log.Append(events.Event{
		Tick:     currentTick,
		Kind:     events.KindDestroyed,
		Attacker: attacker,
	})
	return true
}

func (t *Transporter) addCargo(resource *catalog.Resource, amount int) {
	if existing := t.findCargo(resource); existing != nil {
		existing.Amount += amount
		return
	}
	t.cargo = append(t.cargo, catalog.NewResourceAmount(resource, amount))
}

func (t *Transporter) findCargo(resource *catalog.Resource) *catalog.ResourceAmount {
	for _, line := range t.cargo {
		if line.Resource == resource {
			return line
		}
	}
	return nil
}

func (t *Transporter) dropEmptyCargo() {
	kept := t.cargo[:0]
	for _, line := range t.cargo {
		if line.Amount > 0 {
			kept = append(kept, line)
		}
	}
	t.cargo = kept
}

func (t *Transporter) String() string {
	return fmt.Sprintf("Transporter(%s, %s)", t.id, t.State())
}
