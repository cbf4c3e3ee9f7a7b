package events

import "fmt"

// Kind enumerates every event the core can emit. The set is closed: adding
// a kind means extending the switch in Event.String and the consumers that
// treat these names as a wire format.
type Kind string

const (
	KindTradeAssigned   Kind = "trade-assigned"
	KindPickedUp        Kind = "picked-up"
	KindPickupFailed    Kind = "pickup-failed"
	KindDelivered       Kind = "delivered"
	KindDeliveryPartial Kind = "delivery-partial"
	KindDeliveryFailed  Kind = "delivery-failed"
	KindJobStarted      Kind = "job-started"
	KindJobCompleted    Kind = "job-completed"
	KindWorkshopsAdded  Kind = "workshops-added"
	KindDamageTaken     Kind = "damage-taken"
	KindDestroyed       Kind = "destroyed"
	KindCargoLost       Kind = "cargo-lost"
)

// Event is one entry of an entity's append-only log. Only the fields
// relevant to the Kind are populated; Tick, Kind and Entity are always set.
type Event struct {
	Tick   int64
	Kind   Kind
	Entity string

	Resource    string
	Amount      int
	Requested   int
	Shortfall   int
	Source      string
	Destination string
	Recipe      string
	Attacker    string
	Damage      int
	Hull        int
}

// String formats the event for human consumption. One exhaustive switch
// over the closed taxonomy.
func (e Event) String() string {
	switch e.Kind {
	case KindTradeAssigned:
		return fmt.Sprintf("[%d] %s: assigned %dx %s from %s to %s",
			e.Tick, e.Entity, e.Amount, e.Resource, e.Source, e.Destination)
	case KindPickedUp:
		return fmt.Sprintf("[%d] %s: picked up %dx %s at %s",
			e.Tick, e.Entity, e.Amount, e.Resource, e.Source)
	case KindPickupFailed:
		return fmt.Sprintf("[%d] %s: pickup failed for %dx %s at %s (got %d)",
			e.Tick, e.Entity, e.Requested, e.Resource, e.Source, e.Amount)
	case KindDelivered:
		return fmt.Sprintf("[%d] %s: delivered %dx %s to %s",
			e.Tick, e.Entity, e.Amount, e.Resource, e.Destination)
	case KindDeliveryPartial:
		return fmt.Sprintf("[%d] %s: partial delivery to %s (%d short)",
			e.Tick, e.Entity, e.Destination, e.Shortfall)
	case KindDeliveryFailed:
		return fmt.Sprintf("[%d] %s: delivery to %s failed (%d short)",
			e.Tick, e.Entity, e.Destination, e.Shortfall)
	case KindJobStarted:
		return fmt.Sprintf("[%d] %s: started job %s", e.Tick, e.Entity, e.Recipe)
	case KindJobCompleted:
		return fmt.Sprintf("[%d] %s: completed job %s (+%dx %s)",
			e.Tick, e.Entity, e.Recipe, e.Amount, e.Resource)
	case KindWorkshopsAdded:
		return fmt.Sprintf("[%d] %s: added %d workshop(s) for %s",
			e.Tick, e.Entity, e.Amount, e.Recipe)
	case KindDamageTaken:
		return fmt.Sprintf("[%d] %s: took %d damage from %s (hull %d)",
			e.Tick, e.Entity, e.Damage, e.Attacker, e.Hull)
	case KindDestroyed:
		return fmt.Sprintf("[%d] %s: destroyed by %s", e.Tick, e.Entity, e.Attacker)
	case KindCargoLost:
		return fmt.Sprintf("[%d] %s: lost %dx %s", e.Tick, e.Entity, e.Amount, e.Resource)
	default:
		return fmt.Sprintf("[%d] %s: %s", e.Tick, e.Entity, e.Kind)
	}
}
