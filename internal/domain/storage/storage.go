package storage

import (
	"fmt"

	"github.com/andrescamacho/logistics-go/internal/domain/catalog"
)

// ResourceStorage is a per-facility inventory ledger. It tracks two figures
// per resource: the on-hand amount, and a separate "incoming" amount that
// counts units promised by in-flight transport tasks but not yet arrived.
//
// Invariants:
// - on-hand amounts are never negative
// - Consume is atomic: it either deducts the full amount or changes nothing
// - incoming is advisory and never available for consumption
//
// Iteration over stored resources follows first-insertion order so that a
// simulation replays identically for the same input order.
type ResourceStorage struct {
	onHand        map[*catalog.Resource]int
	incoming      map[*catalog.Resource]int
	onHandOrder   []*catalog.Resource
	incomingOrder []*catalog.Resource
}

// NewResourceStorage creates an empty storage ledger
func NewResourceStorage() *ResourceStorage {
	return &ResourceStorage{
		onHand:   make(map[*catalog.Resource]int),
		incoming: make(map[*catalog.Resource]int),
	}
}

// Add increments the on-hand amount and opportunistically drains the
// incoming reservation for the same resource, down to zero. This models a
// reservation being fulfilled by the physical arrival of goods.
func (s *ResourceStorage) Add(resource *catalog.Resource, amount int) {
	if amount <= 0 {
		return
	}

	if _, seen := s.onHand[resource]; !seen {
		s.onHandOrder = append(s.onHandOrder, resource)
	}
	s.onHand[resource] += amount

	if reserved, ok := s.incoming[resource]; ok {
		remaining := reserved - amount
		if remaining > 0 {
			s.incoming[resource] = remaining
		} else {
			s.removeIncoming(resource)
		}
	}
}

// Consume deducts amount from the on-hand stock. Returns false without any
// state change if the stock is insufficient. Incoming reservations are
// never consumed.
func (s *ResourceStorage) Consume(resource *catalog.Resource, amount int) bool {
	if amount <= 0 {
		return true
	}
	if s.onHand[resource] < amount {
		return false
	}
	s.onHand[resource] -= amount
	return true
}

// TryConsumeAll deducts every input line atomically: either the whole set
// is consumed or nothing is. Used by the facility start phase, where a job
// must not partially drain storage.
func (s *ResourceStorage) TryConsumeAll(inputs []catalog.RecipeInput) bool {
	for _, input := range inputs {
		if s.onHand[input.Resource] < input.Amount {
			return false
		}
	}
	for _, input := range inputs {
		s.onHand[input.Resource] -= input.Amount
	}
	return true
}

// MarkIncoming adds to the reservation counter for a resource. Called when
// a transport task targeting this storage is created.
func (s *ResourceStorage) MarkIncoming(resource *catalog.Resource, amount int) {
	if amount <= 0 {
		return
	}
	if _, seen := s.incoming[resource]; !seen {
		s.incomingOrder = append(s.incomingOrder, resource)
	}
	s.incoming[resource] += amount
}

// GetAmount returns the on-hand amount, zero for unknown resources
func (s *ResourceStorage) GetAmount(resource *catalog.Resource) int {
	return s.onHand[resource]
}

// GetIncomingAmount returns the reserved-but-not-arrived amount, zero for
// unknown resources
func (s *ResourceStorage) GetIncomingAmount(resource *catalog.Resource) int {
	return s.incoming[resource]
}

// GetTotalIncludingIncoming returns on-hand plus incoming
func (s *ResourceStorage) GetTotalIncludingIncoming(resource *catalog.Resource) int {
	return s.onHand[resource] + s.incoming[resource]
}

// Resources returns every resource ever added on-hand, in first-insertion
// order. Amounts may have since dropped to zero.
func (s *ResourceStorage) Resources() []*catalog.Resource {
	return s.onHandOrder
}

// IncomingResources returns resources with an outstanding incoming
// reservation, in first-reservation order.
func (s *ResourceStorage) IncomingResources() []*catalog.Resource {
	return s.incomingOrder
}

func (s *ResourceStorage) removeIncoming(resource *catalog.Resource) {
	delete(s.incoming, resource)
	for i, r := range s.incomingOrder {
		if r == resource {
			s.incomingOrder = append(s.incomingOrder[:i], s.incomingOrder[i+1:]...)
			break
		}
	}
}

func (s *ResourceStorage) String() string {
	return fmt.Sprintf("ResourceStorage(%d resources, %d incoming)", len(s.onHand), len(s.incoming))
}
