package transport

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/andrescamacho/logistics-go/internal/domain/catalog"
	"github.com/andrescamacho/logistics-go/internal/domain/production"
)

// TransportTask describes one haul: pick cargo up at the source facility
// and deliver it to the destination facility. The task holds non-owning
// facility references; facilities never reference transporters back.
//
// Cargo lines keep the requested amounts for the whole task lifetime, so
// delivery can account shortfalls against what was originally asked for.
type TransportTask struct {
	id          string
	source      *production.Facility
	destination *production.Facility
	cargo       []*catalog.ResourceAmount
	pickedUp    bool
}

// NewTransportTask creates a task with a generated id
func NewTransportTask(source, destination *production.Facility, cargo []*catalog.ResourceAmount) *TransportTask {
	return &TransportTask{
		id:          uuid.NewString(),
		source:      source,
		destination: destination,
		cargo:       cargo,
	}
}

// ID returns the generated task identifier
func (t *TransportTask) ID() string {
	return t.id
}

// Source returns the pickup facility
func (t *TransportTask) Source() *production.Facility {
	return t.source
}

// Destination returns the delivery facility
func (t *TransportTask) Destination() *production.Facility {
	return t.destination
}

// Cargo returns the requested cargo lines
func (t *TransportTask) Cargo() []*catalog.ResourceAmount {
	return t.cargo
}

// PickedUp reports whether the pickup stop has been processed. The flag is
// set even when some or all lines failed to pick up; a task never retries
// its pickup.
func (t *TransportTask) PickedUp() bool {
	return t.pickedUp
}

// MarkPickedUp flags the pickup stop as processed
func (t *TransportTask) MarkPickedUp() {
	t.pickedUp = true
}

func (t *TransportTask) String() string {
	return fmt.Sprintf("TransportTask(%s -> %s)", t.source.ID(), t.destination.ID())
}
