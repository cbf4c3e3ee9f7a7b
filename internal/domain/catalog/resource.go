package catalog

import (
	"fmt"

	"github.com/andrescamacho/logistics-go/internal/domain/shared"
)

// Resource is an immutable catalog entry describing a tradeable good.
// Resources are shared by reference across all sites and never mutated
// after creation; identity comparison (pointer equality) is the canonical
// way to match resources once the catalog is loaded.
type Resource struct {
	symbol     string
	name       string
	baseValue  float64
	unitVolume float64
}

// NewResource creates a resource catalog entry with validation
func NewResource(symbol, name string, baseValue, unitVolume float64) (*Resource, error) {
	if symbol == "" {
		return nil, shared.NewInvalidResourceDataError("resource symbol cannot be empty")
	}
	if baseValue < 0 {
		return nil, shared.NewInvalidResourceDataError("resource base_value cannot be negative")
	}
	if unitVolume <= 0 {
		return nil, shared.NewInvalidResourceDataError("resource unit_volume must be positive")
	}

	return &Resource{
		symbol:     symbol,
		name:       name,
		baseValue:  baseValue,
		unitVolume: unitVolume,
	}, nil
}

// Symbol returns the unique resource identifier
func (r *Resource) Symbol() string {
	return r.symbol
}

// Name returns the display name
func (r *Resource) Name() string {
	return r.name
}

// BaseValue returns the ranking heuristic used by trade matching.
// It is not a price; nothing in the core settles money.
func (r *Resource) BaseValue() float64 {
	return r.baseValue
}

// UnitVolume returns the cargo volume one unit occupies
func (r *Resource) UnitVolume() float64 {
	return r.unitVolume
}

func (r *Resource) String() string {
	return fmt.Sprintf("Resource(%s)", r.symbol)
}
