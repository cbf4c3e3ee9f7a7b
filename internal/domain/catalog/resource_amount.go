package catalog

import "fmt"

// ResourceAmount pairs a resource with a unit count. The amount is mutable
// on purpose: pickup and delivery decrement cargo lines in place.
type ResourceAmount struct {
	Resource *Resource
	Amount   int
}

// NewResourceAmount creates a resource/amount pair
func NewResourceAmount(resource *Resource, amount int) *ResourceAmount {
	return &ResourceAmount{Resource: resource, Amount: amount}
}

// Volume returns the cargo volume occupied by this line
func (ra *ResourceAmount) Volume() float64 {
	return float64(ra.Amount) * ra.Resource.UnitVolume()
}

func (ra *ResourceAmount) String() string {
	return fmt.Sprintf("%dx %s", ra.Amount, ra.Resource.Symbol())
}
