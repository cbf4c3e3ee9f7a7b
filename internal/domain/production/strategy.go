package production

import "github.com/andrescamacho/logistics-go/internal/domain/catalog"

// PullRequestStrategy computes how much of each input a facility currently
// wants delivered. Strategies are stateless policy objects, recomputed
// fresh on every call and swappable on a facility at runtime.
//
// The result follows the facility's recipe/input iteration order; the same
// resource may appear once per (recipe, input) pair.
type PullRequestStrategy interface {
	Requests(f *Facility) []*catalog.ResourceAmount
}

// DefaultStrategy requests just enough of each input to cover one pending
// job's worth per recipe, counting goods already underway toward the need.
type DefaultStrategy struct{}

// Requests implements PullRequestStrategy
func (DefaultStrategy) Requests(f *Facility) []*catalog.ResourceAmount {
	var requests []*catalog.ResourceAmount
	for _, recipe := range f.recipes {
		for _, input := range recipe.Inputs() {
			need := input.Amount - f.storage.GetTotalIncludingIncoming(input.Resource)
			if need > 0 {
				requests = append(requests, catalog.NewResourceAmount(input.Resource, need))
			}
		}
	}
	return requests
}

// SustainedStrategy plans for a horizon of ticks instead of one job at a
// time: it requests enough input to keep every assigned workshop busy for
// Horizon ticks. Need is measured against raw on-hand stock only;
// goods still underway do not reduce a sustained request.
type SustainedStrategy struct {
	Horizon int
}

// NewSustainedStrategy creates a sustained strategy for the given planning
// horizon in ticks
func NewSustainedStrategy(horizon int) SustainedStrategy {
	return SustainedStrategy{Horizon: horizon}
}

// Requests implements PullRequestStrategy
func (s SustainedStrategy) Requests(f *Facility) []*catalog.ResourceAmount {
	var requests []*catalog.ResourceAmount
	for _, recipe := range f.recipes {
		jobsNeeded := s.Horizon * f.workshops[recipe] / recipe.Duration()
		for _, input := range recipe.Inputs() {
			need := jobsNeeded*input.Amount - f.storage.GetAmount(input.Resource)
			if need > 0 {
				requests = append(requests, catalog.NewResourceAmount(input.Resource, need))
			}
		}
	}
	return requests
}
