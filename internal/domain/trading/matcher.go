package trading

import (
	"github.com/andrescamacho/logistics-go/internal/domain/catalog"
	"github.com/andrescamacho/logistics-go/internal/domain/production"
	"github.com/andrescamacho/logistics-go/internal/domain/transport"
	"github.com/andrescamacho/logistics-go/pkg/utils"
)

// DefaultDistanceEpsilon is the floor applied to the distance term when
// scoring a trade, so co-located facilities do not divide by zero.
const DefaultDistanceEpsilon = 1e-6

// PushOffer is a facility's declared surplus of one resource
type PushOffer struct {
	Facility *production.Facility
	Resource *catalog.Resource
	Amount   int
}

// PullRequest is a facility's declared shortage of one resource
type PullRequest struct {
	Facility *production.Facility
	Resource *catalog.Resource
	Amount   int
}

// Trade is a matched (push, pull) pair with its clamped transfer amount
// and score
type Trade struct {
	Push   *PushOffer
	Pull   *PullRequest
	Amount int
	Score  float64
}

// Matcher pairs outstanding pulls with pushes across all facilities and
// dispatches the single best-value trade per idle transporter per tick.
// The choice is greedy and locally best; global optimality is not a goal.
//
// Scoring is distance-discounted value: baseValue / max(distance, epsilon).
// A pair only qualifies when the resource matches, the facilities differ
// and both belong to the same player.
type Matcher struct {
	// ReserveAssigned controls whether a matched amount is deducted from
	// the in-memory push and pull figures before the next idle transporter
	// is considered within the same tick. When false (the historical
	// behavior) two transporters can commit to the same scarce push in one
	// tick; the collision surfaces later as partial or failed deliveries,
	// never as an assignment error.
	ReserveAssigned bool

	epsilon float64
}

// NewMatcher creates a matcher with the default distance epsilon and
// reservation disabled
func NewMatcher() *Matcher {
	return &Matcher{epsilon: DefaultDistanceEpsilon}
}

// AssignIdle finds and dispatches the best trade for every idle,
// operational transporter. On each assignment the transfer amount is
// marked incoming at the destination and a task is enqueued. Returns the
// number of tasks dispatched.
func (m *Matcher) AssignIdle(currentTick int64, facilities []*production.Facility, transporters []*transport.Transporter) int {
	var pushes []*PushOffer
	var pulls []*PullRequest
	if m.ReserveAssigned {
		pushes, pulls = m.collect(facilities)
	}

	assigned := 0
	for _, transporter := range transporters {
		if !transporter.IsIdle() {
			continue
		}
		if !m.ReserveAssigned {
			pushes, pulls = m.collect(facilities)
		}

		trade := m.BestTrade(pushes, pulls, transporter)
		if trade == nil {
			continue
		}

		trade.Pull.Facility.Storage().MarkIncoming(trade.Pull.Resource, trade.Amount)
		task := transport.NewTransportTask(
			trade.Push.Facility,
			trade.Pull.Facility,
			[]*catalog.ResourceAmount{catalog.NewResourceAmount(trade.Pull.Resource, trade.Amount)},
		)
		transporter.Enqueue(task, currentTick)
		assigned++

		if m.ReserveAssigned {
			trade.Push.Amount -= trade.Amount
			trade.Pull.Amount -= trade.Amount
		}
	}
	return assigned
}

// BestTrade returns the highest-scoring viable (push, pull) pair for the
// given transporter, or nil when no pair yields a positive transfer
// amount. Ties keep the first pair found, so results are deterministic for
// a fixed facility order.
func (m *Matcher) BestTrade(pushes []*PushOffer, pulls []*PullRequest, transporter *transport.Transporter) *Trade {
	var best *Trade
	for _, pull := range pulls {
		for _, push := range pushes {
			if push.Resource != pull.Resource {
				continue
			}
			if push.Facility == pull.Facility {
				continue
			}
			if !push.Facility.PlayerID().Equals(pull.Facility.PlayerID()) {
				continue
			}
			if !transporter.PlayerID().Equals(pull.Facility.PlayerID()) {
				continue
			}

			volumeCap := int(transporter.MaxVolume() / pull.Resource.UnitVolume())
			amount := utils.Min3(push.Amount, pull.Amount, volumeCap)
			if amount <= 0 {
				continue
			}

			score := m.score(push, pull)
			if best == nil || score > best.Score {
				best = &Trade{Push: push, Pull: pull, Amount: amount, Score: score}
			}
		}
	}
	return best
}

func (m *Matcher) score(push *PushOffer, pull *PullRequest) float64 {
	distance := push.Facility.Position().DistanceTo(pull.Facility.Position())
	return pull.Resource.BaseValue() / utils.MaxFloat(distance, m.epsilon)
}

func (m *Matcher) collect(facilities []*production.Facility) ([]*PushOffer, []*PullRequest) {
	var pushes []*PushOffer
	var pulls []*PullRequest
	for _, facility := range facilities {
		for _, offer := range facility.PushOffers() {
			pushes = append(pushes, &PushOffer{Facility: facility, Resource: offer.Resource, Amount: offer.Amount})
		}
		for _, request := range facility.PullRequests() {
			pulls = append(pulls, &PullRequest{Facility: facility, Resource: request.Resource, Amount: request.Amount})
		}
	}
	return pushes, pulls
}
