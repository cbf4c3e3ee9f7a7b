package shared

import (
	"fmt"
	"math"
)

// Position is an immutable point on the simulation plane.
// Facilities are fixed at a position; transporters move between them in a
// straight line, so distance is plain Euclidean distance.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPosition creates a position value object
func NewPosition(x, y float64) Position {
	return Position{X: x, Y: y}
}

// DistanceTo calculates Euclidean distance to another position
func (p Position) DistanceTo(other Position) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// MoveToward returns the position reached after travelling at most maxStep
// toward target. When the remaining distance is within maxStep the result
// snaps exactly onto the target, so arrival checks can use equality.
func (p Position) MoveToward(target Position, maxStep float64) Position {
	remaining := p.DistanceTo(target)
	if remaining <= maxStep || remaining == 0 {
		return target
	}

	scale := maxStep / remaining
	return Position{
		X: p.X + (target.X-p.X)*scale,
		Y: p.Y + (target.Y-p.Y)*scale,
	}
}

// Equals checks exact coordinate equality
func (p Position) Equals(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Position) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}
