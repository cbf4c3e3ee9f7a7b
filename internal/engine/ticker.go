package engine

// Tickable is anything advanced once per tick by the Ticker
type Tickable interface {
	Tick(currentTick int64)
}

// Ticker owns the global tick counter and drives every registered
// component once per tick, in registration order. The order is stable and
// is part of the simulation's determinism contract.
type Ticker struct {
	current   int64
	tickables []Tickable
}

// NewTicker creates a ticker at tick zero
func NewTicker() *Ticker {
	return &Ticker{}
}

// Register appends a component to the tick order
func (t *Ticker) Register(tickable Tickable) {
	t.tickables = append(t.tickables, tickable)
}

// Current returns the last completed tick number
func (t *Ticker) Current() int64 {
	return t.current
}

// Tick advances the counter and runs every registered component once.
// The first tick is numbered 1.
func (t *Ticker) Tick() {
	t.current++
	for _, tickable := range t.tickables {
		tickable.Tick(t.current)
	}
}

// RunTicks advances the simulation by n ticks
func (t *Ticker) RunTicks(n int) {
	for i := 0; i < n; i++ {
		t.Tick()
	}
}
