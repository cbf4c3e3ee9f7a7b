package events

import "sort"

// Log is an append-only event log owned by a single entity (one facility or
// one transporter). Entries keep their append order; consumers sort and
// merge across entities themselves.
type Log struct {
	entity  string
	entries []Event
}

// NewLog creates an empty log for the given entity id
func NewLog(entity string) *Log {
	return &Log{entity: entity}
}

// Entity returns the owning entity id
func (l *Log) Entity() string {
	return l.entity
}

// Append records an event, stamping the owning entity
func (l *Log) Append(event Event) {
	event.Entity = l.entity
	l.entries = append(l.entries, event)
}

// Entries returns all recorded events in append order.
// Callers must not mutate the returned slice.
func (l *Log) Entries() []Event {
	return l.entries
}

// Len returns the number of recorded events
func (l *Log) Len() int {
	return len(l.entries)
}

// MergeChronological flattens several entity logs into one slice ordered by
// tick. Events within the same tick keep the order of the given logs, then
// their per-log append order (stable sort).
func MergeChronological(logs ...*Log) []Event {
	var merged []Event
	for _, log := range logs {
		merged = append(merged, log.entries...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Tick < merged[j].Tick
	})
	return merged
}
