package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/andrescamacho/logistics-go/internal/domain/events"
	"github.com/andrescamacho/logistics-go/internal/domain/shared"
)

// EventRepository persists simulation events for post-run inspection
type EventRepository interface {
	// AppendAll writes a batch of events under a run id
	AppendAll(ctx context.Context, runID string, evts []events.Event) error

	// ListByRun retrieves all events of a run in chronological order
	// (tick, then insertion order)
	ListByRun(ctx context.Context, runID string) ([]events.Event, error)

	// ListByEntity retrieves one entity's events of a run in chronological
	// order
	ListByEntity(ctx context.Context, runID, entity string) ([]events.Event, error)
}

// GormEventRepository is a GORM-based implementation of EventRepository
type GormEventRepository struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormEventRepository creates an event repository.
// If clock is nil, uses RealClock (production behavior).
func NewGormEventRepository(db *gorm.DB, clock shared.Clock) *GormEventRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormEventRepository{db: db, clock: clock}
}

// AppendAll writes a batch of events under a run id
func (r *GormEventRepository) AppendAll(ctx context.Context, runID string, evts []events.Event) error {
	if len(evts) == 0 {
		return nil
	}

	models := make([]EventModel, len(evts))
	for i, evt := range evts {
		models[i] = eventToModel(runID, evt, r.clock)
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

// ListByRun retrieves all events of a run in chronological order
func (r *GormEventRepository) ListByRun(ctx context.Context, runID string) ([]events.Event, error) {
	var models []EventModel
	err := r.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("tick ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return modelsToEvents(models), nil
}

// ListByEntity retrieves one entity's events of a run in chronological order
func (r *GormEventRepository) ListByEntity(ctx context.Context, runID, entity string) ([]events.Event, error) {
	var models []EventModel
	err := r.db.WithContext(ctx).
		Where("run_id = ? AND entity = ?", runID, entity).
		Order("tick ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return modelsToEvents(models), nil
}

func eventToModel(runID string, evt events.Event, clock shared.Clock) EventModel {
	return EventModel{
		RunID:       runID,
		Tick:        evt.Tick,
		Kind:        string(evt.Kind),
		Entity:      evt.Entity,
		Resource:    evt.Resource,
		Amount:      evt.Amount,
		Requested:   evt.Requested,
		Shortfall:   evt.Shortfall,
		Source:      evt.Source,
		Destination: evt.Destination,
		Recipe:      evt.Recipe,
		Attacker:    evt.Attacker,
		Damage:      evt.Damage,
		Hull:        evt.Hull,
		CreatedAt:   clock.Now(),
	}
}

func modelsToEvents(models []EventModel) []events.Event {
	evts := make([]events.Event, len(models))
	for i, m := range models {
		evts[i] = events.Event{
			Tick:        m.Tick,
			Kind:        events.Kind(m.Kind),
			Entity:      m.Entity,
			Resource:    m.Resource,
			Amount:      m.Amount,
			Requested:   m.Requested,
			Shortfall:   m.Shortfall,
			Source:      m.Source,
			Destination: m.Destination,
			Recipe:      m.Recipe,
			Attacker:    m.Attacker,
			Damage:      m.Damage,
			Hull:        m.Hull,
		}
	}
	return evts
}
