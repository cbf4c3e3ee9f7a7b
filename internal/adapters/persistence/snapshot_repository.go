package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/andrescamacho/logistics-go/internal/domain/catalog"
	"github.com/andrescamacho/logistics-go/internal/domain/production"
)

// SnapshotRepository captures storage state for post-run audits
type SnapshotRepository interface {
	// SaveSnapshot records the on-hand and incoming figures of every
	// facility at the given tick
	SaveSnapshot(ctx context.Context, runID string, tick int64, facilities []*production.Facility) error

	// ListByRun retrieves all snapshot rows of a run
	ListByRun(ctx context.Context, runID string) ([]StorageSnapshotModel, error)
}

// GormSnapshotRepository is a GORM-based implementation of SnapshotRepository
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewGormSnapshotRepository creates a snapshot repository
func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// SaveSnapshot records the on-hand and incoming figures of every facility
func (r *GormSnapshotRepository) SaveSnapshot(ctx context.Context, runID string, tick int64, facilities []*production.Facility) error {
	var rows []StorageSnapshotModel
	for _, facility := range facilities {
		store := facility.Storage()
		seen := make(map[*catalog.Resource]bool)
		for _, resource := range store.Resources() {
			seen[resource] = true
			rows = append(rows, StorageSnapshotModel{
				RunID:      runID,
				Tick:       tick,
				FacilityID: facility.ID(),
				Resource:   resource.Symbol(),
				OnHand:     store.GetAmount(resource),
				Incoming:   store.GetIncomingAmount(resource),
			})
		}
		// Resources only reserved but never stocked still need a row
		for _, resource := range store.IncomingResources() {
			if seen[resource] {
				continue
			}
			rows = append(rows, StorageSnapshotModel{
				RunID:      runID,
				Tick:       tick,
				FacilityID: facility.ID(),
				Resource:   resource.Symbol(),
				Incoming:   store.GetIncomingAmount(resource),
			})
		}
	}
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

// ListByRun retrieves all snapshot rows of a run
func (r *GormSnapshotRepository) ListByRun(ctx context.Context, runID string) ([]StorageSnapshotModel, error) {
	var rows []StorageSnapshotModel
	err := r.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("tick ASC, facility_id ASC, id ASC").
		Find(&rows).Error
	return rows, err
}
