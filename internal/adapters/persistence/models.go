package persistence

import "time"

// EventModel represents the simulation_events table. One row per emitted
// domain event; the column set mirrors the closed event taxonomy so
// external tooling can query runs without replaying them.
type EventModel struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement"`
	RunID       string    `gorm:"column:run_id;not null;index"`
	Tick        int64     `gorm:"column:tick;not null"`
	Kind        string    `gorm:"column:kind;not null"`
	Entity      string    `gorm:"column:entity;not null;index"`
	Resource    string    `gorm:"column:resource"`
	Amount      int       `gorm:"column:amount"`
	Requested   int       `gorm:"column:requested"`
	Shortfall   int       `gorm:"column:shortfall"`
	Source      string    `gorm:"column:source"`
	Destination string    `gorm:"column:destination"`
	Recipe      string    `gorm:"column:recipe"`
	Attacker    string    `gorm:"column:attacker"`
	Damage      int       `gorm:"column:damage"`
	Hull        int       `gorm:"column:hull"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
}

func (EventModel) TableName() string {
	return "simulation_events"
}

// StorageSnapshotModel represents the storage_snapshots table: per-facility
// per-resource on-hand and incoming figures captured at a tick, used for
// post-run conservation audits.
type StorageSnapshotModel struct {
	ID         int    `gorm:"column:id;primaryKey;autoIncrement"`
	RunID      string `gorm:"column:run_id;not null;index"`
	Tick       int64  `gorm:"column:tick;not null"`
	FacilityID string `gorm:"column:facility_id;not null"`
	Resource   string `gorm:"column:resource;not null"`
	OnHand     int    `gorm:"column:on_hand;not null"`
	Incoming   int    `gorm:"column:incoming;not null"`
}

func (StorageSnapshotModel) TableName() string {
	return "storage_snapshots"
}
