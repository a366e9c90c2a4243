package entity

import "time"

// ProgressEntry - one serialized progress record per storage key
type ProgressEntry struct {
	Key       string    `gorm:"primaryKey;column:storage_key;size:191" json:"key"` // desert-foxes-progress-<username>
	Value     string    `gorm:"type:text;not null" json:"value"`                   // full record as JSON
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ProgressEntry) TableName() string {
	return "progress_entries"
}

// KnownUser - nickname that has logged in at least once on this installation
type KnownUser struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"size:100;not null" json:"username"`      // spelling as first entered
	Lookup    string    `gorm:"uniqueIndex;size:100;not null" json:"-"` // lower-cased username
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (KnownUser) TableName() string {
	return "known_users"
}
