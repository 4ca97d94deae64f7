package model

import "time"

// Footprint logs one profile visit: OwnerID visited UserID's profile.
// Append-only; self-visits are never recorded.
type Footprint struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"index:idx_footprint_user;not null" json:"user_id"`
	OwnerID   int64     `gorm:"not null" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Footprint) TableName() string { return "footprints" }

// GroupedFootprint is one row of the grouped recent-visits view: the latest
// visit per (subject, visitor, calendar date).
type GroupedFootprint struct {
	UserID  int64     `json:"user_id"`
	OwnerID int64     `json:"owner_id"`
	Date    string    `json:"date"`
	Updated time.Time `json:"updated"`
}
