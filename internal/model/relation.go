package model

import "time"

// Relation materializes an undirected friendship as one directed row.
// A friendship is always two rows, (one,another) and (another,one),
// inserted atomically.
// idx_relation_pair = (one, another)
type Relation struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	One       int64     `gorm:"index:idx_relation_one;index:idx_relation_pair,unique;not null" json:"one"`
	Another   int64     `gorm:"index:idx_relation_pair,unique;not null" json:"another"`
	CreatedAt time.Time `json:"created_at"`
}

func (Relation) TableName() string { return "relations" }
