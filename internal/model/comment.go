package model

import "time"

// Comment belongs to one entry. Permission to comment on a private entry is
// checked at creation time only, never retroactively.
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	EntryID   int64     `gorm:"index:idx_comment_entry;not null" json:"entry_id"`
	UserID    int64     `gorm:"not null" json:"user_id"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Comment) TableName() string { return "comments" }
