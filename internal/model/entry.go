package model

import (
	"strings"
	"time"
)

// Entry is a diary post. Body always holds at least a title line; everything
// after the first newline is free-form content.
type Entry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"index:idx_entry_user_created;not null" json:"user_id"`
	Private   bool      `gorm:"not null;default:false" json:"private"`
	Body      string    `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time `gorm:"index;index:idx_entry_user_created" json:"created_at"`
}

func (Entry) TableName() string { return "entries" }

// SplitBody separates the title line from the remaining content.
// Only the first newline splits; content may be empty.
func SplitBody(body string) (title, content string) {
	if i := strings.Index(body, "\n"); i >= 0 {
		return body[:i], body[i+1:]
	}
	return body, ""
}

// Title returns the first line of the body.
func (e *Entry) Title() string {
	title, _ := SplitBody(e.Body)
	return title
}

// Content returns everything after the first newline of the body.
func (e *Entry) Content() string {
	_, content := SplitBody(e.Body)
	return content
}
