package model

import "time"

// User is the identity record of record. A derived copy lives in the
// identity cache under "user:<id>" after a successful login.
type User struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountName string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"account_name"`
	NickName    string    `gorm:"type:varchar(64);not null" json:"nick_name"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Passhash    string    `gorm:"type:varchar(128);not null" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
