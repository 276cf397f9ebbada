package models

import (
	"time"
)

type Stream string

const (
	StreamScience  Stream = "Science"
	StreamCommerce Stream = "Commerce"
	StreamArts     Stream = "Arts"
)

// Streams lists every selectable stream in catalog order.
var Streams = []Stream{StreamScience, StreamCommerce, StreamArts}

func (s Stream) IsValid() bool {
	switch s {
	case StreamScience, StreamCommerce, StreamArts:
		return true
	}
	return false
}

type User struct {
	ID             string  `json:"id" gorm:"primaryKey;size:36"`
	Name           string  `json:"name" gorm:"not null;size:100"`
	Email          string  `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash   string  `json:"-" gorm:"not null;size:255"`
	SelectedStream *Stream `json:"selected_stream" gorm:"size:20"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}
