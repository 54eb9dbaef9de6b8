package models

import "time"

// Counter is one persisted view count. Value keeps the stored decimal
// string verbatim so that corrupt values are normalized on read, never on write.
type Counter struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:counter_key;size:255;not null;uniqueIndex" json:"key" validate:"required,min=1,max=255"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Counter) TableName() string {
	return "counters"
}
