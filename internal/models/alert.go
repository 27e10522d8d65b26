package models

import (
	"time"

	"gorm.io/gorm"
)

// Alert is a threshold breach raised against a tracked metric.
// ResolvedAt is only set while Status is Resolved.
type Alert struct {
	ID           string     `gorm:"primaryKey;size:64" json:"id"`
	Type         string     `gorm:"size:100;not null" json:"type"`
	Severity     string     `gorm:"size:20;not null;index" json:"severity"`
	Message      string     `gorm:"type:text;not null" json:"message"`
	Threshold    float64    `gorm:"not null;default:0" json:"threshold"`
	CurrentValue float64    `gorm:"not null;default:0" json:"current_value"`
	Status       string     `gorm:"size:20;not null;index" json:"status"`
	CreatedAt    time.Time  `gorm:"index;default:CURRENT_TIMESTAMP" json:"created_at"`
	ResolvedAt   *time.Time `json:"resolved_at"`
}

// BeforeCreate assigns the record identifier.
func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	return nil
}

// ContentCalendarItem is a piece of content scheduled for publication.
type ContentCalendarItem struct {
	ID            string    `gorm:"primaryKey;size:64" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	ContentType   string    `gorm:"size:100" json:"content_type"`
	Platform      string    `gorm:"size:100;index" json:"platform"`
	ScheduledDate time.Time `gorm:"not null;index" json:"scheduled_date"`
	Status        string    `gorm:"size:20;not null;index" json:"status"`
	CreatorID     string    `gorm:"size:64" json:"creator_id,omitempty"`
	CreatedAt     time.Time `gorm:"index;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName keeps the historical table name.
func (ContentCalendarItem) TableName() string {
	return "content_calendar"
}

// BeforeCreate assigns the record identifier.
func (c *ContentCalendarItem) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}
