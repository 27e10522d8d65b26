package models

import (
	"time"

	"gorm.io/gorm"
)

// EngagementMetric captures interaction counts for one piece of content on one day.
type EngagementMetric struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id"`
	ContentID      string    `gorm:"size:255" json:"content_id"`
	ContentType    string    `gorm:"size:100" json:"content_type"`
	Platform       string    `gorm:"size:100;index" json:"platform"`
	Views          int64     `gorm:"not null;default:0" json:"views"`
	Likes          int64     `gorm:"not null;default:0" json:"likes"`
	Shares         int64     `gorm:"not null;default:0" json:"shares"`
	Comments       int64     `gorm:"not null;default:0" json:"comments"`
	EngagementRate float64   `gorm:"not null;default:0" json:"engagement_rate"`
	Date           time.Time `gorm:"not null;index" json:"date"`
	CreatedAt      time.Time `gorm:"index;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// BeforeCreate assigns the record identifier.
func (e *EngagementMetric) BeforeCreate(tx *gorm.DB) error {
	assignID(&e.ID)
	return nil
}

// SocialMediaPost captures reach and interaction counts for a published post.
type SocialMediaPost struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id"`
	Platform       string    `gorm:"size:100;not null;index" json:"platform"`
	PostID         string    `gorm:"size:255" json:"post_id"`
	ContentType    string    `gorm:"size:100" json:"content_type"`
	Views          int64     `gorm:"not null;default:0" json:"views"`
	Likes          int64     `gorm:"not null;default:0" json:"likes"`
	Shares         int64     `gorm:"not null;default:0" json:"shares"`
	Comments       int64     `gorm:"not null;default:0" json:"comments"`
	Reach          int64     `gorm:"not null;default:0" json:"reach"`
	Impressions    int64     `gorm:"not null;default:0" json:"impressions"`
	EngagementRate float64   `gorm:"not null;default:0" json:"engagement_rate"`
	Date           time.Time `gorm:"not null;index" json:"date"`
	CreatedAt      time.Time `gorm:"index;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName keeps the historical table name.
func (SocialMediaPost) TableName() string {
	return "social_media"
}

// BeforeCreate assigns the record identifier.
func (s *SocialMediaPost) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}

// Competitor is one observed metric value for a competing brand.
type Competitor struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id"`
	CompetitorName string    `gorm:"size:255;not null;index" json:"competitor_name"`
	Metric         string    `gorm:"size:100;not null;index" json:"metric"`
	Value          float64   `gorm:"not null;default:0" json:"value"`
	Date           time.Time `gorm:"not null;index" json:"date"`
	CreatedAt      time.Time `gorm:"index;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// BeforeCreate assigns the record identifier.
func (c *Competitor) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}
