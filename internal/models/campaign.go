package models

import (
	"time"

	"gorm.io/gorm"
)

// Campaign is a paid marketing campaign on one platform.
type Campaign struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Status      string    `gorm:"size:20;not null;index" json:"status"`
	Budget      float64   `gorm:"not null" json:"budget"`
	Spent       float64   `gorm:"not null;default:0" json:"spent"`
	StartDate   time.Time `gorm:"not null;index" json:"start_date"`
	EndDate     time.Time `gorm:"not null" json:"end_date"`
	Impressions int64     `gorm:"not null;default:0" json:"impressions"`
	Clicks      int64     `gorm:"not null;default:0" json:"clicks"`
	Conversions int64     `gorm:"not null;default:0" json:"conversions"`
	Revenue     float64   `gorm:"not null;default:0" json:"revenue"`
	Platform    string    `gorm:"size:100;not null;index" json:"platform"`
	CreatedAt   time.Time `gorm:"index;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// BeforeCreate assigns the record identifier.
func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}

// Budget is a monthly allocation for a spending category.
type Budget struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Category  string    `gorm:"size:255;not null" json:"category"`
	Allocated float64   `gorm:"not null" json:"allocated"`
	Spent     float64   `gorm:"not null;default:0" json:"spent"`
	Month     string    `gorm:"size:20;not null;index:idx_budgets_period,priority:2" json:"month"`
	Year      int       `gorm:"not null;index:idx_budgets_period,priority:1" json:"year"`
	CreatedAt time.Time `gorm:"index;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// BeforeCreate assigns the record identifier.
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	assignID(&b.ID)
	return nil
}

// Conversion is one funnel event attributed to a campaign. CampaignID is advisory.
type Conversion struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	CampaignID string    `gorm:"size:64;index" json:"campaign_id"`
	Stage      string    `gorm:"size:50;not null" json:"stage"`
	UserID     string    `gorm:"size:255" json:"user_id"`
	Value      float64   `gorm:"not null;default:0" json:"value"`
	Date       time.Time `gorm:"not null;index" json:"date"`
	CreatedAt  time.Time `gorm:"index;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// BeforeCreate assigns the record identifier.
func (c *Conversion) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}
