package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Creator is a recruited food content creator suggested for a city.
type Creator struct {
	ID              string    `gorm:"primaryKey;size:64" json:"id"`
	City            string    `gorm:"size:255;not null;index" json:"city"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	InstagramHandle string    `gorm:"size:255;not null" json:"instagram_handle"`
	Followers       string    `gorm:"size:50;not null" json:"followers"`
	EngagementRate  string    `gorm:"size:50;not null" json:"engagement_rate"`
	FitReason       string    `gorm:"type:text;not null" json:"fit_reason"`
	Initial         string    `gorm:"size:10;not null" json:"initial"`
	CreatedAt       time.Time `gorm:"index;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// BeforeCreate assigns the record identifier.
func (c *Creator) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}

// Gap is a city-level content coverage gap.
type Gap struct {
	ID                string                      `gorm:"primaryKey;size:64" json:"id"`
	City              string                      `gorm:"size:255;not null;index" json:"city"`
	State             string                      `gorm:"size:10;not null" json:"state"`
	Coverage          int                         `gorm:"not null" json:"coverage"`
	Priority          string                      `gorm:"size:20;not null;index" json:"priority"`
	MissingCategories datatypes.JSONSlice[string] `gorm:"not null" json:"missing_categories"`
	CampaignActive    bool                        `gorm:"not null;default:false" json:"campaign_active"`
	CreatedAt         time.Time                   `gorm:"index;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// BeforeCreate assigns the record identifier.
func (g *Gap) BeforeCreate(tx *gorm.DB) error {
	assignID(&g.ID)
	return nil
}

// Badge is an achievement badge attached to generated viral content.
type Badge struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

// ViralContent is a generated social caption for a food explorer.
type ViralContent struct {
	ID        string                      `gorm:"primaryKey;size:64" json:"id"`
	UserName  string                      `gorm:"size:255;not null" json:"user_name"`
	Cities    datatypes.JSONSlice[string] `gorm:"not null" json:"cities"`
	Cuisine   string                      `gorm:"size:100;not null;index" json:"cuisine"`
	Caption   string                      `gorm:"type:text;not null" json:"caption"`
	Badges    datatypes.JSONSlice[Badge]  `gorm:"not null" json:"badges"`
	CreatedAt time.Time                   `gorm:"index;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName keeps the historical table name.
func (ViralContent) TableName() string {
	return "viral_content"
}

// BeforeCreate assigns the record identifier.
func (v *ViralContent) BeforeCreate(tx *gorm.DB) error {
	assignID(&v.ID)
	return nil
}
