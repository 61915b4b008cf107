package models

import (
	"gorm.io/gorm"
)

// Service represents an RTI filing service offered on the site
// (new application, first appeal, follow-up and so on)
type Service struct {
	gorm.Model
	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	Slug        string  `gorm:"uniqueIndex;not null" json:"slug"`
	Description string  `json:"description"`
	Fee         float64 `json:"fee"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
}

// State represents an Indian state or union territory a landing page targets
type State struct {
	gorm.Model
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Slug     string `gorm:"uniqueIndex;not null" json:"slug"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}
