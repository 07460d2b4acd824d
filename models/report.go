package models

import (
	"time"

	"github.com/lib/pq"
)

const (
	StatusUnresolved = "unresolved"
	StatusInProgress = "in progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// Report is one homeowner-submitted complaint. ReportID is generated by the
// submission pipeline before the row exists: attachment object keys embed it,
// so uploads happen under the final identifier.
type Report struct {
	ReportID    string         `gorm:"primaryKey" json:"report_id"`
	UserID      string         `gorm:"not null;index" json:"user_id"`
	Category    string         `gorm:"not null" json:"category"`
	Description string         `gorm:"not null" json:"description"`
	SubmittedAt string         `json:"submitted_at"` // "YYYY-MM-DD HH:MM"
	Latitude    string         `gorm:"not null" json:"latitude"`
	Longitude   string         `gorm:"not null" json:"longitude"`
	Status      string         `gorm:"not null;default:'unresolved'" json:"status"`
	ImageURLs   pq.StringArray `gorm:"type:text[]" json:"image_urls"`
	Comments    pq.StringArray `gorm:"type:text[]" json:"comments"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
