package models

import (
	"time"
)

const (
	RoleHomeowner = "homeowner"
	RoleAdmin     = "admin"
)

type User struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Email       string    `gorm:"unique;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"` // Don't expose password hash in JSON
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phone_number"`
	Gender      string    `json:"gender"`
	Race        string    `json:"race"`
	Role        string    `gorm:"not null;default:'homeowner'" json:"role"`
	StaffGroup  string    `gorm:"index" json:"staff_group,omitempty"` // set for staff assignable to reports
	Approved    bool      `gorm:"default:false" json:"approved"`
	Reports     []Report  `json:"reports,omitempty" gorm:"foreignKey:UserID"`
}
