package models

import "time"

// Student represents a learner who is liable for every fee term.
type Student struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AdmissionNo string    `gorm:"size:64;uniqueIndex;not null" json:"admission_no"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Form        string    `gorm:"size:64;not null" json:"form"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
