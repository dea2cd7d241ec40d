package model

import "time"

// CourseCodes is the fixed course catalog. Marks, comments, and faculty
// assignments are only ever keyed by one of these codes.
var CourseCodes = []string{"CS101", "MA102", "EC201", "PH301", "CH401", "EN501"}

// Course is seed-only reference data describing a catalog entry.
type Course struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Code        string    `json:"code" gorm:"uniqueIndex;size:10;not null"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description,omitempty" gorm:"size:1024"`
	Credits     int       `json:"credits" gorm:"default:3"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidCourseCode reports whether code belongs to the catalog.
func ValidCourseCode(code string) bool {
	for _, c := range CourseCodes {
		if c == code {
			return true
		}
	}
	return false
}
