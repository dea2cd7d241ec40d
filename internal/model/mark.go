package model

import (
	"time"

	"markbook/internal/grade"
)

// Mark records a student's score for a single course. The (student_email,
// course_code) pair is unique; writes go through an atomic upsert and the
// grade column is always recomputed from the marks value, never taken from
// the caller.
type Mark struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	StudentEmail string      `json:"studentEmail" gorm:"size:255;not null;uniqueIndex:idx_marks_student_course"`
	CourseCode   string      `json:"courseCode" gorm:"size:10;not null;uniqueIndex:idx_marks_student_course"`
	Marks        float64     `json:"marks" gorm:"not null"`
	Grade        grade.Grade `json:"grade" gorm:"size:2;not null"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
