package model

import "time"

// Comment is faculty feedback for a student in a course. At most one comment
// exists per (student_email, course_code) pair; upserting for the same pair
// replaces the text and the author.
type Comment struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	StudentEmail string    `json:"studentEmail" gorm:"size:255;not null;uniqueIndex:idx_comments_student_course"`
	CourseCode   string    `json:"courseCode" gorm:"size:10;not null;uniqueIndex:idx_comments_student_course"`
	FacultyEmail string    `json:"facultyEmail" gorm:"size:255;not null;index"`
	Comment      string    `json:"comment" gorm:"size:1000;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
