package course

import "gorm.io/gorm"

// Enrollment tracks a user's enrollment in a course
type Enrollment struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Status   string `json:"status" gorm:"default:'ENROLLED'"`

	Course Course `json:"course" gorm:"foreignKey:CourseID"`
}
