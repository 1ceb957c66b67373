package course

import "gorm.io/gorm"

// Module represents a section within a course. OrderIndex is nil until order
// assignment runs; listings sort by it ascending.
type Module struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	OrderIndex  *int   `json:"order" gorm:"column:order_index"`

	Contents []Content `json:"contents,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
}
