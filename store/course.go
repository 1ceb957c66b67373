package store

import (
	"errors"

	course "educa/models/course"

	"gorm.io/gorm"
)

// SubjectSummary is a catalog row for a subject with its course count
type SubjectSummary struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	TotalCourses int64  `json:"total_courses"`
}

// CourseSummary is a catalog row for a course with its module count
type CourseSummary struct {
	ID           uint   `json:"id"`
	OwnerID      uint   `json:"owner_id"`
	SubjectID    uint   `json:"subject_id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Overview     string `json:"overview"`
	TotalModules int64  `json:"total_modules"`
}

// GetCourse fetches a course by id
func GetCourse(db *gorm.DB, id uint) (*course.Course, error) {
	var crs course.Course
	if err := db.First(&crs, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &crs, nil
}

// GetCourseBySlug fetches a course by its slug
func GetCourseBySlug(db *gorm.DB, slug string) (*course.Course, error) {
	var crs course.Course
	if err := db.Where("slug = ?", slug).First(&crs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &crs, nil
}

// ListCoursesByOwner returns the courses a user manages, newest first
func ListCoursesByOwner(db *gorm.DB, ownerID uint) ([]course.Course, error) {
	var courses []course.Course
	err := db.Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&courses).Error
	return courses, err
}

// ListSubjectsWithCounts returns all subjects with the number of courses each
// one holds
func ListSubjectsWithCounts(db *gorm.DB) ([]SubjectSummary, error) {
	var rows []SubjectSummary
	err := db.Model(&course.Subject{}).
		Select("subjects.id, subjects.title, subjects.slug, COUNT(courses.id) AS total_courses").
		Joins("LEFT JOIN courses ON courses.subject_id = subjects.id AND courses.deleted_at IS NULL").
		Group("subjects.id, subjects.title, subjects.slug").
		Order("subjects.title asc").
		Scan(&rows).Error
	return rows, err
}

// ListCatalog returns catalog courses with module counts, optionally limited
// to one subject
func ListCatalog(db *gorm.DB, subjectID uint) ([]CourseSummary, error) {
	q := db.Model(&course.Course{}).
		Select("courses.id, courses.owner_id, courses.subject_id, courses.title, courses.slug, courses.overview, COUNT(modules.id) AS total_modules").
		Joins("LEFT JOIN modules ON modules.course_id = courses.id AND modules.deleted_at IS NULL").
		Group("courses.id, courses.owner_id, courses.subject_id, courses.title, courses.slug, courses.overview").
		Order("courses.id desc")
	if subjectID != 0 {
		q = q.Where("courses.subject_id = ?", subjectID)
	}

	var rows []CourseSummary
	err := q.Scan(&rows).Error
	return rows, err
}

// DeleteCourse removes a course and cascades through its modules, contents,
// items, and enrollments in one transaction
func DeleteCourse(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var moduleIDs []uint
		if err := tx.Model(&course.Module{}).
			Where("course_id = ?", id).
			Pluck("id", &moduleIDs).Error; err != nil {
			return err
		}

		if len(moduleIDs) > 0 {
			var contents []course.Content
			if err := tx.Where("module_id IN ?", moduleIDs).Find(&contents).Error; err != nil {
				return err
			}
			for i := range contents {
				if err := deleteItem(tx, &contents[i]); err != nil {
					return err
				}
			}
			if err := tx.Where("module_id IN ?", moduleIDs).Delete(&course.Content{}).Error; err != nil {
				return err
			}
			if err := tx.Where("course_id = ?", id).Delete(&course.Module{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("course_id = ?", id).Delete(&course.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course.Course{}, id).Error
	})
}
