package store

import (
	"errors"

	course "educa/models/course"

	"gorm.io/gorm"
)

// CreateModule persists a new module. When no order is given it assigns the
// next order index within the course, computed and written in one transaction.
func CreateModule(db *gorm.DB, m *course.Module) error {
	if m.CourseID == 0 {
		return course.ErrOrderScopeUnset
	}

	if m.OrderIndex == nil {
		orderMu.Lock()
		defer orderMu.Unlock()
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if m.OrderIndex == nil {
			next, err := course.NextOrderIndex(tx, &course.Module{}, "course_id", m.CourseID)
			if err != nil {
				return err
			}
			m.OrderIndex = &next
		}
		return tx.Create(m).Error
	})
}

// GetModule fetches a module by id
func GetModule(db *gorm.DB, id uint) (*course.Module, error) {
	var m course.Module
	if err := db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// ListModulesByCourse returns the course's modules ascending by order index.
// The sort is the display order and is applied unconditionally.
func ListModulesByCourse(db *gorm.DB, courseID uint) ([]course.Module, error) {
	var modules []course.Module
	err := db.Where("course_id = ?", courseID).
		Order("order_index asc").
		Find(&modules).Error
	return modules, err
}

// DeleteModule removes a module together with its contents and their items
func DeleteModule(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var contents []course.Content
		if err := tx.Where("module_id = ?", id).Find(&contents).Error; err != nil {
			return err
		}
		for i := range contents {
			if err := deleteItem(tx, &contents[i]); err != nil {
				return err
			}
		}
		if err := tx.Where("module_id = ?", id).Delete(&course.Content{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course.Module{}, id).Error
	})
}
