package store

import (
	"sync"

	course "educa/models/course"

	"gorm.io/gorm"
)

// orderMu serializes order assignment across concurrent creations. The
// max-sibling-order read and the insert that uses it must not interleave with
// another creation under the same parent, so the lock is held across the whole
// read-compute-write sequence.
var orderMu sync.Mutex

// ReorderModules applies a batch of module-id → order updates for modules
// whose course belongs to ownerID. Ids that do not exist or belong to another
// owner match zero rows and are skipped; the batch itself still succeeds.
func ReorderModules(db *gorm.DB, ownerID uint, orders map[uint]int) error {
	for id, order := range orders {
		ownedCourses := db.Model(&course.Course{}).
			Select("id").
			Where("owner_id = ?", ownerID)

		res := db.Model(&course.Module{}).
			Where("id = ? AND course_id IN (?)", id, ownedCourses).
			UpdateColumn("order_index", order)
		if res.Error != nil {
			return res.Error
		}
	}
	return nil
}

// ReorderContents applies a batch of content-id → order updates for contents
// whose module's course belongs to ownerID, with the same skip semantics as
// ReorderModules.
func ReorderContents(db *gorm.DB, ownerID uint, orders map[uint]int) error {
	for id, order := range orders {
		ownedModules := db.Model(&course.Module{}).
			Select("modules.id").
			Joins("JOIN courses ON courses.id = modules.course_id").
			Where("courses.owner_id = ?", ownerID)

		res := db.Model(&course.Content{}).
			Where("id = ? AND module_id IN (?)", id, ownedModules).
			UpdateColumn("order_index", order)
		if res.Error != nil {
			return res.Error
		}
	}
	return nil
}
