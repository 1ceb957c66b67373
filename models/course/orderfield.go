package course

import (
	"errors"

	"gorm.io/gorm"
)

// ErrOrderScopeUnset is returned when order assignment runs before the parent
// reference is populated
var ErrOrderScopeUnset = errors.New("order scope is not set")

// NextOrderIndex computes the order value for a new child row scoped to its
// parent: one past the highest order among existing siblings, or 0 when the
// sibling group is empty. Must run inside the same transaction that inserts
// the row so the computed value is part of that write.
func NextOrderIndex(tx *gorm.DB, model interface{}, parentCol string, parentID uint) (int, error) {
	if parentID == 0 {
		return 0, ErrOrderScopeUnset
	}

	var next int
	err := tx.Model(model).
		Where(parentCol+" = ?", parentID).
		Select("COALESCE(MAX(order_index) + 1, 0)").
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}
