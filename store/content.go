package store

import (
	"errors"

	course "educa/models/course"

	"gorm.io/gorm"
)

// CreateContentWithItem persists an item and the content slot pointing at it
// in a single transaction. The slot's order index is assigned like module
// order: next within the module unless given explicitly.
func CreateContentWithItem(db *gorm.DB, moduleID uint, item course.Item, orderIndex *int) (*course.Content, error) {
	if moduleID == 0 {
		return nil, course.ErrOrderScopeUnset
	}

	if orderIndex == nil {
		orderMu.Lock()
		defer orderMu.Unlock()
	}

	ct := &course.Content{
		ModuleID:   moduleID,
		ItemType:   item.ItemKind(),
		OrderIndex: orderIndex,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		ct.ItemID = item.GetID()

		if ct.OrderIndex == nil {
			next, err := course.NextOrderIndex(tx, &course.Content{}, "module_id", moduleID)
			if err != nil {
				return err
			}
			ct.OrderIndex = &next
		}
		return tx.Create(ct).Error
	})
	if err != nil {
		return nil, err
	}
	return ct, nil
}

// GetContent fetches a content slot by id
func GetContent(db *gorm.DB, id uint) (*course.Content, error) {
	var ct course.Content
	if err := db.First(&ct, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ct, nil
}

// ListContentsByModule returns the module's contents ascending by order index
func ListContentsByModule(db *gorm.DB, moduleID uint) ([]course.Content, error) {
	var contents []course.Content
	err := db.Where("module_id = ?", moduleID).
		Order("order_index asc").
		Find(&contents).Error
	return contents, err
}

// LoadContentItem resolves the (type tag, item id) pair on a content slot to
// the concrete item record
func LoadContentItem(db *gorm.DB, ct *course.Content) (course.Item, error) {
	item, err := course.NewItem(ct.ItemType)
	if err != nil {
		return nil, err
	}
	if err := db.First(item, ct.ItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// DeleteContent removes a content slot and the item it references so no item
// is left dangling
func DeleteContent(db *gorm.DB, ct *course.Content) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := deleteItem(tx, ct); err != nil {
			return err
		}
		return tx.Delete(&course.Content{}, ct.ID).Error
	})
}

func deleteItem(tx *gorm.DB, ct *course.Content) error {
	item, err := course.NewItem(ct.ItemType)
	if err != nil {
		return err
	}
	return tx.Delete(item, ct.ItemID).Error
}
