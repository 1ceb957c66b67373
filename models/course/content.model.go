package course

import (
	"errors"

	"gorm.io/gorm"
)

// Allowed content item kinds. A Content row points at exactly one row of the
// matching item table.
const (
	ItemTypeText  = "text"
	ItemTypeVideo = "video"
	ItemTypeImage = "image"
	ItemTypeFile  = "file"
)

// ErrInvalidItemType is returned when a content slot is built with a type tag
// outside the allowed set. It is raised before the row is persisted.
var ErrInvalidItemType = errors.New("invalid content item type")

// ValidItemType reports whether tag is one of the four allowed kinds
func ValidItemType(tag string) bool {
	switch tag {
	case ItemTypeText, ItemTypeVideo, ItemTypeImage, ItemTypeFile:
		return true
	}
	return false
}

// Content is a slot within a module pointing at one concrete item via the
// (ItemType, ItemID) pair
type Content struct {
	gorm.Model
	ModuleID   uint   `json:"module_id" gorm:"index;not null"`
	ItemType   string `json:"item_type" gorm:"not null"`
	ItemID     uint   `json:"item_id" gorm:"not null"`
	OrderIndex *int   `json:"order" gorm:"column:order_index"`
}

// BeforeCreate rejects type tags outside the registry so an invalid pair can
// never reach the database
func (ct *Content) BeforeCreate(tx *gorm.DB) error {
	if !ValidItemType(ct.ItemType) {
		return ErrInvalidItemType
	}
	return nil
}
