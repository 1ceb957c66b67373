package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Reorder batch scopes
const (
	OrderScopeModule  = "module"
	OrderScopeContent = "content"
)

// OrderChangeLog records an applied reorder batch: who sent it, which child
// class it targeted, and the raw id→order payload
type OrderChangeLog struct {
	gorm.Model
	ActorID uint           `json:"actor_id" gorm:"index;not null"`
	Scope   string         `json:"scope" gorm:"not null"`
	Payload datatypes.JSON `json:"payload"`
}
