package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Vendor struct {
	ID      uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name    string                      `gorm:"not null;uniqueIndex" json:"name"`
	Aliases datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"aliases,omitempty"`

	Receipts []*Receipt `gorm:"foreignKey:VendorID"`
	Timestamp
}
