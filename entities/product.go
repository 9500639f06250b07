package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Product struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string                      `gorm:"not null;uniqueIndex" json:"name"`
	Aliases     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"aliases,omitempty"`
	DefaultUnit *string                     `json:"default_unit,omitempty"`
	Category    *string                     `json:"category,omitempty"`

	Timestamp
}
