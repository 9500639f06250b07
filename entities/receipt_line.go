package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ReceiptLine struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReceiptID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"receipt_id"`
	LineIndex       int            `gorm:"not null" json:"index"`
	DescriptionRaw  string         `gorm:"not null" json:"description_raw"`
	DescriptionNorm *string        `json:"description_norm,omitempty"`
	Qty             float64        `gorm:"not null" json:"qty"`
	UnitPrice       float64        `gorm:"not null" json:"unit_price"`
	LineTotal       float64        `gorm:"not null" json:"line_total"`
	Unit            *string        `json:"unit,omitempty"`
	ProductID       *uuid.UUID     `gorm:"type:uuid" json:"product_id,omitempty"`
	Confidences     datatypes.JSON `gorm:"type:jsonb" json:"confidences,omitempty"`

	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}
