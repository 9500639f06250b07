package entities

import (
	"github.com/google/uuid"
)

type ReceiptScan struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReceiptID  *uuid.UUID `gorm:"type:uuid;index" json:"receipt_id,omitempty"`
	ImageURL   string     `json:"image_url"`
	Extractor  string     `json:"extractor"`
	Status     string     `json:"status"` // "Pending", "Processed", "Failed"
	OcrResults string     `json:"ocr_results,omitempty" gorm:"type:text"`
	Error      string     `json:"error,omitempty" gorm:"type:text"`

	Receipt *Receipt `gorm:"foreignKey:ReceiptID;constraint:OnDelete:SET NULL"`
	Timestamp
}
