package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Receipt struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Vendor            string         `gorm:"not null" json:"vendor"`
	VendorID          *uuid.UUID     `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	DateTime          time.Time      `gorm:"type:timestamp with time zone;index" json:"date_time"`
	ReceiptNo         *string        `json:"receipt_no,omitempty"`
	Currency          string         `gorm:"not null;default:MAD" json:"currency"`
	Total             float64        `gorm:"not null" json:"total"`
	Paid              *float64       `json:"paid,omitempty"`
	Change            *float64       `json:"change,omitempty"`
	BalancePrev       *float64       `json:"balance_prev,omitempty"`
	BalanceCurr       *float64       `json:"balance_curr,omitempty"`
	Status            string         `gorm:"not null;default:draft;index" json:"status"` // "draft", "verified"
	ConfidenceOverall float64        `json:"confidence_overall"`
	ImageURL          *string        `json:"image_url,omitempty"`
	OcrRaw            datatypes.JSON `gorm:"type:jsonb" json:"ocr_raw,omitempty"`
	Notes             *string        `gorm:"type:text" json:"notes,omitempty"`

	VendorRef *Vendor        `gorm:"foreignKey:VendorID"`
	Lines     []*ReceiptLine `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE"`
	Timestamp
}
