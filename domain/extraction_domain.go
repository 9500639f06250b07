package domain

import (
	"errors"
	"time"
)

const (
	ScanStatusPending   = "Pending"
	ScanStatusProcessed = "Processed"
	ScanStatusFailed    = "Failed"
)

var (
	ErrExtractionFailed   = errors.New("extraction failed")
	ErrExtractorNotConfig = errors.New("extractor is not configured")
	ErrEmptyExtraction    = errors.New("extraction returned no data")
)

type (
	ExtractedLine struct {
		Description string           `json:"description"`
		Qty         float64          `json:"qty"`
		UnitPrice   float64          `json:"unit_price"`
		LineTotal   float64          `json:"line_total"`
		Unit        string           `json:"unit,omitempty"`
		Confidences *LineConfidences `json:"confidences,omitempty"`
	}

	// ExtractedReceipt is the structured draft an extractor produces from
	// one receipt image.
	ExtractedReceipt struct {
		Vendor            string          `json:"vendor"`
		DateTime          time.Time       `json:"date_time"`
		ReceiptNo         string          `json:"receipt_no"`
		Currency          string          `json:"currency"`
		Total             float64         `json:"total"`
		Paid              *float64        `json:"paid,omitempty"`
		Change            *float64        `json:"change,omitempty"`
		ConfidenceOverall float64         `json:"confidence_overall"`
		Lines             []ExtractedLine `json:"lines"`
	}
)
