package domain

import (
	"receipt-ledger/internal/utils/format"
)

type (
	// ConfidenceChip is the review badge shown next to an OCR value.
	ConfidenceChip struct {
		Level   string `json:"level"`
		Percent string `json:"percent"`
	}

	ReceiptDisplay struct {
		Total      string         `json:"total"`
		Date       string         `json:"date"`
		DateShort  string         `json:"date_short"`
		Confidence ConfidenceChip `json:"confidence"`
		VendorRTL  bool           `json:"vendor_rtl"`
	}

	LineDisplay struct {
		Qty                   string          `json:"qty"`
		UnitPrice             string          `json:"unit_price"`
		LineTotal             string          `json:"line_total"`
		DescriptionConfidence *ConfidenceChip `json:"description_confidence,omitempty"`
	}
)

func NewConfidenceChip(value float64) ConfidenceChip {
	return ConfidenceChip{
		Level:   format.ConfidenceLevel(value),
		Percent: format.ConfidencePercent(value),
	}
}

// NewReceiptDisplay renders the header values of r for locale.
func NewReceiptDisplay(r Receipt, locale string) *ReceiptDisplay {
	return &ReceiptDisplay{
		Total:      format.FormatCurrency(r.Total, locale),
		Date:       format.FormatDate(r.DateTime, locale),
		DateShort:  format.FormatDateShort(r.DateTime, locale),
		Confidence: NewConfidenceChip(r.ConfidenceOverall),
		VendorRTL:  format.IsRTL(r.Vendor),
	}
}

// NewLineDisplay renders the amounts of l for locale. The description chip
// is only set when OCR reported a description confidence.
func NewLineDisplay(l ReceiptLine, locale string) LineDisplay {
	d := LineDisplay{
		Qty:       format.FormatNumber(l.Qty, locale),
		UnitPrice: format.FormatCurrency(l.UnitPrice, locale),
		LineTotal: format.FormatCurrency(l.LineTotal, locale),
	}
	if l.Confidences != nil && l.Confidences.Description != nil {
		chip := NewConfidenceChip(*l.Confidences.Description)
		d.DescriptionConfidence = &chip
	}
	return d
}
