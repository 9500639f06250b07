package domain

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"time"
)

const (
	StatusDraft    = "draft"
	StatusVerified = "verified"

	CurrencyMAD = "MAD"

	// LowConfidenceThreshold splits the "needs review" receipts from the rest.
	LowConfidenceThreshold = 0.85
)

var (
	MessageSuccessCreateReceipt     = "receipt created successfully"
	MessageSuccessUpdateReceipt     = "receipt updated successfully"
	MessageSuccessReplaceLines      = "receipt lines saved successfully"
	MessageSuccessDeleteReceipt     = "receipt deleted successfully"
	MessageSuccessGetReceipts       = "receipts retrieved successfully"
	MessageSuccessGetReceipt        = "receipt retrieved successfully"
	MessageSuccessUploadReceipt     = "receipt uploaded successfully"
	MessageSuccessVerifyReceipt     = "receipt marked as verified"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedCreateReceipt     = "failed to create receipt"
	MessageFailedUpdateReceipt     = "failed to update receipt"
	MessageFailedReplaceLines      = "failed to save receipt lines"
	MessageFailedDeleteReceipt     = "failed to delete receipt"
	MessageFailedGetReceipts       = "failed to retrieve receipts"
	MessageFailedGetReceipt        = "failed to retrieve receipt"
	MessageFailedUploadReceipt     = "failed to upload receipt"
	MessageFailedProcessReceipt    = "failed to process receipt"
	MessageFailedVerifyReceipt     = "failed to mark receipt as verified"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrReceiptNotFound         = errors.New("receipt not found")
	ErrReceiptProcessingFailed = errors.New("receipt processing failed")
	ErrInvalidImageFormat      = errors.New("invalid image format")
	ErrInvalidStatus           = errors.New("status must be draft or verified")
	ErrInvalidDateRange        = errors.New("invalid date range")
)

type (
	// LineConfidences holds per-field OCR certainty. Advisory only.
	LineConfidences struct {
		Qty         *float64 `json:"qty,omitempty" validate:"omitempty,min=0,max=1"`
		UnitPrice   *float64 `json:"unit_price,omitempty" validate:"omitempty,min=0,max=1"`
		LineTotal   *float64 `json:"line_total,omitempty" validate:"omitempty,min=0,max=1"`
		Description *float64 `json:"description,omitempty" validate:"omitempty,min=0,max=1"`
	}

	ReceiptLine struct {
		ID              string           `json:"id"`
		ReceiptID       string           `json:"receipt_id"`
		Index           int              `json:"index"`
		DescriptionRaw  string           `json:"description_raw"`
		DescriptionNorm string           `json:"description_norm,omitempty"`
		Qty             float64          `json:"qty"`
		UnitPrice       float64          `json:"unit_price"`
		LineTotal       float64          `json:"line_total"`
		Unit            string           `json:"unit,omitempty"`
		ProductID       string           `json:"product_id,omitempty"`
		Confidences     *LineConfidences `json:"confidences,omitempty"`
	}

	Receipt struct {
		ID                string          `json:"id"`
		Vendor            string          `json:"vendor"`
		VendorID          string          `json:"vendor_id,omitempty"`
		DateTime          time.Time       `json:"date_time"`
		ReceiptNo         string          `json:"receipt_no,omitempty"`
		Currency          string          `json:"currency"`
		Total             float64         `json:"total"`
		Paid              *float64        `json:"paid,omitempty"`
		Change            *float64        `json:"change,omitempty"`
		BalancePrev       *float64        `json:"balance_prev,omitempty"`
		BalanceCurr       *float64        `json:"balance_curr,omitempty"`
		Status            string          `json:"status"`
		ConfidenceOverall float64         `json:"confidence_overall"`
		ImageURL          string          `json:"image_url,omitempty"`
		OcrRaw            json.RawMessage `json:"ocr_raw,omitempty"`
		Notes             string          `json:"notes,omitempty"`
		CreatedAt         time.Time       `json:"created_at"`
		UpdatedAt         time.Time       `json:"updated_at"`
		Display           *ReceiptDisplay `json:"display,omitempty"`
	}

	ReceiptDetail struct {
		Receipt
		Lines []ReceiptLine `json:"lines"`
	}

	ReceiptLineRequest struct {
		DescriptionRaw  string           `json:"description_raw" validate:"required"`
		DescriptionNorm string           `json:"description_norm"`
		Qty             float64          `json:"qty" validate:"min=0.001"`
		UnitPrice       float64          `json:"unit_price" validate:"min=0"`
		LineTotal       float64          `json:"line_total"`
		Unit            string           `json:"unit"`
		ProductID       string           `json:"product_id" validate:"omitempty,uuid"`
		Confidences     *LineConfidences `json:"confidences" validate:"omitempty"`
	}

	CreateReceiptRequest struct {
		Vendor            string               `json:"vendor" validate:"required"`
		VendorID          string               `json:"vendor_id" validate:"omitempty,uuid"`
		DateTime          time.Time            `json:"date_time"`
		ReceiptNo         string               `json:"receipt_no"`
		Currency          string               `json:"currency" validate:"omitempty,eq=MAD"`
		Total             float64              `json:"total" validate:"min=0"`
		Paid              *float64             `json:"paid" validate:"omitempty,min=0"`
		Change            *float64             `json:"change"`
		BalancePrev       *float64             `json:"balance_prev"`
		BalanceCurr       *float64             `json:"balance_curr"`
		Status            string               `json:"status" validate:"omitempty,oneof=draft verified"`
		ConfidenceOverall float64              `json:"confidence_overall" validate:"min=0,max=1"`
		ImageURL          string               `json:"image_url"`
		OcrRaw            json.RawMessage      `json:"ocr_raw"`
		Notes             string               `json:"notes"`
		Lines             []ReceiptLineRequest `json:"lines" validate:"dive"`
	}

	// UpdateReceiptRequest replaces the editable header fields of a receipt.
	UpdateReceiptRequest struct {
		Vendor      string    `json:"vendor" validate:"required"`
		VendorID    string    `json:"vendor_id" validate:"omitempty,uuid"`
		DateTime    time.Time `json:"date_time" validate:"required"`
		ReceiptNo   string    `json:"receipt_no"`
		Total       float64   `json:"total" validate:"min=0"`
		Paid        *float64  `json:"paid" validate:"omitempty,min=0"`
		Change      *float64  `json:"change"`
		BalancePrev *float64  `json:"balance_prev"`
		BalanceCurr *float64  `json:"balance_curr"`
		Status      string    `json:"status" validate:"required,oneof=draft verified"`
		Notes       string    `json:"notes"`
	}

	UpdateStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=draft verified"`
	}

	ReplaceLinesRequest struct {
		Lines []ReceiptLineRequest `json:"lines" validate:"dive"`
	}

	// ReceiptFilter narrows list and export queries. Zero values match all.
	ReceiptFilter struct {
		Status        string
		LowConfidence bool
		Search        string
		Vendors       []string
		VendorID      string
		DateFrom      *time.Time
		DateTo        *time.Time
		MinTotal      *float64
		MaxTotal      *float64
		SortBy        string
		SortDesc      bool
	}

	DashboardStatsResponse struct {
		TotalReceipts          int64   `json:"total_receipts"`
		VerifiedTotal          float64 `json:"verified_total"`
		VerifiedTotalFormatted string  `json:"verified_total_formatted"`
		ThisMonthCount         int64   `json:"this_month_count"`
		VerifiedPercent        float64 `json:"verified_percent"`
		AvgConfidencePercent   float64 `json:"avg_confidence_percent"`
		AvgConfidenceLevel     string  `json:"avg_confidence_level"`
		Locale                 string  `json:"locale"`
	}

	UploadReceiptRequest struct {
		ReceiptImage *multipart.FileHeader `json:"receipt_image" form:"receipt_image" validate:"required"`
	}

	UploadReceiptResponse struct {
		ScanID    string        `json:"scan_id"`
		ImageURL  string        `json:"image_url"`
		Status    string        `json:"status"`
		Extractor string        `json:"extractor"`
		Receipt   ReceiptDetail `json:"receipt"`
	}
)

// Clone returns a copy that shares no mutable state with l.
func (l ReceiptLine) Clone() ReceiptLine {
	if l.Confidences != nil {
		l.Confidences = &LineConfidences{
			Qty:         copyFloat(l.Confidences.Qty),
			UnitPrice:   copyFloat(l.Confidences.UnitPrice),
			LineTotal:   copyFloat(l.Confidences.LineTotal),
			Description: copyFloat(l.Confidences.Description),
		}
	}
	return l
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Clone returns a copy of d with its own line slice.
func (d ReceiptDetail) Clone() ReceiptDetail {
	out := d
	out.Lines = make([]ReceiptLine, len(d.Lines))
	for i, line := range d.Lines {
		out.Lines[i] = line.Clone()
	}
	return out
}
