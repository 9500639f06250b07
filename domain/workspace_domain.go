package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessOpenWorkspace  = "workspace opened successfully"
	MessageSuccessGetWorkspace   = "workspace retrieved successfully"
	MessageSuccessCloseWorkspace = "workspace closed successfully"
	MessageSuccessEditWorkspace  = "workspace updated successfully"
	MessageSuccessSaveWorkspace  = "receipt saved successfully"

	MessageFailedOpenWorkspace  = "failed to open workspace"
	MessageFailedGetWorkspace   = "failed to retrieve workspace"
	MessageFailedEditWorkspace  = "failed to update workspace"
	MessageFailedSaveWorkspace  = "failed to save receipt"
	MessageFailedCloseWorkspace = "failed to close workspace"

	ErrWorkspaceNotOpen = errors.New("workspace is not open for this receipt")
	ErrRowOutOfRange    = errors.New("row out of range")
	ErrUnknownField     = errors.New("unknown field")
	ErrUnknownKey       = errors.New("unknown key")
)

type (
	// UpdateHeaderRequest carries only the header fields being changed.
	UpdateHeaderRequest struct {
		Vendor      *string    `json:"vendor"`
		VendorID    *string    `json:"vendor_id" validate:"omitempty,uuid"`
		DateTime    *time.Time `json:"date_time"`
		ReceiptNo   *string    `json:"receipt_no"`
		Total       *float64   `json:"total"`
		Paid        *float64   `json:"paid"`
		Change      *float64   `json:"change"`
		BalancePrev *float64   `json:"balance_prev"`
		BalanceCurr *float64   `json:"balance_curr"`
		Notes       *string    `json:"notes"`
	}

	UpdateCellRequest struct {
		Value string `json:"value"`
	}

	KeyRequest struct {
		Key string `json:"key" validate:"required,oneof=enter tab escape"`
	}

	SaveResult struct {
		HeaderSaved   bool           `json:"header_saved"`
		LinesSaved    bool           `json:"lines_saved"`
		Notifications []Notification `json:"notifications"`
	}
)
