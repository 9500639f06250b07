package domain

import "errors"

const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
)

var (
	MessageSuccessSendExport = "export sent successfully"

	MessageFailedExport     = "failed to export receipts"
	MessageFailedSendExport = "failed to send export"

	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)

type (
	ExportEmailRequest struct {
		Email  string `json:"email" validate:"required,email"`
		Format string `json:"format" validate:"required,oneof=csv json"`
	}
)
