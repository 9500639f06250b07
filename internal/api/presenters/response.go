package presenters

import (
	"errors"
	"receipt-ledger/domain"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

var notFound = []error{
	domain.ErrReceiptNotFound,
	domain.ErrVendorNotFound,
	domain.ErrProductNotFound,
	domain.ErrWorkspaceNotOpen,
}

var badRequest = []error{
	domain.ErrParseUUID,
	domain.ErrInvalidImageFormat,
	domain.ErrInvalidStatus,
	domain.ErrInvalidDateRange,
	domain.ErrVendorNameEmpty,
	domain.ErrProductNameEmpty,
	domain.ErrRowOutOfRange,
	domain.ErrUnknownField,
	domain.ErrUnknownKey,
	domain.ErrUnsupportedExportFormat,
}

// StatusFromError maps not-found sentinels to 404, input errors to 400 and
// name clashes to 409. Anything else gets fallback.
func StatusFromError(err error, fallback int) int {
	for _, target := range notFound {
		if errors.Is(err, target) {
			return fiber.StatusNotFound
		}
	}
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return fiber.StatusBadRequest
		}
	}
	if errors.Is(err, domain.ErrVendorNameTaken) || errors.Is(err, domain.ErrProductNameTaken) {
		return fiber.StatusConflict
	}
	return fallback
}
