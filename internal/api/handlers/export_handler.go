package handlers

import (
	"receipt-ledger/domain"
	"receipt-ledger/internal/api/presenters"
	"receipt-ledger/pkg/export"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ExportHandler interface {
		ExportReceiptsCSV(c *fiber.Ctx) error
		ExportReceiptsJSON(c *fiber.Ctx) error
		ExportReceiptLines(c *fiber.Ctx) error
		ExportReceipt(c *fiber.Ctx) error
		EmailReceipts(c *fiber.Ctx) error
	}

	exportHandler struct {
		exportService export.ExportService
		validator     *validator.Validate
	}
)

func NewExportHandler(exportService export.ExportService, validator *validator.Validate) ExportHandler {
	return &exportHandler{
		exportService: exportService,
		validator:     validator,
	}
}

func sendDocument(c *fiber.Ctx, doc export.Document) error {
	c.Attachment(doc.Filename)
	c.Set(fiber.HeaderContentType, doc.ContentType)
	return c.Status(fiber.StatusOK).Send(doc.Data)
}

func (h *exportHandler) exportReceipts(c *fiber.Ctx, format string) error {
	filter, err := receiptFilter(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExport, err)
	}

	doc, err := h.exportService.Receipts(c.UserContext(), filter, format)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedExport, err)
	}
	return sendDocument(c, doc)
}

func (h *exportHandler) ExportReceiptsCSV(c *fiber.Ctx) error {
	return h.exportReceipts(c, domain.ExportFormatCSV)
}

func (h *exportHandler) ExportReceiptsJSON(c *fiber.Ctx) error {
	return h.exportReceipts(c, domain.ExportFormatJSON)
}

func (h *exportHandler) ExportReceiptLines(c *fiber.Ctx) error {
	doc, err := h.exportService.ReceiptLines(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedExport, err)
	}
	return sendDocument(c, doc)
}

func (h *exportHandler) ExportReceipt(c *fiber.Ctx) error {
	doc, err := h.exportService.Receipt(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedExport, err)
	}
	return sendDocument(c, doc)
}

func (h *exportHandler) EmailReceipts(c *fiber.Ctx) error {
	req := new(domain.ExportEmailRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendExport, err)
	}

	filter, err := receiptFilter(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendExport, err)
	}

	if err := h.exportService.EmailReceipts(c.UserContext(), *req, filter); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedSendExport, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendExport)
}
