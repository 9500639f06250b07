package handlers

import (
	"errors"

	"receipt-ledger/domain"
	"receipt-ledger/internal/api/presenters"
	"receipt-ledger/pkg/receipt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReceiptHandler interface {
		GetReceipts(c *fiber.Ctx) error
		GetReceipt(c *fiber.Ctx) error
		CreateReceipt(c *fiber.Ctx) error
		UpdateReceipt(c *fiber.Ctx) error
		UpdateStatus(c *fiber.Ctx) error
		ReplaceLines(c *fiber.Ctx) error
		DeleteReceipt(c *fiber.Ctx) error
		GetDashboardStats(c *fiber.Ctx) error
		UploadReceipt(c *fiber.Ctx) error
	}

	receiptHandler struct {
		receiptService receipt.ReceiptService
		validator      *validator.Validate
	}
)

func NewReceiptHandler(receiptService receipt.ReceiptService, validator *validator.Validate) ReceiptHandler {
	return &receiptHandler{
		receiptService: receiptService,
		validator:      validator,
	}
}

func (h *receiptHandler) GetReceipts(c *fiber.Ctx) error {
	filter, err := receiptFilter(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReceipts, err)
	}
	page, limit := pageParams(c)

	items, count, err := h.receiptService.GetReceipts(c.UserContext(), filter, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReceipts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items":      items,
		"pagination": domain.NewPagination(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetReceipts)
}

func (h *receiptHandler) GetReceipt(c *fiber.Ctx) error {
	res, err := h.receiptService.GetReceipt(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedGetReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceipt)
}

func (h *receiptHandler) CreateReceipt(c *fiber.Ctx) error {
	req := new(domain.CreateReceiptRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReceipt, err)
	}

	res, err := h.receiptService.CreateReceipt(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedCreateReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReceipt)
}

func (h *receiptHandler) UpdateReceipt(c *fiber.Ctx) error {
	req := new(domain.UpdateReceiptRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReceipt, err)
	}

	if err := h.receiptService.UpdateReceipt(c.UserContext(), c.Params("id"), *req); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedUpdateReceipt, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateReceipt)
}

func (h *receiptHandler) UpdateStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReceipt, err)
	}

	if err := h.receiptService.UpdateStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedUpdateReceipt, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateReceipt)
}

func (h *receiptHandler) ReplaceLines(c *fiber.Ctx) error {
	req := new(domain.ReplaceLinesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReplaceLines, err)
	}

	id := c.Params("id")
	if err := h.receiptService.ReplaceLines(c.UserContext(), id, receipt.LinesFromRequest(req.Lines)); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedReplaceLines, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReplaceLines)
}

func (h *receiptHandler) DeleteReceipt(c *fiber.Ctx) error {
	if err := h.receiptService.DeleteReceipt(c.UserContext(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedDeleteReceipt, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReceipt)
}

func (h *receiptHandler) GetDashboardStats(c *fiber.Ctx) error {
	res, err := h.receiptService.GetDashboardStats(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDashboardStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboardStats)
}

func (h *receiptHandler) UploadReceipt(c *fiber.Ctx) error {
	req := new(domain.UploadReceiptRequest)

	file, err := c.FormFile("receipt_image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.ReceiptImage = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	res, err := h.receiptService.UploadReceipt(c.UserContext(), *req)
	if err != nil {
		status := presenters.StatusFromError(err, fiber.StatusInternalServerError)
		message := domain.MessageFailedUploadReceipt
		if errors.Is(err, domain.ErrReceiptProcessingFailed) {
			status = fiber.StatusUnprocessableEntity
			message = domain.MessageFailedProcessReceipt
		}
		return presenters.ErrorResponse(c, status, message, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadReceipt)
}
