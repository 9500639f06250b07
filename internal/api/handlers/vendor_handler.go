package handlers

import (
	"receipt-ledger/domain"
	"receipt-ledger/internal/api/presenters"
	"receipt-ledger/pkg/vendors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	VendorHandler interface {
		GetVendors(c *fiber.Ctx) error
		GetVendor(c *fiber.Ctx) error
		CreateVendor(c *fiber.Ctx) error
		UpdateVendor(c *fiber.Ctx) error
		DeleteVendor(c *fiber.Ctx) error
		MatchVendor(c *fiber.Ctx) error
	}

	vendorHandler struct {
		vendorService vendor.VendorService
		validator     *validator.Validate
	}
)

func NewVendorHandler(vendorService vendor.VendorService, validator *validator.Validate) VendorHandler {
	return &vendorHandler{
		vendorService: vendorService,
		validator:     validator,
	}
}

func (h *vendorHandler) GetVendors(c *fiber.Ctx) error {
	vendors, err := h.vendorService.GetVendors(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetVendors, err)
	}

	return presenters.SuccessResponse(c, vendors, fiber.StatusOK, domain.MessageSuccessGetVendors)
}

func (h *vendorHandler) GetVendor(c *fiber.Ctx) error {
	res, err := h.vendorService.GetVendorByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedGetVendors, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetVendors)
}

func (h *vendorHandler) CreateVendor(c *fiber.Ctx) error {
	req := new(domain.VendorRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateVendor, err)
	}

	res, err := h.vendorService.CreateVendor(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedCreateVendor, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateVendor)
}

func (h *vendorHandler) UpdateVendor(c *fiber.Ctx) error {
	req := new(domain.VendorRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateVendor, err)
	}

	res, err := h.vendorService.UpdateVendor(c.UserContext(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedUpdateVendor, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateVendor)
}

func (h *vendorHandler) DeleteVendor(c *fiber.Ctx) error {
	if err := h.vendorService.DeleteVendor(c.UserContext(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedDeleteVendor, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteVendor)
}

// MatchVendor looks up the vendor a free-text name refers to. Data is null
// when nothing matches.
func (h *vendorHandler) MatchVendor(c *fiber.Ctx) error {
	res, err := h.vendorService.MatchVendor(c.UserContext(), c.Query("q"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetVendors, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetVendors)
}
