package handlers

import (
	"strconv"

	"receipt-ledger/domain"
	"receipt-ledger/internal/api/presenters"
	"receipt-ledger/pkg/reconcile"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WorkspaceHandler interface {
		OpenWorkspace(c *fiber.Ctx) error
		GetWorkspace(c *fiber.Ctx) error
		CloseWorkspace(c *fiber.Ctx) error
		UpdateHeader(c *fiber.Ctx) error
		AddLine(c *fiber.Ctx) error
		DuplicateLine(c *fiber.Ctx) error
		DeleteLine(c *fiber.Ctx) error
		DeleteSelected(c *fiber.Ctx) error
		UpdateCell(c *fiber.Ctx) error
		EditCell(c *fiber.Ctx) error
		PressKey(c *fiber.Ctx) error
		Blur(c *fiber.Ctx) error
		ToggleSelection(c *fiber.Ctx) error
		Save(c *fiber.Ctx) error
		Verify(c *fiber.Ctx) error
	}

	workspaceHandler struct {
		sessions  *reconcile.Sessions
		validator *validator.Validate
	}
)

func NewWorkspaceHandler(sessions *reconcile.Sessions, validator *validator.Validate) WorkspaceHandler {
	return &workspaceHandler{
		sessions:  sessions,
		validator: validator,
	}
}

func rowParam(c *fiber.Ctx) (int, error) {
	row, err := strconv.Atoi(c.Params("row"))
	if err != nil {
		return 0, domain.ErrRowOutOfRange
	}
	return row, nil
}

// mutate runs fn against the open workspace of the receipt in the path and
// answers with the resulting view.
func (h *workspaceHandler) mutate(c *fiber.Ctx, fn func(g *reconcile.Grid) error) error {
	w, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedEditWorkspace, err)
	}

	if err := w.Apply(fn); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusBadRequest), domain.MessageFailedEditWorkspace, err)
	}

	return presenters.SuccessResponse(c, w.View(), fiber.StatusOK, domain.MessageSuccessEditWorkspace)
}

func (h *workspaceHandler) OpenWorkspace(c *fiber.Ctx) error {
	w, err := h.sessions.Open(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedOpenWorkspace, err)
	}

	return presenters.SuccessResponse(c, w.View(), fiber.StatusOK, domain.MessageSuccessOpenWorkspace)
}

func (h *workspaceHandler) GetWorkspace(c *fiber.Ctx) error {
	w, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedGetWorkspace, err)
	}

	return presenters.SuccessResponse(c, w.View(), fiber.StatusOK, domain.MessageSuccessGetWorkspace)
}

func (h *workspaceHandler) CloseWorkspace(c *fiber.Ctx) error {
	if err := h.sessions.Close(c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedCloseWorkspace, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCloseWorkspace)
}

func (h *workspaceHandler) UpdateHeader(c *fiber.Ctx) error {
	req := new(domain.UpdateHeaderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEditWorkspace, err)
	}

	w, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedEditWorkspace, err)
	}

	if err := w.UpdateHeader(c.UserContext(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedEditWorkspace, err)
	}

	return presenters.SuccessResponse(c, w.View(), fiber.StatusOK, domain.MessageSuccessEditWorkspace)
}

func (h *workspaceHandler) AddLine(c *fiber.Ctx) error {
	return h.mutate(c, func(g *reconcile.Grid) error {
		g.AddLine()
		return nil
	})
}

func (h *workspaceHandler) DuplicateLine(c *fiber.Ctx) error {
	row, err := rowParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEditWorkspace, err)
	}

	return h.mutate(c, func(g *reconcile.Grid) error {
		_, err := g.DuplicateLine(row)
		return err
	})
}

func (h *workspaceHandler) DeleteLine(c *fiber.Ctx) error {
	row, err := rowParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEditWorkspace, err)
	}

	return h.mutate(c, func(g *reconcile.Grid) error {
		return g.DeleteLine(row)
	})
}

func (h *workspaceHandler) DeleteSelected(c *fiber.Ctx) error {
	return h.mutate(c, func(g *reconcile.Grid) error {
		g.DeleteSelected()
		return nil
	})
}

func (h *workspaceHandler) UpdateCell(c *fiber.Ctx) error {
	row, err := rowParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEditWorkspace, err)
	}
	field, err := reconcile.ParseField(c.Params("field"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEditWorkspace, err)
	}

	req := new(domain.UpdateCellRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	return h.mutate(c, func(g *reconcile.Grid) error {
		return g.Update(row, field, req.Value)
	})
}

func (h *workspaceHandler) EditCell(c *fiber.Ctx) error {
	row, err := rowParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEditWorkspace, err)
	}
	field, err := reconcile.ParseField(c.Params("field"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEditWorkspace, err)
	}

	return h.mutate(c, func(g *reconcile.Grid) error {
		return g.Edit(row, field)
	})
}

func (h *workspaceHandler) PressKey(c *fiber.Ctx) error {
	req := new(domain.KeyRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEditWorkspace, err)
	}

	key, err := reconcile.ParseKey(req.Key)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEditWorkspace, err)
	}

	return h.mutate(c, func(g *reconcile.Grid) error {
		g.Key(key)
		return nil
	})
}

func (h *workspaceHandler) Blur(c *fiber.Ctx) error {
	return h.mutate(c, func(g *reconcile.Grid) error {
		g.Blur()
		return nil
	})
}

func (h *workspaceHandler) ToggleSelection(c *fiber.Ctx) error {
	row, err := rowParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEditWorkspace, err)
	}

	return h.mutate(c, func(g *reconcile.Grid) error {
		_, err := g.ToggleSelection(row)
		return err
	})
}

// Save answers 200 even when a write failed; the notifications in the result
// say which one.
func (h *workspaceHandler) Save(c *fiber.Ctx) error {
	w, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedSaveWorkspace, err)
	}

	result := w.Save(c.UserContext())
	message := domain.MessageSuccessSaveWorkspace
	if len(result.Notifications) > 0 {
		message = domain.MessageFailedSaveWorkspace
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"result":    result,
		"workspace": w.View(),
	}, fiber.StatusOK, message)
}

func (h *workspaceHandler) Verify(c *fiber.Ctx) error {
	w, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedVerifyReceipt, err)
	}

	if err := w.MarkVerified(c.UserContext()); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedVerifyReceipt, err)
	}

	return presenters.SuccessResponse(c, w.View(), fiber.StatusOK, domain.MessageSuccessVerifyReceipt)
}
