package reconcile

import (
	"context"
	"sync"

	"receipt-ledger/domain"
	"receipt-ledger/internal/utils/format"
	"receipt-ledger/internal/utils/logger"
)

const (
	OperationUpdateReceipt = "update_receipt"
	OperationUpdateLines   = "update_receipt_lines"
	OperationVerify        = "verify_receipt"
)

// Store is the persistence the workspace loads from and saves to.
//
//go:generate mockgen -destination=mocks/mock_store.go -source=workspace.go Store,VendorResolver
type Store interface {
	GetReceipt(ctx context.Context, id string) (domain.ReceiptDetail, error)
	UpdateReceipt(ctx context.Context, id string, req domain.UpdateReceiptRequest) error
	UpdateStatus(ctx context.Context, id string, status string) error
	ReplaceLines(ctx context.Context, id string, lines []domain.ReceiptLine) error
}

// VendorResolver maps a vendor name picked in the header to its id. An
// unknown name resolves to "".
type VendorResolver interface {
	ResolveVendorID(ctx context.Context, name string) (string, error)
}

type (
	LineView struct {
		domain.ReceiptLine
		MathError bool               `json:"math_error"`
		Display   domain.LineDisplay `json:"display"`
	}

	TotalsDisplay struct {
		LinesTotal string `json:"lines_total"`
		Declared   string `json:"declared"`
		Difference string `json:"difference"`
	}

	// View is a snapshot of the workspace for rendering.
	View struct {
		Receipt       domain.Receipt `json:"receipt"`
		Lines         []LineView     `json:"lines"`
		Editing       *Cell          `json:"editing"`
		Selected      []int          `json:"selected"`
		Totals        TotalCheck     `json:"totals"`
		TotalsDisplay TotalsDisplay  `json:"totals_display"`
	}
)

// Workspace holds the editable draft of one receipt: its header fields and a
// Grid over its lines. Nothing is persisted until Save or MarkVerified.
type Workspace struct {
	mu      sync.Mutex
	store   Store
	vendors VendorResolver
	draft   domain.ReceiptDetail
	grid    *Grid
	locale  string
}

func NewWorkspace(store Store, vendors VendorResolver, detail domain.ReceiptDetail) *Workspace {
	w := &Workspace{
		store:   store,
		vendors: vendors,
		draft:   detail.Clone(),
	}
	w.grid = NewGrid(detail.ID, detail.Lines, func(lines []domain.ReceiptLine) {
		w.draft.Lines = lines
	})
	return w
}

// OpenWorkspace loads the receipt from the store.
func OpenWorkspace(ctx context.Context, store Store, vendors VendorResolver, id string) (*Workspace, error) {
	detail, err := store.GetReceipt(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewWorkspace(store, vendors, detail), nil
}

func (w *Workspace) ID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.ID
}

// UpdateHeader applies the header fields present in req. Picking a vendor by
// name looks its id up; a zero paid or change amount clears the field.
func (w *Workspace) UpdateHeader(ctx context.Context, req domain.UpdateHeaderRequest) error {
	var resolvedVendorID *string
	if req.Vendor != nil && req.VendorID == nil && w.vendors != nil {
		id, err := w.vendors.ResolveVendorID(ctx, *req.Vendor)
		if err != nil {
			return err
		}
		resolvedVendorID = &id
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	r := &w.draft.Receipt
	if req.Vendor != nil {
		r.Vendor = *req.Vendor
	}
	if req.VendorID != nil {
		r.VendorID = *req.VendorID
	} else if resolvedVendorID != nil {
		r.VendorID = *resolvedVendorID
	}
	if req.DateTime != nil {
		r.DateTime = *req.DateTime
	}
	if req.ReceiptNo != nil {
		r.ReceiptNo = *req.ReceiptNo
	}
	if req.Total != nil {
		r.Total = *req.Total
	}
	if req.Paid != nil {
		r.Paid = nonZero(*req.Paid)
	}
	if req.Change != nil {
		r.Change = nonZero(*req.Change)
	}
	if req.BalancePrev != nil {
		r.BalancePrev = req.BalancePrev
	}
	if req.BalanceCurr != nil {
		r.BalanceCurr = req.BalanceCurr
	}
	if req.Notes != nil {
		r.Notes = *req.Notes
	}
	return nil
}

func nonZero(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

// Apply runs fn against the grid under the workspace lock.
func (w *Workspace) Apply(fn func(g *Grid) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return fn(w.grid)
}

func (w *Workspace) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewLocked()
}

// SetLocale picks the locale display values are rendered in. Empty means
// the default locale.
func (w *Workspace) SetLocale(locale string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.locale = locale
}

func (w *Workspace) viewLocked() View {
	flags := w.grid.MathErrors()
	lines := make([]LineView, len(w.draft.Lines))
	for i, line := range w.draft.Lines {
		lines[i] = LineView{
			ReceiptLine: line.Clone(),
			MathError:   flags[i],
			Display:     domain.NewLineDisplay(line, w.locale),
		}
	}

	receipt := w.draft.Receipt
	receipt.Display = domain.NewReceiptDisplay(receipt, w.locale)
	totals := CheckTotals(w.draft.Lines, w.draft.Total)

	return View{
		Receipt:  receipt,
		Lines:    lines,
		Editing:  w.grid.Editing(),
		Selected: w.grid.Selected(),
		Totals:   totals,
		TotalsDisplay: TotalsDisplay{
			LinesTotal: format.FormatCurrency(totals.LinesTotal, w.locale),
			Declared:   format.FormatCurrency(totals.Declared, w.locale),
			Difference: format.FormatCurrency(totals.Difference, w.locale),
		},
	}
}

// Draft returns a copy of the current draft.
func (w *Workspace) Draft() domain.ReceiptDetail {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.Clone()
}

// Save writes the header and then replaces the lines. The two writes are
// independent: a header failure skips the lines, a lines failure leaves the
// saved header in place, and each failure becomes a notification. A total
// mismatch never blocks the save.
func (w *Workspace) Save(ctx context.Context) domain.SaveResult {
	w.mu.Lock()
	draft := w.draft.Clone()
	w.mu.Unlock()

	log := logger.WithFields(logger.FromContext(ctx), map[string]interface{}{
		"receipt_id": draft.ID,
	})
	result := domain.SaveResult{Notifications: []domain.Notification{}}

	header := domain.UpdateReceiptRequest{
		Vendor:      draft.Vendor,
		VendorID:    draft.VendorID,
		DateTime:    draft.DateTime,
		ReceiptNo:   draft.ReceiptNo,
		Total:       draft.Total,
		Paid:        draft.Paid,
		Change:      draft.Change,
		BalancePrev: draft.BalancePrev,
		BalanceCurr: draft.BalanceCurr,
		Status:      draft.Status,
		Notes:       draft.Notes,
	}
	if err := w.store.UpdateReceipt(ctx, draft.ID, header); err != nil {
		log.Error().Err(err).Str("operation", OperationUpdateReceipt).Msg("save failed")
		result.Notifications = append(result.Notifications, domain.Notification{
			Operation: OperationUpdateReceipt,
			Message:   err.Error(),
		})
		return result
	}
	result.HeaderSaved = true

	if err := w.store.ReplaceLines(ctx, draft.ID, draft.Lines); err != nil {
		log.Error().Err(err).Str("operation", OperationUpdateLines).Msg("save failed")
		result.Notifications = append(result.Notifications, domain.Notification{
			Operation: OperationUpdateLines,
			Message:   err.Error(),
		})
		return result
	}
	result.LinesSaved = true

	log.Info().Int("lines", len(draft.Lines)).Msg("receipt saved")
	return result
}

// MarkVerified sets the draft status to verified and persists only that
// field. Other pending edits stay unsaved.
func (w *Workspace) MarkVerified(ctx context.Context) error {
	w.mu.Lock()
	w.draft.Status = domain.StatusVerified
	id := w.draft.ID
	w.mu.Unlock()

	if err := w.store.UpdateStatus(ctx, id, domain.StatusVerified); err != nil {
		log := logger.FromContext(ctx)
		log.Error().Err(err).
			Str("operation", OperationVerify).
			Str("receipt_id", id).
			Msg("verify failed")
		return err
	}
	return nil
}
