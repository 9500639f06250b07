package reconcile_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"receipt-ledger/domain"
	"receipt-ledger/internal/utils/logger"
	"receipt-ledger/pkg/reconcile"
	mock_reconcile "receipt-ledger/pkg/reconcile/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var receiptTime = time.Date(2025, 10, 20, 14, 30, 0, 0, time.UTC)

func metroReceipt() domain.ReceiptDetail {
	return domain.ReceiptDetail{
		Receipt: domain.Receipt{
			ID:                "r1",
			Vendor:            "Metro Cash & Carry",
			VendorID:          "v1",
			DateTime:          receiptTime,
			ReceiptNo:         "R20251020-001",
			Currency:          domain.CurrencyMAD,
			Total:             216,
			Paid:              ptr(220),
			Change:            ptr(4),
			Status:            domain.StatusDraft,
			ConfidenceOverall: 0.95,
		},
		Lines: []domain.ReceiptLine{
			{ID: "l0", ReceiptID: "r1", Index: 0, DescriptionRaw: "Frites Julienne 2.5kg", Qty: 4, UnitPrice: 49, LineTotal: 196},
			{ID: "l1", ReceiptID: "r1", Index: 1, DescriptionRaw: "Hot-Dog", Qty: 2, UnitPrice: 10, LineTotal: 20},
		},
	}
}

func strPtr(s string) *string { return &s }

func TestCheckTotals(t *testing.T) {
	lines := metroReceipt().Lines

	ok := reconcile.CheckTotals(lines, 216)
	assert.False(t, ok.Mismatch)
	assert.Equal(t, 216.0, ok.LinesTotal)
	assert.Equal(t, 0.0, ok.Difference)

	off := reconcile.CheckTotals(lines, 220)
	assert.True(t, off.Mismatch)
	assert.Equal(t, 4.0, off.Difference)
	assert.Equal(t, 220.0, off.Declared)
}

func TestCheckTotals_Boundary(t *testing.T) {
	lines := []domain.ReceiptLine{{LineTotal: 100}}

	assert.False(t, reconcile.CheckTotals(lines, 100.5).Mismatch)
	assert.False(t, reconcile.CheckTotals(lines, 99.5).Mismatch)
	assert.True(t, reconcile.CheckTotals(lines, 100.5001).Mismatch)
	assert.False(t, reconcile.CheckTotals(nil, 0).Mismatch)
	assert.True(t, reconcile.CheckTotals(nil, 0.51).Mismatch)
}

func TestCheckTotals_SumBeyondFloatRange(t *testing.T) {
	lines := []domain.ReceiptLine{{LineTotal: 1e308}, {LineTotal: 1e308}, {LineTotal: math.Inf(1)}}

	check := reconcile.CheckTotals(lines, 100)
	assert.True(t, check.Mismatch)
	assert.Equal(t, math.MaxFloat64, check.LinesTotal)
	assert.Equal(t, math.MaxFloat64, check.Difference)

	_, err := json.Marshal(check)
	assert.NoError(t, err)

	nan := reconcile.CheckTotals([]domain.ReceiptLine{{LineTotal: 10}}, math.NaN())
	assert.Equal(t, 0.0, nan.Declared)
	assert.True(t, nan.Mismatch)
}

func TestWorkspace_ViewAfterOverflowingEdit(t *testing.T) {
	w := reconcile.NewWorkspace(nil, nil, metroReceipt())

	require.NoError(t, w.Apply(func(g *reconcile.Grid) error {
		if err := g.Update(0, reconcile.FieldQty, "1e200"); err != nil {
			return err
		}
		return g.Update(0, reconcile.FieldUnitPrice, "1e200")
	}))

	var view reconcile.View
	require.NotPanics(t, func() { view = w.View() })
	assert.True(t, view.Lines[0].MathError)
	assert.Equal(t, 20.0, view.Totals.LinesTotal)

	_, err := json.Marshal(view)
	assert.NoError(t, err)
}

func TestLineHasMathError(t *testing.T) {
	tests := []struct {
		name string
		line domain.ReceiptLine
		want bool
	}{
		{name: "exact", line: domain.ReceiptLine{Qty: 2, UnitPrice: 25, LineTotal: 50}},
		{name: "difference of exactly 0.01", line: domain.ReceiptLine{Qty: 2, UnitPrice: 25, LineTotal: 50.01}},
		{name: "difference of 0.01 below", line: domain.ReceiptLine{Qty: 1, UnitPrice: 1, LineTotal: 0.99}},
		{name: "difference of 0.0101", line: domain.ReceiptLine{Qty: 2, UnitPrice: 25, LineTotal: 50.0101}, want: true},
		{name: "difference of 0.0101 below", line: domain.ReceiptLine{Qty: 1, UnitPrice: 1, LineTotal: 0.9899}, want: true},
		{name: "manual total", line: domain.ReceiptLine{Qty: 10, UnitPrice: 36.96, LineTotal: 369.6}},
		{name: "zero line", line: domain.ReceiptLine{Qty: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconcile.LineHasMathError(tt.line))
		})
	}
}

func TestWorkspace_View(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := reconcile.NewWorkspace(mock_reconcile.NewMockStore(ctrl), nil, metroReceipt())

	view := w.View()
	assert.False(t, view.Totals.Mismatch)
	assert.Len(t, view.Lines, 2)
	assert.False(t, view.Lines[0].MathError)
	assert.Nil(t, view.Editing)
	assert.Empty(t, view.Selected)

	require.NoError(t, w.UpdateHeader(context.Background(), domain.UpdateHeaderRequest{Total: ptr(220)}))
	view = w.View()
	assert.True(t, view.Totals.Mismatch)
	assert.Equal(t, 4.0, view.Totals.Difference)

	require.NoError(t, w.Apply(func(g *reconcile.Grid) error {
		return g.Update(1, reconcile.FieldLineTotal, "24")
	}))
	view = w.View()
	assert.True(t, view.Lines[1].MathError)
	assert.False(t, view.Totals.Mismatch)
	assert.Equal(t, 220.0, view.Totals.LinesTotal)
}

func TestWorkspace_ViewDisplay(t *testing.T) {
	detail := metroReceipt()
	detail.Lines[0].Confidences = &domain.LineConfidences{Description: ptr(0.8)}

	w := reconcile.NewWorkspace(nil, nil, detail)
	w.SetLocale("en")

	view := w.View()
	require.NotNil(t, view.Receipt.Display)
	assert.Equal(t, "216.00 MAD", view.Receipt.Display.Total)
	assert.Equal(t, "10/20/2025", view.Receipt.Display.DateShort)
	assert.Equal(t, domain.ConfidenceChip{Level: "high", Percent: "95%"}, view.Receipt.Display.Confidence)
	assert.False(t, view.Receipt.Display.VendorRTL)

	first := view.Lines[0].Display
	assert.Equal(t, "4.00", first.Qty)
	assert.Equal(t, "49.00 MAD", first.UnitPrice)
	assert.Equal(t, "196.00 MAD", first.LineTotal)
	require.NotNil(t, first.DescriptionConfidence)
	assert.Equal(t, domain.ConfidenceChip{Level: "medium", Percent: "80%"}, *first.DescriptionConfidence)
	assert.Nil(t, view.Lines[1].Display.DescriptionConfidence)

	assert.Equal(t, reconcile.TotalsDisplay{
		LinesTotal: "216.00 MAD",
		Declared:   "216.00 MAD",
		Difference: "0.00 MAD",
	}, view.TotalsDisplay)

	// display values follow the draft, not the loaded receipt
	require.NoError(t, w.UpdateHeader(context.Background(), domain.UpdateHeaderRequest{
		Vendor: strPtr("مرجان"),
		Total:  ptr(220),
	}))
	view = w.View()
	assert.True(t, view.Receipt.Display.VendorRTL)
	assert.Equal(t, "220.00 MAD", view.Receipt.Display.Total)
	assert.Equal(t, "4.00 MAD", view.TotalsDisplay.Difference)
}

func TestSessions_Locale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_reconcile.NewMockStore(ctrl)
	store.EXPECT().GetReceipt(gomock.Any(), "r1").Return(metroReceipt(), nil).Times(2)
	ctx := context.Background()

	w, err := reconcile.NewSessions(store, nil).Open(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "216,00 MAD", w.View().TotalsDisplay.LinesTotal)

	w, err = reconcile.NewSessions(store, nil).WithLocale("en").Open(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "216.00 MAD", w.View().TotalsDisplay.LinesTotal)
}

func TestWorkspace_GridChangesFlowIntoDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := reconcile.NewWorkspace(mock_reconcile.NewMockStore(ctrl), nil, metroReceipt())

	require.NoError(t, w.Apply(func(g *reconcile.Grid) error {
		g.AddLine()
		return g.DeleteLine(0)
	}))

	draft := w.Draft()
	require.Len(t, draft.Lines, 2)
	assert.Equal(t, "l1", draft.Lines[0].ID)
	assert.Equal(t, 0, draft.Lines[0].Index)
	assert.Equal(t, 1, draft.Lines[1].Index)
	assert.Equal(t, "r1", draft.Lines[1].ReceiptID)
}

func TestWorkspace_UpdateHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendors := mock_reconcile.NewMockVendorResolver(ctrl)
	w := reconcile.NewWorkspace(mock_reconcile.NewMockStore(ctrl), vendors, metroReceipt())

	vendors.EXPECT().ResolveVendorID(gomock.Any(), "Marjane").Return("v2", nil)
	require.NoError(t, w.UpdateHeader(context.Background(), domain.UpdateHeaderRequest{
		Vendor:    strPtr("Marjane"),
		ReceiptNo: strPtr("MAR-1"),
		Paid:      ptr(0),
		Notes:     strPtr("checked"),
	}))

	r := w.Draft().Receipt
	assert.Equal(t, "Marjane", r.Vendor)
	assert.Equal(t, "v2", r.VendorID)
	assert.Equal(t, "MAR-1", r.ReceiptNo)
	assert.Nil(t, r.Paid)
	assert.Equal(t, 4.0, *r.Change)
	assert.Equal(t, "checked", r.Notes)

	vendors.EXPECT().ResolveVendorID(gomock.Any(), "Corner shop").Return("", nil)
	require.NoError(t, w.UpdateHeader(context.Background(), domain.UpdateHeaderRequest{Vendor: strPtr("Corner shop")}))
	assert.Equal(t, "", w.Draft().VendorID)

	// an explicit id skips the lookup
	require.NoError(t, w.UpdateHeader(context.Background(), domain.UpdateHeaderRequest{
		Vendor:   strPtr("Metro"),
		VendorID: strPtr("v1"),
	}))
	assert.Equal(t, "v1", w.Draft().VendorID)
}

func TestWorkspace_Save(t *testing.T) {
	storeErr := errors.New("connection reset")

	tests := []struct {
		name          string
		headerErr     error
		linesErr      error
		callLines     bool
		wantHeader    bool
		wantLines     bool
		wantOperation string
	}{
		{
			name:       "both writes succeed",
			callLines:  true,
			wantHeader: true,
			wantLines:  true,
		},
		{
			name:          "header failure skips lines",
			headerErr:     storeErr,
			wantOperation: reconcile.OperationUpdateReceipt,
		},
		{
			name:          "lines failure keeps saved header",
			linesErr:      storeErr,
			callLines:     true,
			wantHeader:    true,
			wantOperation: reconcile.OperationUpdateLines,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock_reconcile.NewMockStore(ctrl)
			w := reconcile.NewWorkspace(store, nil, metroReceipt())

			require.NoError(t, w.UpdateHeader(context.Background(), domain.UpdateHeaderRequest{Total: ptr(220)}))
			require.NoError(t, w.Apply(func(g *reconcile.Grid) error {
				return g.Update(0, reconcile.FieldQty, "5")
			}))

			wantHeader := domain.UpdateReceiptRequest{
				Vendor:    "Metro Cash & Carry",
				VendorID:  "v1",
				DateTime:  receiptTime,
				ReceiptNo: "R20251020-001",
				Total:     220,
				Paid:      ptr(220),
				Change:    ptr(4),
				Status:    domain.StatusDraft,
			}
			calls := []*gomock.Call{
				store.EXPECT().UpdateReceipt(gomock.Any(), "r1", wantHeader).Return(tt.headerErr),
			}
			if tt.callLines {
				calls = append(calls, store.EXPECT().ReplaceLines(gomock.Any(), "r1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, lines []domain.ReceiptLine) error {
						require.Len(t, lines, 2)
						assert.Equal(t, 5.0, lines[0].Qty)
						assert.Equal(t, 245.0, lines[0].LineTotal)
						return tt.linesErr
					}))
			}
			gomock.InOrder(calls...)

			res := w.Save(context.Background())

			assert.Equal(t, tt.wantHeader, res.HeaderSaved)
			assert.Equal(t, tt.wantLines, res.LinesSaved)
			if tt.wantOperation == "" {
				assert.Empty(t, res.Notifications)
				return
			}
			require.Len(t, res.Notifications, 1)
			assert.Equal(t, tt.wantOperation, res.Notifications[0].Operation)
			assert.Equal(t, "connection reset", res.Notifications[0].Message)
		})
	}
}

func TestWorkspace_MarkVerified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_reconcile.NewMockStore(ctrl)
	w := reconcile.NewWorkspace(store, nil, metroReceipt())

	// pending header and line edits must not be written by verify
	require.NoError(t, w.UpdateHeader(context.Background(), domain.UpdateHeaderRequest{Total: ptr(999)}))
	require.NoError(t, w.Apply(func(g *reconcile.Grid) error { g.AddLine(); return nil }))

	store.EXPECT().UpdateStatus(gomock.Any(), "r1", domain.StatusVerified).Return(nil)

	require.NoError(t, w.MarkVerified(context.Background()))
	draft := w.Draft()
	assert.Equal(t, domain.StatusVerified, draft.Status)
	assert.Equal(t, 999.0, draft.Total)
	assert.Len(t, draft.Lines, 3)
}

func TestWorkspace_MarkVerifiedFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_reconcile.NewMockStore(ctrl)
	w := reconcile.NewWorkspace(store, nil, metroReceipt())

	store.EXPECT().UpdateStatus(gomock.Any(), "r1", domain.StatusVerified).Return(errors.New("timeout"))

	var buf bytes.Buffer
	ctx := logger.WithContext(context.Background(), logger.NewWithWriter(&buf))

	assert.EqualError(t, w.MarkVerified(ctx), "timeout")
	assert.Equal(t, domain.StatusVerified, w.Draft().Status)
	assert.Contains(t, buf.String(), `"operation":"verify_receipt"`)
	assert.Contains(t, buf.String(), `"receipt_id":"r1"`)
}

func TestSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_reconcile.NewMockStore(ctrl)
	sessions := reconcile.NewSessions(store, nil)
	ctx := context.Background()

	_, err := sessions.Get("r1")
	assert.ErrorIs(t, err, domain.ErrWorkspaceNotOpen)

	store.EXPECT().GetReceipt(gomock.Any(), "missing").Return(domain.ReceiptDetail{}, domain.ErrReceiptNotFound)
	_, err = sessions.Open(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrReceiptNotFound)
	assert.Equal(t, 0, sessions.Len())

	store.EXPECT().GetReceipt(gomock.Any(), "r1").Return(metroReceipt(), nil).Times(2)
	opened, err := sessions.Open(ctx, "r1")
	require.NoError(t, err)
	require.NoError(t, opened.Apply(func(g *reconcile.Grid) error { return g.DeleteLine(0) }))

	got, err := sessions.Get("r1")
	require.NoError(t, err)
	assert.Same(t, opened, got)
	assert.Equal(t, "r1", got.ID())

	// reopening reloads from the store and drops unsaved edits
	reopened, err := sessions.Open(ctx, "r1")
	require.NoError(t, err)
	assert.Len(t, reopened.Draft().Lines, 2)
	assert.Equal(t, 1, sessions.Len())

	require.NoError(t, sessions.Close("r1"))
	assert.ErrorIs(t, sessions.Close("r1"), domain.ErrWorkspaceNotOpen)
	_, err = sessions.Get("r1")
	assert.ErrorIs(t, err, domain.ErrWorkspaceNotOpen)
}
