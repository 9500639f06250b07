package reconcile_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"receipt-ledger/domain"
	"receipt-ledger/pkg/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func sampleLines() []domain.ReceiptLine {
	return []domain.ReceiptLine{
		{ID: "l0", ReceiptID: "r1", Index: 0, DescriptionRaw: "Frites Julienne 2.5kg", Qty: 4, UnitPrice: 49, LineTotal: 196, Unit: "sac"},
		{ID: "l1", ReceiptID: "r1", Index: 1, DescriptionRaw: "Hot-Dog", Qty: 2, UnitPrice: 10, LineTotal: 20},
		{ID: "l2", ReceiptID: "r1", Index: 2, DescriptionRaw: "Thon", Qty: 3, UnitPrice: 120, LineTotal: 360,
			Confidences: &domain.LineConfidences{Qty: ptr(0.9), Description: ptr(0.8)}},
		{ID: "l3", ReceiptID: "r1", Index: 3, DescriptionRaw: "Huile 5L", Qty: 2, UnitPrice: 85, LineTotal: 170},
	}
}

type recorder struct {
	calls [][]domain.ReceiptLine
}

func (r *recorder) onChange(lines []domain.ReceiptLine) {
	r.calls = append(r.calls, lines)
}

func (r *recorder) last() []domain.ReceiptLine {
	return r.calls[len(r.calls)-1]
}

func assertContiguous(t *testing.T, lines []domain.ReceiptLine) {
	t.Helper()
	for i, line := range lines {
		assert.Equal(t, i, line.Index, "line %s", line.ID)
	}
}

func TestGrid_Update(t *testing.T) {
	tests := []struct {
		name      string
		field     reconcile.Field
		value     string
		wantQty   float64
		wantPrice float64
		wantTotal float64
		wantDesc  string
		wantUnit  string
		wantFlag  bool
	}{
		{
			name: "unit price recomputes total", field: reconcile.FieldUnitPrice, value: "30",
			wantQty: 2, wantPrice: 30, wantTotal: 60, wantDesc: "Frites",
		},
		{
			name: "qty recomputes total", field: reconcile.FieldQty, value: "3",
			wantQty: 3, wantPrice: 25, wantTotal: 75, wantDesc: "Frites",
		},
		{
			name: "line total stored without touching qty or price", field: reconcile.FieldLineTotal, value: "55",
			wantQty: 2, wantPrice: 25, wantTotal: 55, wantDesc: "Frites", wantFlag: true,
		},
		{
			name: "invalid qty becomes zero", field: reconcile.FieldQty, value: "abc",
			wantQty: 0, wantPrice: 25, wantTotal: 0, wantDesc: "Frites",
		},
		{
			name: "invalid line total becomes zero", field: reconcile.FieldLineTotal, value: "",
			wantQty: 2, wantPrice: 25, wantTotal: 0, wantDesc: "Frites", wantFlag: true,
		},
		{
			name: "arabic digits with decimal comma", field: reconcile.FieldUnitPrice, value: "٢,٥",
			wantQty: 2, wantPrice: 2.5, wantTotal: 5, wantDesc: "Frites",
		},
		{
			name: "description stored verbatim", field: reconcile.FieldDescription, value: " 12 Frites ",
			wantQty: 2, wantPrice: 25, wantTotal: 50, wantDesc: " 12 Frites ",
		},
		{
			name: "unit stored verbatim", field: reconcile.FieldUnit, value: "kg",
			wantQty: 2, wantPrice: 25, wantTotal: 50, wantDesc: "Frites", wantUnit: "kg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			g := reconcile.NewGrid("r1", []domain.ReceiptLine{
				{ID: "l0", ReceiptID: "r1", DescriptionRaw: "Frites", Qty: 2, UnitPrice: 25, LineTotal: 50},
			}, rec.onChange)

			require.NoError(t, g.Update(0, tt.field, tt.value))
			require.Len(t, rec.calls, 1)

			line := rec.last()[0]
			assert.InDelta(t, tt.wantQty, line.Qty, 1e-9)
			assert.InDelta(t, tt.wantPrice, line.UnitPrice, 1e-9)
			assert.InDelta(t, tt.wantTotal, line.LineTotal, 1e-9)
			assert.Equal(t, tt.wantDesc, line.DescriptionRaw)
			assert.Equal(t, tt.wantUnit, line.Unit)
			assert.Equal(t, tt.wantFlag, g.MathErrors()[0])
		})
	}
}

func TestGrid_UpdateOverwritesManualTotal(t *testing.T) {
	g := reconcile.NewGrid("r1", []domain.ReceiptLine{
		{ID: "l0", Qty: 2, UnitPrice: 25, LineTotal: 50},
	}, nil)

	require.NoError(t, g.Update(0, reconcile.FieldLineTotal, "99"))
	assert.True(t, g.MathErrors()[0])

	require.NoError(t, g.Update(0, reconcile.FieldQty, "2"))
	assert.InDelta(t, 50.0, g.Lines()[0].LineTotal, 1e-9)
	assert.False(t, g.MathErrors()[0])
}

func TestGrid_UpdateRecomputesWithinTolerance(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := reconcile.NewGrid("r1", []domain.ReceiptLine{{ID: "l0", Qty: 1}}, nil)

	for i := 0; i < 500; i++ {
		qty := math.Round(rng.Float64()*100000) / 1000
		price := math.Round(rng.Float64()*100000) / 100

		require.NoError(t, g.Update(0, reconcile.FieldQty, strconv.FormatFloat(qty, 'f', -1, 64)))
		require.NoError(t, g.Update(0, reconcile.FieldUnitPrice, strconv.FormatFloat(price, 'f', -1, 64)))

		line := g.Lines()[0]
		assert.LessOrEqual(t, math.Abs(line.Qty*line.UnitPrice-line.LineTotal), 0.01)
		assert.False(t, reconcile.LineHasMathError(line), "qty=%v price=%v total=%v", qty, price, line.LineTotal)
	}
}

func TestGrid_UpdateDecimalProduct(t *testing.T) {
	g := reconcile.NewGrid("r1", []domain.ReceiptLine{{ID: "l0", Qty: 3, UnitPrice: 1}}, nil)

	require.NoError(t, g.Update(0, reconcile.FieldUnitPrice, "0.1"))
	assert.Equal(t, 0.3, g.Lines()[0].LineTotal)
}

func TestGrid_UpdateOverflowingProduct(t *testing.T) {
	g := reconcile.NewGrid("r1", []domain.ReceiptLine{{ID: "l0", Qty: 1, UnitPrice: 1, LineTotal: 1}}, nil)

	require.NoError(t, g.Update(0, reconcile.FieldQty, "1e200"))
	require.NoError(t, g.Update(0, reconcile.FieldUnitPrice, "1e200"))

	line := g.Lines()[0]
	assert.Equal(t, 1e200, line.Qty)
	assert.Equal(t, 1e200, line.UnitPrice)
	assert.Equal(t, 0.0, line.LineTotal)
	assert.NotPanics(t, func() {
		assert.Equal(t, []bool{true}, g.MathErrors())
	})

	require.NoError(t, g.Update(0, reconcile.FieldLineTotal, "1e400"))
	assert.Equal(t, 0.0, g.Lines()[0].LineTotal)
}

func TestLineHasMathError_NonFinite(t *testing.T) {
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		assert.NotPanics(t, func() {
			assert.True(t, reconcile.LineHasMathError(domain.ReceiptLine{Qty: 1, UnitPrice: 1, LineTotal: v}))
			assert.True(t, reconcile.LineHasMathError(domain.ReceiptLine{Qty: v, UnitPrice: 1, LineTotal: 1}))
		})
		assert.Equal(t, 0.0, reconcile.LineTotal(v, 2))
	}
}

func TestGrid_RowOutOfRange(t *testing.T) {
	rec := &recorder{}
	g := reconcile.NewGrid("r1", sampleLines(), rec.onChange)

	assert.ErrorIs(t, g.Update(4, reconcile.FieldQty, "1"), domain.ErrRowOutOfRange)
	assert.ErrorIs(t, g.Update(-1, reconcile.FieldQty, "1"), domain.ErrRowOutOfRange)
	assert.ErrorIs(t, g.DeleteLine(9), domain.ErrRowOutOfRange)
	assert.ErrorIs(t, g.Edit(4, reconcile.FieldQty), domain.ErrRowOutOfRange)
	_, err := g.DuplicateLine(4)
	assert.ErrorIs(t, err, domain.ErrRowOutOfRange)
	_, err = g.ToggleSelection(4)
	assert.ErrorIs(t, err, domain.ErrRowOutOfRange)

	assert.Empty(t, rec.calls)
}

func TestGrid_AddLineOnEmptyGrid(t *testing.T) {
	rec := &recorder{}
	g := reconcile.NewGrid("r1", nil, rec.onChange)

	added := g.AddLine()

	require.Len(t, rec.calls, 1)
	lines := rec.last()
	require.Len(t, lines, 1)
	assert.Equal(t, 0, lines[0].Index)
	assert.Equal(t, 1.0, lines[0].Qty)
	assert.Equal(t, 0.0, lines[0].UnitPrice)
	assert.Equal(t, 0.0, lines[0].LineTotal)
	assert.Equal(t, "", lines[0].DescriptionRaw)
	assert.Equal(t, "r1", lines[0].ReceiptID)
	assert.NotEmpty(t, lines[0].ID)
	assert.Equal(t, added.ID, lines[0].ID)
}

func TestGrid_AddLineAppends(t *testing.T) {
	g := reconcile.NewGrid("r1", sampleLines(), nil)

	first := g.AddLine()
	second := g.AddLine()

	assert.Equal(t, 4, first.Index)
	assert.Equal(t, 5, second.Index)
	assert.NotEqual(t, first.ID, second.ID)
	assertContiguous(t, g.Lines())
}

func TestGrid_DuplicateLine(t *testing.T) {
	rec := &recorder{}
	g := reconcile.NewGrid("r1", sampleLines(), rec.onChange)

	dup, err := g.DuplicateLine(2)
	require.NoError(t, err)

	lines := rec.last()
	require.Len(t, lines, 5)
	assert.Equal(t, dup, lines[4])

	original := lines[2]
	assert.NotEqual(t, original.ID, dup.ID)
	assert.Equal(t, 4, dup.Index)

	dup.ID, dup.Index = original.ID, original.Index
	assert.Equal(t, original, dup)

	// the copy does not share confidences with the source row
	*lines[4].Confidences.Qty = 0.1
	assert.Equal(t, 0.9, *g.Lines()[2].Confidences.Qty)
}

func TestGrid_DeleteLine(t *testing.T) {
	rec := &recorder{}
	g := reconcile.NewGrid("r1", sampleLines(), rec.onChange)

	_, err := g.ToggleSelection(3)
	require.NoError(t, err)

	require.NoError(t, g.DeleteLine(1))

	lines := rec.last()
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"l0", "l2", "l3"}, ids(lines))
	assertContiguous(t, lines)
	assert.Empty(t, g.Selected())
}

func TestGrid_DeleteSelected(t *testing.T) {
	rec := &recorder{}
	g := reconcile.NewGrid("r1", sampleLines(), rec.onChange)

	for _, row := range []int{2, 0} {
		_, err := g.ToggleSelection(row)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{0, 2}, g.Selected())

	removed := g.DeleteSelected()

	assert.Equal(t, 2, removed)
	require.Len(t, rec.calls, 1)
	lines := rec.last()
	assert.Equal(t, []string{"l1", "l3"}, ids(lines))
	assertContiguous(t, lines)
	assert.Empty(t, g.Selected())
}

func TestGrid_ToggleSelection(t *testing.T) {
	g := reconcile.NewGrid("r1", sampleLines(), nil)

	on, err := g.ToggleSelection(1)
	require.NoError(t, err)
	assert.True(t, on)

	off, err := g.ToggleSelection(1)
	require.NoError(t, err)
	assert.False(t, off)
	assert.Empty(t, g.Selected())
}

func TestGrid_KeyNavigation(t *testing.T) {
	tests := []struct {
		name  string
		start reconcile.Cell
		key   reconcile.Key
		want  *reconcile.Cell
	}{
		{
			name:  "enter moves to next field",
			start: reconcile.Cell{Row: 0, Field: reconcile.FieldDescription},
			key:   reconcile.KeyEnter,
			want:  &reconcile.Cell{Row: 0, Field: reconcile.FieldQty},
		},
		{
			name:  "tab moves to next field",
			start: reconcile.Cell{Row: 1, Field: reconcile.FieldQty},
			key:   reconcile.KeyTab,
			want:  &reconcile.Cell{Row: 1, Field: reconcile.FieldUnitPrice},
		},
		{
			name:  "last field wraps to next row",
			start: reconcile.Cell{Row: 0, Field: reconcile.FieldUnit},
			key:   reconcile.KeyEnter,
			want:  &reconcile.Cell{Row: 1, Field: reconcile.FieldDescription},
		},
		{
			name:  "last field of last row opens nothing",
			start: reconcile.Cell{Row: 3, Field: reconcile.FieldUnit},
			key:   reconcile.KeyEnter,
			want:  nil,
		},
		{
			name:  "line total of last row still advances within row",
			start: reconcile.Cell{Row: 3, Field: reconcile.FieldLineTotal},
			key:   reconcile.KeyTab,
			want:  &reconcile.Cell{Row: 3, Field: reconcile.FieldUnit},
		},
		{
			name:  "escape leaves edit mode",
			start: reconcile.Cell{Row: 2, Field: reconcile.FieldQty},
			key:   reconcile.KeyEscape,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			g := reconcile.NewGrid("r1", sampleLines(), rec.onChange)
			require.NoError(t, g.Edit(tt.start.Row, tt.start.Field))

			got := g.Key(tt.key)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, g.Editing())
			assert.Empty(t, rec.calls)
		})
	}
}

func TestGrid_KeyWithoutEditCell(t *testing.T) {
	g := reconcile.NewGrid("r1", sampleLines(), nil)
	assert.Nil(t, g.Key(reconcile.KeyEnter))
	assert.Nil(t, g.Editing())
}

func TestGrid_BlurKeepsValues(t *testing.T) {
	g := reconcile.NewGrid("r1", sampleLines(), nil)
	require.NoError(t, g.Edit(1, reconcile.FieldQty))
	require.NoError(t, g.Update(1, reconcile.FieldQty, "5"))

	g.Blur()

	assert.Nil(t, g.Editing())
	assert.Equal(t, 5.0, g.Lines()[1].Qty)
	assert.Equal(t, 50.0, g.Lines()[1].LineTotal)
}

func TestGrid_EditUnknownField(t *testing.T) {
	g := reconcile.NewGrid("r1", sampleLines(), nil)
	assert.ErrorIs(t, g.Edit(0, reconcile.Field("notes")), domain.ErrUnknownField)
	assert.ErrorIs(t, g.Update(0, reconcile.Field("notes"), "x"), domain.ErrUnknownField)
}

func TestGrid_OnChangeReceivesCopies(t *testing.T) {
	rec := &recorder{}
	g := reconcile.NewGrid("r1", sampleLines(), rec.onChange)

	require.NoError(t, g.Update(0, reconcile.FieldQty, "1"))
	rec.last()[0].DescriptionRaw = "mutated by owner"

	assert.Equal(t, "Frites Julienne 2.5kg", g.Lines()[0].DescriptionRaw)
}

func TestGrid_SetLinesDropsStaleState(t *testing.T) {
	g := reconcile.NewGrid("r1", sampleLines(), nil)
	_, err := g.ToggleSelection(3)
	require.NoError(t, err)
	_, err = g.ToggleSelection(0)
	require.NoError(t, err)
	require.NoError(t, g.Edit(3, reconcile.FieldQty))

	g.SetLines(sampleLines()[:2])

	assert.Equal(t, []int{0}, g.Selected())
	assert.Nil(t, g.Editing())
	assert.Len(t, g.Lines(), 2)
}

func TestParseFieldAndKey(t *testing.T) {
	f, err := reconcile.ParseField("unit_price")
	require.NoError(t, err)
	assert.Equal(t, reconcile.FieldUnitPrice, f)

	_, err = reconcile.ParseField("price")
	assert.ErrorIs(t, err, domain.ErrUnknownField)

	k, err := reconcile.ParseKey("tab")
	require.NoError(t, err)
	assert.Equal(t, reconcile.KeyTab, k)

	_, err = reconcile.ParseKey("space")
	assert.ErrorIs(t, err, domain.ErrUnknownKey)
}

func ids(lines []domain.ReceiptLine) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.ID
	}
	return out
}
