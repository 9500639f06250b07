package reconcile

import (
	"fmt"
	"sort"

	"receipt-ledger/domain"
	"receipt-ledger/internal/utils/format"

	"github.com/google/uuid"
)

// Grid is the editable line item table of one receipt. It owns only the
// transient edit state: which cell is being edited and which rows are
// selected. The lines belong to the caller, who receives the complete new
// list through onChange after every mutation and may push a replacement
// back with SetLines.
//
// Grid is not safe for concurrent use; Workspace serializes access.
type Grid struct {
	receiptID string
	lines     []domain.ReceiptLine
	editing   *Cell
	selected  map[int]struct{}
	onChange  func([]domain.ReceiptLine)
	newID     func() string
}

func NewGrid(receiptID string, lines []domain.ReceiptLine, onChange func([]domain.ReceiptLine)) *Grid {
	if onChange == nil {
		onChange = func([]domain.ReceiptLine) {}
	}
	return &Grid{
		receiptID: receiptID,
		lines:     cloneLines(lines),
		selected:  map[int]struct{}{},
		onChange:  onChange,
		newID:     uuid.NewString,
	}
}

func cloneLines(lines []domain.ReceiptLine) []domain.ReceiptLine {
	out := make([]domain.ReceiptLine, len(lines))
	for i, line := range lines {
		out[i] = line.Clone()
	}
	return out
}

func (g *Grid) commit(lines []domain.ReceiptLine) {
	g.lines = lines
	g.onChange(cloneLines(lines))
}

func (g *Grid) checkRow(row int) error {
	if row < 0 || row >= len(g.lines) {
		return fmt.Errorf("%w: %d of %d", domain.ErrRowOutOfRange, row, len(g.lines))
	}
	return nil
}

// Lines returns a copy of the current lines.
func (g *Grid) Lines() []domain.ReceiptLine {
	return cloneLines(g.lines)
}

// SetLines replaces the lines from the owner side. Selected rows and the edit
// cell that no longer exist are dropped. onChange is not called.
func (g *Grid) SetLines(lines []domain.ReceiptLine) {
	g.lines = cloneLines(lines)
	for row := range g.selected {
		if row >= len(g.lines) {
			delete(g.selected, row)
		}
	}
	if g.editing != nil && g.editing.Row >= len(g.lines) {
		g.editing = nil
	}
}

func (g *Grid) Edit(row int, field Field) error {
	if err := g.checkRow(row); err != nil {
		return err
	}
	if field.position() < 0 {
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}
	g.editing = &Cell{Row: row, Field: field}
	return nil
}

// Editing returns the cell in edit mode, or nil.
func (g *Grid) Editing() *Cell {
	if g.editing == nil {
		return nil
	}
	c := *g.editing
	return &c
}

// Blur leaves edit mode. Values were already applied by Update.
func (g *Grid) Blur() {
	g.editing = nil
}

// Key handles a key press in the cell being edited. Enter and Tab move to the
// next field of the cycle, wrapping to the first field of the next row, and
// open nothing past the last row. Escape leaves edit mode. Without an edit
// cell the key is ignored.
func (g *Grid) Key(key Key) *Cell {
	if g.editing == nil {
		return nil
	}
	current := *g.editing
	g.editing = nil

	switch key {
	case KeyEnter, KeyTab:
		next := (current.Field.position() + 1) % len(editCycle)
		row := current.Row
		if next == 0 {
			row++
		}
		if row < len(g.lines) {
			g.editing = &Cell{Row: row, Field: editCycle[next]}
		}
	}
	return g.Editing()
}

// coerce reads a typed number. Unreadable or non-finite input is zero.
func coerce(value string) float64 {
	v, ok := format.ParseNumber(value)
	if !ok || !finite(v) {
		return 0
	}
	return v
}

// Update applies one typed value. Editing qty or unit price recomputes the
// line total, overwriting any manual total. Numeric input that cannot be read
// counts as zero.
func (g *Grid) Update(row int, field Field, value string) error {
	if err := g.checkRow(row); err != nil {
		return err
	}

	lines := cloneLines(g.lines)
	line := lines[row]

	switch field {
	case FieldQty:
		line.Qty = coerce(value)
		line.LineTotal = LineTotal(line.Qty, line.UnitPrice)
	case FieldUnitPrice:
		line.UnitPrice = coerce(value)
		line.LineTotal = LineTotal(line.Qty, line.UnitPrice)
	case FieldLineTotal:
		line.LineTotal = coerce(value)
	case FieldDescription:
		line.DescriptionRaw = value
	case FieldUnit:
		line.Unit = value
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}

	lines[row] = line
	g.commit(lines)
	return nil
}

func (g *Grid) AddLine() domain.ReceiptLine {
	receiptID := g.receiptID
	if len(g.lines) > 0 && g.lines[0].ReceiptID != "" {
		receiptID = g.lines[0].ReceiptID
	}

	line := domain.ReceiptLine{
		ID:        g.newID(),
		ReceiptID: receiptID,
		Index:     len(g.lines),
		Qty:       1,
		UnitPrice: 0,
		LineTotal: 0,
	}
	g.commit(append(cloneLines(g.lines), line))
	return line.Clone()
}

// DuplicateLine appends a copy of row at the end of the grid.
func (g *Grid) DuplicateLine(row int) (domain.ReceiptLine, error) {
	if err := g.checkRow(row); err != nil {
		return domain.ReceiptLine{}, err
	}

	line := g.lines[row].Clone()
	line.ID = g.newID()
	line.Index = len(g.lines)

	g.commit(append(cloneLines(g.lines), line))
	return line.Clone(), nil
}

func (g *Grid) DeleteLine(row int) error {
	if err := g.checkRow(row); err != nil {
		return err
	}
	g.removeRows(map[int]struct{}{row: {}})
	return nil
}

// DeleteSelected removes every selected row in one change.
func (g *Grid) DeleteSelected() int {
	removed := len(g.selected)
	g.removeRows(g.selected)
	return removed
}

func (g *Grid) removeRows(rows map[int]struct{}) {
	kept := make([]domain.ReceiptLine, 0, len(g.lines))
	for i, line := range g.lines {
		if _, drop := rows[i]; drop {
			continue
		}
		line = line.Clone()
		line.Index = len(kept)
		kept = append(kept, line)
	}

	g.selected = map[int]struct{}{}
	if g.editing != nil && g.editing.Row >= len(kept) {
		g.editing = nil
	}
	g.commit(kept)
}

// ToggleSelection adds or removes row from the selection and reports whether
// it is now selected.
func (g *Grid) ToggleSelection(row int) (bool, error) {
	if err := g.checkRow(row); err != nil {
		return false, err
	}
	if _, ok := g.selected[row]; ok {
		delete(g.selected, row)
		return false, nil
	}
	g.selected[row] = struct{}{}
	return true, nil
}

// Selected returns the selected rows in ascending order.
func (g *Grid) Selected() []int {
	rows := make([]int, 0, len(g.selected))
	for row := range g.selected {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	return rows
}

// MathErrors flags, per row, whether qty x unit price disagrees with the
// line total.
func (g *Grid) MathErrors() []bool {
	flags := make([]bool, len(g.lines))
	for i, line := range g.lines {
		flags[i] = LineHasMathError(line)
	}
	return flags
}
