package reconcile

import (
	"fmt"

	"receipt-ledger/domain"
)

// Field names an editable grid column.
type Field string

const (
	FieldDescription Field = "description"
	FieldQty         Field = "qty"
	FieldUnitPrice   Field = "unit_price"
	FieldLineTotal   Field = "line_total"
	FieldUnit        Field = "unit"
)

// editCycle is the order Enter and Tab walk through within a row.
var editCycle = []Field{FieldDescription, FieldQty, FieldUnitPrice, FieldLineTotal, FieldUnit}

func ParseField(s string) (Field, error) {
	for _, f := range editCycle {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownField, s)
}

func (f Field) position() int {
	for i, c := range editCycle {
		if c == f {
			return i
		}
	}
	return -1
}

type Key string

const (
	KeyEnter  Key = "enter"
	KeyTab    Key = "tab"
	KeyEscape Key = "escape"
)

func ParseKey(s string) (Key, error) {
	switch Key(s) {
	case KeyEnter, KeyTab, KeyEscape:
		return Key(s), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownKey, s)
}

// Cell identifies the one grid cell in edit mode.
type Cell struct {
	Row   int   `json:"row"`
	Field Field `json:"field"`
}
