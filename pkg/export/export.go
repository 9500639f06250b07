// Package export renders receipts and their lines as CSV and JSON documents.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"receipt-ledger/domain"
)

const (
	ContentTypeCSV  = "text/csv"
	ContentTypeJSON = "application/json"
)

type (
	// Cell is one named value of a Row.
	Cell struct {
		Key   string
		Value interface{}
	}

	// Row keeps its cells in column order.
	Row []Cell

	Document struct {
		Filename    string
		ContentType string
		Data        []byte
	}
)

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case *float64:
		if t == nil {
			return ""
		}
		return strconv.FormatFloat(*t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case time.Time:
		return t.UTC().Format("2006-01-02T15:04:05.000Z")
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// CSV writes a header from the first row's keys, then one line per row with
// every field double-quoted. Rows are joined by "\n" without a trailing
// newline. No rows gives an empty document.
func CSV(rows []Row) []byte {
	if len(rows) == 0 {
		return []byte{}
	}

	headers := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		headers[i] = cell.Key
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, row := range rows {
		values := make(map[string]interface{}, len(row))
		for _, cell := range row {
			values[cell.Key] = cell.Value
		}
		fields := make([]string, len(headers))
		for i, h := range headers {
			fields[i] = quote(stringify(values[h]))
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return []byte(strings.Join(lines, "\n"))
}

// JSON pretty-prints v with two-space indentation.
func JSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// ReceiptDocuments shapes list rows for the JSON export. Lines are not loaded
// for a list, so each receipt carries an empty lines array.
func ReceiptDocuments(receipts []domain.Receipt) []domain.ReceiptDetail {
	docs := make([]domain.ReceiptDetail, len(receipts))
	for i, r := range receipts {
		r.Display = nil
		docs[i] = domain.ReceiptDetail{Receipt: r, Lines: []domain.ReceiptLine{}}
	}
	return docs
}

func blankIfZero(v *float64) interface{} {
	if v == nil || *v == 0 {
		return ""
	}
	return *v
}

func ReceiptRows(receipts []domain.Receipt) []Row {
	rows := make([]Row, len(receipts))
	for i, r := range receipts {
		rows[i] = Row{
			{"id", r.ID},
			{"vendor", r.Vendor},
			{"date", r.DateTime},
			{"receiptNo", r.ReceiptNo},
			{"total", r.Total},
			{"paid", blankIfZero(r.Paid)},
			{"change", blankIfZero(r.Change)},
			{"status", r.Status},
			{"confidence", r.ConfidenceOverall},
		}
	}
	return rows
}

func LineRows(lines []domain.ReceiptLine) []Row {
	rows := make([]Row, len(lines))
	for i, l := range lines {
		rows[i] = Row{
			{"index", l.Index},
			{"description", l.DescriptionRaw},
			{"qty", l.Qty},
			{"unitPrice", l.UnitPrice},
			{"lineTotal", l.LineTotal},
			{"unit", l.Unit},
		}
	}
	return rows
}

func day(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}

func ReceiptsFilename(format string, now time.Time) string {
	return fmt.Sprintf("receipts_%s.%s", day(now), format)
}

func LinesFilename(receiptID string, now time.Time) string {
	if receiptID == "" {
		return fmt.Sprintf("receipt_lines_%s.csv", day(now))
	}
	return fmt.Sprintf("receipt_%s_lines.csv", receiptID)
}

func ReceiptFilename(receiptID string) string {
	return fmt.Sprintf("receipt_%s.json", receiptID)
}
