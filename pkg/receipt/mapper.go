package receipt

import (
	"encoding/json"
	"strings"

	"receipt-ledger/domain"
	"receipt-ledger/entities"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// The store keeps optional values as NULL. Blank strings, zero amounts and
// unparsable ids are written as NULL and read back as zero values.

func nullString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullAmount(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	c := *v
	return &c
}

func nullUUID(s string) *uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &id
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func confidencesJSON(c *domain.LineConfidences) datatypes.JSON {
	if c == nil {
		return nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

func confidencesFromJSON(raw datatypes.JSON) *domain.LineConfidences {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var c domain.LineConfidences
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil
	}
	return &c
}

func rawJSON(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return datatypes.JSON(raw)
}

func toReceipt(e *entities.Receipt) domain.Receipt {
	r := domain.Receipt{
		ID:                e.ID.String(),
		Vendor:            e.Vendor,
		VendorID:          uuidString(e.VendorID),
		DateTime:          e.DateTime,
		ReceiptNo:         deref(e.ReceiptNo),
		Currency:          domain.CurrencyMAD,
		Total:             e.Total,
		Paid:              nullAmount(e.Paid),
		Change:            nullAmount(e.Change),
		BalancePrev:       nullAmount(e.BalancePrev),
		BalanceCurr:       nullAmount(e.BalanceCurr),
		Status:            e.Status,
		ConfidenceOverall: e.ConfidenceOverall,
		ImageURL:          deref(e.ImageURL),
		Notes:             deref(e.Notes),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
	if len(e.OcrRaw) > 0 {
		r.OcrRaw = json.RawMessage(e.OcrRaw)
	}
	return r
}

func toReceiptLine(e *entities.ReceiptLine) domain.ReceiptLine {
	return domain.ReceiptLine{
		ID:              e.ID.String(),
		ReceiptID:       e.ReceiptID.String(),
		Index:           e.LineIndex,
		DescriptionRaw:  e.DescriptionRaw,
		DescriptionNorm: deref(e.DescriptionNorm),
		Qty:             e.Qty,
		UnitPrice:       e.UnitPrice,
		LineTotal:       e.LineTotal,
		Unit:            deref(e.Unit),
		ProductID:       uuidString(e.ProductID),
		Confidences:     confidencesFromJSON(e.Confidences),
	}
}

func toReceiptDetail(e *entities.Receipt) domain.ReceiptDetail {
	lines := make([]domain.ReceiptLine, 0, len(e.Lines))
	for _, l := range e.Lines {
		lines = append(lines, toReceiptLine(l))
	}
	return domain.ReceiptDetail{Receipt: toReceipt(e), Lines: lines}
}

// lineEntity builds the row for line at position index. The line keeps its
// id when it is a valid uuid; lines added in the editor get a fresh one.
func lineEntity(receiptID uuid.UUID, index int, l domain.ReceiptLine) *entities.ReceiptLine {
	id, err := uuid.Parse(l.ID)
	if err != nil {
		id = uuid.New()
	}
	return &entities.ReceiptLine{
		ID:              id,
		ReceiptID:       receiptID,
		LineIndex:       index,
		DescriptionRaw:  l.DescriptionRaw,
		DescriptionNorm: nullString(l.DescriptionNorm),
		Qty:             l.Qty,
		UnitPrice:       l.UnitPrice,
		LineTotal:       l.LineTotal,
		Unit:            nullString(l.Unit),
		ProductID:       nullUUID(l.ProductID),
		Confidences:     confidencesJSON(l.Confidences),
	}
}

func lineFromRequest(req domain.ReceiptLineRequest) domain.ReceiptLine {
	return domain.ReceiptLine{
		DescriptionRaw:  req.DescriptionRaw,
		DescriptionNorm: req.DescriptionNorm,
		Qty:             req.Qty,
		UnitPrice:       req.UnitPrice,
		LineTotal:       req.LineTotal,
		Unit:            req.Unit,
		ProductID:       req.ProductID,
		Confidences:     req.Confidences,
	}
}

// LinesFromRequest converts submitted lines, numbering them by position.
func LinesFromRequest(reqs []domain.ReceiptLineRequest) []domain.ReceiptLine {
	lines := make([]domain.ReceiptLine, len(reqs))
	for i, req := range reqs {
		lines[i] = lineFromRequest(req)
		lines[i].Index = i
	}
	return lines
}

// headerColumns is the full header replacement written on save.
func headerColumns(req domain.UpdateReceiptRequest) map[string]interface{} {
	return map[string]interface{}{
		"vendor":       strings.TrimSpace(req.Vendor),
		"vendor_id":    nullUUID(req.VendorID),
		"date_time":    req.DateTime,
		"receipt_no":   nullString(req.ReceiptNo),
		"total":        req.Total,
		"paid":         nullAmount(req.Paid),
		"change":       nullAmount(req.Change),
		"balance_prev": nullAmount(req.BalancePrev),
		"balance_curr": nullAmount(req.BalanceCurr),
		"status":       req.Status,
		"notes":        nullString(req.Notes),
	}
}

func receiptEntity(req domain.CreateReceiptRequest) *entities.Receipt {
	id := uuid.New()
	status := req.Status
	if status == "" {
		status = domain.StatusDraft
	}

	e := &entities.Receipt{
		ID:                id,
		Vendor:            strings.TrimSpace(req.Vendor),
		VendorID:          nullUUID(req.VendorID),
		DateTime:          req.DateTime,
		ReceiptNo:         nullString(req.ReceiptNo),
		Currency:          domain.CurrencyMAD,
		Total:             req.Total,
		Paid:              nullAmount(req.Paid),
		Change:            nullAmount(req.Change),
		BalancePrev:       nullAmount(req.BalancePrev),
		BalanceCurr:       nullAmount(req.BalanceCurr),
		Status:            status,
		ConfidenceOverall: req.ConfidenceOverall,
		ImageURL:          nullString(req.ImageURL),
		OcrRaw:            rawJSON(req.OcrRaw),
		Notes:             nullString(req.Notes),
	}
	for i, l := range LinesFromRequest(req.Lines) {
		e.Lines = append(e.Lines, lineEntity(id, i, l))
	}
	return e
}
