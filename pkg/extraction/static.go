package extraction

import (
	"context"
	"fmt"
	"time"

	"receipt-ledger/domain"
)

// StaticExtractor ignores the image and returns a fixed sample receipt. It
// stands in until a real OCR backend is configured.
type StaticExtractor struct {
	now func() time.Time
}

func NewStaticExtractor() *StaticExtractor {
	return &StaticExtractor{now: time.Now}
}

func (e *StaticExtractor) Name() string {
	return NameStatic
}

func conf(v float64) *float64 {
	return &v
}

func (e *StaticExtractor) Extract(_ context.Context, _ Image) (domain.ExtractedReceipt, error) {
	now := e.now()
	return sanitize(domain.ExtractedReceipt{
		Vendor:            "Sample Vendor",
		DateTime:          now,
		ReceiptNo:         fmt.Sprintf("R%d", now.UnixMilli()),
		Currency:          domain.CurrencyMAD,
		Total:             125.5,
		Paid:              conf(130),
		Change:            conf(4.5),
		ConfidenceOverall: 0.85,
		Lines: []domain.ExtractedLine{
			{
				Description: "Sample Item 1",
				Qty:         2,
				UnitPrice:   25,
				LineTotal:   50,
				Unit:        "pcs",
				Confidences: &domain.LineConfidences{
					Qty:         conf(0.9),
					UnitPrice:   conf(0.85),
					LineTotal:   conf(0.88),
					Description: conf(0.82),
				},
			},
			{
				Description: "Sample Item 2",
				Qty:         1,
				UnitPrice:   75.5,
				LineTotal:   75.5,
				Unit:        "pcs",
				Confidences: &domain.LineConfidences{
					Qty:         conf(0.95),
					UnitPrice:   conf(0.8),
					LineTotal:   conf(0.85),
					Description: conf(0.78),
				},
			},
		},
	}), nil
}
