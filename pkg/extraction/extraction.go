package extraction

import (
	"context"
	"fmt"

	"receipt-ledger/domain"
	"receipt-ledger/internal/utils"
)

const (
	NameStatic = "static"
	NameGemini = "gemini"
)

// Image is one uploaded receipt picture.
type Image struct {
	Data     []byte
	MIMEType string
	Filename string
	URL      string
}

// Extractor turns a receipt image into a structured draft.
//
//go:generate mockgen -destination=mocks/mock_extractor.go -source=extraction.go Extractor
type Extractor interface {
	Name() string
	Extract(ctx context.Context, img Image) (domain.ExtractedReceipt, error)
}

// New builds the extractor named by the EXTRACTOR setting.
func New(ctx context.Context) (Extractor, error) {
	switch name := utils.GetConfig("EXTRACTOR"); name {
	case NameStatic, "":
		return NewStaticExtractor(), nil
	case NameGemini:
		return NewGeminiExtractor(ctx, utils.GetConfig("GEMINI_API_KEY"), utils.GetConfig("GEMINI_MODEL"))
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrExtractorNotConfig, name)
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func clampPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := clamp01(*v)
	return &c
}

// sanitize clamps every confidence into [0,1] and fills the currency.
func sanitize(r domain.ExtractedReceipt) domain.ExtractedReceipt {
	r.ConfidenceOverall = clamp01(r.ConfidenceOverall)
	if r.Currency == "" {
		r.Currency = domain.CurrencyMAD
	}
	for i := range r.Lines {
		c := r.Lines[i].Confidences
		if c == nil {
			continue
		}
		r.Lines[i].Confidences = &domain.LineConfidences{
			Qty:         clampPtr(c.Qty),
			UnitPrice:   clampPtr(c.UnitPrice),
			LineTotal:   clampPtr(c.LineTotal),
			Description: clampPtr(c.Description),
		}
	}
	return r
}
