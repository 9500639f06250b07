package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"receipt-ledger/domain"
	"receipt-ledger/internal/utils/format"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash"

const receiptPrompt = "You are a receipt parser for Moroccan shop receipts (prices in MAD).\n\n" +
	"Task:\n" +
	"- Read the attached receipt image.\n" +
	"- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n" +
	"- Output one JSON object with these fields:\n" +
	"  \"vendor\": string\n" +
	"  \"date_time\": string, ISO 8601 (\"YYYY-MM-DDTHH:MM:SS\"), or null\n" +
	"  \"receipt_no\": string or null\n" +
	"  \"currency\": \"MAD\"\n" +
	"  \"total\": number\n" +
	"  \"paid\": number or null\n" +
	"  \"change\": number or null\n" +
	"  \"confidence_overall\": number between 0 and 1\n" +
	"  \"lines\": array of objects with \"description\" (string), \"qty\" (number), " +
	"\"unit_price\" (number), \"line_total\" (number), \"unit\" (string or null) and " +
	"\"confidences\" (object with \"qty\", \"unit_price\", \"line_total\", \"description\", each between 0 and 1)\n\n" +
	"Rules:\n" +
	"- Keep the line order of the receipt.\n" +
	"- Copy amounts as printed; do not fix arithmetic.\n" +
	"- Arabic-Indic digits must be written as Latin digits.\n" +
	"Return ONLY valid raw JSON. Do NOT use ```json or any Markdown.\n"

// GeminiExtractor reads receipts with a Gemini vision model.
type GeminiExtractor struct {
	client *genai.Client
	model  string
	now    func() time.Time
}

func NewGeminiExtractor(ctx context.Context, apiKey, model string) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is empty", domain.ErrExtractorNotConfig)
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiExtractor{client: client, model: model, now: time.Now}, nil
}

func (e *GeminiExtractor) Name() string {
	return NameGemini
}

func (e *GeminiExtractor) Extract(ctx context.Context, img Image) (domain.ExtractedReceipt, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: receiptPrompt},
				{
					InlineData: &genai.Blob{
						MIMEType: img.MIMEType,
						Data:     img.Data,
					},
				},
			},
		},
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return domain.ExtractedReceipt{}, fmt.Errorf("%w: generate content: %v", domain.ErrExtractionFailed, err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return domain.ExtractedReceipt{}, domain.ErrEmptyExtraction
	}
	return parseModelOutput(rawText, e.now())
}

// modelReceipt is the JSON shape the prompt asks for. Numbers may come back
// quoted, so amounts are decoded leniently.
type modelReceipt struct {
	Vendor            string      `json:"vendor"`
	DateTime          *string     `json:"date_time"`
	ReceiptNo         *string     `json:"receipt_no"`
	Currency          string      `json:"currency"`
	Total             lenient     `json:"total"`
	Paid              *lenient    `json:"paid"`
	Change            *lenient    `json:"change"`
	ConfidenceOverall lenient     `json:"confidence_overall"`
	Lines             []modelLine `json:"lines"`
}

type modelLine struct {
	Description string  `json:"description"`
	Qty         lenient `json:"qty"`
	UnitPrice   lenient `json:"unit_price"`
	LineTotal   lenient `json:"line_total"`
	Unit        *string `json:"unit"`
	Confidences *struct {
		Qty         *float64 `json:"qty"`
		UnitPrice   *float64 `json:"unit_price"`
		LineTotal   *float64 `json:"line_total"`
		Description *float64 `json:"description"`
	} `json:"confidences"`
}

// lenient accepts a JSON number or a string such as "12,50".
type lenient float64

func (l *lenient) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*l = 0
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*l = lenient(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, _ := format.ParseNumber(s)
	*l = lenient(v)
	return nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
}

func parseDate(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return fallback
}

func parseModelOutput(raw string, now time.Time) (domain.ExtractedReceipt, error) {
	clean := cleanModelJSON(raw)

	var m modelReceipt
	if err := json.Unmarshal([]byte(clean), &m); err != nil {
		return domain.ExtractedReceipt{}, fmt.Errorf("%w: unmarshal model JSON: %v", domain.ErrExtractionFailed, err)
	}
	if strings.TrimSpace(m.Vendor) == "" && len(m.Lines) == 0 {
		return domain.ExtractedReceipt{}, domain.ErrEmptyExtraction
	}

	out := domain.ExtractedReceipt{
		Vendor:            strings.TrimSpace(m.Vendor),
		DateTime:          now,
		Currency:          strings.ToUpper(strings.TrimSpace(m.Currency)),
		Total:             float64(m.Total),
		ConfidenceOverall: float64(m.ConfidenceOverall),
		Lines:             make([]domain.ExtractedLine, 0, len(m.Lines)),
	}
	if m.DateTime != nil {
		out.DateTime = parseDate(*m.DateTime, now)
	}
	if m.ReceiptNo != nil {
		out.ReceiptNo = strings.TrimSpace(*m.ReceiptNo)
	}
	if m.Paid != nil {
		v := float64(*m.Paid)
		out.Paid = &v
	}
	if m.Change != nil {
		v := float64(*m.Change)
		out.Change = &v
	}

	for _, l := range m.Lines {
		line := domain.ExtractedLine{
			Description: strings.TrimSpace(l.Description),
			Qty:         float64(l.Qty),
			UnitPrice:   float64(l.UnitPrice),
			LineTotal:   float64(l.LineTotal),
		}
		if l.Unit != nil {
			line.Unit = strings.TrimSpace(*l.Unit)
		}
		if l.Confidences != nil {
			line.Confidences = &domain.LineConfidences{
				Qty:         l.Confidences.Qty,
				UnitPrice:   l.Confidences.UnitPrice,
				LineTotal:   l.Confidences.LineTotal,
				Description: l.Confidences.Description,
			}
		}
		out.Lines = append(out.Lines, line)
	}
	return sanitize(out), nil
}

// cleanModelJSON strips markdown fences and any text around the outer object.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}
