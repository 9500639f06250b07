package export

import (
	"context"
	"fmt"
	"time"

	"receipt-ledger/domain"
	"receipt-ledger/internal/utils/logger"
	"receipt-ledger/internal/utils/mailing"
)

type (
	//go:generate mockgen -destination=mocks/mock_export_service.go -source=export_service.go
	ExportService interface {
		Receipts(ctx context.Context, filter domain.ReceiptFilter, format string) (Document, error)
		ReceiptLines(ctx context.Context, id string) (Document, error)
		Receipt(ctx context.Context, id string) (Document, error)
		EmailReceipts(ctx context.Context, req domain.ExportEmailRequest, filter domain.ReceiptFilter) error
	}

	// ReceiptSource is the read side of the receipt store.
	ReceiptSource interface {
		ListReceipts(ctx context.Context, filter domain.ReceiptFilter) ([]domain.Receipt, error)
		GetReceipt(ctx context.Context, id string) (domain.ReceiptDetail, error)
	}

	exportService struct {
		receipts ReceiptSource
		mailer   mailing.Mailer
		now      func() time.Time
	}
)

func NewExportService(receipts ReceiptSource, mailer mailing.Mailer) ExportService {
	return &exportService{receipts: receipts, mailer: mailer, now: time.Now}
}

func (s *exportService) Receipts(ctx context.Context, filter domain.ReceiptFilter, format string) (Document, error) {
	receipts, err := s.receipts.ListReceipts(ctx, filter)
	if err != nil {
		return Document{}, err
	}

	switch format {
	case domain.ExportFormatCSV:
		return Document{
			Filename:    ReceiptsFilename(format, s.now()),
			ContentType: ContentTypeCSV,
			Data:        CSV(ReceiptRows(receipts)),
		}, nil
	case domain.ExportFormatJSON:
		data, err := JSON(ReceiptDocuments(receipts))
		if err != nil {
			return Document{}, err
		}
		return Document{
			Filename:    ReceiptsFilename(format, s.now()),
			ContentType: ContentTypeJSON,
			Data:        data,
		}, nil
	default:
		return Document{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedExportFormat, format)
	}
}

func (s *exportService) ReceiptLines(ctx context.Context, id string) (Document, error) {
	detail, err := s.receipts.GetReceipt(ctx, id)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Filename:    LinesFilename(detail.ID, s.now()),
		ContentType: ContentTypeCSV,
		Data:        CSV(LineRows(detail.Lines)),
	}, nil
}

func (s *exportService) Receipt(ctx context.Context, id string) (Document, error) {
	detail, err := s.receipts.GetReceipt(ctx, id)
	if err != nil {
		return Document{}, err
	}
	detail.Display = nil
	data, err := JSON(detail)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Filename:    ReceiptFilename(detail.ID),
		ContentType: ContentTypeJSON,
		Data:        data,
	}, nil
}

func (s *exportService) EmailReceipts(ctx context.Context, req domain.ExportEmailRequest, filter domain.ReceiptFilter) error {
	doc, err := s.Receipts(ctx, filter, req.Format)
	if err != nil {
		return err
	}

	body := fmt.Sprintf("<p>Your receipts export <b>%s</b> is attached.</p>", doc.Filename)
	if err := s.mailer.Send(req.Email, "Receipts export", body, mailing.Attachment{
		Filename: doc.Filename,
		Data:     doc.Data,
	}); err != nil {
		log := logger.FromContext(ctx)
		log.Error().Err(err).Str("filename", doc.Filename).Msg("send export failed")
		return fmt.Errorf("send export: %w", err)
	}
	return nil
}
