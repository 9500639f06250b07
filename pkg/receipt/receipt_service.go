package receipt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"receipt-ledger/domain"
	"receipt-ledger/entities"
	"receipt-ledger/internal/utils"
	"receipt-ledger/internal/utils/format"
	"receipt-ledger/internal/utils/logger"
	"receipt-ledger/internal/utils/storage"
	"receipt-ledger/pkg/extraction"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const imageFolder = "receipts"

type (
	//go:generate mockgen -destination=mocks/mock_receipt_service.go -source=receipt_service.go
	ReceiptService interface {
		GetReceipts(ctx context.Context, filter domain.ReceiptFilter, page, limit int) ([]domain.Receipt, int64, error)
		// ListReceipts returns every receipt matching filter, for exports.
		ListReceipts(ctx context.Context, filter domain.ReceiptFilter) ([]domain.Receipt, error)
		GetReceipt(ctx context.Context, id string) (domain.ReceiptDetail, error)
		CreateReceipt(ctx context.Context, req domain.CreateReceiptRequest) (domain.ReceiptDetail, error)
		UpdateReceipt(ctx context.Context, id string, req domain.UpdateReceiptRequest) error
		UpdateStatus(ctx context.Context, id string, status string) error
		ReplaceLines(ctx context.Context, id string, lines []domain.ReceiptLine) error
		DeleteReceipt(ctx context.Context, id string) error
		GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error)

		UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest) (domain.UploadReceiptResponse, error)
		// ScanReceipt stores an image, extracts it and records the draft.
		ScanReceipt(ctx context.Context, fileName string, data []byte) (domain.UploadReceiptResponse, error)
	}

	// VendorMatcher finds the reference vendor for an extracted name.
	VendorMatcher interface {
		MatchVendor(ctx context.Context, text string) (*domain.VendorResponse, error)
	}

	// ProductMatcher finds the reference product for each extracted line.
	ProductMatcher interface {
		MatchProducts(ctx context.Context, texts []string) ([]*domain.ProductResponse, error)
	}

	receiptService struct {
		receiptRepository ReceiptRepository
		storage           storage.Storage
		extractor         extraction.Extractor
		vendors           VendorMatcher
		products          ProductMatcher
		now               func() time.Time
	}
)

func NewReceiptService(
	receiptRepository ReceiptRepository,
	objectStorage storage.Storage,
	extractor extraction.Extractor,
	vendors VendorMatcher,
	products ProductMatcher,
) ReceiptService {
	return &receiptService{
		receiptRepository: receiptRepository,
		storage:           objectStorage,
		extractor:         extractor,
		vendors:           vendors,
		products:          products,
		now:               time.Now,
	}
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrReceiptNotFound
	}
	return err
}

// locale is the APP_LOCALE display values are rendered in.
func locale() string {
	return utils.GetConfig("APP_LOCALE")
}

func withDisplay(detail domain.ReceiptDetail) domain.ReceiptDetail {
	detail.Display = domain.NewReceiptDisplay(detail.Receipt, locale())
	return detail
}

func (s *receiptService) listReceipts(ctx context.Context, filter domain.ReceiptFilter, page, limit int) ([]domain.Receipt, int64, error) {
	receipts, count, err := s.receiptRepository.GetReceipts(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("get receipts: %w", err)
	}

	response := make([]domain.Receipt, 0, len(receipts))
	for _, r := range receipts {
		response = append(response, toReceipt(r))
	}
	return response, count, nil
}

// GetReceipts returns one page of receipts with their display values
// rendered for APP_LOCALE.
func (s *receiptService) GetReceipts(ctx context.Context, filter domain.ReceiptFilter, page, limit int) ([]domain.Receipt, int64, error) {
	receipts, count, err := s.listReceipts(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	loc := locale()
	for i := range receipts {
		receipts[i].Display = domain.NewReceiptDisplay(receipts[i], loc)
	}
	return receipts, count, nil
}

// ListReceipts returns every matching receipt without display values, as
// exports want them.
func (s *receiptService) ListReceipts(ctx context.Context, filter domain.ReceiptFilter) ([]domain.Receipt, error) {
	receipts, _, err := s.listReceipts(ctx, filter, 1, 0)
	return receipts, err
}

func (s *receiptService) GetReceipt(ctx context.Context, id string) (domain.ReceiptDetail, error) {
	if err := checkID(id); err != nil {
		return domain.ReceiptDetail{}, err
	}

	r, err := s.receiptRepository.GetReceiptByID(ctx, id)
	if err != nil {
		return domain.ReceiptDetail{}, notFound(err)
	}
	return withDisplay(toReceiptDetail(r)), nil
}

func (s *receiptService) CreateReceipt(ctx context.Context, req domain.CreateReceiptRequest) (domain.ReceiptDetail, error) {
	if req.DateTime.IsZero() {
		req.DateTime = s.now()
	}

	r := receiptEntity(req)
	if err := s.receiptRepository.CreateReceipt(ctx, r); err != nil {
		return domain.ReceiptDetail{}, fmt.Errorf("create receipt: %w", err)
	}
	return withDisplay(toReceiptDetail(r)), nil
}

func (s *receiptService) UpdateReceipt(ctx context.Context, id string, req domain.UpdateReceiptRequest) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.receiptRepository.UpdateReceipt(ctx, id, headerColumns(req)); err != nil {
		return notFound(err)
	}
	return nil
}

func (s *receiptService) UpdateStatus(ctx context.Context, id string, status string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if status != domain.StatusDraft && status != domain.StatusVerified {
		return domain.ErrInvalidStatus
	}
	if err := s.receiptRepository.UpdateStatus(ctx, id, status); err != nil {
		return notFound(err)
	}
	return nil
}

// ReplaceLines persists lines as the receipt's complete line set, indexed by
// position.
func (s *receiptService) ReplaceLines(ctx context.Context, id string, lines []domain.ReceiptLine) error {
	receiptID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	rows := make([]*entities.ReceiptLine, len(lines))
	for i, l := range lines {
		rows[i] = lineEntity(receiptID, i, l)
	}
	if err := s.receiptRepository.ReplaceLines(ctx, id, rows); err != nil {
		return notFound(err)
	}
	return nil
}

// DeleteReceipt removes the receipt and its lines, then best-effort removes
// the stored image.
func (s *receiptService) DeleteReceipt(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	r, err := s.receiptRepository.GetReceiptByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if err := s.receiptRepository.DeleteReceipt(ctx, id); err != nil {
		return notFound(err)
	}

	if r.ImageURL != nil && s.storage != nil {
		if key := s.storage.GetObjectKeyFromLink(*r.ImageURL); key != "" {
			if err := s.storage.DeleteFile(ctx, key); err != nil {
				log := logger.FromContext(ctx)
				log.Warn().Err(err).Str("object_key", key).Msg("delete receipt image failed")
			}
		}
	}
	return nil
}

func (s *receiptService) GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	stats, err := s.receiptRepository.GetReceiptStats(ctx, monthStart, monthEnd)
	if err != nil {
		return domain.DashboardStatsResponse{}, fmt.Errorf("get receipt stats: %w", err)
	}

	loc := locale()
	if loc == "" {
		loc = format.DefaultLocale
	}

	var verifiedPercent float64
	if stats.Total > 0 {
		verifiedPercent = float64(stats.Verified) / float64(stats.Total) * 100
	}

	return domain.DashboardStatsResponse{
		TotalReceipts:          stats.Total,
		VerifiedTotal:          stats.VerifiedTotal,
		VerifiedTotalFormatted: format.FormatCurrency(stats.VerifiedTotal, loc),
		ThisMonthCount:         stats.ThisMonth,
		VerifiedPercent:        verifiedPercent,
		AvgConfidencePercent:   stats.AvgConfidence * 100,
		AvgConfidenceLevel:     format.ConfidenceLevel(stats.AvgConfidence),
		Locale:                 loc,
	}, nil
}

func (s *receiptService) UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest) (domain.UploadReceiptResponse, error) {
	file, err := req.ReceiptImage.Open()
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}
	return s.ScanReceipt(ctx, req.ReceiptImage.Filename, data)
}

func (s *receiptService) ScanReceipt(ctx context.Context, fileName string, data []byte) (domain.UploadReceiptResponse, error) {
	detected, err := storage.DetectFile(data, storage.AllowImage...)
	if err != nil {
		return domain.UploadReceiptResponse{}, fmt.Errorf("%w: %v", domain.ErrInvalidImageFormat, err)
	}

	objectKey, err := s.storage.UploadFile(ctx, "receipt-"+uuid.NewString(), data, imageFolder, storage.AllowImage...)
	if err != nil {
		return domain.UploadReceiptResponse{}, fmt.Errorf("upload receipt image: %w", err)
	}
	imageURL := s.storage.GetPublicLinkKey(objectKey)

	scan := &entities.ReceiptScan{
		ID:        uuid.New(),
		ImageURL:  imageURL,
		Extractor: s.extractor.Name(),
		Status:    domain.ScanStatusPending,
	}
	if err := s.receiptRepository.CreateReceiptScan(ctx, scan); err != nil {
		return domain.UploadReceiptResponse{}, fmt.Errorf("create receipt scan: %w", err)
	}

	log := logger.WithFields(logger.FromContext(ctx), map[string]interface{}{
		"scan_id":   scan.ID.String(),
		"extractor": scan.Extractor,
		"file_name": fileName,
	})

	extracted, err := s.extractor.Extract(ctx, extraction.Image{
		Data:     data,
		MIMEType: detected.MIMEType,
		Filename: fileName,
		URL:      imageURL,
	})
	if err != nil {
		log.Error().Err(err).Msg("extraction failed")
		s.failScan(ctx, scan, err)
		return domain.UploadReceiptResponse{}, fmt.Errorf("%w: %v", domain.ErrReceiptProcessingFailed, err)
	}

	req, err := s.draftFromExtraction(ctx, extracted, imageURL)
	if err != nil {
		log.Error().Err(err).Msg("reference matching failed")
		s.failScan(ctx, scan, err)
		return domain.UploadReceiptResponse{}, fmt.Errorf("%w: %v", domain.ErrReceiptProcessingFailed, err)
	}

	detail, err := s.CreateReceipt(ctx, req)
	if err != nil {
		s.failScan(ctx, scan, err)
		return domain.UploadReceiptResponse{}, err
	}

	receiptID, _ := uuid.Parse(detail.ID)
	scan.ReceiptID = &receiptID
	scan.Status = domain.ScanStatusProcessed
	scan.OcrResults = string(req.OcrRaw)
	if err := s.receiptRepository.UpdateReceiptScan(ctx, scan); err != nil {
		log.Warn().Err(err).Msg("update receipt scan failed")
	}

	log.Info().
		Str("receipt_id", detail.ID).
		Float64("confidence", detail.ConfidenceOverall).
		Int("lines", len(detail.Lines)).
		Msg("receipt extracted")

	return domain.UploadReceiptResponse{
		ScanID:    scan.ID.String(),
		ImageURL:  imageURL,
		Status:    scan.Status,
		Extractor: scan.Extractor,
		Receipt:   detail,
	}, nil
}

func (s *receiptService) failScan(ctx context.Context, scan *entities.ReceiptScan, cause error) {
	scan.Status = domain.ScanStatusFailed
	scan.Error = cause.Error()
	if err := s.receiptRepository.UpdateReceiptScan(ctx, scan); err != nil {
		log := logger.FromContext(ctx)
		log.Warn().Err(err).Str("scan_id", scan.ID.String()).Msg("update receipt scan failed")
	}
}

// draftFromExtraction shapes an extraction into a draft receipt, linking the
// vendor and each line to reference data when a name or alias matches.
func (s *receiptService) draftFromExtraction(ctx context.Context, x domain.ExtractedReceipt, imageURL string) (domain.CreateReceiptRequest, error) {
	raw, err := json.Marshal(x)
	if err != nil {
		return domain.CreateReceiptRequest{}, err
	}

	req := domain.CreateReceiptRequest{
		Vendor:            strings.TrimSpace(x.Vendor),
		DateTime:          x.DateTime,
		ReceiptNo:         x.ReceiptNo,
		Currency:          domain.CurrencyMAD,
		Total:             x.Total,
		Paid:              x.Paid,
		Change:            x.Change,
		Status:            domain.StatusDraft,
		ConfidenceOverall: x.ConfidenceOverall,
		ImageURL:          imageURL,
		OcrRaw:            raw,
		Lines:             make([]domain.ReceiptLineRequest, len(x.Lines)),
	}

	if s.vendors != nil && req.Vendor != "" {
		v, err := s.vendors.MatchVendor(ctx, req.Vendor)
		if err != nil {
			return domain.CreateReceiptRequest{}, err
		}
		if v != nil {
			req.Vendor = v.Name
			req.VendorID = v.ID
		}
	}

	descriptions := make([]string, len(x.Lines))
	for i, l := range x.Lines {
		descriptions[i] = l.Description
		req.Lines[i] = domain.ReceiptLineRequest{
			DescriptionRaw: l.Description,
			Qty:            l.Qty,
			UnitPrice:      l.UnitPrice,
			LineTotal:      l.LineTotal,
			Unit:           l.Unit,
			Confidences:    l.Confidences,
		}
	}

	if s.products != nil && len(descriptions) > 0 {
		matches, err := s.products.MatchProducts(ctx, descriptions)
		if err != nil {
			return domain.CreateReceiptRequest{}, err
		}
		for i, p := range matches {
			if p == nil || i >= len(req.Lines) {
				continue
			}
			req.Lines[i].ProductID = p.ID
			req.Lines[i].DescriptionNorm = p.Name
			if req.Lines[i].Unit == "" {
				req.Lines[i].Unit = p.DefaultUnit
			}
		}
	}
	return req, nil
}
