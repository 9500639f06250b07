package receipt_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"receipt-ledger/domain"
	"receipt-ledger/entities"
	mock_storage "receipt-ledger/internal/utils/storage/mocks"
	"receipt-ledger/pkg/extraction"
	mock_extraction "receipt-ledger/pkg/extraction/mocks"
	"receipt-ledger/pkg/receipt"
	mock_receipt "receipt-ledger/pkg/receipt/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type deps struct {
	repo      *mock_receipt.MockReceiptRepository
	storage   *mock_storage.MockStorage
	extractor *mock_extraction.MockExtractor
	vendors   *mock_receipt.MockVendorMatcher
	products  *mock_receipt.MockProductMatcher
	service   receipt.ReceiptService
}

func newDeps(ctrl *gomock.Controller) deps {
	d := deps{
		repo:      mock_receipt.NewMockReceiptRepository(ctrl),
		storage:   mock_storage.NewMockStorage(ctrl),
		extractor: mock_extraction.NewMockExtractor(ctrl),
		vendors:   mock_receipt.NewMockVendorMatcher(ctrl),
		products:  mock_receipt.NewMockProductMatcher(ctrl),
	}
	d.service = receipt.NewReceiptService(d.repo, d.storage, d.extractor, d.vendors, d.products)
	return d
}

func f64(v float64) *float64 { return &v }
func str(s string) *string   { return &s }

func storedReceipt() *entities.Receipt {
	id := uuid.MustParse("0f9e2d5c-7a41-4d7b-8f3e-1c2b3a4d5e6f")
	vendorID := uuid.MustParse("6a1b6c44-4f57-4ec5-9b3c-0d2f6a0d6f01")
	return &entities.Receipt{
		ID:                id,
		Vendor:            "Metro Cash & Carry",
		VendorID:          &vendorID,
		DateTime:          time.Date(2025, 10, 20, 14, 30, 0, 0, time.UTC),
		ReceiptNo:         str("R20251020-001"),
		Currency:          "MAD",
		Total:             216,
		Paid:              f64(220),
		Change:            f64(0),
		Status:            domain.StatusDraft,
		ConfidenceOverall: 0.95,
		Lines: []*entities.ReceiptLine{
			{
				ID:             uuid.New(),
				ReceiptID:      id,
				LineIndex:      0,
				DescriptionRaw: "Frites Julienne 2.5kg",
				Qty:            4,
				UnitPrice:      49,
				LineTotal:      196,
				Unit:           str("sac"),
				Confidences:    datatypes.JSON(`{"qty":0.99,"line_total":0.97}`),
			},
			{
				ID:             uuid.New(),
				ReceiptID:      id,
				LineIndex:      1,
				DescriptionRaw: "Hot-Dog",
				Qty:            2,
				UnitPrice:      10,
				LineTotal:      20,
			},
		},
	}
}

func TestGetReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	d := newDeps(ctrl)
	stored := storedReceipt()

	d.repo.EXPECT().GetReceiptByID(ctx, stored.ID.String()).Return(stored, nil)

	got, err := d.service.GetReceipt(ctx, stored.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "6a1b6c44-4f57-4ec5-9b3c-0d2f6a0d6f01", got.VendorID)
	assert.Equal(t, "R20251020-001", got.ReceiptNo)
	assert.Equal(t, domain.CurrencyMAD, got.Currency)
	require.NotNil(t, got.Paid)
	assert.Equal(t, 220.0, *got.Paid)
	assert.Nil(t, got.Change, "zero amounts read back as absent")
	assert.Empty(t, got.ImageURL)

	require.Len(t, got.Lines, 2)
	assert.Equal(t, "sac", got.Lines[0].Unit)
	require.NotNil(t, got.Lines[0].Confidences)
	assert.Equal(t, 0.99, *got.Lines[0].Confidences.Qty)
	assert.Nil(t, got.Lines[0].Confidences.UnitPrice)
	assert.Nil(t, got.Lines[1].Confidences)
	assert.Equal(t, stored.ID.String(), got.Lines[1].ReceiptID)

	require.NotNil(t, got.Display)
	assert.Equal(t, "216,00 MAD", got.Display.Total)
	assert.Equal(t, "20/10/2025 14:30", got.Display.Date)
	assert.Equal(t, "20/10/2025", got.Display.DateShort)
	assert.Equal(t, domain.ConfidenceChip{Level: "high", Percent: "95%"}, got.Display.Confidence)
	assert.False(t, got.Display.VendorRTL)
}

func TestGetReceipts_Display(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	d := newDeps(ctrl)

	arabic := storedReceipt()
	arabic.ID = uuid.New()
	arabic.Vendor = "مرجان"
	arabic.ConfidenceOverall = 0.7

	filter := domain.ReceiptFilter{Status: domain.StatusDraft}
	d.repo.EXPECT().GetReceipts(ctx, filter, 1, 20).Return([]*entities.Receipt{storedReceipt(), arabic}, int64(2), nil)

	got, count, err := d.service.GetReceipts(ctx, filter, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.Len(t, got, 2)

	require.NotNil(t, got[0].Display)
	assert.Equal(t, "216,00 MAD", got[0].Display.Total)
	require.NotNil(t, got[1].Display)
	assert.True(t, got[1].Display.VendorRTL)
	assert.Equal(t, domain.ConfidenceChip{Level: "low", Percent: "70%"}, got[1].Display.Confidence)
}

func TestListReceipts_NoDisplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	d := newDeps(ctrl)

	d.repo.EXPECT().GetReceipts(ctx, domain.ReceiptFilter{}, 1, 0).Return([]*entities.Receipt{storedReceipt()}, int64(1), nil)

	got, err := d.service.ListReceipts(ctx, domain.ReceiptFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Display)
}

func TestGetReceipt_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	d := newDeps(ctrl)

	_, err := d.service.GetReceipt(ctx, "42")
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	id := uuid.NewString()
	d.repo.EXPECT().GetReceiptByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)
	_, err = d.service.GetReceipt(ctx, id)
	assert.ErrorIs(t, err, domain.ErrReceiptNotFound)
}

func TestUpdateReceipt_WritesNulls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	d := newDeps(ctrl)
	id := uuid.NewString()
	when := time.Date(2025, 10, 21, 9, 0, 0, 0, time.UTC)

	d.repo.EXPECT().UpdateReceipt(ctx, id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, columns map[string]interface{}) error {
			assert.Equal(t, "Marjane", columns["vendor"])
			assert.Equal(t, when, columns["date_time"])
			assert.Equal(t, 99.5, columns["total"])
			assert.Equal(t, domain.StatusVerified, columns["status"])
			assert.Nil(t, columns["receipt_no"].(*string))
			assert.Nil(t, columns["paid"].(*float64))
			assert.Nil(t, columns["vendor_id"].(*uuid.UUID))
			assert.Equal(t, 0.5, *columns["change"].(*float64))
			assert.Equal(t, "check VAT", *columns["notes"].(*string))
			return nil
		})

	err := d.service.UpdateReceipt(ctx, id, domain.UpdateReceiptRequest{
		Vendor:    " Marjane ",
		DateTime:  when,
		ReceiptNo: "  ",
		Total:     99.5,
		Paid:      f64(0),
		Change:    f64(0.5),
		Status:    domain.StatusVerified,
		Notes:     "check VAT",
	})
	require.NoError(t, err)
}

func TestUpdateReceipt_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)
	id := uuid.NewString()
	d.repo.EXPECT().UpdateReceipt(gomock.Any(), id, gomock.Any()).Return(gorm.ErrRecordNotFound)

	err := d.service.UpdateReceipt(context.Background(), id, domain.UpdateReceiptRequest{Vendor: "X", Status: domain.StatusDraft})
	assert.ErrorIs(t, err, domain.ErrReceiptNotFound)
}

func TestUpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	d := newDeps(ctrl)
	id := uuid.NewString()

	assert.ErrorIs(t, d.service.UpdateStatus(ctx, id, "archived"), domain.ErrInvalidStatus)

	d.repo.EXPECT().UpdateStatus(ctx, id, domain.StatusVerified).Return(nil)
	assert.NoError(t, d.service.UpdateStatus(ctx, id, domain.StatusVerified))
}

func TestReplaceLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	d := newDeps(ctrl)
	receiptID := uuid.New()
	keptID := uuid.New()
	productID := uuid.New()

	lines := []domain.ReceiptLine{
		{ID: keptID.String(), Index: 3, DescriptionRaw: "Frites", Qty: 4, UnitPrice: 49, LineTotal: 196, ProductID: productID.String()},
		{ID: "tmp-1", Index: 7, DescriptionRaw: "Hot-Dog", Qty: 2, UnitPrice: 10, LineTotal: 21, Unit: " ", ProductID: "not-a-uuid"},
	}

	d.repo.EXPECT().ReplaceLines(ctx, receiptID.String(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, rows []*entities.ReceiptLine) error {
			require.Len(t, rows, 2)
			assert.Equal(t, keptID, rows[0].ID)
			assert.Equal(t, 0, rows[0].LineIndex)
			assert.Equal(t, receiptID, rows[0].ReceiptID)
			require.NotNil(t, rows[0].ProductID)
			assert.Equal(t, productID, *rows[0].ProductID)

			assert.NotEqual(t, uuid.Nil, rows[1].ID)
			assert.Equal(t, 1, rows[1].LineIndex)
			assert.Equal(t, 21.0, rows[1].LineTotal, "line totals are stored as edited")
			assert.Nil(t, rows[1].Unit)
			assert.Nil(t, rows[1].ProductID)
			return nil
		})

	require.NoError(t, d.service.ReplaceLines(ctx, receiptID.String(), lines))
}

func TestReplaceLines_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)
	id := uuid.NewString()
	d.repo.EXPECT().ReplaceLines(gomock.Any(), id, []*entities.ReceiptLine{}).Return(nil)

	assert.NoError(t, d.service.ReplaceLines(context.Background(), id, nil))
}

func TestCreateReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	d := newDeps(ctrl)

	d.repo.EXPECT().CreateReceipt(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *entities.Receipt) error {
		assert.Equal(t, domain.StatusDraft, r.Status)
		assert.Equal(t, "MAD", r.Currency)
		assert.False(t, r.DateTime.IsZero())
		require.Len(t, r.Lines, 2)
		for i, l := range r.Lines {
			assert.Equal(t, i, l.LineIndex)
			assert.Equal(t, r.ID, l.ReceiptID)
		}
		return nil
	})

	got, err := d.service.CreateReceipt(ctx, domain.CreateReceiptRequest{
		Vendor: "Acima",
		Total:  30,
		Lines: []domain.ReceiptLineRequest{
			{DescriptionRaw: "Lait", Qty: 2, UnitPrice: 7, LineTotal: 14},
			{DescriptionRaw: "Pain", Qty: 8, UnitPrice: 2, LineTotal: 16},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, 1, got.Lines[1].Index)
	require.NotNil(t, got.Display)
	assert.Equal(t, "30,00 MAD", got.Display.Total)
}

func TestDeleteReceipt_RemovesImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	d := newDeps(ctrl)
	stored := storedReceipt()
	stored.ImageURL = str("https://bucket.s3.eu-west-3.amazonaws.com/receipts/receipt-1.png")
	id := stored.ID.String()

	gomock.InOrder(
		d.repo.EXPECT().GetReceiptByID(ctx, id).Return(stored, nil),
		d.repo.EXPECT().DeleteReceipt(ctx, id).Return(nil),
		d.storage.EXPECT().GetObjectKeyFromLink(*stored.ImageURL).Return("receipts/receipt-1.png"),
		d.storage.EXPECT().DeleteFile(ctx, "receipts/receipt-1.png").Return(errors.New("access denied")),
	)

	assert.NoError(t, d.service.DeleteReceipt(ctx, id))
}

func TestGetDashboardStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	d := newDeps(ctrl)

	d.repo.EXPECT().GetReceiptStats(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, start, end time.Time) (receipt.ReceiptStats, error) {
			assert.Equal(t, 1, start.Day())
			assert.Equal(t, start.AddDate(0, 1, 0), end)
			return receipt.ReceiptStats{
				Total:         4,
				Verified:      1,
				VerifiedTotal: 1234.5,
				ThisMonth:     3,
				AvgConfidence: 0.875,
			}, nil
		})

	got, err := d.service.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.TotalReceipts)
	assert.Equal(t, 25.0, got.VerifiedPercent)
	assert.Equal(t, 87.5, got.AvgConfidencePercent)
	assert.Equal(t, int64(3), got.ThisMonthCount)
	assert.True(t, strings.HasSuffix(got.VerifiedTotalFormatted, "234,50 MAD"), got.VerifiedTotalFormatted)
	assert.Equal(t, "medium", got.AvgConfidenceLevel)
	assert.Equal(t, "fr-MA", got.Locale)
}

func TestGetDashboardStats_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)
	d.repo.EXPECT().GetReceiptStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(receipt.ReceiptStats{}, nil)

	got, err := d.service.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.VerifiedPercent)
	assert.Equal(t, 0.0, got.AvgConfidencePercent)
}

func sampleExtraction() domain.ExtractedReceipt {
	return domain.ExtractedReceipt{
		Vendor:            "METRO",
		DateTime:          time.Date(2025, 10, 20, 14, 30, 0, 0, time.UTC),
		ReceiptNo:         "R1",
		Currency:          "MAD",
		Total:             216,
		Paid:              f64(220),
		Change:            f64(4),
		ConfidenceOverall: 0.8,
		Lines: []domain.ExtractedLine{
			{Description: "FRITES JUL 2.5KG", Qty: 4, UnitPrice: 49, LineTotal: 196},
			{Description: "HOT DOG", Qty: 2, UnitPrice: 10, LineTotal: 20, Unit: "pce"},
		},
	}
}

func TestScanReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	d := newDeps(ctrl)
	vendorID := uuid.NewString()
	productID := uuid.NewString()
	url := "https://bucket.s3.eu-west-3.amazonaws.com/receipts/receipt-x.png"

	d.extractor.EXPECT().Name().Return(extraction.NameStatic).AnyTimes()
	gomock.InOrder(
		d.storage.EXPECT().UploadFile(ctx, gomock.Any(), pngHeader, "receipts", gomock.Any()).Return("receipts/receipt-x.png", nil),
		d.storage.EXPECT().GetPublicLinkKey("receipts/receipt-x.png").Return(url),
		d.repo.EXPECT().CreateReceiptScan(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, scan *entities.ReceiptScan) error {
			assert.Equal(t, domain.ScanStatusPending, scan.Status)
			assert.Equal(t, url, scan.ImageURL)
			return nil
		}),
		d.extractor.EXPECT().Extract(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, img extraction.Image) (domain.ExtractedReceipt, error) {
			assert.Equal(t, "image/png", img.MIMEType)
			assert.Equal(t, "ticket.png", img.Filename)
			return sampleExtraction(), nil
		}),
		d.vendors.EXPECT().MatchVendor(ctx, "METRO").Return(&domain.VendorResponse{ID: vendorID, Name: "Metro Cash & Carry"}, nil),
		d.products.EXPECT().MatchProducts(ctx, []string{"FRITES JUL 2.5KG", "HOT DOG"}).Return([]*domain.ProductResponse{
			{ID: productID, Name: "Frites Julienne 2.5kg", DefaultUnit: "sac"},
			nil,
		}, nil),
		d.repo.EXPECT().CreateReceipt(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *entities.Receipt) error {
			assert.Equal(t, "Metro Cash & Carry", r.Vendor)
			require.NotNil(t, r.VendorID)
			assert.Equal(t, vendorID, r.VendorID.String())
			assert.Equal(t, domain.StatusDraft, r.Status)
			assert.Equal(t, url, *r.ImageURL)
			assert.NotEmpty(t, r.OcrRaw)
			require.Len(t, r.Lines, 2)
			assert.Equal(t, productID, r.Lines[0].ProductID.String())
			assert.Equal(t, "Frites Julienne 2.5kg", *r.Lines[0].DescriptionNorm)
			assert.Equal(t, "sac", *r.Lines[0].Unit)
			assert.Nil(t, r.Lines[1].ProductID)
			assert.Equal(t, "pce", *r.Lines[1].Unit)
			return nil
		}),
		d.repo.EXPECT().UpdateReceiptScan(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, scan *entities.ReceiptScan) error {
			assert.Equal(t, domain.ScanStatusProcessed, scan.Status)
			require.NotNil(t, scan.ReceiptID)
			assert.NotEmpty(t, scan.OcrResults)
			return nil
		}),
	)

	res, err := d.service.ScanReceipt(ctx, "ticket.png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, domain.ScanStatusProcessed, res.Status)
	assert.Equal(t, extraction.NameStatic, res.Extractor)
	assert.Equal(t, url, res.ImageURL)
	assert.Equal(t, "Metro Cash & Carry", res.Receipt.Vendor)
	assert.Len(t, res.Receipt.Lines, 2)
}

func TestScanReceipt_RejectsNonImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)

	_, err := d.service.ScanReceipt(context.Background(), "notes.txt", []byte("just some text"))
	assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)
}

func TestScanReceipt_ExtractionFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	d := newDeps(ctrl)

	d.extractor.EXPECT().Name().Return(extraction.NameGemini).AnyTimes()
	d.storage.EXPECT().UploadFile(ctx, gomock.Any(), gomock.Any(), "receipts", gomock.Any()).Return("receipts/r.png", nil)
	d.storage.EXPECT().GetPublicLinkKey("receipts/r.png").Return("https://example.test/receipts/r.png")
	d.repo.EXPECT().CreateReceiptScan(ctx, gomock.Any()).Return(nil)
	d.extractor.EXPECT().Extract(ctx, gomock.Any()).Return(domain.ExtractedReceipt{}, domain.ErrEmptyExtraction)
	d.repo.EXPECT().UpdateReceiptScan(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, scan *entities.ReceiptScan) error {
		assert.Equal(t, domain.ScanStatusFailed, scan.Status)
		assert.Equal(t, domain.ErrEmptyExtraction.Error(), scan.Error)
		return nil
	})

	_, err := d.service.ScanReceipt(ctx, "r.png", pngHeader)
	assert.ErrorIs(t, err, domain.ErrReceiptProcessingFailed)
}
