package receipt

import (
	"context"
	"strings"
	"time"

	"receipt-ledger/domain"
	"receipt-ledger/entities"

	"gorm.io/gorm"
)

type (
	// ReceiptStats are the raw aggregates behind the dashboard.
	ReceiptStats struct {
		Total         int64
		Verified      int64
		VerifiedTotal float64
		ThisMonth     int64
		AvgConfidence float64
	}

	//go:generate mockgen -destination=mocks/mock_receipt_repository.go -source=receipt_repository.go ReceiptRepository
	ReceiptRepository interface {
		// GetReceipts returns one page of matching receipts and the match
		// count. A limit of zero returns every match.
		GetReceipts(ctx context.Context, filter domain.ReceiptFilter, page, limit int) ([]*entities.Receipt, int64, error)
		GetReceiptByID(ctx context.Context, id string) (*entities.Receipt, error)
		CreateReceipt(ctx context.Context, receipt *entities.Receipt) error
		UpdateReceipt(ctx context.Context, id string, columns map[string]interface{}) error
		UpdateStatus(ctx context.Context, id string, status string) error
		ReplaceLines(ctx context.Context, id string, lines []*entities.ReceiptLine) error
		DeleteReceipt(ctx context.Context, id string) error
		GetReceiptStats(ctx context.Context, monthStart, monthEnd time.Time) (ReceiptStats, error)

		CreateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error
		GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error)
		UpdateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error
	}

	receiptRepository struct {
		db *gorm.DB
	}
)

var sortColumns = map[string]string{
	"date_time":          "date_time",
	"total":              "total",
	"vendor":             "vendor",
	"confidence_overall": "confidence_overall",
	"status":             "status",
	"receipt_no":         "receipt_no",
}

func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func applyFilter(query *gorm.DB, f domain.ReceiptFilter) *gorm.DB {
	if f.Status != "" && f.Status != "all" {
		query = query.Where("status = ?", f.Status)
	}
	if f.LowConfidence {
		query = query.Where("confidence_overall < ?", domain.LowConfidenceThreshold)
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("(LOWER(vendor) LIKE ? OR LOWER(COALESCE(receipt_no, '')) LIKE ?)", like, like)
	}
	if len(f.Vendors) > 0 {
		query = query.Where("vendor IN ?", f.Vendors)
	}
	if f.VendorID != "" {
		query = query.Where("vendor_id = ?", f.VendorID)
	}
	if f.DateFrom != nil {
		query = query.Where("date_time >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		query = query.Where("date_time <= ?", *f.DateTo)
	}
	if f.MinTotal != nil {
		query = query.Where("total >= ?", *f.MinTotal)
	}
	if f.MaxTotal != nil {
		query = query.Where("total <= ?", *f.MaxTotal)
	}
	return query
}

// orderClause defaults to newest first.
func orderClause(f domain.ReceiptFilter) string {
	column, ok := sortColumns[f.SortBy]
	if !ok {
		return "date_time desc"
	}
	if f.SortDesc {
		return column + " desc"
	}
	return column + " asc"
}

func (r *receiptRepository) GetReceipts(ctx context.Context, filter domain.ReceiptFilter, page, limit int) ([]*entities.Receipt, int64, error) {
	var receipts []*entities.Receipt
	var count int64

	if err := applyFilter(r.db.WithContext(ctx).Model(&entities.Receipt{}), filter).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	query := applyFilter(r.db.WithContext(ctx), filter).Order(orderClause(filter))
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * limit).Limit(limit)
	}
	if err := query.Find(&receipts).Error; err != nil {
		return nil, 0, err
	}
	return receipts, count, nil
}

func (r *receiptRepository) GetReceiptByID(ctx context.Context, id string) (*entities.Receipt, error) {
	var receipt entities.Receipt
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_index asc")
		}).
		Where("id = ?", id).
		First(&receipt).Error
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// CreateReceipt inserts the header and its lines together.
func (r *receiptRepository) CreateReceipt(ctx context.Context, receipt *entities.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepository) UpdateReceipt(ctx context.Context, id string, columns map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&entities.Receipt{}).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *receiptRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	res := r.db.WithContext(ctx).Model(&entities.Receipt{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceLines deletes every line of the receipt and inserts lines in their
// place. Only the lines table is touched.
func (r *receiptRepository) ReplaceLines(ctx context.Context, id string, lines []*entities.ReceiptLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&entities.Receipt{}).Where("id = ?", id).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("receipt_id = ?", id).Delete(&entities.ReceiptLine{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	})
}

func (r *receiptRepository) DeleteReceipt(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Receipt{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *receiptRepository) GetReceiptStats(ctx context.Context, monthStart, monthEnd time.Time) (ReceiptStats, error) {
	var stats ReceiptStats

	var all struct {
		Total         int64
		AvgConfidence float64
	}
	if err := r.db.WithContext(ctx).Model(&entities.Receipt{}).
		Select("COUNT(*) AS total, COALESCE(AVG(confidence_overall), 0) AS avg_confidence").
		Scan(&all).Error; err != nil {
		return stats, err
	}

	var verified struct {
		Verified      int64
		VerifiedTotal float64
	}
	if err := r.db.WithContext(ctx).Model(&entities.Receipt{}).
		Select("COUNT(*) AS verified, COALESCE(SUM(total), 0) AS verified_total").
		Where("status = ?", domain.StatusVerified).
		Scan(&verified).Error; err != nil {
		return stats, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Receipt{}).
		Where("date_time >= ? AND date_time < ?", monthStart, monthEnd).
		Count(&stats.ThisMonth).Error; err != nil {
		return stats, err
	}

	stats.Total = all.Total
	stats.AvgConfidence = all.AvgConfidence
	stats.Verified = verified.Verified
	stats.VerifiedTotal = verified.VerifiedTotal
	return stats, nil
}

func (r *receiptRepository) CreateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *receiptRepository) GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error) {
	var scan entities.ReceiptScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

func (r *receiptRepository) UpdateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Save(scan).Error
}
