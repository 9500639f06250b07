package seed

import (
	"encoding/json"
	"fmt"
	"time"

	"receipt-ledger/domain"
	"receipt-ledger/entities"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	demoLine struct {
		raw, norm                   string
		qty, unitPrice, lineTotal   float64
		unit                        string
		cQty, cPrice, cTotal, cDesc float64
	}

	demoReceipt struct {
		vendor     string
		linked     bool
		dateTime   string
		receiptNo  string
		total      float64
		paid       float64
		change     float64
		status     string
		confidence float64
		imageURL   string
		lines      []demoLine
	}
)

var demoVendors = []entities.Vendor{
	{Name: "Metro Cash & Carry", Aliases: datatypes.JSONSlice[string]{"Metro", "Metro Maroc"}},
	{Name: "Marjane", Aliases: datatypes.JSONSlice[string]{"Marjane Market"}},
	{Name: "Carrefour", Aliases: datatypes.JSONSlice[string]{"Carrefour Market"}},
	{Name: "MaCuisine", Aliases: datatypes.JSONSlice[string]{"Ma Cuisine"}},
}

func str(s string) *string { return &s }

var demoProducts = []entities.Product{
	{Name: "Frites Julienne 2.5kg", Category: str("Frozen"), DefaultUnit: str("kg")},
	{Name: "Hot-Dog", Category: str("Frozen"), DefaultUnit: str("pcs")},
	{Name: "Thon", Category: str("Canned Goods"), DefaultUnit: str("kg")},
	{Name: "Huile 5L", Category: str("Oil"), DefaultUnit: str("L"), Aliases: datatypes.JSONSlice[string]{"Oil 5L"}},
	{Name: "Pommes de terre", Category: str("Produce"), DefaultUnit: str("kg"), Aliases: datatypes.JSONSlice[string]{"Pommes"}},
	{Name: "Oeufs", Category: str("Eggs"), DefaultUnit: str("pcs"), Aliases: datatypes.JSONSlice[string]{"Eggs"}},
	{Name: "Sacs Kraft", Category: str("Supplies"), DefaultUnit: str("pcs"), Aliases: datatypes.JSONSlice[string]{"Kraft bags"}},
}

const imageBase = "https://images.pexels.com/photos/%s?auto=compress&cs=tinysrgb&w=800"

var demoReceipts = []demoReceipt{
	{
		vendor: "Metro Cash & Carry", linked: true, dateTime: "2025-10-20T14:30:00Z", receiptNo: "R20251020-001",
		total: 216, paid: 220, change: 4, status: domain.StatusVerified, confidence: 0.95,
		imageURL: "3944405/pexels-photo-3944405.jpeg",
		lines: []demoLine{
			{"Frites Julienne 7/7 2.5kg", "Frites Julienne 2.5kg", 4, 49, 196, "kg", 0.95, 0.98, 0.99, 0.92},
			{"Hot-Dog", "Hot-Dog", 2, 10, 20, "pcs", 0.99, 0.97, 0.98, 0.95},
		},
	},
	{
		vendor: "Metro Cash & Carry", linked: true, dateTime: "2025-10-18T11:15:00Z", receiptNo: "R20251018-002",
		total: 360, paid: 360, change: 0, status: domain.StatusVerified, confidence: 0.98,
		imageURL: "5632381/pexels-photo-5632381.jpeg",
		lines: []demoLine{
			{"Thon 1700g", "Thon 1.7kg", 3, 120, 360, "kg", 0.98, 0.99, 0.99, 0.97},
		},
	},
	{
		vendor: "Marjane", linked: true, dateTime: "2025-10-15T16:45:00Z", receiptNo: "MAR-20251015-789",
		total: 1319.6, paid: 1320, change: 0.4, status: domain.StatusDraft, confidence: 0.82,
		imageURL: "5632371/pexels-photo-5632371.jpeg",
		lines: []demoLine{
			{"Huile 5L", "Oil 5L", 2, 85, 170, "L", 0.85, 0.82, 0.88, 0.79},
			{"Pommes 2.5kg", "Pommes de terre 2.5kg", 4, 45, 180, "kg", 0.90, 0.85, 0.92, 0.75},
			{"Oeufs 100pcs", "Eggs 100", 5, 120, 600, "pcs", 0.78, 0.80, 0.82, 0.85},
			{"Sacs Kraft 26", "Kraft bags 26", 10, 36.96, 369.6, "pcs", 0.81, 0.75, 0.79, 0.82},
		},
	},
	{
		vendor: "MaCuisine", linked: true, dateTime: "2025-10-12T10:20:00Z", receiptNo: "MC-456",
		total: 55.1, paid: 60, change: 4.9, status: domain.StatusVerified, confidence: 0.91,
		imageURL: "4226140/pexels-photo-4226140.jpeg",
		lines: []demoLine{
			{"Spatule Silicone", "Silicone Spatula", 2, 15.5, 31, "pcs", 0.92, 0.91, 0.93, 0.89},
			{"Fouet Inox", "Stainless Steel Whisk", 1, 24.1, 24.1, "pcs", 0.95, 0.88, 0.90, 0.91},
		},
	},
	{
		vendor: "Carrefour", linked: false, dateTime: "2025-10-10T09:30:00Z", receiptNo: "CF-2025-1010",
		total: 145.5, paid: 150, change: 4.5, status: domain.StatusDraft, confidence: 0.76,
		imageURL: "5625120/pexels-photo-5625120.jpeg",
		lines: []demoLine{
			{"Pain de mie", "Sliced bread", 3, 8.5, 25.5, "pcs", 0.80, 0.75, 0.78, 0.72},
			{"Lait 1L", "Milk 1L", 4, 12, 48, "L", 0.75, 0.78, 0.76, 0.74},
			{"Yaourt nature", "Plain yogurt", 6, 12, 72, "pcs", 0.73, 0.71, 0.75, 0.70},
		},
	},
	{
		vendor: "Metro Cash & Carry", linked: true, dateTime: "2025-10-08T13:00:00Z", receiptNo: "R20251008-555",
		total: 89.75, paid: 90, change: 0.25, status: domain.StatusVerified, confidence: 0.93,
		imageURL: "5632402/pexels-photo-5632402.jpeg",
		lines: []demoLine{
			{"Tomates 1kg", "Tomatoes 1kg", 2.5, 15, 37.5, "kg", 0.94, 0.93, 0.95, 0.91},
			{"Concombre", "Cucumber", 3, 5.75, 17.25, "pcs", 0.92, 0.90, 0.93, 0.94},
			{"Oignons", "Onions", 1.5, 10, 15, "kg", 0.89, 0.92, 0.91, 0.93},
			{"Poivrons", "Bell peppers", 4, 5, 20, "pcs", 0.91, 0.94, 0.92, 0.90},
		},
	},
}

// Seed upserts the demo vendors by name, inserts the demo products skipping
// names that exist, and adds the six demo receipts with their lines.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		vendors := make([]entities.Vendor, len(demoVendors))
		copy(vendors, demoVendors)
		for i := range vendors {
			vendors[i].ID = uuid.New()
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"aliases", "updated_at"}),
		}).Create(&vendors).Error; err != nil {
			return fmt.Errorf("seed vendors: %w", err)
		}

		vendorIDs := map[string]uuid.UUID{}
		var stored []entities.Vendor
		if err := tx.Find(&stored).Error; err != nil {
			return fmt.Errorf("load vendors: %w", err)
		}
		for _, v := range stored {
			vendorIDs[v.Name] = v.ID
		}

		products := make([]entities.Product, len(demoProducts))
		copy(products, demoProducts)
		for i := range products {
			products[i].ID = uuid.New()
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}

		for _, d := range demoReceipts {
			r, err := d.entity(vendorIDs)
			if err != nil {
				return err
			}
			if err := tx.Create(r).Error; err != nil {
				return fmt.Errorf("seed receipt %s: %w", d.receiptNo, err)
			}
		}
		return nil
	})
}

func (d demoReceipt) entity(vendorIDs map[string]uuid.UUID) (*entities.Receipt, error) {
	dt, err := time.Parse(time.RFC3339, d.dateTime)
	if err != nil {
		return nil, err
	}

	r := &entities.Receipt{
		ID:                uuid.New(),
		Vendor:            d.vendor,
		DateTime:          dt,
		ReceiptNo:         str(d.receiptNo),
		Currency:          domain.CurrencyMAD,
		Total:             d.total,
		Paid:              &d.paid,
		Status:            d.status,
		ConfidenceOverall: d.confidence,
		ImageURL:          str(fmt.Sprintf(imageBase, d.imageURL)),
	}
	if d.change != 0 {
		change := d.change
		r.Change = &change
	}
	if id, ok := vendorIDs[d.vendor]; ok && d.linked {
		r.VendorID = &id
	}

	for i, l := range d.lines {
		conf, err := json.Marshal(domain.LineConfidences{
			Qty:         &l.cQty,
			UnitPrice:   &l.cPrice,
			LineTotal:   &l.cTotal,
			Description: &l.cDesc,
		})
		if err != nil {
			return nil, err
		}
		r.Lines = append(r.Lines, &entities.ReceiptLine{
			ID:              uuid.New(),
			ReceiptID:       r.ID,
			LineIndex:       i,
			DescriptionRaw:  l.raw,
			DescriptionNorm: str(l.norm),
			Qty:             l.qty,
			UnitPrice:       l.unitPrice,
			LineTotal:       l.lineTotal,
			Unit:            str(l.unit),
			Confidences:     datatypes.JSON(conf),
		})
	}
	return r, nil
}

// Clear deletes every row of every table, children first.
func Clear(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&entities.ReceiptScan{},
			&entities.ReceiptLine{},
			&entities.Receipt{},
			&entities.Product{},
			&entities.Vendor{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Reset clears the database and seeds it again.
func Reset(db *gorm.DB) error {
	if err := Clear(db); err != nil {
		return err
	}
	return Seed(db)
}
