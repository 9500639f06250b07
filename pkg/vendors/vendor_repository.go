package vendor

import (
	"context"
	"receipt-ledger/entities"

	"gorm.io/gorm"
)

type (
	//go:generate mockgen -destination=mocks/mock_vendor_repository.go -source=vendor_repository.go VendorRepository
	VendorRepository interface {
		GetVendors(ctx context.Context) ([]*entities.Vendor, error)
		GetVendorByID(ctx context.Context, id string) (*entities.Vendor, error)
		GetVendorByName(ctx context.Context, name string) (*entities.Vendor, error)
		CreateVendor(ctx context.Context, vendor *entities.Vendor) error
		UpdateVendor(ctx context.Context, vendor *entities.Vendor) error
		DeleteVendor(ctx context.Context, id string) error
	}

	vendorRepository struct {
		db *gorm.DB
	}
)

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) GetVendors(ctx context.Context) ([]*entities.Vendor, error) {
	var vendors []*entities.Vendor
	if err := r.db.WithContext(ctx).Order("name asc").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *vendorRepository) GetVendorByID(ctx context.Context, id string) (*entities.Vendor, error) {
	var vendor entities.Vendor
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) GetVendorByName(ctx context.Context, name string) (*entities.Vendor, error) {
	var vendor entities.Vendor
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) CreateVendor(ctx context.Context, vendor *entities.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

func (r *vendorRepository) UpdateVendor(ctx context.Context, vendor *entities.Vendor) error {
	return r.db.WithContext(ctx).Save(vendor).Error
}

// DeleteVendor detaches receipts from the vendor before removing it.
func (r *vendorRepository) DeleteVendor(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Receipt{}).Where("vendor_id = ?", id).
			Update("vendor_id", nil).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&entities.Vendor{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
