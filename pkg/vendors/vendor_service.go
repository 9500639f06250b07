package vendor

import (
	"context"
	"errors"
	"receipt-ledger/domain"
	"receipt-ledger/entities"
	"receipt-ledger/internal/utils/format"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	VendorService interface {
		GetVendors(ctx context.Context) ([]domain.VendorResponse, error)
		GetVendorByID(ctx context.Context, id string) (domain.VendorResponse, error)
		CreateVendor(ctx context.Context, req domain.VendorRequest) (domain.VendorResponse, error)
		UpdateVendor(ctx context.Context, id string, req domain.VendorRequest) (domain.VendorResponse, error)
		DeleteVendor(ctx context.Context, id string) error

		// ResolveVendorID returns the id of the vendor named exactly name, or "".
		ResolveVendorID(ctx context.Context, name string) (string, error)
		// MatchVendor finds the vendor whose name or alias matches text.
		MatchVendor(ctx context.Context, text string) (*domain.VendorResponse, error)
	}

	vendorService struct {
		vendorRepository VendorRepository
	}
)

func NewVendorService(vendorRepository VendorRepository) VendorService {
	return &vendorService{vendorRepository: vendorRepository}
}

func toVendorResponse(v *entities.Vendor) domain.VendorResponse {
	aliases := []string(v.Aliases)
	if aliases == nil {
		aliases = []string{}
	}
	return domain.VendorResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Aliases:   aliases,
		CreatedAt: v.CreatedAt,
	}
}

func (s *vendorService) GetVendors(ctx context.Context) ([]domain.VendorResponse, error) {
	vendors, err := s.vendorRepository.GetVendors(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		response = append(response, toVendorResponse(v))
	}
	return response, nil
}

func (s *vendorService) GetVendorByID(ctx context.Context, id string) (domain.VendorResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.VendorResponse{}, domain.ErrParseUUID
	}

	v, err := s.vendorRepository.GetVendorByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.VendorResponse{}, domain.ErrVendorNotFound
		}
		return domain.VendorResponse{}, err
	}
	return toVendorResponse(v), nil
}

// ensureNameFree fails when another vendor already uses name.
func (s *vendorService) ensureNameFree(ctx context.Context, name string, selfID uuid.UUID) error {
	existing, err := s.vendorRepository.GetVendorByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domain.ErrVendorNameTaken
	}
	return nil
}

func (s *vendorService) CreateVendor(ctx context.Context, req domain.VendorRequest) (domain.VendorResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.VendorResponse{}, domain.ErrVendorNameEmpty
	}
	if err := s.ensureNameFree(ctx, name, uuid.Nil); err != nil {
		return domain.VendorResponse{}, err
	}

	v := &entities.Vendor{
		ID:      uuid.New(),
		Name:    name,
		Aliases: format.CleanAliases(req.Aliases),
	}
	if err := s.vendorRepository.CreateVendor(ctx, v); err != nil {
		return domain.VendorResponse{}, err
	}
	return toVendorResponse(v), nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, id string, req domain.VendorRequest) (domain.VendorResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.VendorResponse{}, domain.ErrVendorNameEmpty
	}

	v, err := s.vendorRepository.GetVendorByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.VendorResponse{}, domain.ErrVendorNotFound
		}
		return domain.VendorResponse{}, err
	}
	if err := s.ensureNameFree(ctx, name, v.ID); err != nil {
		return domain.VendorResponse{}, err
	}

	v.Name = name
	v.Aliases = format.CleanAliases(req.Aliases)
	if err := s.vendorRepository.UpdateVendor(ctx, v); err != nil {
		return domain.VendorResponse{}, err
	}
	return toVendorResponse(v), nil
}

func (s *vendorService) DeleteVendor(ctx context.Context, id string) error {
	if err := s.vendorRepository.DeleteVendor(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrVendorNotFound
		}
		return err
	}
	return nil
}

func (s *vendorService) ResolveVendorID(ctx context.Context, name string) (string, error) {
	v, err := s.vendorRepository.GetVendorByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return v.ID.String(), nil
}

func (s *vendorService) MatchVendor(ctx context.Context, text string) (*domain.VendorResponse, error) {
	vendors, err := s.vendorRepository.GetVendors(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range vendors {
		if format.MatchesName(text, v.Name, v.Aliases) {
			res := toVendorResponse(v)
			return &res, nil
		}
	}
	return nil, nil
}
