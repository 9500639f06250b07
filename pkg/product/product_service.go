package product

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
	ProductService interface {
		GetProducts(ctx context.Context, category string) ([]domain.ProductResponse, error)
		GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error)
		CreateProduct(ctx context.Context, req domain.ProductRequest) (domain.ProductResponse, error)
		UpdateProduct(ctx context.Context, id string, req domain.ProductRequest) (domain.ProductResponse, error)
		DeleteProduct(ctx context.Context, id string) error

		// MatchProducts returns, for each text, the product whose name or
		// alias matches it, or nil.
		MatchProducts(ctx context.Context, texts []string) ([]*domain.ProductResponse, error)
	}

	productService struct {
		productRepository ProductRepository
	}
)

func NewProductService(productRepository ProductRepository) ProductService {
	return &productService{productRepository: productRepository}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toProductResponse(p *entities.Product) domain.ProductResponse {
	aliases := []string(p.Aliases)
	if aliases == nil {
		aliases = []string{}
	}
	return domain.ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Aliases:     aliases,
		DefaultUnit: deref(p.DefaultUnit),
		Category:    deref(p.Category),
		CreatedAt:   p.CreatedAt,
	}
}

func (s *productService) GetProducts(ctx context.Context, category string) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.GetProducts(ctx, category)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}
	return response, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ProductResponse{}, domain.ErrParseUUID
	}

	p, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}
	return toProductResponse(p), nil
}

func (s *productService) ensureNameFree(ctx context.Context, name string, selfID uuid.UUID) error {
	existing, err := s.productRepository.GetProductByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domain.ErrProductNameTaken
	}
	return nil
}

func (s *productService) CreateProduct(ctx context.Context, req domain.ProductRequest) (domain.ProductResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ProductResponse{}, domain.ErrProductNameEmpty
	}
	if err := s.ensureNameFree(ctx, name, uuid.Nil); err != nil {
		return domain.ProductResponse{}, err
	}

	p := &entities.Product{
		ID:          uuid.New(),
		Name:        name,
		Aliases:     format.CleanAliases(req.Aliases),
		DefaultUnit: optional(req.DefaultUnit),
		Category:    optional(req.Category),
	}
	if err := s.productRepository.CreateProduct(ctx, p); err != nil {
		return domain.ProductResponse{}, err
	}
	return toProductResponse(p), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req domain.ProductRequest) (domain.ProductResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ProductResponse{}, domain.ErrProductNameEmpty
	}

	p, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}
	if err := s.ensureNameFree(ctx, name, p.ID); err != nil {
		return domain.ProductResponse{}, err
	}

	p.Name = name
	p.Aliases = format.CleanAliases(req.Aliases)
	p.DefaultUnit = optional(req.DefaultUnit)
	p.Category = optional(req.Category)
	if err := s.productRepository.UpdateProduct(ctx, p); err != nil {
		return domain.ProductResponse{}, err
	}
	return toProductResponse(p), nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.productRepository.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}
	return nil
}

func (s *productService) MatchProducts(ctx context.Context, texts []string) ([]*domain.ProductResponse, error) {
	products, err := s.productRepository.GetProducts(ctx, "")
	if err != nil {
		return nil, err
	}

	matches := make([]*domain.ProductResponse, len(texts))
	for i, text := range texts {
		for _, p := range products {
			if format.MatchesName(text, p.Name, p.Aliases) {
				res := toProductResponse(p)
				matches[i] = &res
				break
			}
		}
	}
	return matches, nil
}
