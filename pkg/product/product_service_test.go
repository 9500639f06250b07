package product_test

import (
	"context"
	"testing"

	"receipt-ledger/domain"
	"receipt-ledger/entities"
	"receipt-ledger/pkg/product"
	mock_product "receipt-ledger/pkg/product/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func catalog() []*entities.Product {
	return []*entities.Product{
		{
			ID:          uuid.New(),
			Name:        "Frites Julienne 2.5kg",
			Aliases:     datatypes.JSONSlice[string]{"FRITES JUL 2.5KG"},
			DefaultUnit: strPtr("sac"),
			Category:    strPtr("surgelés"),
		},
		{
			ID:      uuid.New(),
			Name:    "Café Arabica",
			Aliases: datatypes.JSONSlice[string]{},
		},
	}
}

func TestCreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mock_product.NewMockProductRepository(ctrl)
	svc := product.NewProductService(repo)

	repo.EXPECT().GetProductByName(ctx, "Hot-Dog").Return(nil, gorm.ErrRecordNotFound)
	repo.EXPECT().CreateProduct(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *entities.Product) error {
		assert.Nil(t, p.Category)
		require.NotNil(t, p.DefaultUnit)
		assert.Equal(t, "pce", *p.DefaultUnit)
		return nil
	})

	res, err := svc.CreateProduct(ctx, domain.ProductRequest{Name: "Hot-Dog", DefaultUnit: " pce ", Category: "  "})
	require.NoError(t, err)
	assert.Equal(t, "Hot-Dog", res.Name)
	assert.Equal(t, "pce", res.DefaultUnit)
	assert.Empty(t, res.Category)
	assert.Equal(t, []string{}, res.Aliases)
}

func TestCreateProduct_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mock_product.NewMockProductRepository(ctrl)
	svc := product.NewProductService(repo)

	_, err := svc.CreateProduct(ctx, domain.ProductRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrProductNameEmpty)

	repo.EXPECT().GetProductByName(ctx, "Café Arabica").Return(catalog()[1], nil)
	_, err = svc.CreateProduct(ctx, domain.ProductRequest{Name: "Café Arabica"})
	assert.ErrorIs(t, err, domain.ErrProductNameTaken)
}

func TestUpdateProduct_NameTakenByOther(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mock_product.NewMockProductRepository(ctrl)
	items := catalog()

	repo.EXPECT().GetProductByID(ctx, items[0].ID.String()).Return(items[0], nil)
	repo.EXPECT().GetProductByName(ctx, "Café Arabica").Return(items[1], nil)

	_, err := product.NewProductService(repo).UpdateProduct(ctx, items[0].ID.String(), domain.ProductRequest{Name: "Café Arabica"})
	assert.ErrorIs(t, err, domain.ErrProductNameTaken)
}

func TestGetProducts_ByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mock_product.NewMockProductRepository(ctrl)
	repo.EXPECT().GetProducts(ctx, "surgelés").Return(catalog()[:1], nil)

	res, err := product.NewProductService(repo).GetProducts(ctx, "surgelés")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "surgelés", res[0].Category)
	assert.Equal(t, "sac", res[0].DefaultUnit)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_product.NewMockProductRepository(ctrl)
	repo.EXPECT().DeleteProduct(gomock.Any(), "p1").Return(gorm.ErrRecordNotFound)

	err := product.NewProductService(repo).DeleteProduct(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestMatchProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mock_product.NewMockProductRepository(ctrl)
	repo.EXPECT().GetProducts(ctx, "").Return(catalog(), nil)

	matches, err := product.NewProductService(repo).MatchProducts(ctx, []string{
		"frites jul 2.5kg",
		"Unknown item",
		"CAFE ARABICA",
	})
	require.NoError(t, err)
	require.Len(t, matches, 3)

	require.NotNil(t, matches[0])
	assert.Equal(t, "Frites Julienne 2.5kg", matches[0].Name)
	assert.Nil(t, matches[1])
	require.NotNil(t, matches[2])
	assert.Equal(t, "Café Arabica", matches[2].Name)
}
