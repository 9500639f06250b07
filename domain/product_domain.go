package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateProduct = "product created successfully"
	MessageSuccessUpdateProduct = "product updated successfully"
	MessageSuccessDeleteProduct = "product deleted successfully"
	MessageSuccessGetProducts   = "products retrieved successfully"

	MessageFailedCreateProduct = "failed to create product"
	MessageFailedUpdateProduct = "failed to update product"
	MessageFailedDeleteProduct = "failed to delete product"
	MessageFailedGetProducts   = "failed to retrieve products"

	ErrProductNotFound  = errors.New("product not found")
	ErrProductNameEmpty = errors.New("product name is required")
	ErrProductNameTaken = errors.New("product name already exists")
)

type (
	ProductRequest struct {
		Name        string   `json:"name" validate:"required"`
		Aliases     []string `json:"aliases"`
		DefaultUnit string   `json:"default_unit"`
		Category    string   `json:"category"`
	}

	ProductResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Aliases     []string  `json:"aliases"`
		DefaultUnit string    `json:"default_unit,omitempty"`
		Category    string    `json:"category,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
