package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateVendor = "vendor created successfully"
	MessageSuccessUpdateVendor = "vendor updated successfully"
	MessageSuccessDeleteVendor = "vendor deleted successfully"
	MessageSuccessGetVendors   = "vendors retrieved successfully"

	MessageFailedCreateVendor = "failed to create vendor"
	MessageFailedUpdateVendor = "failed to update vendor"
	MessageFailedDeleteVendor = "failed to delete vendor"
	MessageFailedGetVendors   = "failed to retrieve vendors"

	ErrVendorNotFound  = errors.New("vendor not found")
	ErrVendorNameEmpty = errors.New("vendor name is required")
	ErrVendorNameTaken = errors.New("vendor name already exists")
)

type (
	VendorRequest struct {
		Name    string   `json:"name" validate:"required"`
		Aliases []string `json:"aliases"`
	}

	VendorResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Aliases   []string  `json:"aliases"`
		CreatedAt time.Time `json:"created_at"`
	}
)
