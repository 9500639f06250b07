package routes

import (
	"receipt-ledger/internal/api/handlers"
	"receipt-ledger/internal/middleware"
	"receipt-ledger/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	ReceiptHandler   handlers.ReceiptHandler
	WorkspaceHandler handlers.WorkspaceHandler
	VendorHandler    handlers.VendorHandler
	ProductHandler   handlers.ProductHandler
	ExportHandler    handlers.ExportHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Receipts()
	c.Vendors()
	c.Products()
	c.Exports()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Receipts() {
	receipts := c.App.Group("/api/v1/receipts", c.Middleware.AuthMiddleware(c.JWTService))
	receipts.Get("/dashboard", c.ReceiptHandler.GetDashboardStats)
	receipts.Post("/upload", c.ReceiptHandler.UploadReceipt)

	// Basic CRUD operations
	receipts.Get("", c.ReceiptHandler.GetReceipts)
	receipts.Post("", c.ReceiptHandler.CreateReceipt)
	receipts.Get("/:id", c.ReceiptHandler.GetReceipt)
	receipts.Put("/:id", c.ReceiptHandler.UpdateReceipt)
	receipts.Delete("/:id", c.ReceiptHandler.DeleteReceipt)
	receipts.Patch("/:id/status", c.ReceiptHandler.UpdateStatus)
	receipts.Put("/:id/lines", c.ReceiptHandler.ReplaceLines)

	// Per receipt exports
	receipts.Get("/:id/export/lines.csv", c.ExportHandler.ExportReceiptLines)
	receipts.Get("/:id/export.json", c.ExportHandler.ExportReceipt)

	c.Workspace(receipts.Group("/:id/workspace"))
}

// Workspace mounts the reconciliation endpoints of one receipt under router.
func (c *Config) Workspace(workspace fiber.Router) {
	workspace.Post("", c.WorkspaceHandler.OpenWorkspace)
	workspace.Get("", c.WorkspaceHandler.GetWorkspace)
	workspace.Delete("", c.WorkspaceHandler.CloseWorkspace)
	workspace.Patch("/header", c.WorkspaceHandler.UpdateHeader)

	// Grid operations
	workspace.Post("/lines", c.WorkspaceHandler.AddLine)
	workspace.Delete("/lines/selected", c.WorkspaceHandler.DeleteSelected)
	workspace.Post("/lines/:row/duplicate", c.WorkspaceHandler.DuplicateLine)
	workspace.Delete("/lines/:row", c.WorkspaceHandler.DeleteLine)
	workspace.Put("/lines/:row/:field", c.WorkspaceHandler.UpdateCell)
	workspace.Post("/cells/:row/:field", c.WorkspaceHandler.EditCell)
	workspace.Post("/keys", c.WorkspaceHandler.PressKey)
	workspace.Post("/blur", c.WorkspaceHandler.Blur)
	workspace.Post("/selection/:row", c.WorkspaceHandler.ToggleSelection)

	workspace.Post("/save", c.WorkspaceHandler.Save)
	workspace.Post("/verify", c.WorkspaceHandler.Verify)
}

func (c *Config) Vendors() {
	vendors := c.App.Group("/api/v1/vendors", c.Middleware.AuthMiddleware(c.JWTService))
	vendors.Get("/match", c.VendorHandler.MatchVendor)
	vendors.Get("", c.VendorHandler.GetVendors)
	vendors.Post("", c.VendorHandler.CreateVendor)
	vendors.Get("/:id", c.VendorHandler.GetVendor)
	vendors.Put("/:id", c.VendorHandler.UpdateVendor)
	vendors.Delete("/:id", c.VendorHandler.DeleteVendor)
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products", c.Middleware.AuthMiddleware(c.JWTService))
	products.Get("", c.ProductHandler.GetProducts)
	products.Post("", c.ProductHandler.CreateProduct)
	products.Get("/:id", c.ProductHandler.GetProduct)
	products.Put("/:id", c.ProductHandler.UpdateProduct)
	products.Delete("/:id", c.ProductHandler.DeleteProduct)
}

func (c *Config) Exports() {
	exports := c.App.Group("/api/v1/exports", c.Middleware.AuthMiddleware(c.JWTService))
	exports.Get("/receipts.csv", c.ExportHandler.ExportReceiptsCSV)
	exports.Get("/receipts.json", c.ExportHandler.ExportReceiptsJSON)
	exports.Post("/email", c.ExportHandler.EmailReceipts)
}
