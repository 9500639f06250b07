package migration

import (
	"fmt"
	"log"

	"receipt-ledger/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 backs every primary key default
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Vendor{}); err != nil {
		log.Printf("Error migrating vendor database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Printf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Receipt{}); err != nil {
		log.Printf("Error migrating receipt database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ReceiptLine{}); err != nil {
		log.Printf("Error migrating receipt line database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ReceiptScan{}); err != nil {
		log.Printf("Error migrating receipt scan database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
