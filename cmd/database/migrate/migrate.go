package migration

import (
	"fmt"
	"log"

	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Individual{}); err != nil {
		log.Fatalf("Error migrating individual database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Kitchen{}); err != nil {
		log.Fatalf("Error migrating kitchen database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ngo{}); err != nil {
		log.Fatalf("Error migrating ngo database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.TransactionHistory{}); err != nil {
		log.Fatalf("Error migrating transaction history database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Listing{}); err != nil {
		log.Fatalf("Error migrating listing database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Transaction{}); err != nil {
		log.Fatalf("Error migrating transaction database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Payment{}); err != nil {
		log.Fatalf("Error migrating payment database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
