package main

import (
	"log"
	"os"

	"notealog-ai-be/internal/constant"
	"notealog-ai-be/internal/model"
	"notealog-ai-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatalf("failed to create pgvector extension: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Folder{},
		&model.Note{},
		&model.DocumentEmbedding{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if err := seedUnassignedFolder(db); err != nil {
		log.Fatalf("failed to seed unassigned folder: %v", err)
	}

	log.Println("migration completed")
}

// seedUnassignedFolder guarantees the sentinel folder that holds new notes
// until categorization assigns them somewhere real.
func seedUnassignedFolder(db *gorm.DB) error {
	folder := model.Folder{
		Id:   constant.UnassignedFolderId,
		Name: constant.UnassignedFolderName,
	}
	return db.Where(model.Folder{Id: constant.UnassignedFolderId}).
		FirstOrCreate(&folder).Error
}
