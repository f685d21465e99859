package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"notealog-ai-be/internal/entity"
	"notealog-ai-be/internal/repository/unitofwork"
	"notealog-ai-be/pkg/database"
	"notealog-ai-be/pkg/embedding"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.NoteRepository())
	assert.NotNil(t, uow.FolderRepository())
	assert.NotNil(t, uow.DocumentRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Note Repository", func(t *testing.T) {
		count, err := uow.NoteRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Note count: %d", count)
	})

	t.Run("Check Document Repository", func(t *testing.T) {
		// Count implies the table and the vector columns exist
		count, err := uow.DocumentRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Document count: %d", count)
	})

	t.Run("Check Folder GetOrCreate Idempotency", func(t *testing.T) {
		ctx := context.Background()
		name := "integration-folder-" + uuid.NewString()

		first, err := uow.FolderRepository().GetOrCreateByName(ctx, name)
		assert.NoError(t, err)
		assert.NotEmpty(t, first.Id)

		second, err := uow.FolderRepository().GetOrCreateByName(ctx, name)
		assert.NoError(t, err)
		assert.Equal(t, first.Id, second.Id, "same name must resolve to the same folder row")
	})

	t.Run("Check Transactional Note Assignment", func(t *testing.T) {
		ctx := context.Background()

		noteId := uuid.NewString()
		note := &entity.Note{
			Id:        noteId,
			Title:     "Integration Note",
			Content:   "Transactional assignment smoke test",
			CreatedAt: time.Now(),
		}

		err := uow.NoteRepository().Create(ctx, note)
		assert.NoError(t, err)

		txUow := uowFactory.NewUnitOfWork(ctx)
		err = txUow.Begin(ctx)
		assert.NoError(t, err)
		defer txUow.Rollback()

		folder, err := txUow.FolderRepository().GetOrCreateByName(ctx, "integration-assign-"+uuid.NewString())
		assert.NoError(t, err)

		note.FolderId = folder.Id
		err = txUow.NoteRepository().Update(ctx, note)
		assert.NoError(t, err)

		err = txUow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully assigned Note to Folder in Transaction")
	})

	t.Run("Check Document Upsert And Hybrid Search", func(t *testing.T) {
		ctx := context.Background()

		dense := make([]float32, 384)
		dense[0] = 1
		sparse := embedding.SparseVector{0: 0.8, 42: 0.3}

		doc := &entity.Document{
			Id:              entity.ComputeDocumentId("integration doc " + uuid.NewString()),
			Content:         "hybrid search smoke test",
			Metadata:        map[string]interface{}{entity.MetadataFolder: "unassigned"},
			Embedding:       dense,
			SparseEmbedding: sparse,
			CreatedAt:       time.Now(),
		}

		err := uow.DocumentRepository().Upsert(ctx, []*entity.Document{doc})
		assert.NoError(t, err)
		defer uow.DocumentRepository().DeleteByIds(ctx, []string{doc.Id})

		scored, err := uow.DocumentRepository().HybridSearch(ctx, dense, sparse, 3)
		assert.NoError(t, err)
		assert.NotEmpty(t, scored)

		found := false
		for _, sd := range scored {
			if sd.Document.Id == doc.Id {
				found = true
				assert.Greater(t, sd.Score, 0.0)
			}
		}
		assert.True(t, found, "freshly upserted document should be retrievable")
	})
}
