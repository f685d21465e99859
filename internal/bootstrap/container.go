package bootstrap

import (
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"notealog-ai-be/internal/config"
	"notealog-ai-be/internal/controller"
	"notealog-ai-be/internal/pkg/logger"
	"notealog-ai-be/internal/repository/unitofwork"
	"notealog-ai-be/internal/service"
	"notealog-ai-be/pkg/embedding"
	"notealog-ai-be/pkg/llm/factory"
	"notealog-ai-be/pkg/runlock"
)

type Container struct {
	// Controllers
	DocumentController   controller.IDocumentController
	RetrievalController  controller.IRetrievalController
	CategorizeController controller.ICategorizeController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Exposed for the one-shot CLI
	CategorizeService service.ICategorizeService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI providers
	embeddingProvider := embedding.NewFastembedProvider(
		cfg.Ai.EmbeddingBaseURL,
		cfg.Ai.DenseModel,
		cfg.Ai.SparseModel,
	)
	if err := embeddingProvider.WarmUp(); err != nil {
		// Models load lazily on first request instead; keep booting.
		log.Printf("[WARN] Embedding warm up failed: %v", err)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
	)
	if err != nil {
		log.Panicf("Unable to initialize LLM provider: %v", err)
	}

	// 4. Run lock: redis when configured, in-process otherwise
	var locker runlock.Locker
	if cfg.App.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Panicf("Invalid REDIS_URL: %v", err)
		}
		locker = runlock.NewRedisLocker(redis.NewClient(opts))
		log.Println("[INFO] Using redis run lock")
	} else {
		locker = runlock.NewLocalLocker()
		log.Println("[INFO] Using in-process run lock")
	}

	queryCache := cache.New(5*time.Minute, 10*time.Minute)

	// 5. Services
	embeddingService := service.NewEmbeddingService(uowFactory, embeddingProvider, cfg.Ai.MetadataFieldsToEmbed)
	retrievalService := service.NewRetrievalService(uowFactory, embeddingProvider, queryCache)
	publisherService := service.NewPublisherService(pubSub)
	categorizeService := service.NewCategorizeService(
		uowFactory,
		llmProvider,
		retrievalService,
		publisherService,
		locker,
		sysLogger,
		service.CategorizeConfig{
			ModelName:        cfg.Ai.LLMModel,
			UseSearchContext: cfg.Ai.CategorizeWithSearch,
			SearchTopK:       cfg.Ai.TopKResults,
		},
	)
	consumerService := service.NewConsumerService(pubSub, sysLogger)

	// 6. Controllers
	return &Container{
		DocumentController:   controller.NewDocumentController(embeddingService),
		RetrievalController:  controller.NewRetrievalController(retrievalService, cfg.Ai.TopKResults),
		CategorizeController: controller.NewCategorizeController(categorizeService),
		ConsumerService:      consumerService,
		CategorizeService:    categorizeService,
		Logger:               sysLogger,
	}
}
