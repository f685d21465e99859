package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	EmbeddingBaseURL      string
	DenseModel            string
	SparseModel           string
	MetadataFieldsToEmbed []string
	LLMProvider           string // "ollama"
	LLMBaseURL            string
	LLMModel              string
	TopKResults           int
	CategorizeWithSearch  bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001"),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			EmbeddingBaseURL:      getEnv("EMBEDDING_BASE_URL", "http://localhost:8090"),
			DenseModel:            getEnv("EMBEDDING_DENSE_MODEL", "BAAI/bge-small-en-v1.5"),
			SparseModel:           getEnv("EMBEDDING_SPARSE_MODEL", "prithvida/Splade_PP_en_v1"),
			MetadataFieldsToEmbed: getEnvAsList("METADATA_FIELDS_TO_EMBED", "title,folder"),
			LLMProvider:           getEnv("LLM_PROVIDER", "ollama"),
			LLMBaseURL:            getEnv("LLM_BASE_URL", "http://localhost:11434"),
			LLMModel:              getEnv("LLM_MODEL", "llama3.1:8b-instruct-q3_K_S"),
			TopKResults:           getEnvAsInt("RETRIEVAL_TOP_K", 3),
			CategorizeWithSearch:  getEnvAsBool("CATEGORIZE_WITH_SEARCH", false),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
