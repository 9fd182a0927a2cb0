package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the configuration for the rating model pipeline
type Config struct {
	Corpus   CorpusConfig
	Features FeatureConfig
	Split    SplitConfig
	Model    ModelConfig
}

// CorpusConfig holds review corpus loading configuration
type CorpusConfig struct {
	Path  string
	Limit int
}

// FeatureConfig holds tokenizer and vocabulary configuration
type FeatureConfig struct {
	VocabSize      int
	MinTokenLen    int
	EnableStemming bool
}

// SplitConfig holds train/validation/test partitioning configuration
type SplitConfig struct {
	Seed int64
}

// ModelConfig holds the regularization candidate grid
type ModelConfig struct {
	LambdaGrid []float64
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Path:  GetStringEnv("CORPUS_PATH", "./data/reviews.json"),
			Limit: GetIntEnv("CORPUS_LIMIT", 10000),
		},
		Features: FeatureConfig{
			VocabSize:      GetIntEnv("VOCAB_SIZE", 1000),
			MinTokenLen:    GetIntEnv("MIN_TOKEN_LEN", 1),
			EnableStemming: GetBoolEnv("ENABLE_STEMMING", false),
		},
		Split: SplitConfig{
			Seed: GetInt64Env("SPLIT_SEED", 42),
		},
		Model: ModelConfig{
			LambdaGrid: GetFloatsEnv("LAMBDA_GRID", []float64{0.01, 0.1, 1, 10, 100}),
		},
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// GetFloatsEnv parses a comma-separated list of floats. The default is
// returned whole if the variable is unset or any element fails to parse.
func GetFloatsEnv(key string, defaultValue []float64) []float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	parsed := make([]float64, 0, len(parts))
	for _, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return defaultValue
		}
		parsed = append(parsed, f)
	}
	return parsed
}
