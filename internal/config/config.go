package config

import (
	"os"
	"strconv"
	"time"
)

// Data source names
const (
	SourceJSON   = "json"
	SourceSQLite = "sqlite"
)

// Config 应用配置
type Config struct {
	Port           string
	PopulationFile string
	BoundariesFile string
	DataSource     string // json or sqlite
	DBPath         string
	OffsetStrategy string // none or codes
	MockSeed       string // year, random or an integer
	RateLimit      int    // Requests per RateWindow per client, 0 disables
	RateWindow     time.Duration
	StaticDir      string
	TemplateDir    string
}

// Load 加载配置
func Load() *Config {
	return &Config{
		Port:           getEnvWithDefault("PORT", ":5000"),
		PopulationFile: getEnvWithDefault("POPULATION_FILE", "data/population.json"),
		BoundariesFile: getEnvWithDefault("BOUNDARIES_FILE", "data/boundaries.geojson"),
		DataSource:     getEnvWithDefault("DATA_SOURCE", SourceJSON),
		DBPath:         getEnvWithDefault("DB_PATH", "data/population.db"),
		OffsetStrategy: getEnvWithDefault("OFFSET_STRATEGY", "codes"),
		MockSeed:       getEnvWithDefault("MOCK_SEED", "year"),
		RateLimit:      getEnvAsInt("RATE_LIMIT", 120),
		RateWindow:     time.Minute,
		StaticDir:      getEnvWithDefault("STATIC_DIR", "static"),
		TemplateDir:    getEnvWithDefault("TEMPLATE_DIR", "templates"),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
