package config

import (
	"os"
	"strconv"
	"strings"
)

// DatabaseConfig holds PostgreSQL database connection settings.
// An empty Host selects the in-memory repositories.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
	ConnectRetries     int
}

// Enabled reports whether a PostgreSQL backend is configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether object storage is configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// MapsConfig holds Google Maps Platform settings.
type MapsConfig struct {
	APIKey     string
	BaseURL    string
	TimeoutSec int
}

// ListingsConfig holds the RapidAPI Airbnb listings endpoint settings.
type ListingsConfig struct {
	APIKey     string
	Host       string
	BaseURL    string
	RatePerSec float64
	TimeoutSec int
}

// ScraperConfig controls the headless browser used for listing pages.
type ScraperConfig struct {
	Headless     bool
	TimeoutSec   int
	UserAgent    string
	AllowedHosts []string
}

// CacheConfig controls the distance cache.
type CacheConfig struct {
	DistanceTTLSec int
	DistanceSize   int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Database DatabaseConfig
	MinIO    MinIOConfig
	Maps     MapsConfig
	Listings ListingsConfig
	Scraper  ScraperConfig
	Cache    CacheConfig
}

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			ConnectRetries:     getEnvInt("DB_CONNECT_RETRIES", 5),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Maps: MapsConfig{
			APIKey:     getEnv("GOOGLE_MAPS_API_KEY", ""),
			BaseURL:    getEnv("GOOGLE_MAPS_BASE_URL", "https://maps.googleapis.com"),
			TimeoutSec: getEnvInt("MAPS_TIMEOUT_SEC", 10),
		},
		Listings: ListingsConfig{
			APIKey:     getEnv("RAPIDAPI_KEY", ""),
			Host:       getEnv("RAPIDAPI_HOST", "airbnb13.p.rapidapi.com"),
			BaseURL:    getEnv("RAPIDAPI_BASE_URL", "https://airbnb13.p.rapidapi.com"),
			RatePerSec: getEnvFloat("LISTINGS_RATE_PER_SEC", 2),
			TimeoutSec: getEnvInt("LISTINGS_TIMEOUT_SEC", 15),
		},
		Scraper: ScraperConfig{
			Headless:     getEnvBool("SCRAPER_HEADLESS", true),
			TimeoutSec:   getEnvInt("SCRAPER_TIMEOUT_SEC", 45),
			UserAgent:    getEnv("SCRAPER_USER_AGENT", defaultUserAgent),
			AllowedHosts: getEnvList("SCRAPER_ALLOWED_HOSTS", []string{"www.airbnb.com", "airbnb.com"}),
		},
		Cache: CacheConfig{
			DistanceTTLSec: getEnvInt("DISTANCE_CACHE_TTL_SEC", 24*60*60),
			DistanceSize:   getEnvInt("DISTANCE_CACHE_SIZE", 4096),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}

// getEnvList splits a comma-separated value, dropping blanks.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	out := make([]string, 0)
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
