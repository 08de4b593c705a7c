package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	GinMode        string
	DatabaseURL    string
	DatabaseName   string
	AllowedOrigins []string
	Storage        StorageConfig
	Uploads        UploadConfig
}

// StorageConfig holds the Cloudflare R2 (S3 API) settings used for product images.
type StorageConfig struct {
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // https://<account-id>.r2.cloudflarestorage.com
	PublicDomain    string
}

type UploadConfig struct {
	AllowedExtensions []string
	AllowedMimeTypes  []string
	MaxSizeMB         int
	MaxFiles          int
}

// Enabled reports whether every R2 setting needed to upload is present.
func (s StorageConfig) Enabled() bool {
	return s.Bucket != "" && s.AccessKeyID != "" && s.SecretAccessKey != "" && s.Endpoint != ""
}

// DatabaseConfigured reports whether both the connection string and the database name are set.
func (c *Config) DatabaseConfigured() bool {
	return c.DatabaseURL != "" && c.DatabaseName != ""
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment without touching .env files.
func FromEnv() *Config {
	return &Config{
		Port:           getEnv("PORT", "8000"),
		GinMode:        ginMode(getEnv("GIN_MODE", gin.ReleaseMode)),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DatabaseName:   getEnv("DATABASE_NAME", ""),
		AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{"*"}),
		Storage: StorageConfig{
			Bucket:          getEnv("R2_BUCKET", ""),
			AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			Endpoint:        getEnv("R2_ENDPOINT", ""),
			PublicDomain:    strings.TrimRight(getEnv("R2_PUBLIC_DOMAIN", ""), "/"),
		},
		Uploads: UploadConfig{
			AllowedExtensions: getEnvAsList("ALLOWED_FILE_EXTENSIONS", []string{".jpg", ".jpeg", ".png", ".webp"}),
			AllowedMimeTypes:  getEnvAsList("ALLOWED_FILE_MIME_TYPES", []string{"image/jpeg", "image/png", "image/webp"}),
			MaxSizeMB:         getEnvAsInt("MAX_UPLOAD_SIZE_MB", 5),
			MaxFiles:          getEnvAsInt("MAX_PRODUCT_IMAGES", 4),
		},
	}
}

// ginMode keeps an unknown GIN_MODE from reaching gin.SetMode, which panics on it.
func ginMode(mode string) string {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return mode
	}
	log.Printf("Unknown GIN_MODE %q, using %s", mode, gin.ReleaseMode)
	return gin.ReleaseMode
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	out := []string{}
	for _, item := range strings.Split(getEnv(key, ""), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
