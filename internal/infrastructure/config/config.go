package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "gravegrounds-secret-key-change-in-production"

// Config contém todas as configurações da aplicação
type Config struct {
	Env        string
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Storage    StorageConfig
	Moderation ModerationConfig
	Upload     UploadConfig
	RateLimit  RateLimitConfig
	Admin      AdminConfig
	Reconcile  ReconcileConfig
	Logging    LoggingConfig
	CORS       CORSConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type RedisConfig struct {
	URL string
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// StorageConfig seleciona o BlobStore: local, minio ou s3
type StorageConfig struct {
	Driver          string
	UploadDir       string
	PublicUploadURL string
	Endpoint        string
	AccessKey       string
	SecretKey       string
	Bucket          string
	Region          string
	UseSSL          bool
}

type ModerationConfig struct {
	URL       string
	Threshold float64
	Timeout   time.Duration
}

type UploadConfig struct {
	MaxBytes int64
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

type AdminConfig struct {
	Emails []string
}

type ReconcileConfig struct {
	Interval time.Duration // zero desativa o job periódico
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// Load carrega as configurações do arquivo .env (opcional) e das variáveis de ambiente
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := &Config{
		Env: getString("ENV", "development"),
		Server: ServerConfig{
			Port:    getString("PORT", "3000"),
			Host:    getString("HOST", "0.0.0.0"),
			BaseURL: getString("API_BASE_URL", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			Host:        getString("DB_HOST", "localhost"),
			Port:        getInt("DB_PORT", 5432),
			User:        getString("DB_USER", "postgres"),
			Password:    getString("DB_PASS", ""),
			DBName:      getString("DB_NAME", "gravegrounds"),
			SSLMode:     getString("DB_SSL_MODE", "disable"),
			MaxConns:    getInt("DB_MAX_CONNS", 20),
			MinConns:    getInt("DB_MIN_CONNS", 2),
			MaxIdleTime: getInt("DB_MAX_IDLE_TIME", 300),
		},
		Redis: RedisConfig{
			URL: getString("REDIS_URL", ""),
		},
		JWT: JWTConfig{
			Secret:       getString("JWT_SECRET", defaultJWTSecret),
			AccessExpiry: getDuration("JWT_ACCESS_EXPIRY", 24*time.Hour),
		},
		Storage: StorageConfig{
			Driver:          getString("STORAGE_DRIVER", "local"),
			UploadDir:       getString("UPLOAD_DIR", "./uploads"),
			PublicUploadURL: getString("PUBLIC_UPLOAD_URL", "http://localhost:3000/uploads"),
			Endpoint:        getString("STORAGE_ENDPOINT", ""),
			AccessKey:       getString("STORAGE_ACCESS_KEY", ""),
			SecretKey:       getString("STORAGE_SECRET_KEY", ""),
			Bucket:          getString("STORAGE_BUCKET", "gravegrounds"),
			Region:          getString("STORAGE_REGION", "us-east-1"),
			UseSSL:          getBool("STORAGE_USE_SSL", false),
		},
		Moderation: ModerationConfig{
			URL:       getString("MODERATION_URL", ""),
			Threshold: getFloat("MODERATION_THRESHOLD", 0.5),
			Timeout:   getDuration("MODERATION_TIMEOUT", 10*time.Second),
		},
		Upload: UploadConfig{
			MaxBytes: int64(getInt("UPLOAD_MAX_BYTES", 5*1024*1024)),
		},
		RateLimit: RateLimitConfig{
			Max:    getInt("RATE_LIMIT_MAX", 100),
			Window: getDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		},
		Admin: AdminConfig{
			Emails: getList("ADMIN_EMAILS"),
		},
		Reconcile: ReconcileConfig{
			Interval: getDuration("RECONCILE_INTERVAL", 0),
		},
		Logging: LoggingConfig{
			Level: getString("LOG_LEVEL", "info"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getString("CORS_ALLOWED_ORIGINS", "*"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate recusa combinações inseguras ou inválidas
func (c *Config) Validate() error {
	if c.Env == "production" {
		if c.JWT.Secret == defaultJWTSecret || len(c.JWT.Secret) < 32 {
			return errors.New("JWT_SECRET must be set to at least 32 characters in production")
		}
		if c.CORS.AllowedOrigins == "*" {
			return errors.New("CORS_ALLOWED_ORIGINS must list explicit origins in production")
		}
	}

	if c.Moderation.Threshold <= 0 || c.Moderation.Threshold > 1 {
		return fmt.Errorf("MODERATION_THRESHOLD must be in (0, 1], got %v", c.Moderation.Threshold)
	}

	switch c.Storage.Driver {
	case "local", "minio", "s3":
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	return nil
}

// IsAdminEmail verifica se o email recebe o papel de admin no cadastro
func (a AdminConfig) IsAdminEmail(email string) bool {
	for _, e := range a.Emails {
		if strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func getString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
