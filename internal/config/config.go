package config

import (
	"errors"  // For configuration errors
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For list parsing

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort          string   // Application port
	DBDriver         string   // Database driver: mysql, postgres or sqlite
	DBUser           string   // Database user
	DBPassword       string   // Database password
	DBHost           string   // Database host
	DBPort           string   // Database port
	DBName           string   // Database name
	DBSSLMode        string   // Postgres sslmode
	DBPath           string   // SQLite file path
	DBMaxOpenConns   int      // Connection pool size
	DBMaxIdleConns   int      // Idle connections kept in the pool
	DBConnMaxLifeMin int      // Connection lifetime in minutes
	JWTSecret        string   // JWT secret key
	JWTIssuer        string   // JWT issuer claim
	JWTAudience      string   // JWT audience claim
	JWTExpiryMinutes int      // Token lifetime in minutes
	RedisAddr        string   // Redis server address, empty disables token revocation
	RedisPass        string   // Redis password
	RedisDB          int      // Redis database number
	IsProd           bool     // Is production environment
	MaxPageSize      int      // Upper bound for pageSize on list endpoints
	AdminEmail       string   // Seeded admin account, empty skips seeding
	AdminPassword    string   // Seeded admin password
	CORSOrigins      []string // Allowed browser origins
}

// ErrMissingJWTSecret is returned when JWT_SECRET is not set
var ErrMissingJWTSecret = errors.New("config: JWT_SECRET must be set")

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present
	cfg := &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		DBDriver:         strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           os.Getenv("DB_PORT"),
		DBName:           getEnv("DB_NAME", "partner_management"),
		DBSSLMode:        getEnv("DB_SSLMODE", "disable"),
		DBPath:           getEnv("DB_PATH", "data/partner_management.db"),
		DBMaxOpenConns:   getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:   getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTIssuer:        getEnv("JWT_ISSUER", "partner-management"),
		JWTAudience:      getEnv("JWT_AUDIENCE", "partner-management-client"),
		JWTExpiryMinutes: getEnvInt("JWT_EXPIRY_MINUTES", 60),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPass:        os.Getenv("REDIS_PASS"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		IsProd:           os.Getenv("IS_PROD") == "true",
		MaxPageSize:      getEnvInt("MAX_PAGE_SIZE", 100),
		AdminEmail:       os.Getenv("ADMIN_EMAIL"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		CORSOrigins:      getEnvList("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
	}
	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
