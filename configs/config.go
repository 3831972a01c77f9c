package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	Origin  string
	GinMode string

	JWTSecret string
	JWTTTL    time.Duration

	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	DBMaxOpenConns int
	DBMaxIdleConns int

	LogLevel string

	AMQPURL      string
	AMQPExchange string

	EmailHost string
	EmailPort string
	EmailUser string
	EmailPass string
	EmailFrom string

	UploadMaxBytes   int64
	RecoveryTokenTTL time.Duration

	AdminUser     string
	AdminPassword string
	AdminEmail    string
}

func LoadConfig() *Config {
	// .env is optional; real deployments inject variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment only")
	}

	return &Config{
		Port:    getEnv("PORT", "3000"),
		Origin:  getEnv("ORIGIN", "http://localhost:5000"),
		GinMode: getEnv("GIN_MODE", "release"),

		JWTSecret: getEnv("JWT_SECRET", "secret"),
		JWTTTL:    time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,

		DBUser:         getEnv("DB_USER", "root"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBHost:         getEnv("DB_HOST", "127.0.0.1"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBName:         getEnv("DB_NAME", "poskeeper"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 10),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		AMQPURL:      os.Getenv("AMQP_URL"),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "ordenes_fanout"),

		EmailHost: os.Getenv("EMAIL_HOST"),
		EmailPort: getEnv("EMAIL_PORT", "587"),
		EmailUser: os.Getenv("EMAIL_USER"),
		EmailPass: os.Getenv("EMAIL_PASS"),
		EmailFrom: os.Getenv("EMAIL_FROM"),

		UploadMaxBytes:   int64(getEnvInt("UPLOAD_MAX_BYTES", 2*1024*1024)),
		RecoveryTokenTTL: time.Duration(getEnvInt("RECOVERY_TOKEN_TTL_MINUTES", 5)) * time.Minute,

		AdminUser:     os.Getenv("ADMIN_USER"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
