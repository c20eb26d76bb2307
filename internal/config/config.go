package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries every externally sourced setting. It is built once in main
// and passed into handlers; business code never reads the environment.
type Config struct {
	MongoURI          string
	DBName            string
	TelegramBotToken  string
	TelegramChatID    string
	AdminPass         string
	JWTSecret         string
	RequireAdminToken bool
	Port              string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	return Config{
		MongoURI:          getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:            getEnvOrDefault("DB_NAME", "canteen"),
		TelegramBotToken:  getEnvOrDefault("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:    getEnvOrDefault("TELEGRAM_CHAT_ID", ""),
		AdminPass:         getEnvOrDefault("ADMIN_PASS", "12345"),
		JWTSecret:         getEnvOrDefault("JWT_SECRET", "canteen-dev-secret"),
		RequireAdminToken: getBoolEnv("ADMIN_TOKEN_REQUIRED", false),
		Port:              getEnvOrDefault("PORT", "3000"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
