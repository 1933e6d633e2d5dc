package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	// XP accounting
	BlockXP      int // awarded per completed content block
	DailyBonusXP int // awarded when the full daily challenge set is solved
	LevelStepXP  int // points per level

	// Outbound email
	SendGridKey string
	EmailSender string

	// External platform sync
	LeetCodeApiURL string
	GfgProfileURL  string
	SyncCronSpec   string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		BlockXP:      getEnvInt("BLOCK_XP", 25),
		DailyBonusXP: getEnvInt("DAILY_BONUS_XP", 100),
		LevelStepXP:  getEnvInt("LEVEL_STEP_XP", 500),

		SendGridKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender: getEnv("EMAIL_SENDER", "noreply@codenexus.app"),

		LeetCodeApiURL: getEnv("LEETCODE_API_URL", "https://leetcode.com/graphql"),
		GfgProfileURL:  getEnv("GFG_PROFILE_URL", "https://www.geeksforgeeks.org/user"),
		SyncCronSpec:   getEnv("SYNC_CRON_SPEC", "*/30 * * * *"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SendGridKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Outbound email is disabled.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
