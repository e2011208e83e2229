package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBDriver     string
	DBHost       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBPort       string
	Port         string
	AppURL       string
	AppEnv       string
	AppAuthKey   string
	AppEncKey    string
	StoreTimeout time.Duration
	ReadRetries  int
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBDriver:     getEnv("DB_DRIVER", "mysql"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		DBPort:       os.Getenv("DB_PORT"),
		Port:         getEnv("APP_PORT", ":8080"),
		AppURL:       getEnv("APP_URL", "https://loja-joias.com"),
		AppEnv:       getEnv("APP_ENV", "development"),
		AppAuthKey:   os.Getenv("APP_AUTH_KEY"),
		AppEncKey:    os.Getenv("APP_ENC_KEY"),
		StoreTimeout: getDuration("STORE_TIMEOUT", 5*time.Second),
		ReadRetries:  getInt("READ_RETRIES", 2),
	}

}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("LoadEnv: invalid %s %q, using %v", key, raw, fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		log.Printf("LoadEnv: invalid %s %q, using %d", key, raw, fallback)
		return fallback
	}
	return n
}

var LoadENV = LoadEnv()
