package config

import "os"

type Config struct {
	Port               string
	Env                string
	DatabaseURL        string
	JWTSecret          string
	FCMCredentialsPath string
}

func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		DatabaseURL:        getEnv("DATABASE_URL", "studenthub.db"),
		JWTSecret:          getEnv("JWT_SECRET", "supersecretjwtkey"),
		FCMCredentialsPath: getEnv("FCM_CREDENTIALS_PATH", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
