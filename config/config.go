package config

import (
	"os"
)

type Config struct {
	ServerAddr string
	MysqlDSN   string
	JWTSecret  string
	LogLevel   string
}

var Cfg *Config

func Load() {
	Cfg = &Config{
		ServerAddr: ":" + getEnv("PORT", "8080"),
		MysqlDSN:   getEnv("MYSQL_DSN", "root:root@tcp(localhost:3306)/friendbook?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:  getEnv("JWT_SECRET", "friendbook-secret-key-change-in-production"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
