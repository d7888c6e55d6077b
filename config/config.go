package config

import (
	"os"
	"strings"
)

type Config struct {
	ServerPort     string
	TessdataPrefix string
	AllowedOrigins []string
	MaxUploadBytes int64
}

func Load() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8000"
	}

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000,http://localhost:5001"
	}

	return &Config{
		ServerPort:     serverPort,
		TessdataPrefix: os.Getenv("TESSDATA_PREFIX"),
		AllowedOrigins: strings.Split(origins, ","),
		MaxUploadBytes: 10 * 1024 * 1024, // 10 MiB
	}
}
