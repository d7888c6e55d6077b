package main

import (
	"log"

	"billwise/config"
	"billwise/pkg/receipt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const serviceVersion = "1.0.0"

// Package-level collaborators wired in main; tests substitute stubs.
var (
	cfg       *config.Config
	engine    receipt.Engine
	extractor fieldExtractor
)

func main() {
	// .env is optional; deployments set variables in the environment.
	_ = godotenv.Load()
	cfg = config.Load()

	tess := receipt.NewTesseract(cfg.TessdataPrefix)
	engine = tess
	extractor = receipt.NewExtractor(tess)

	r := gin.Default()
	setupRoutes(r)

	log.Printf("Billwise OCR service listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server: %v", err)
	}
}
