package main

import (
	"image"
	"io"
	"log"
	"net/http"
	"strings"

	"billwise/pkg/imgio"
	"billwise/pkg/receipt"

	"github.com/gin-gonic/gin"
)

// fieldExtractor is the sole contract the request layer depends on.
type fieldExtractor interface {
	ExtractFields(img image.Image) (receipt.Fields, error)
}

var allowedTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"application/pdf": true,
}

func setupRoutes(r *gin.Engine) {
	r.Use(corsMiddleware())
	r.GET("/", rootHandler)
	r.GET("/health", healthHandler)
	r.POST("/ocr", ocrHandler)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		for _, allowed := range cfg.AllowedOrigins {
			if origin == strings.TrimSpace(allowed) {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Credentials", "true")
				c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
				break
			}
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "running",
		"message": "OCR service running",
		"version": serviceVersion,
	})
}

// healthHandler reports readiness by querying the OCR engine version. The
// query has no side effects on the extraction core.
func healthHandler(c *gin.Context) {
	version := engine.Version()
	if version == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"ready":  false,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":            "healthy",
		"tesseract_version": version,
		"service":           "OCR",
		"ready":             true,
	})
}

// ocrHandler accepts a multipart receipt upload, validates its size and type,
// and returns the extracted fields in a JSON envelope.
func ocrHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file missing"})
		return
	}
	if fileHeader.Size > cfg.MaxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 10MB)"})
		return
	}
	ct := strings.ToLower(fileHeader.Header.Get("Content-Type"))
	if !allowedTypes[ct] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file type; allowed: png, jpeg, pdf"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "open upload failed"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "read upload failed"})
		return
	}

	img, err := imgio.Decode(data, ct)
	if err != nil {
		log.Printf("decode failed for %s: %v", fileHeader.Filename, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image file or corrupted data"})
		return
	}

	fields, err := extractor.ExtractFields(img)
	if err != nil {
		log.Printf("extraction failed for %s: %v", fileHeader.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "OCR processing failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": fields})
}
