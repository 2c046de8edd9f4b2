package handlers

import (
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"portfolio-api/internal/config"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	cfg *config.Config
}

func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

var imageExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadImage stores an uploaded image under the configured uploads
// directory and returns its public URL.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"message": "No file uploaded"})
		return
	}

	maxSize := h.cfg.Uploads.MaxSizeMB * 1024 * 1024
	if file.Size > maxSize {
		c.JSON(400, gin.H{"message": fmt.Sprintf("File exceeds %dMB limit", h.cfg.Uploads.MaxSizeMB)})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if !imageExtensions[ext] || !strings.HasPrefix(contentType, "image/") {
		c.JSON(400, gin.H{"message": "Only image files are allowed"})
		return
	}

	filename := fmt.Sprintf("image-%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
	dest := filepath.Join(h.cfg.Uploads.Dir, filename)

	if err := c.SaveUploadedFile(file, dest); err != nil {
		log.Printf("Failed to save uploaded file: %v", err)
		c.JSON(500, gin.H{"message": "Failed to upload file"})
		return
	}

	c.JSON(200, gin.H{"imageUrl": "/uploads/" + filename})
}
