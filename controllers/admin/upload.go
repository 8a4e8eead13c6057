package adminController

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/HafizBasit7/ZES-Admin/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadImage accepts a multipart image (max 5MB, image/* only), stores it
// under the upload directory with a random filename and returns the public
// URL the storefront can serve it from.
func UploadImage(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No image file provided"})
			return
		}

		contentType := file.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			c.JSON(http.StatusBadRequest, gin.H{"message": "File must be an image"})
			return
		}

		if file.Size > cfg.MaxUploadBytes {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Image size must be less than 5MB"})
			return
		}

		if err := os.MkdirAll(cfg.UploadDir, os.ModePerm); err != nil {
			log.Printf("❌ Failed to create upload folder: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading image"})
			return
		}

		filename := uuid.NewString() + filepath.Ext(file.Filename)
		savePath := filepath.Join(cfg.UploadDir, filename)

		if err := c.SaveUploadedFile(file, savePath); err != nil {
			log.Printf("❌ Failed to save image: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading image"})
			return
		}

		imageURL := fmt.Sprintf("%s/%s", cfg.UploadPublicPath, filename)
		c.JSON(http.StatusOK, gin.H{
			"message":  "Image uploaded successfully",
			"imageUrl": imageURL,
		})
	}
}
