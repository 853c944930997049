package middleware

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxImagePath is where the saved upload path is attached to the context.
const CtxImagePath = "image_path"

// PhotoUpload saves the "image" multipart file into dir under a random name
// and exposes the path to the handler. Requests without an image, with a
// non-image content type, or over the size cap are rejected. The handler is
// responsible for removing the temp file after the external upload.
func PhotoUpload(dir string, maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "no image provided"})
			return
		}
		if !strings.HasPrefix(file.Header.Get("Content-Type"), "image") {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unsupported file format"})
			return
		}
		if file.Size > maxSize {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "image too large"})
			return
		}

		dst := filepath.Join(dir, uuid.NewString()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, dst); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
			return
		}
		c.Set(CtxImagePath, dst)
		c.Next()
	}
}
