package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UploadCover stores a cover image in object storage and returns the
// reference URL the client puts on the book listing.
func (h *Handler) UploadCover(c *gin.Context) {
	if h.Media == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Object storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Field 'image' is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	prefix := "covers/" + currentUserID(c) + "/"
	key, err := h.Media.Upload(c.Request.Context(), prefix, fileHeader.Filename, file, contentType)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upload failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"key": key, "url": h.Media.ObjectURL(key)})
}
