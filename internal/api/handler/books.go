package handler

import (
	"net/http"

	"swapx/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateBook lists a new book for the authenticated user.
func (h *Handler) CreateBook(c *gin.Context) {
	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.Catalog.CreateBook(currentUserID(c), &book); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, book)
}

// ListBooks returns all listings, newest first; ?tag= narrows the result.
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.Catalog.ListBooks(c.Query("tag"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

// GetBook returns one listing.
func (h *Handler) GetBook(c *gin.Context) {
	book, err := h.Catalog.GetBook(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

// MyBooks returns the authenticated user's listings.
func (h *Handler) MyBooks(c *gin.Context) {
	books, err := h.Catalog.ListBooksByOwner(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

// UpdateBook applies owner-only edits to a listing.
func (h *Handler) UpdateBook(c *gin.Context) {
	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	book.ID = c.Param("id")

	updated, err := h.Catalog.UpdateBook(currentUserID(c), &book)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetAvailability toggles a listing on or off the shelf.
func (h *Handler) SetAvailability(c *gin.Context) {
	var body struct {
		Available *bool `json:"available"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Available == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Field 'available' is required"})
		return
	}

	if err := h.Catalog.SetAvailability(c.Param("id"), currentUserID(c), *body.Available); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": *body.Available})
}

// DeleteBook hard-deletes a listing.
func (h *Handler) DeleteBook(c *gin.Context) {
	if err := h.Catalog.DeleteBook(c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Impact returns the user's accumulated carbon savings.
func (h *Handler) Impact(c *gin.Context) {
	summary, err := h.Catalog.TotalImpact(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
