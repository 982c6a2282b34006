package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateSwapRequest opens a pending swap request on a book.
func (h *Handler) CreateSwapRequest(c *gin.Context) {
	req, err := h.Requests.CreateRequest(c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// BookSwapRequests lists the incoming swap requests on one of the
// user's own books.
func (h *Handler) BookSwapRequests(c *gin.Context) {
	reqs, err := h.Requests.ListForBook(c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// MySwapRequests lists swap requests the user is a party to.
func (h *Handler) MySwapRequests(c *gin.Context) {
	reqs, err := h.Requests.ListForUser(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// UpdateSwapRequest moves a swap request along its lifecycle.
func (h *Handler) UpdateSwapRequest(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Field 'status' is required"})
		return
	}

	req, err := h.Requests.UpdateStatus(c.Param("id"), currentUserID(c), body.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}
