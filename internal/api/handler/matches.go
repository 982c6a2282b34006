package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListMatches returns every match the authenticated user participates in.
func (h *Handler) ListMatches(c *gin.Context) {
	matches, err := h.Storage.GetMatchesForUser(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// MatchHistory returns the full, ordered message history of a match.
// Only the two participants may read it.
func (h *Handler) MatchHistory(c *gin.Context) {
	matchID := c.Param("id")

	match, err := h.Storage.GetMatchByID(matchID)
	if err != nil {
		respondError(c, err)
		return
	}
	if match == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		return
	}
	if !match.HasParticipant(currentUserID(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not a participant of this match"})
		return
	}

	history, err := h.Conversations.History(matchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// SendMessage posts a message into a match over plain HTTP. The
// websocket path goes through the hub instead; both end up in the same
// conversation service.
func (h *Handler) SendMessage(c *gin.Context) {
	var body struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	msg, err := h.Conversations.Send(c.Param("id"), currentUserID(c), body.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// MarkRead marks the other participant's messages as read.
func (h *Handler) MarkRead(c *gin.Context) {
	if err := h.Conversations.MarkRead(c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
