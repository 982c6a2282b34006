package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ToggleLike flips the like state on a book for the authenticated user.
// The match detector runs only after a successful off-to-on toggle, so
// the like row is durable before reciprocity is evaluated. The response
// carries the new state, the like count, and the match if one just
// formed.
func (h *Handler) ToggleLike(c *gin.Context) {
	bookID := c.Param("id")
	userID := currentUserID(c)

	liked, err := h.Ledger.ToggleLike(bookID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"liked": liked}

	if liked {
		match, err := h.Matcher.EvaluateAndCreateMatch(userID, bookID)
		if err != nil {
			// The like itself is durable; report the detection failure
			// without pretending the toggle failed.
			log.Printf("ERROR: Match detection failed for user %s on book %s: %v", userID, bookID, err)
			c.JSON(http.StatusBadGateway, gin.H{"liked": true, "error": "match detection failed"})
			return
		}
		if match != nil {
			resp["match"] = match
		}
	}

	if count, err := h.Ledger.LikeCount(bookID); err == nil {
		resp["like_count"] = count
	}
	c.JSON(http.StatusOK, resp)
}

// LikeStatus reports whether the user likes the book and how many likes
// it has.
func (h *Handler) LikeStatus(c *gin.Context) {
	bookID := c.Param("id")

	liked, err := h.Ledger.IsLiked(bookID, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	count, err := h.Ledger.LikeCount(bookID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked, "like_count": count})
}
