package handler

import (
	"errors"
	"net/http"

	"swapx/backend/internal/catalog"
	"swapx/backend/internal/chathub"
	"swapx/backend/internal/media"
	"swapx/backend/internal/storage"
	"swapx/backend/internal/swap"

	"github.com/gin-gonic/gin"
)

// Handler bundles the services behind the HTTP and websocket surface.
type Handler struct {
	Hub           *chathub.ManagerService
	Conversations *chathub.ConversationService
	Catalog       *catalog.Service
	Ledger        *swap.LedgerService
	Matcher       *swap.MatcherService
	Requests      *swap.RequestService
	Storage       storage.Storage
	Media         *media.S3Service
}

func NewHandler(hub *chathub.ManagerService, cat *catalog.Service, ledger *swap.LedgerService,
	matcher *swap.MatcherService, requests *swap.RequestService, s storage.Storage, m *media.S3Service) *Handler {
	return &Handler{
		Hub:           hub,
		Conversations: hub.Conversations,
		Catalog:       cat,
		Ledger:        ledger,
		Matcher:       matcher,
		Requests:      requests,
		Storage:       s,
		Media:         m,
	}
}

// respondError maps the storage error kinds onto HTTP statuses. Anything
// unrecognized is treated as a transient store failure the client may
// retry.
func respondError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, storage.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, storage.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
