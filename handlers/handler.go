// Package handlers exposes the store over HTTP. Handlers validate input at
// the boundary (amounts, categories, share sums, protected membership) and
// translate store errors to statuses; business state lives in the store.
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SahilGite123/budget-buddy-together/store"
	"github.com/SahilGite123/budget-buddy-together/utils"
)

// Handler carries the store dependency for all route handlers. The store is
// injected once at startup; there are no package-level globals.
type Handler struct {
	store *store.Store
}

func New(s *store.Store) *Handler {
	return &Handler{store: s}
}

// respondStoreError maps store errors onto HTTP statuses.
func (h *Handler) respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, store.ErrInsufficientFunds):
		utils.UnprocessableEntity(c, err.Error())
	default:
		utils.InternalError(c, err.Error())
	}
}
