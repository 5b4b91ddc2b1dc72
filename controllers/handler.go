// Package controllers exposes the hotel store to the admin UI over JSON.
package controllers

import (
	"context"
	"errors"
	"hotelpro-backend/forms"
	"hotelpro-backend/store"
	"hotelpro-backend/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler serves every /auth and /api route.
type Handler struct {
	store *store.Store
	auth  Auth
	log   *zap.Logger
	now   func() time.Time
}

func NewHandler(s *store.Store, auth Auth, log *zap.Logger) *Handler {
	return &Handler{store: s, auth: auth, log: log, now: time.Now}
}

func (h *Handler) eventForm() *forms.EventForm {
	f := forms.NewEventForm(h.store)
	f.SetClock(h.now)
	return f
}

func (h *Handler) serviceForm() *forms.ServiceForm {
	return forms.NewServiceForm(h.store)
}

func parseID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+what+" ID format")
		return uuid.Nil, false
	}
	return id, true
}

func confirmed(c *gin.Context) bool {
	return c.Query("confirm") == "true"
}

// respondError maps store and form errors onto HTTP responses. Anything it
// does not recognise is logged and reported as failedMsg.
func (h *Handler) respondError(c *gin.Context, err error, notFoundMsg, failedMsg string) {
	var verr *forms.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondWithFieldErrors(c, http.StatusBadRequest, verr.Message, verr.Fields)
	case errors.Is(err, store.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, forms.ErrNoHallsAvailable):
		utils.RespondWithError(c, http.StatusConflict, "No halls available. Please add halls before creating events")
	case errors.Is(err, store.ErrConflict):
		utils.RespondWithError(c, http.StatusConflict, "Record was changed by someone else. Reload it and try again")
	case errors.Is(err, store.ErrDuplicateID):
		utils.RespondWithError(c, http.StatusConflict, "Record already exists")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Request cancelled")
	default:
		h.log.Error(failedMsg, zap.Error(err), zap.String("path", c.FullPath()))
		utils.RespondWithError(c, http.StatusInternalServerError, failedMsg)
	}
}
