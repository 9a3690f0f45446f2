package http

import (
	"errors"
	"net/http"
	"time"

	proposalDomain "cotamarket/internal/domain/proposal"
	quotaDomain "cotamarket/internal/domain/quota"
	proposalUC "cotamarket/internal/usecase/proposal"
	quotaUC "cotamarket/internal/usecase/quota"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// actorID reads the acting user from the header the gateway injects after
// authentication. Never resolved from ambient state: every usecase call gets
// it passed in explicitly.
func actorID(c echo.Context) string {
	return c.Request().Header.Get("X-Actor-Id")
}

// httpError maps engine errors onto status codes. Conflicts from the
// reservation race get 409 so callers know it was contention, not a bug.
func httpError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, quotaDomain.ErrNotFound), errors.Is(err, proposalDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, proposalDomain.ErrConflictingReservation):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "this quota was just reserved by another proposal"})
	case errors.Is(err, proposalDomain.ErrIllegalTransition),
		errors.Is(err, proposalDomain.ErrMissingReason),
		errors.Is(err, proposalDomain.ErrQuotaUnavailable),
		errors.Is(err, proposalDomain.ErrSelfPurchase),
		errors.Is(err, proposalDomain.ErrMissingEntityID),
		errors.Is(err, quotaDomain.ErrNotEditable),
		errors.Is(err, quotaDomain.ErrBadStatus),
		errors.Is(err, proposalDomain.ErrBadStatus),
		errors.Is(err, quotaUC.ErrInvalidInput),
		errors.Is(err, proposalUC.ErrInvalidInput):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, quotaDomain.ErrNotOwner):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
