package httptransport

import (
	"errors"
	"log/slog"
	"net/http"

	"docdesk/internal/controller"
	"docdesk/internal/domains"
	"docdesk/internal/httpx"
	"docdesk/internal/storage/providers"
)

func writeError(w http.ResponseWriter, err error) {
	if httpx.Validation(w, err) {
		return
	}
	switch {
	case errors.Is(err, controller.ErrSessionNotFound),
		errors.Is(err, providers.ErrTemplateNotFound),
		errors.Is(err, domains.ErrUnknownDocument):
		httpx.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, controller.ErrNoDialog):
		httpx.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, controller.ErrUnknownField),
		errors.Is(err, controller.ErrUnknownAction),
		errors.Is(err, controller.ErrUnknownSlot):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domains.ErrAssetRead):
		httpx.Error(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error("request failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "internal error")
	}
}
