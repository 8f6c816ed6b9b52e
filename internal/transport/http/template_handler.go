package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"docdesk/internal/domains"
	"docdesk/internal/httpx"
)

type TemplateHandlers struct {
	service TemplateServices
}

type TemplateServices interface {
	CreateTemplate(ctx context.Context, name string, kind domains.FieldKind, fields domains.Fields) (domains.Template, error)
	ListTemplates(ctx context.Context) []domains.Template
	GetTemplate(ctx context.Context, id string) (domains.Template, error)
	DeleteTemplate(ctx context.Context, id string) error
	ClearTemplates(ctx context.Context) error
}

func NewTemplateHandlers(service TemplateServices) *TemplateHandlers {
	return &TemplateHandlers{
		service: service,
	}
}

func (h *TemplateHandlers) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	templateData, err := httpx.ReadBody[domains.TemplateCreate](r)
	if err != nil {
		slog.Warn("create template: bad body", "err", err)
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if !templateData.Kind.Valid() {
		writeError(w, &domains.ValidationError{Message: "unknown template type", Fields: []string{"type"}})
		return
	}
	fields, err := templateData.DecodeFields()
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	template, err := h.service.CreateTemplate(r.Context(), templateData.Name, templateData.Kind, fields)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, template)
}

func (h *TemplateHandlers) ListTemplates(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.ListTemplates(r.Context()))
}

func (h *TemplateHandlers) GetTemplate(w http.ResponseWriter, r *http.Request) {
	template, err := h.service.GetTemplate(r.Context(), httpx.Var(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, template)
}

func (h *TemplateHandlers) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTemplate(r.Context(), httpx.Var(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TemplateHandlers) ClearTemplates(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearTemplates(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
