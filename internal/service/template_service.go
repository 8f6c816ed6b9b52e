package service

import (
	"context"
	"log/slog"

	"docdesk/internal/domains"
)

type TemplateService struct {
	provider TemplateProvider
}

type TemplateProvider interface {
	List(ctx context.Context) []domains.Template
	Get(ctx context.Context, id string) (domains.Template, error)
	Save(ctx context.Context, name string, kind domains.FieldKind, fields domains.Fields) (domains.Template, error)
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

func NewTemplateService(provider TemplateProvider) *TemplateService {
	return &TemplateService{
		provider: provider,
	}
}

// CreateTemplate scrubs markup from name before saving.
func (s *TemplateService) CreateTemplate(ctx context.Context, name string, kind domains.FieldKind, fields domains.Fields) (domains.Template, error) {
	template, err := s.provider.Save(ctx, sanitizeName(name), kind, fields)
	if err != nil {
		slog.Error("save template failed", "name", name, "type", kind, "err", err)
		return domains.Template{}, err
	}
	slog.Info("template saved", "id", template.ID, "type", kind)
	return template, nil
}

func (s *TemplateService) ListTemplates(ctx context.Context) []domains.Template {
	return s.provider.List(ctx)
}

func (s *TemplateService) GetTemplate(ctx context.Context, id string) (domains.Template, error) {
	template, err := s.provider.Get(ctx, id)
	if err != nil {
		slog.Warn("get template failed", "id", id, "err", err)
		return domains.Template{}, err
	}
	return template, nil
}

func (s *TemplateService) DeleteTemplate(ctx context.Context, id string) error {
	if err := s.provider.Remove(ctx, id); err != nil {
		slog.Error("delete template failed", "id", id, "err", err)
		return err
	}
	return nil
}

func (s *TemplateService) ClearTemplates(ctx context.Context) error {
	if err := s.provider.Clear(ctx); err != nil {
		slog.Error("clear templates failed", "err", err)
		return err
	}
	return nil
}
