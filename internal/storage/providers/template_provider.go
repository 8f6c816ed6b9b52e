package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"docdesk/internal/domains"
	"docdesk/internal/storage"

	"github.com/google/uuid"
)

var ErrTemplateNotFound = errors.New("template not found")

// TemplateProvider keeps the ordered template list as one blob under key.
// Every mutation rewrites the whole list. Processes sharing the backend
// race last-write-wins.
type TemplateProvider struct {
	blobs storage.BlobStore
	key   string

	mu    sync.Mutex
	now   func() time.Time
	newID func() (string, error)
}

func NewTemplateProvider(blobs storage.BlobStore, key string) *TemplateProvider {
	return &TemplateProvider{
		blobs: blobs,
		key:   key,
		now:   time.Now,
		newID: newTemplateID,
	}
}

// uuid v7 is time ordered and monotonic within the process.
func newTemplateID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// List never fails: a missing or unreadable blob is an empty list.
func (p *TemplateProvider) List(ctx context.Context) []domains.Template {
	p.mu.Lock()
	defer p.mu.Unlock()
	templates, err := p.read(ctx)
	if err != nil {
		slog.Warn("listing templates as empty", "key", p.key, "err", err)
		return []domains.Template{}
	}
	return templates
}

func (p *TemplateProvider) Get(ctx context.Context, id string) (domains.Template, error) {
	p.mu.Lock()
	templates, err := p.read(ctx)
	p.mu.Unlock()
	if err != nil {
		return domains.Template{}, err
	}
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}
	return domains.Template{}, ErrTemplateNotFound
}

func (p *TemplateProvider) Save(ctx context.Context, name string, kind domains.FieldKind, fields domains.Fields) (domains.Template, error) {
	if strings.TrimSpace(name) == "" {
		return domains.Template{}, &domains.ValidationError{Message: "template name is required", Fields: []string{"name"}}
	}
	if fields == nil {
		return domains.Template{}, &domains.ValidationError{Message: "template fields are required", Fields: []string{"data"}}
	}
	if fields.Kind() != kind {
		return domains.Template{}, &domains.ValidationError{
			Message: fmt.Sprintf("fields of kind %q do not match template type %q", fields.Kind(), kind),
			Fields:  []string{"type"},
		}
	}

	id, err := p.newID()
	if err != nil {
		return domains.Template{}, fmt.Errorf("generate template id: %w", err)
	}
	template := domains.Template{
		ID:        id,
		Name:      name,
		Kind:      kind,
		Fields:    domains.NormalizeFields(fields),
		CreatedAt: p.now().UTC(),
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	templates, err := p.read(ctx)
	if err != nil {
		return domains.Template{}, err
	}
	templates = append(templates, template)
	if err := p.persist(ctx, templates); err != nil {
		return domains.Template{}, err
	}
	return template, nil
}

// Remove deletes the template with id. Unknown ids are not an error.
func (p *TemplateProvider) Remove(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	templates, err := p.read(ctx)
	if err != nil {
		return err
	}
	kept := templates[:0]
	for _, t := range templates {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return p.persist(ctx, kept)
}

func (p *TemplateProvider) Clear(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.persist(ctx, nil)
}

// read returns the stored list. A missing or corrupt blob reads as empty,
// backend failures are returned.
func (p *TemplateProvider) read(ctx context.Context) ([]domains.Template, error) {
	blob, err := p.blobs.Load(ctx, p.key)
	if errors.Is(err, storage.ErrNotFound) {
		return []domains.Template{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	return decodeTemplates(blob, p.key), nil
}

func (p *TemplateProvider) persist(ctx context.Context, templates []domains.Template) error {
	if templates == nil {
		templates = []domains.Template{}
	}
	blob, err := json.Marshal(templates)
	if err != nil {
		return fmt.Errorf("encode templates: %w", err)
	}
	if err := p.blobs.Store(ctx, p.key, blob); err != nil {
		return fmt.Errorf("write templates: %w", err)
	}
	return nil
}

// decodeTemplates drops corrupt records and duplicate ids instead of failing
// the whole list.
func decodeTemplates(blob []byte, key string) []domains.Template {
	var records []json.RawMessage
	if err := json.Unmarshal(blob, &records); err != nil {
		slog.Warn("templates blob is corrupt, treating as empty", "key", key, "err", err)
		return []domains.Template{}
	}

	templates := make([]domains.Template, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, raw := range records {
		var t domains.Template
		if err := json.Unmarshal(raw, &t); err != nil {
			slog.Warn("dropping corrupt template record", "key", key, "index", i, "err", err)
			continue
		}
		if _, dup := seen[t.ID]; dup {
			slog.Warn("dropping duplicate template record", "key", key, "id", t.ID)
			continue
		}
		seen[t.ID] = struct{}{}
		templates = append(templates, t)
	}
	return templates
}
