// Package controller owns the state of one document-filling session: which
// dialog is open, the loan and contact drafts, attached images and the
// "link copied" indicator. Commands mutate it, Snapshot reads it.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"docdesk/internal/docurl"
	"docdesk/internal/domains"
	"docdesk/internal/loan"
)

type State string

const (
	StateIdle       State = "idle"
	StateDialogOpen State = "dialog_open"
)

// Outcome is the result of the last generate attempt.
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeBlocked   Outcome = "blocked"
	OutcomeURLOpened Outcome = "url_opened"
)

type Action string

const (
	ActionView     Action = "view"
	ActionDownload Action = "download"
)

type AssetSlot string

const (
	SlotLogo      AssetSlot = "logo"
	SlotSignature AssetSlot = "signature"
)

// CopiedIndicatorDuration is how long the copied indicator stays lit after
// the last copy.
const CopiedIndicatorDuration = 2 * time.Second

var (
	ErrNoDialog      = errors.New("no dialog is open")
	ErrUnknownField  = errors.New("unknown field")
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownSlot   = errors.New("unknown asset slot")
)

// TemplateStore is the subset of the template service the controller needs.
type TemplateStore interface {
	CreateTemplate(ctx context.Context, name string, kind domains.FieldKind, fields domains.Fields) (domains.Template, error)
	GetTemplate(ctx context.Context, id string) (domains.Template, error)
}

type Options struct {
	Catalogue []domains.Document
	Templates TemplateStore
	// DefaultLogo is sent when no logo was uploaded.
	DefaultLogo string
	Now         func() time.Time
}

// Generation is a built document link and what to do with it.
type Generation struct {
	DocumentID int    `json:"document_id"`
	URL        string `json:"url"`
	Action     Action `json:"action"`
	Filename   string `json:"filename"`
}

type Controller struct {
	id   string
	opts Options

	mu          sync.Mutex
	state       State
	dialog      domains.DocumentType
	loan        domains.LoanFields
	contact     domains.ContactFields
	assets      docurl.Assets
	copiedID    int
	copiedUntil time.Time
	outcome     Outcome
	lastErr     string
	lastActive  time.Time
}

func New(id string, opts Options) *Controller {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Controller{
		id:         id,
		opts:       opts,
		state:      StateIdle,
		lastActive: opts.Now(),
	}
}

func (c *Controller) ID() string { return c.id }

// OpenDialog shows the form for docType. Any other open dialog closes.
func (c *Controller) OpenDialog(docType domains.DocumentType) error {
	if _, ok := domains.FindDocument(c.opts.Catalogue, docType); !ok {
		return fmt.Errorf("%w: %q", domains.ErrUnknownDocument, docType)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()
	c.state = StateDialogOpen
	c.dialog = docType
	c.outcome = OutcomeNone
	c.lastErr = ""
	return nil
}

func (c *Controller) CloseDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()
	c.closeDialog()
}

// UpdateLoan replaces the loan draft.
func (c *Controller) UpdateLoan(f domains.LoanFields) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()
	c.loan = f.Normalize()
}

// UpdateContact replaces the contact draft.
func (c *Controller) UpdateContact(f domains.ContactFields) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()
	c.contact = f
}

// SetFields edits fields of the draft behind the open dialog. Either every
// edit is applied or, when a name is not a field of the dialog's form, none.
func (c *Controller) SetFields(edits map[string]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()
	if c.state != StateDialogOpen {
		return ErrNoDialog
	}

	kind := c.dialog.Kind()
	pairs := domains.EmptyFields(kind).Pairs()
	known := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		known[p.Name] = true
	}
	var unknown []string
	for name := range edits {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(unknown, ", "))
	}

	for _, p := range pairs {
		value, ok := edits[p.Name]
		if !ok {
			continue
		}
		if kind == domains.KindLoan {
			c.loan.Set(p.Name, value)
		} else {
			c.contact.Set(p.Name, value)
		}
	}
	return nil
}

// AttachAsset encodes an uploaded image into slot. Unreadable uploads are
// reported and leave the slot unchanged.
func (c *Controller) AttachAsset(slot AssetSlot, data []byte) error {
	if slot != SlotLogo && slot != SlotSignature {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}
	uri, err := docurl.EncodeAsset(data)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()
	if slot == SlotLogo {
		c.assets.Logo = uri
	} else {
		c.assets.Signature = uri
	}
	return nil
}

func (c *Controller) RemoveAsset(slot AssetSlot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()
	switch slot {
	case SlotLogo:
		c.assets.Logo = ""
	case SlotSignature:
		c.assets.Signature = ""
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}
	return nil
}

// SaveTemplate stores the open dialog's draft under name in one step.
func (c *Controller) SaveTemplate(ctx context.Context, name string) (domains.Template, error) {
	c.mu.Lock()
	c.touch()
	if c.state != StateDialogOpen {
		c.mu.Unlock()
		return domains.Template{}, ErrNoDialog
	}
	kind := c.dialog.Kind()
	fields := c.draft(kind)
	c.mu.Unlock()

	return c.opts.Templates.CreateTemplate(ctx, name, kind, fields)
}

// LoadTemplate copies a saved field set into the matching draft.
func (c *Controller) LoadTemplate(ctx context.Context, id string) (domains.Template, error) {
	t, err := c.opts.Templates.GetTemplate(ctx, id)
	if err != nil {
		return domains.Template{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()
	switch f := t.Fields.(type) {
	case domains.LoanFields:
		c.loan = f.Normalize()
	case domains.ContactFields:
		c.contact = f
	}
	return t, nil
}

// Generate validates the open dialog's draft and builds its document link.
// A blank required field blocks generation and keeps the dialog open.
func (c *Controller) Generate(action Action) (Generation, error) {
	if action == "" {
		action = ActionView
	}
	if action != ActionView && action != ActionDownload {
		return Generation{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()
	if c.state != StateDialogOpen {
		return Generation{}, ErrNoDialog
	}
	doc, ok := domains.FindDocument(c.opts.Catalogue, c.dialog)
	if !ok {
		return Generation{}, fmt.Errorf("%w: %q", domains.ErrUnknownDocument, c.dialog)
	}

	fields := c.draft(doc.Kind)
	if missing := domains.MissingFields(fields); len(missing) > 0 {
		verr := &domains.ValidationError{Message: "fill in all required fields", Fields: missing}
		c.outcome = OutcomeBlocked
		c.lastErr = verr.Error()
		return Generation{}, verr
	}

	gen := Generation{
		DocumentID: doc.ID,
		URL:        docurl.Build(doc.URL, fields, c.effectiveAssets()),
		Action:     action,
		Filename:   doc.Filename,
	}
	c.closeDialog()
	c.outcome = OutcomeURLOpened
	return gen, nil
}

// CopyLink returns the document's shareable link and lights the copied
// indicator until CopiedIndicatorDuration after this call.
func (c *Controller) CopyLink(documentID int) (string, error) {
	doc, ok := domains.FindDocumentByID(c.opts.Catalogue, documentID)
	if !ok {
		return "", fmt.Errorf("%w: %d", domains.ErrUnknownDocument, documentID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()
	c.copiedID = doc.ID
	c.copiedUntil = c.opts.Now().Add(CopiedIndicatorDuration)
	return docurl.BuildLink(doc.URL, c.effectiveAssets()), nil
}

// IdleSince reports when the session last received a command.
func (c *Controller) IdleSince() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActive
}

func (c *Controller) closeDialog() {
	c.state = StateIdle
	c.dialog = ""
}

func (c *Controller) draft(kind domains.FieldKind) domains.Fields {
	if kind == domains.KindLoan {
		return c.loan
	}
	return c.contact
}

func (c *Controller) effectiveAssets() docurl.Assets {
	assets := c.assets
	if assets.Logo == "" {
		assets.Logo = c.opts.DefaultLogo
	}
	return assets
}

func (c *Controller) touch() {
	c.lastActive = c.opts.Now()
}

// Snapshot is a read-only copy of the session for rendering.
type Snapshot struct {
	ID           string                `json:"id"`
	State        State                 `json:"state"`
	Dialog       domains.DocumentType  `json:"dialog,omitempty"`
	Loan         domains.LoanFields    `json:"loan"`
	Contact      domains.ContactFields `json:"contact"`
	HasLogo      bool                  `json:"has_logo"`
	HasSignature bool                  `json:"has_signature"`
	CopiedID     int                   `json:"copied_id,omitempty"`
	LoanTotal    *loan.Total           `json:"loan_total,omitempty"`
	Outcome      Outcome               `json:"outcome,omitempty"`
	Error        string                `json:"error,omitempty"`
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		ID:           c.id,
		State:        c.state,
		Dialog:       c.dialog,
		Loan:         c.loan,
		Contact:      c.contact,
		HasLogo:      c.assets.Logo != "",
		HasSignature: c.assets.Signature != "",
		Outcome:      c.outcome,
		Error:        c.lastErr,
	}
	if c.copiedID != 0 && c.opts.Now().Before(c.copiedUntil) {
		s.CopiedID = c.copiedID
	}
	if total, ok := loan.ComputeTotal(c.loan.Amount, c.loan.Term); ok && total.Finite() {
		s.LoanTotal = &total
	}
	return s
}
