package httptransport

import (
	"fmt"
	"io"
	"mime"
	"net/http"

	"docdesk/internal/controller"
	"docdesk/internal/docurl"
	"docdesk/internal/domains"
	"docdesk/internal/httpx"
)

type SessionHandlers struct {
	sessions Sessions
}

type Sessions interface {
	Create() *controller.Controller
	Get(id string) (*controller.Controller, error)
	Delete(id string) error
}

func NewSessionHandlers(sessions Sessions) *SessionHandlers {
	return &SessionHandlers{
		sessions: sessions,
	}
}

func (h *SessionHandlers) session(w http.ResponseWriter, r *http.Request) (*controller.Controller, bool) {
	c, err := h.sessions.Get(httpx.Var(r, "id"))
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return c, true
}

func (h *SessionHandlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusCreated, h.sessions.Create().Snapshot())
}

func (h *SessionHandlers) GetSession(w http.ResponseWriter, r *http.Request) {
	c, ok := h.session(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, c.Snapshot())
}

func (h *SessionHandlers) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(httpx.Var(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandlers) OpenDialog(w http.ResponseWriter, r *http.Request) {
	c, ok := h.session(w, r)
	if !ok {
		return
	}
	req, err := httpx.ReadBody[OpenDialogRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := c.OpenDialog(req.Type); err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c.Snapshot())
}

func (h *SessionHandlers) CloseDialog(w http.ResponseWriter, r *http.Request) {
	c, ok := h.session(w, r)
	if !ok {
		return
	}
	c.CloseDialog()
	httpx.JSON(w, http.StatusOK, c.Snapshot())
}

// UpdateFields applies {"name": "value"} edits to the open dialog's draft.
func (h *SessionHandlers) UpdateFields(w http.ResponseWriter, r *http.Request) {
	c, ok := h.session(w, r)
	if !ok {
		return
	}
	edits, err := httpx.ReadBody[map[string]string](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := c.SetFields(edits); err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c.Snapshot())
}

// ReplaceDraft overwrites the loan or contact draft with the body. Fields
// absent from the body become blank.
func (h *SessionHandlers) ReplaceDraft(w http.ResponseWriter, r *http.Request) {
	c, ok := h.session(w, r)
	if !ok {
		return
	}
	kind := domains.FieldKind(httpx.Var(r, "kind"))
	if !kind.Valid() {
		httpx.Error(w, http.StatusNotFound, fmt.Sprintf("unknown draft %q", kind))
		return
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	fields, err := domains.DecodeFields(kind, raw)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	switch f := fields.(type) {
	case domains.LoanFields:
		c.UpdateLoan(f)
	case domains.ContactFields:
		c.UpdateContact(f)
	}
	httpx.JSON(w, http.StatusOK, c.Snapshot())
}

// AttachAsset accepts a multipart "file" part or the raw image as the body.
func (h *SessionHandlers) AttachAsset(w http.ResponseWriter, r *http.Request) {
	c, ok := h.session(w, r)
	if !ok {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, docurl.MaxAssetSize+64<<10)
	data, err := readUpload(r)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", domains.ErrAssetRead, err))
		return
	}
	if err := c.AttachAsset(controller.AssetSlot(httpx.Var(r, "slot")), data); err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c.Snapshot())
}

func readUpload(r *http.Request) ([]byte, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return io.ReadAll(r.Body)
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func (h *SessionHandlers) RemoveAsset(w http.ResponseWriter, r *http.Request) {
	c, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := c.RemoveAsset(controller.AssetSlot(httpx.Var(r, "slot"))); err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c.Snapshot())
}

func (h *SessionHandlers) SaveTemplate(w http.ResponseWriter, r *http.Request) {
	c, ok := h.session(w, r)
	if !ok {
		return
	}
	req, err := httpx.ReadBody[SaveTemplateRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	template, err := c.SaveTemplate(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, template)
}

func (h *SessionHandlers) LoadTemplate(w http.ResponseWriter, r *http.Request) {
	c, ok := h.session(w, r)
	if !ok {
		return
	}
	if _, err := c.LoadTemplate(r.Context(), httpx.Var(r, "templateId")); err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c.Snapshot())
}

func (h *SessionHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	c, ok := h.session(w, r)
	if !ok {
		return
	}
	req, err := httpx.ReadBody[GenerateRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	gen, err := c.Generate(req.Action)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, gen)
}

func (h *SessionHandlers) CopyLink(w http.ResponseWriter, r *http.Request) {
	c, ok := h.session(w, r)
	if !ok {
		return
	}
	req, err := httpx.ReadBody[CopyLinkRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	link, err := c.CopyLink(req.DocumentID)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, URLResponse{URL: link})
}
