package httptransport

import (
	"net/http"

	"docdesk/internal/docurl"
	"docdesk/internal/domains"
	"docdesk/internal/httpx"
	"docdesk/internal/service"
)

type DocumentHandlers struct {
	service DocumentServices
}

type DocumentServices interface {
	Documents() []domains.Document
	Document(docType domains.DocumentType) (domains.Document, error)
	BuildURL(docType domains.DocumentType, fields domains.Fields, assets docurl.Assets) (string, error)
	LoanTotal(amount, term string) (service.LoanTotal, bool)
}

func NewDocumentHandlers(service DocumentServices) *DocumentHandlers {
	return &DocumentHandlers{
		service: service,
	}
}

func (h *DocumentHandlers) ListDocuments(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Documents())
}

func (h *DocumentHandlers) BuildURL(w http.ResponseWriter, r *http.Request) {
	docType := domains.DocumentType(httpx.Var(r, "type"))
	doc, err := h.service.Document(docType)
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := httpx.ReadBody[BuildURLRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	var fields domains.Fields
	if len(req.Fields) > 0 && string(req.Fields) != "null" {
		fields, err = domains.DecodeFields(doc.Kind, req.Fields)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	link, err := h.service.BuildURL(docType, fields, docurl.Assets{Logo: req.Logo, Signature: req.Signature})
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, URLResponse{URL: link})
}

// LoanTotal answers 204 when amount or term cannot be computed yet.
func (h *DocumentHandlers) LoanTotal(w http.ResponseWriter, r *http.Request) {
	req, err := httpx.ReadBody[LoanTotalRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	total, ok := h.service.LoanTotal(req.Amount, req.Term)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httpx.JSON(w, http.StatusOK, total)
}
