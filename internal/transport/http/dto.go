package httptransport

import (
	"encoding/json"

	"docdesk/internal/controller"
	"docdesk/internal/domains"
)

type BuildURLRequest struct {
	Fields    json.RawMessage `json:"fields"`
	Logo      string          `json:"logo"`
	Signature string          `json:"signature"`
}

type URLResponse struct {
	URL string `json:"url"`
}

type LoanTotalRequest struct {
	Amount string `json:"amount"`
	Term   string `json:"term"`
}

type OpenDialogRequest struct {
	Type domains.DocumentType `json:"type"`
}

type SaveTemplateRequest struct {
	Name string `json:"name"`
}

type GenerateRequest struct {
	Action controller.Action `json:"action"`
}

type CopyLinkRequest struct {
	DocumentID int `json:"document_id"`
}
