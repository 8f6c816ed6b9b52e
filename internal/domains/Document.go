package domains

import "net/url"

type DocumentType string

const (
	DocumentLoan    DocumentType = "loan"
	DocumentConsent DocumentType = "consent"
	DocumentRefund  DocumentType = "refund"
)

// Kind reports which form feeds the document.
func (t DocumentType) Kind() FieldKind {
	if t == DocumentLoan {
		return KindLoan
	}
	return KindContact
}

type Document struct {
	ID          int          `json:"id"`
	Type        DocumentType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	URL         string       `json:"url"`
	Icon        string       `json:"icon"`
	Kind        FieldKind    `json:"kind"`
	Filename    string       `json:"filename"`
}

// Catalogue returns the fixed document descriptors served from baseURL.
func Catalogue(baseURL string) []Document {
	docs := []Document{
		{
			ID:          1,
			Type:        DocumentLoan,
			Title:       "Договор займа",
			Description: "Типовой договор займа с полным перечнем условий и обязательств сторон",
			Icon:        "FileText",
			Filename:    "dogovor-zajma.pdf",
		},
		{
			ID:          2,
			Type:        DocumentConsent,
			Title:       "Согласие на обработку персональных данных",
			Description: "Документ о согласии на сбор и обработку персональных данных в соответствии с законодательством",
			Icon:        "Shield",
			Filename:    "soglasie-na-obrabotku-dannyh.pdf",
		},
		{
			ID:          3,
			Type:        DocumentRefund,
			Title:       "Возврат платежей",
			Description: "Порядок и условия возврата денежных средств согласно действующему законодательству",
			Icon:        "ArrowLeftRight",
			Filename:    "vozvrat-platezhej.pdf",
		},
	}
	for i := range docs {
		docs[i].Kind = docs[i].Type.Kind()
		docs[i].URL = baseURL + "?type=" + url.QueryEscape(string(docs[i].Type))
	}
	return docs
}

func FindDocument(docs []Document, docType DocumentType) (Document, bool) {
	for _, d := range docs {
		if d.Type == docType {
			return d, true
		}
	}
	return Document{}, false
}

func FindDocumentByID(docs []Document, id int) (Document, bool) {
	for _, d := range docs {
		if d.ID == id {
			return d, true
		}
	}
	return Document{}, false
}
