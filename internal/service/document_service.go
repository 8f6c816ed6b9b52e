package service

import (
	"fmt"

	"docdesk/internal/docurl"
	"docdesk/internal/domains"
	"docdesk/internal/loan"
)

// DocumentService serves the catalogue and stateless link building.
type DocumentService struct {
	catalogue   []domains.Document
	defaultLogo string
}

func NewDocumentService(catalogue []domains.Document, defaultLogo string) *DocumentService {
	return &DocumentService{catalogue: catalogue, defaultLogo: defaultLogo}
}

func (s *DocumentService) Documents() []domains.Document {
	return append([]domains.Document(nil), s.catalogue...)
}

func (s *DocumentService) Document(docType domains.DocumentType) (domains.Document, error) {
	doc, ok := domains.FindDocument(s.catalogue, docType)
	if !ok {
		return domains.Document{}, fmt.Errorf("%w: %q", domains.ErrUnknownDocument, docType)
	}
	return doc, nil
}

// BuildURL links docType with fields and assets. Fields must be of the
// document's kind; nil fields build a link with every value blank.
func (s *DocumentService) BuildURL(docType domains.DocumentType, fields domains.Fields, assets docurl.Assets) (string, error) {
	doc, err := s.Document(docType)
	if err != nil {
		return "", err
	}
	if fields == nil {
		fields = domains.EmptyFields(doc.Kind)
	}
	if fields.Kind() != doc.Kind {
		return "", &domains.ValidationError{
			Message: fmt.Sprintf("document %q takes %s fields", docType, doc.Kind),
			Fields:  []string{"fields"},
		}
	}
	if assets.Logo == "" {
		assets.Logo = s.defaultLogo
	}
	return docurl.Build(doc.URL, domains.NormalizeFields(fields), assets), nil
}

// LoanTotal is the repayment preview with display strings.
type LoanTotal struct {
	loan.Total
	InterestFormatted string `json:"interest_formatted"`
	TotalFormatted    string `json:"total_formatted"`
}

func (s *DocumentService) LoanTotal(amount, term string) (LoanTotal, bool) {
	total, ok := loan.ComputeTotal(amount, term)
	if !ok || !total.Finite() {
		return LoanTotal{}, false
	}
	return LoanTotal{
		Total:             total,
		InterestFormatted: loan.Format(total.Interest),
		TotalFormatted:    loan.Format(total.Total),
	}, true
}
