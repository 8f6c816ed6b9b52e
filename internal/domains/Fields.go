package domains

import (
	"fmt"
	"strings"
)

type FieldKind string

const (
	KindLoan    FieldKind = "loan"
	KindContact FieldKind = "contact"
)

func (k FieldKind) Valid() bool {
	return k == KindLoan || k == KindContact
}

// Field is one named form value in query order.
type Field struct {
	Name  string
	Value string
}

// Fields is a form field set tagged with its kind.
type Fields interface {
	Kind() FieldKind
	Pairs() []Field
}

const (
	PassportSeriesMaxLen = 4
	PassportNumberMaxLen = 6
)

type LoanFields struct {
	FullName       string `json:"fullName"`
	BirthDate      string `json:"birthDate"`
	PassportSeries string `json:"passportSeries"`
	PassportNumber string `json:"passportNumber"`
	Amount         string `json:"amount"`
	Term           string `json:"term"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
}

func (LoanFields) Kind() FieldKind { return KindLoan }

func (f LoanFields) Pairs() []Field {
	return []Field{
		{"fullName", f.FullName},
		{"birthDate", f.BirthDate},
		{"passportSeries", f.PassportSeries},
		{"passportNumber", f.PassportNumber},
		{"amount", f.Amount},
		{"term", f.Term},
		{"phone", f.Phone},
		{"email", f.Email},
	}
}

// Set assigns a field by its query name. Passport series and number are
// clipped to their input length. Unknown names report false.
func (f *LoanFields) Set(name, value string) bool {
	switch name {
	case "fullName":
		f.FullName = value
	case "birthDate":
		f.BirthDate = value
	case "passportSeries":
		f.PassportSeries = clip(value, PassportSeriesMaxLen)
	case "passportNumber":
		f.PassportNumber = clip(value, PassportNumberMaxLen)
	case "amount":
		f.Amount = value
	case "term":
		f.Term = value
	case "phone":
		f.Phone = value
	case "email":
		f.Email = value
	default:
		return false
	}
	return true
}

// Normalize clips passport series and number to their input length.
func (f LoanFields) Normalize() LoanFields {
	f.PassportSeries = clip(f.PassportSeries, PassportSeriesMaxLen)
	f.PassportNumber = clip(f.PassportNumber, PassportNumberMaxLen)
	return f
}

type ContactFields struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

func (ContactFields) Kind() FieldKind { return KindContact }

func (f ContactFields) Pairs() []Field {
	return []Field{
		{"phone", f.Phone},
		{"email", f.Email},
		{"fullName", f.FullName},
	}
}

func (f *ContactFields) Set(name, value string) bool {
	switch name {
	case "fullName":
		f.FullName = value
	case "phone":
		f.Phone = value
	case "email":
		f.Email = value
	default:
		return false
	}
	return true
}

// MissingFields lists the names of blank values in query order.
func MissingFields(f Fields) []string {
	var missing []string
	for _, p := range f.Pairs() {
		if strings.TrimSpace(p.Value) == "" {
			missing = append(missing, p.Name)
		}
	}
	return missing
}

// NormalizeFields applies the input limits of f's kind. nil stays nil.
func NormalizeFields(f Fields) Fields {
	if loan, ok := f.(LoanFields); ok {
		return loan.Normalize()
	}
	return f
}

// FieldsFromMap builds the normalized field set for kind. The map must carry
// exactly the kind's field names.
func FieldsFromMap(kind FieldKind, values map[string]string) (Fields, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown field kind %q", kind)
	}
	schema := EmptyFields(kind).Pairs()
	if len(values) != len(schema) {
		return nil, fmt.Errorf("%s: expected %d fields, got %d", kind, len(schema), len(values))
	}
	for _, p := range schema {
		if _, ok := values[p.Name]; !ok {
			return nil, fmt.Errorf("%s: field %q missing", kind, p.Name)
		}
	}

	if kind == KindLoan {
		return LoanFields{
			FullName:       values["fullName"],
			BirthDate:      values["birthDate"],
			PassportSeries: values["passportSeries"],
			PassportNumber: values["passportNumber"],
			Amount:         values["amount"],
			Term:           values["term"],
			Phone:          values["phone"],
			Email:          values["email"],
		}.Normalize(), nil
	}
	return ContactFields{
		FullName: values["fullName"],
		Phone:    values["phone"],
		Email:    values["email"],
	}, nil
}

// EmptyFields returns the zero field set for kind.
func EmptyFields(kind FieldKind) Fields {
	if kind == KindLoan {
		return LoanFields{}
	}
	return ContactFields{}
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
