package domains

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

type Template struct {
	ID        string
	Name      string
	Kind      FieldKind
	Fields    Fields
	CreatedAt time.Time
}

// templateRecord is the persisted and wire shape of a Template.
type templateRecord struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Type      FieldKind         `json:"type"`
	Data      map[string]string `json:"data"`
	CreatedAt time.Time         `json:"createdAt"`
}

func (t Template) MarshalJSON() ([]byte, error) {
	if t.Fields == nil {
		return nil, errors.New("template has no fields")
	}
	data := make(map[string]string)
	for _, p := range t.Fields.Pairs() {
		data[p.Name] = p.Value
	}
	return json.Marshal(templateRecord{
		ID:        t.ID,
		Name:      t.Name,
		Type:      t.Kind,
		Data:      data,
		CreatedAt: t.CreatedAt,
	})
}

// UnmarshalJSON rejects records whose data does not match their declared type.
func (t *Template) UnmarshalJSON(raw []byte) error {
	var rec templateRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return err
	}
	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("template id is empty")
	}
	if strings.TrimSpace(rec.Name) == "" {
		return fmt.Errorf("template %s: name is empty", rec.ID)
	}
	fields, err := FieldsFromMap(rec.Type, rec.Data)
	if err != nil {
		return fmt.Errorf("template %s: %w", rec.ID, err)
	}

	*t = Template{
		ID:        rec.ID,
		Name:      rec.Name,
		Kind:      rec.Type,
		Fields:    fields,
		CreatedAt: rec.CreatedAt,
	}
	return nil
}

type TemplateCreate struct {
	Name   string          `json:"name"`
	Kind   FieldKind       `json:"type"`
	Fields json.RawMessage `json:"data"`
}

// DecodeFields parses the raw field payload for the declared kind.
// Keys absent from the payload decode as empty values.
func (c TemplateCreate) DecodeFields() (Fields, error) {
	if len(c.Fields) == 0 || string(c.Fields) == "null" {
		return nil, nil
	}
	return DecodeFields(c.Kind, c.Fields)
}

// DecodeFields parses raw into the normalized field set of kind.
func DecodeFields(kind FieldKind, raw json.RawMessage) (Fields, error) {
	switch kind {
	case KindLoan:
		var f LoanFields
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, err
		}
		return f.Normalize(), nil
	case KindContact:
		var f ContactFields
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unknown field kind %q", kind)
	}
}
