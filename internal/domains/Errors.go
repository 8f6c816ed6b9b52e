package domains

import (
	"errors"
	"strings"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrAssetRead       = errors.New("asset read failed")
	ErrUnknownDocument = errors.New("unknown document")
)

// ValidationError reports missing required input. It matches ErrValidation.
type ValidationError struct {
	Message string   `json:"error"`
	Fields  []string `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
