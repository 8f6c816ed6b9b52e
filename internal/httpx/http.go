package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"docdesk/internal/domains"

	"github.com/gorilla/mux"
)

type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func ReadBody[InitType any](r *http.Request) (InitType, error) {
	var body InitType
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return body, err
	}
	return body, nil
}

func JSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// Validation writes err as 422 with the offending field names when it is a
// domains.ValidationError and reports whether it did.
func Validation(w http.ResponseWriter, err error) bool {
	var verr *domains.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: verr.Message, Fields: verr.Fields})
	return true
}

func Var(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}
