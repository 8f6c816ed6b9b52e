package httptransport

import (
	"net/http"

	"github.com/gorilla/mux"
)

func Router(templates TemplateServices, documents DocumentServices, sessions Sessions) *mux.Router {
	router := mux.NewRouter()

	templateHandler := NewTemplateHandlers(templates)
	documentHandler := NewDocumentHandlers(documents)
	sessionHandler := NewSessionHandlers(sessions)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/documents", documentHandler.ListDocuments).Methods(http.MethodGet)
	api.HandleFunc("/documents/{type}/url", documentHandler.BuildURL).Methods(http.MethodPost)
	api.HandleFunc("/loan/total", documentHandler.LoanTotal).Methods(http.MethodPost)

	tpl := api.PathPrefix("/templates").Subrouter()
	tpl.HandleFunc("", templateHandler.ListTemplates).Methods(http.MethodGet)
	tpl.HandleFunc("", templateHandler.CreateTemplate).Methods(http.MethodPost)
	tpl.HandleFunc("", templateHandler.ClearTemplates).Methods(http.MethodDelete)
	tpl.HandleFunc("/{id}", templateHandler.GetTemplate).Methods(http.MethodGet)
	tpl.HandleFunc("/{id}", templateHandler.DeleteTemplate).Methods(http.MethodDelete)

	ses := api.PathPrefix("/sessions").Subrouter()
	ses.HandleFunc("", sessionHandler.CreateSession).Methods(http.MethodPost)
	ses.HandleFunc("/{id}", sessionHandler.GetSession).Methods(http.MethodGet)
	ses.HandleFunc("/{id}", sessionHandler.DeleteSession).Methods(http.MethodDelete)
	ses.HandleFunc("/{id}/dialog", sessionHandler.OpenDialog).Methods(http.MethodPost)
	ses.HandleFunc("/{id}/dialog", sessionHandler.CloseDialog).Methods(http.MethodDelete)
	ses.HandleFunc("/{id}/fields", sessionHandler.UpdateFields).Methods(http.MethodPut)
	ses.HandleFunc("/{id}/drafts/{kind}", sessionHandler.ReplaceDraft).Methods(http.MethodPut)
	ses.HandleFunc("/{id}/assets/{slot}", sessionHandler.AttachAsset).Methods(http.MethodPost)
	ses.HandleFunc("/{id}/assets/{slot}", sessionHandler.RemoveAsset).Methods(http.MethodDelete)
	ses.HandleFunc("/{id}/templates", sessionHandler.SaveTemplate).Methods(http.MethodPost)
	ses.HandleFunc("/{id}/templates/{templateId}/load", sessionHandler.LoadTemplate).Methods(http.MethodPost)
	ses.HandleFunc("/{id}/generate", sessionHandler.Generate).Methods(http.MethodPost)
	ses.HandleFunc("/{id}/copy", sessionHandler.CopyLink).Methods(http.MethodPost)

	return router
}
