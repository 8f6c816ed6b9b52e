package providers

import "docdesk/internal/storage"

const DefaultTemplatesKey = "documentTemplates"

type Providers struct {
	TemplateProvider *TemplateProvider
}

func New(blobs storage.BlobStore, templatesKey string) *Providers {
	if templatesKey == "" {
		templatesKey = DefaultTemplatesKey
	}
	return &Providers{
		TemplateProvider: NewTemplateProvider(blobs, templatesKey),
	}
}
