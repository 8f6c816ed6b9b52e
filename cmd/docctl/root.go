package main

import (
	"github.com/spf13/cobra"

	"docdesk/internal/config"
	"docdesk/internal/domains"
	"docdesk/internal/service"
	"docdesk/internal/storage"
	"docdesk/internal/storage/providers"
)

// app holds what subcommands share once the config is loaded.
type app struct {
	configPath string
	output     string

	cfg       *config.Config
	blobs     storage.BlobStore
	templates *service.TemplateService
	documents *service.DocumentService
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "docctl",
		Short:        "Manage document templates and build document links",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "./config/local.yaml", "config path")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "table", "output format: table, json or yaml")

	rootCmd.AddCommand(
		newDocumentsCmd(a),
		newTemplatesCmd(a),
		newURLCmd(a),
		newTotalCmd(a),
	)
	return rootCmd
}

// open loads config and storage. Commands that touch templates call it.
func (a *app) open(cmd *cobra.Command) error {
	if err := a.openDocuments(); err != nil {
		return err
	}
	blobs, err := storage.Open(cmd.Context(), a.cfg.Storage.Driver, a.cfg.Storage.DSN())
	if err != nil {
		return err
	}
	a.blobs = blobs
	a.templates = service.NewTemplateService(providers.New(blobs, a.cfg.Storage.Key).TemplateProvider)
	return nil
}

// openDocuments loads only the config; no storage is needed.
func (a *app) openDocuments() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.documents = service.NewDocumentService(domains.Catalogue(cfg.Documents.BaseURL), cfg.Documents.DefaultLogo)
	return nil
}

func (a *app) close() {
	if a.blobs != nil {
		_ = a.blobs.Close()
	}
}
