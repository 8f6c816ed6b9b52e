package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"docdesk/internal/domains"
)

func newTemplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"tpl"},
		Short:   "Manage saved form templates",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved templates",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				templates := a.templates.ListTemplates(cmd.Context())
				return render(cmd.OutOrStdout(), a.output, templates, func(tw *tabwriter.Writer) {
					fmt.Fprintln(tw, "ID\tNAME\tTYPE\tCREATED")
					for _, t := range templates {
						fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Kind, t.CreatedAt.Local().Format(time.DateOnly))
					}
				})
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show one template with its field values",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := a.templates.GetTemplate(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), a.output, t, func(tw *tabwriter.Writer) {
					fmt.Fprintf(tw, "id\t%s\nname\t%s\ntype\t%s\n", t.ID, t.Name, t.Kind)
					for _, p := range t.Fields.Pairs() {
						fmt.Fprintf(tw, "%s\t%s\n", p.Name, p.Value)
					}
				})
			},
		},
		newTemplateSaveCmd(a),
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Delete a template",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.templates.DeleteTemplate(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete every template",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.templates.ClearTemplates(cmd.Context())
			},
		},
	)
	return cmd
}

func newTemplateSaveCmd(a *app) *cobra.Command {
	var (
		kind      string
		fieldArgs []string
	)
	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a named field set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldKind := domains.FieldKind(kind)
			if !fieldKind.Valid() {
				return fmt.Errorf("unknown template type %q", kind)
			}
			fields, err := parseFieldArgs(fieldKind, fieldArgs)
			if err != nil {
				return err
			}
			t, err := a.templates.CreateTemplate(cmd.Context(), args[0], fieldKind, fields)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "type", "t", string(domains.KindLoan), "template type: loan or contact")
	cmd.Flags().StringArrayVarP(&fieldArgs, "field", "f", nil, "field value as name=value, repeatable")
	return cmd
}
