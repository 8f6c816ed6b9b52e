package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"docdesk/internal/docurl"
	"docdesk/internal/domains"
)

func newDocumentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "documents",
		Short: "List the document catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.openDocuments(); err != nil {
				return err
			}
			docs := a.documents.Documents()
			return render(cmd.OutOrStdout(), a.output, docs, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\tTYPE\tFORM\tTITLE\tURL")
				for _, d := range docs {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", d.ID, d.Type, d.Kind, d.Title, d.URL)
				}
			})
		},
	}
}

func newURLCmd(a *app) *cobra.Command {
	var (
		fieldArgs     []string
		logoPath      string
		signaturePath string
	)
	cmd := &cobra.Command{
		Use:   "url <loan|consent|refund>",
		Short: "Build a document link from field values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.openDocuments(); err != nil {
				return err
			}
			docType := domains.DocumentType(args[0])
			doc, err := a.documents.Document(docType)
			if err != nil {
				return err
			}
			fields, err := parseFieldArgs(doc.Kind, fieldArgs)
			if err != nil {
				return err
			}

			var assets docurl.Assets
			if assets.Logo, err = readAsset(logoPath); err != nil {
				return err
			}
			if assets.Signature, err = readAsset(signaturePath); err != nil {
				return err
			}

			link, err := a.documents.BuildURL(docType, fields, assets)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&fieldArgs, "field", "f", nil, "field value as name=value, repeatable")
	cmd.Flags().StringVar(&logoPath, "logo", "", "logo image file")
	cmd.Flags().StringVar(&signaturePath, "signature", "", "signature image file")
	return cmd
}

func newTotalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "total <amount> <term-days>",
		Short: "Show interest and amount due for a loan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.openDocuments(); err != nil {
				return err
			}
			total, ok := a.documents.LoanTotal(args[0], args[1])
			if !ok {
				return fmt.Errorf("cannot compute total for amount %q and term %q", args[0], args[1])
			}
			return render(cmd.OutOrStdout(), a.output, total, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Interest\t%s ₽\n", total.InterestFormatted)
				fmt.Fprintf(tw, "Total\t%s ₽\n", total.TotalFormatted)
			})
		},
	}
}

// parseFieldArgs builds the kind's field set from name=value pairs.
func parseFieldArgs(kind domains.FieldKind, args []string) (domains.Fields, error) {
	values := make(map[string]string)
	for _, p := range domains.EmptyFields(kind).Pairs() {
		values[p.Name] = ""
	}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("field %q: expected name=value", arg)
		}
		if _, known := values[name]; !known {
			return nil, fmt.Errorf("field %q is not a %s field", name, kind)
		}
		values[name] = value
	}
	return domains.FieldsFromMap(kind, values)
}

func readAsset(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return docurl.EncodeAsset(data)
}
