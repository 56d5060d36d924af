package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylepreview/internal/application/preview"
)

type partsOptions struct {
	stylePath  string
	jsonOutput bool
}

func newPartsCmd(root *rootFlags) *cobra.Command {
	opts := &partsOptions{}

	cmd := &cobra.Command{
		Use:   "parts",
		Short: "List the parts of a style and how their backgrounds resolve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateStylePath(opts.stylePath); err != nil {
				return err
			}
			return runParts(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.stylePath, "config", "c", "", "Path to the style document")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runParts(cmd *cobra.Command, root *rootFlags, opts *partsOptions) error {
	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	session, err := app.service.Open(app.ctx, opts.stylePath)
	if err != nil {
		return newCommandError("list parts", "loading style document", err, suggestionFor(err))
	}

	parts := session.Parts()
	if opts.jsonOutput {
		return renderPartsJSON(cmd, session.Style.Name, parts)
	}
	return renderPartsTable(cmd, parts)
}

func renderPartsTable(cmd *cobra.Command, parts []preview.PartSummary) error {
	if len(parts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No parts defined.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "PART\tSTATES\tBACKGROUND\tOUTPUT")
	for _, p := range parts {
		fmt.Fprintf(writer, "%s\t%d\t%s\t%s\n", p.Name, p.States, p.Background, preview.OutputName(p.Name))
	}
	return writer.Flush()
}

func renderPartsJSON(cmd *cobra.Command, name string, parts []preview.PartSummary) error {
	payload := struct {
		Style string                `json:"style"`
		Parts []preview.PartSummary `json:"parts"`
	}{Style: name, Parts: parts}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
