package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	pertype "github.com/hernantas/pertype"
	"github.com/hernantas/pertype/descriptor"
	"github.com/hernantas/pertype/i18n"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pertype",
		Short:         "Validate and decode documents against descriptor schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	var lang string
	root.PersistentFlags().StringVar(&lang, "lang", "en", "message language (en, ja)")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		i18n.SetLanguage(lang)
	}
	root.AddCommand(newValidateCmd(), newDecodeCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	var schemaPath string
	cmd := &cobra.Command{
		Use:   "validate [document]",
		Short: "Check a document against a schema and report violations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := loadSchema(schemaPath)
			if err != nil {
				return err
			}
			doc, err := loadDocument(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			violations := schema.CheckAny(doc)
			if len(violations) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return nil
			}
			for _, v := range violations {
				if v.Path != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", v.Path, v.Message, v.Type)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", v.Message, v.Type)
			}
			return fmt.Errorf("%d violation(s)", len(violations))
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "descriptor file (json or yaml)")
	cmd.MarkFlagRequired("schema")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	var schemaPath string
	cmd := &cobra.Command{
		Use:   "decode [document]",
		Short: "Decode a document through a schema and print the result as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := loadSchema(schemaPath)
			if err != nil {
				return err
			}
			doc, err := loadDocument(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			out, err := schema.DecodeAny(cmd.Context(), doc)
			if err != nil {
				if issues, ok := pertype.AsViolations(err); ok {
					for _, v := range issues {
						if v.Path != "" {
							fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s (%s)\n", v.Path, v.Message, v.Type)
							continue
						}
						fmt.Fprintf(cmd.ErrOrStderr(), "%s (%s)\n", v.Message, v.Type)
					}
				}
				return err
			}
			rendered, err := gojson.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
			return nil
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "descriptor file (json or yaml)")
	cmd.MarkFlagRequired("schema")
	return cmd
}

func loadSchema(path string) (pertype.AnySchema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return descriptor.ImportYAML(raw)
	}
	return descriptor.ImportJSON(raw)
}

// loadDocument reads the document from the argument or stdin and parses it
// as JSON first, falling back to YAML.
func loadDocument(stdin io.Reader, args []string) (any, error) {
	var raw []byte
	if len(args) == 1 {
		raw = []byte(args[0])
	} else {
		var err error
		raw, err = io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
	}
	var doc any
	if err := gojson.Unmarshal(raw, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}
