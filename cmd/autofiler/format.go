package main

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/autofiler/autofiler/pkg/config"
	"github.com/autofiler/autofiler/pkg/fields"
)

//go:embed docs/naming.md
var namingDoc string

// newFormatCmd explains the expected file naming format, using the
// configured field rules when a config file is available
func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format",
		Short: "Explain the expected file naming format",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := config.Starter().Fields
			if cfg, err := config.Load(cfgFile); err == nil {
				rules = cfg.Fields
			} else {
				fmt.Println("(no configuration found, showing the example rules)")
			}

			doc, err := renderNamingDoc(rules)
			if err != nil {
				return err
			}
			fmt.Print(renderMarkdown(doc))
			return nil
		},
	}
}

// renderNamingDoc fills the naming template with the active rules
func renderNamingDoc(rules fields.Rules) (string, error) {
	tmpl, err := template.New("naming").Parse(namingDoc)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	err = tmpl.Execute(&buf, struct {
		Format string
		Rules  fields.Rules
	}{
		Format: rules.Format(),
		Rules:  rules,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderMarkdown converts markdown to terminal output, falling back
// to the plain text on any rendering error
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
