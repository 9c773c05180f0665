package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wajahatiqbal22/env-config-validator/internal/presentation/tui"
	"github.com/wajahatiqbal22/env-config-validator/pkg/schema"
)

// RenderDocs loads a schema and renders its reference documentation. With
// plain set the raw Markdown is returned, suitable for piping into files;
// otherwise it is styled for the terminal.
func RenderDocs(schemaPath string, plain bool) (string, error) {
	s, err := schema.Load(schemaPath)
	if err != nil {
		return "", err
	}

	md := SchemaMarkdown(s, filepath.Base(schemaPath))
	if plain {
		return md, nil
	}
	render := tui.NewRenderer()
	return render(md)
}

// SchemaMarkdown builds a Markdown reference for a schema: a summary table
// followed by one section per property, in declaration order.
func SchemaMarkdown(s *schema.Schema, title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Environment Variables: %s\n\n", title)
	fmt.Fprintf(&b, "%d declared, %d required.\n\n", s.Len(), len(s.Required))

	b.WriteString("| Name | Type | Required | Default |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, name := range s.Names() {
		prop, ok := s.Property(name)
		if !ok {
			continue
		}
		required := ""
		if s.IsRequired(name) {
			required = "yes"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", name, prop.Type, required, defaultCell(prop))
	}
	b.WriteString("\n")

	for _, name := range s.Names() {
		prop, ok := s.Property(name)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", name)
		if prop.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", prop.Description)
		}
		if notes := constraintNotes(prop); len(notes) > 0 {
			for _, note := range notes {
				fmt.Fprintf(&b, "- %s\n", note)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func defaultCell(prop *schema.Property) string {
	if !prop.HasDefault() {
		return "-"
	}
	if prop.Sensitive {
		return tui.Mask
	}
	return fmt.Sprintf("`%v`", prop.Default)
}

func constraintNotes(prop *schema.Property) []string {
	var notes []string
	if len(prop.Enum) > 0 {
		members := make([]string, len(prop.Enum))
		for i, m := range prop.Enum {
			members[i] = fmt.Sprintf("`%v`", m)
		}
		notes = append(notes, "one of: "+strings.Join(members, ", "))
	}
	if prop.Minimum != nil {
		notes = append(notes, fmt.Sprintf("minimum: %v", *prop.Minimum))
	}
	if prop.Maximum != nil {
		notes = append(notes, fmt.Sprintf("maximum: %v", *prop.Maximum))
	}
	if prop.MinLength != nil {
		notes = append(notes, fmt.Sprintf("minimum length: %d", *prop.MinLength))
	}
	if prop.MaxLength != nil {
		notes = append(notes, fmt.Sprintf("maximum length: %d", *prop.MaxLength))
	}
	if prop.Pattern != "" {
		notes = append(notes, fmt.Sprintf("pattern: `%s`", prop.Pattern))
	}
	if prop.Format != "" {
		notes = append(notes, "format: "+prop.Format)
	}
	if prop.Sensitive {
		notes = append(notes, "sensitive: the value is redacted in reports")
	}
	return notes
}
