package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/wajahatiqbal22/env-config-validator/pkg/domain"
	"github.com/wajahatiqbal22/env-config-validator/pkg/schema"
)

// Mask replaces sensitive values in human-facing output.
const Mask = "***"

const (
	ansiRed    = "1"
	ansiGreen  = "2"
	ansiYellow = "3"
	ansiCyan   = "6"
)

// Printer renders validation results for humans: errors first, then
// warnings, then a one-line summary. Logs stay on stderr, so the CLI can
// point the Printer at stdout without interleaving.
type Printer struct {
	out     io.Writer
	profile termenv.Profile
}

// NewPrinter creates a Printer. With color disabled every style degrades to
// plain text, which also covers piped output.
func NewPrinter(out io.Writer, color bool) *Printer {
	profile := termenv.Ascii
	if color {
		profile = termenv.ColorProfile()
	}
	return &Printer{out: out, profile: profile}
}

// PrintResult writes the full human report for one validation run. The
// schema is consulted to redact values of sensitive properties; a nil schema
// disables redaction.
func (p *Printer) PrintResult(result domain.Result, s *schema.Schema) {
	for _, e := range result.Errors {
		fmt.Fprintln(p.out, p.paint("  ✗ "+p.redact(e.Message, e.Key, e.Value, s), ansiRed))
	}
	for _, w := range result.Warnings {
		fmt.Fprintln(p.out, p.paint("  ⚠ "+p.redact(w.Message, w.Key, w.Value, s), ansiYellow))
	}
	if len(result.Errors) > 0 || len(result.Warnings) > 0 {
		fmt.Fprintln(p.out)
	}

	if result.Valid {
		fmt.Fprintln(p.out, p.paint("  ✓ "+result.Summary(), ansiGreen))
	} else {
		fmt.Fprintln(p.out, p.paint("  ✗ "+result.Summary(), ansiRed))
	}
}

// PrintValues lists the resolved configuration in declaration order.
// Sensitive properties print as Mask regardless of their value.
func (p *Printer) PrintValues(result domain.Result, s *schema.Schema) {
	if s == nil || len(result.Values) == 0 {
		return
	}

	width := 0
	var names []string
	for _, name := range s.Names() {
		if _, ok := result.Values[name]; !ok {
			continue
		}
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	if len(names) == 0 {
		return
	}

	fmt.Fprintln(p.out)
	for _, name := range names {
		value := fmt.Sprint(result.Values[name])
		if prop, ok := s.Property(name); ok && prop.Sensitive {
			value = Mask
		}
		fmt.Fprintf(p.out, "  %-*s = %s\n", width, name, p.paint(value, ansiCyan))
	}
}

// redact hides the raw value inside a message when the named property is
// declared sensitive. Messages embed raw values only for coercion and
// constraint failures, so plain substring replacement is enough.
func (p *Printer) redact(message, key, value string, s *schema.Schema) string {
	if s == nil || value == "" {
		return message
	}
	prop, ok := s.Property(key)
	if !ok || !prop.Sensitive {
		return message
	}
	return strings.ReplaceAll(message, value, Mask)
}

func (p *Printer) paint(text, color string) string {
	return termenv.String(text).Foreground(p.profile.Color(color)).String()
}
