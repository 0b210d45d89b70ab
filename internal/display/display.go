// Package display renders fields, profiles, and lint reports for the CLI.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xileflig/naming/internal/convention"
	"github.com/xileflig/naming/internal/lint"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// RenderFields returns a table of registered fields: name, kind, default,
// and kind-specific detail.
func RenderFields(fields []*convention.Field) string {
	if len(fields) == 0 {
		return dimStyle.Render("no fields registered")
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-16s %-8s %-12s %s", "FIELD", "KIND", "DEFAULT", "DETAIL")))
	b.WriteString("\n")
	for _, f := range fields {
		def := "-"
		if d, ok := f.Default(); ok {
			def = d
		}
		fmt.Fprintf(&b, "%-16s %-8s %-12s %s\n", f.Name(), f.Kind(), def, fieldDetail(f))
	}
	return strings.TrimRight(b.String(), "\n")
}

func fieldDetail(f *convention.Field) string {
	var parts []string
	if !f.Required() {
		parts = append(parts, "optional")
	}
	switch f.Kind() {
	case convention.KindLookup:
		pairs := f.Pairs()
		keys := make([]string, 0, len(pairs))
		for _, p := range pairs {
			keys = append(keys, p.Key+"="+p.Token)
		}
		parts = append(parts, strings.Join(keys, ", "))
	case convention.KindInteger:
		parts = append(parts, fmt.Sprintf("padding %d", f.Padding()))
	}
	return strings.Join(parts, "; ")
}

// RenderProfiles returns one line per profile, marking the active one.
func RenderProfiles(profiles []*convention.Profile, active string) string {
	if len(profiles) == 0 {
		return dimStyle.Render("no profiles registered")
	}
	var b strings.Builder
	for _, p := range profiles {
		names := make([]string, 0, len(p.Fields()))
		for _, f := range p.Fields() {
			names = append(names, f.Name())
		}
		line := fmt.Sprintf("  %-16s sep %q  fields: %s", p.Name(), p.Separator(), strings.Join(names, ", "))
		if p.Name() == active {
			line = activeStyle.Render("*") + line[1:]
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderValues returns the decoded field values of an unsolved name, one
// per line in field order.
func RenderValues(values []convention.FieldValue) string {
	var b strings.Builder
	for _, fv := range values {
		fmt.Fprintf(&b, "%s = %v\n", fv.Field, fv.Value)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderReport returns a lint summary followed by one line per violation.
func RenderReport(r *lint.Report) string {
	var b strings.Builder
	summary := fmt.Sprintf("%d file(s) checked against profile %q: %d compliant, %d violation(s)",
		r.Total, r.Profile, r.Compliant, len(r.Violations))
	if r.Clean() {
		b.WriteString(summary)
	} else {
		b.WriteString(badStyle.Render(summary))
	}
	for _, v := range r.Violations {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s: %v", v.Path, v.Err)
	}
	return b.String()
}
