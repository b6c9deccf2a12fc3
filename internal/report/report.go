// Package report renders plans and diagnostics for terminal output.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"wrapgen/internal/diagnostic"
	"wrapgen/internal/plan"
	"wrapgen/internal/visibility"
)

var severityStyles = map[diagnostic.DiagnosticSeverity]lipgloss.Style{
	diagnostic.DiagnosticError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	diagnostic.DiagnosticWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	diagnostic.DiagnosticInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

// Plans writes a summary table of the plans followed by their diagnostics.
// Info diagnostics are only written when verbose is set.
func Plans(w io.Writer, plans plan.Plans, verbose bool) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Declaration", "Form", "Inner", "Access", "Immutable", "Mutable"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	failed := 0
	for _, p := range plans {
		inner := "-"
		if p.Form != plan.FormNone {
			inner = p.Inner.Ident()
		}

		access := "-"
		if p.AccessChecked {
			access = p.Access.String()
		}

		if p.Diagnostics.HasErrors() {
			failed++
		}

		table.Append([]string{
			p.Declaration.ID(),
			p.Form.String(),
			inner,
			access,
			yesNo(p.Immutable),
			yesNo(p.Mutable),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(plans)),
		"", "", "", "",
		fmt.Sprintf("Failed %d", failed),
	})
	table.Render()

	if _, err := fmt.Fprintf(w, "\n%s", tableBuffer.String()); err != nil {
		return err
	}

	diags := plans.Diagnostics()

	return Diagnostics(w, diags, verbose)
}

// Diagnostics writes one line per diagnostic, followed by its suggestions.
func Diagnostics(w io.Writer, diags diagnostic.Diagnostics, verbose bool) error {
	for _, d := range diags.All() {
		if d.Severity == diagnostic.DiagnosticInfo && !verbose {
			continue
		}

		label := severityStyles[d.Severity].Render(d.Severity.String())
		if _, err := fmt.Fprintf(w, "%s: %s\n", label, d); err != nil {
			return err
		}

		for _, s := range d.Suggestions {
			if _, err := fmt.Fprintf(w, "    hint: %s\n", s); err != nil {
				return err
			}
		}
	}

	return nil
}

// Scopes writes the normalized paths of a declaration and a field scope and
// the result of comparing them.
func Scopes(w io.Writer, declaration, field visibility.Scope) (visibility.Containment, error) {
	declPath := visibility.Normalize(declaration)
	fieldPath := visibility.Normalize(field)
	result := visibility.FieldAccess(declaration, field)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"", "Scope", "Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.Append([]string{"declaration", declaration.String(), declPath.String()})
	table.Append([]string{"field", field.String(), fieldPath.String()})
	table.Render()

	_, err := fmt.Fprintf(w, "%s\nfield access: %s\n", tableBuffer.String(), result)

	return result, err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
