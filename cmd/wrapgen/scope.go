package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wrapgen/internal/report"
	"wrapgen/internal/visibility"
)

func newScopeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scope <declaration-scope> <field-scope>",
		Short: "Compare a declaration scope with a field scope",
		Long: `Scope normalizes two visibility descriptors and reports whether a field
with the second is visible everywhere a declaration with the first is.

Descriptors: public, module, private, or "in <path>" where the path may
start with self or super, e.g. "in super/b" or "in a/b/c".

The command fails unless the field is visible.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			declaration, err := visibility.ParseScope(args[0])
			if err != nil {
				return fmt.Errorf("declaration scope: %w", err)
			}

			field, err := visibility.ParseScope(args[1])
			if err != nil {
				return fmt.Errorf("field scope: %w", err)
			}

			result, err := report.Scopes(cmd.OutOrStdout(), declaration, field)
			if err != nil {
				return err
			}

			if result != visibility.Visible {
				return fmt.Errorf("field access is %s", result)
			}

			return nil
		},
	}
}
