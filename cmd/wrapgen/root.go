package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "wrapgen",
		Short: "Plan wrapper types for annotated Go structs",
		Long: `wrapgen analyzes struct declarations marked for wrapping and decides
which field the wrapper behaves like and whether mutable access is safe.

Mark a type with a doc comment directive and, when it has several fields,
tag the inner one:

  //wrapgen:wrap
  type Labeled struct {
      Label string
      Value []byte ` + "`wrap:\"inner\"`" + `
  }`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default .wrapgen.yaml if present)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress and show info diagnostics")

	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newScopeCmd())

	return cmd
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
