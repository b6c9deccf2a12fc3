package main

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"wrapgen/internal/config"
	"wrapgen/internal/decl"
	"wrapgen/internal/manifest"
	"wrapgen/internal/plan"
	"wrapgen/internal/report"
)

var errNothingToCheck = errors.New("nothing to check: pass package patterns or --manifest")

type checkOptions struct {
	*rootOptions
	manifest string
	mutable  bool
	workers  int
	dump     bool
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	opts := &checkOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "check [packages...]",
		Short: "Select inner fields and validate wrapper visibility",
		Long: `Check loads the given Go packages (standard patterns such as ./...) and/or
a YAML manifest, plans a wrapper for every declaration marked for wrapping,
and reports why any declaration cannot be wrapped.

The command fails if any declaration has errors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.manifest, "manifest", "m", "", "YAML manifest of declarations")
	cmd.Flags().BoolVar(&opts.mutable, "mutable", true, "request mutable access to the inner field")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "number of declarations planned concurrently")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "dump the loaded declaration model")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions, patterns []string) error {
	log := opts.logger(cmd)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("manifest") {
		cfg.Manifest = opts.manifest
	}
	if flags.Changed("mutable") {
		cfg.Mutable = &opts.mutable
	}
	if flags.Changed("workers") && opts.workers > 0 {
		cfg.Workers = opts.workers
	}

	decls, err := loadDeclarations(cfg, patterns)
	if err != nil {
		return err
	}
	log.Debug("loaded declarations", "count", len(decls), "patterns", patterns, "manifest", cfg.Manifest)

	if opts.dump {
		dumpDeclarations(cmd, decls)
	}

	planOpts := cfg.PlanOptions()
	log.Debug("planning", "workers", planOpts.Workers, "mutable", planOpts.Mutable)

	plans, err := plan.BuildAll(cmd.Context(), decls, planOpts)
	if err != nil {
		return err
	}

	if err := report.Plans(cmd.OutOrStdout(), plans, opts.verbose); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	diags := plans.Diagnostics()
	if diags.HasErrors() {
		return fmt.Errorf("%d error(s) in %d declaration(s)", len(diags.Errors), len(decls))
	}

	return nil
}

func loadDeclarations(cfg *config.Config, patterns []string) ([]*decl.Declaration, error) {
	if len(patterns) == 0 && cfg.Manifest == "" {
		return nil, errNothingToCheck
	}

	var decls []*decl.Declaration

	if len(patterns) > 0 {
		loaded, err := cfg.Loader().LoadPackages(patterns...)
		if err != nil {
			return nil, err
		}
		decls = append(decls, loaded...)
	}

	if cfg.Manifest != "" {
		loaded, err := manifest.LoadFile(cfg.Manifest)
		if err != nil {
			return nil, err
		}
		decls = append(decls, loaded...)
	}

	return decls, nil
}

// dumpDeclarations prints the declaration model without go/types internals.
func dumpDeclarations(cmd *cobra.Command, decls []*decl.Declaration) {
	view := make([]decl.Declaration, len(decls))
	for i, d := range decls {
		view[i] = *d
		view[i].Fields = make([]decl.Field, len(d.Fields))
		for j, f := range d.Fields {
			f.Type.GoType = nil
			view[i].Fields[j] = f
		}
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	cfg.Fdump(cmd.OutOrStdout(), view)
}
