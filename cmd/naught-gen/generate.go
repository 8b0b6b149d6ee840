package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"naught-generator/internal/analyze"
	"naught-generator/internal/gen"
	"naught-generator/internal/manifest"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate surface declarations for the types selected by the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.v.GetString(keyManifest)

			m, err := manifest.LoadFile(path)
			if err != nil {
				return err
			}

			diags := manifest.Validate(m)
			diags.Log(a.logger)
			if err := diags.Error(); err != nil {
				return fmt.Errorf("invalid manifest %s: %w", path, err)
			}

			graph, err := analyze.NewAnalyzerWithLogger(a.logger).LoadPackages(m.Packages()...)
			if err != nil {
				return err
			}

			entries, sel := analyze.Select(graph, m)
			sel.Log(a.logger)
			if err := sel.Error(); err != nil {
				return fmt.Errorf("selecting surfaces: %w", err)
			}

			cfg := gen.ConfigFromManifest(m)
			cfg.Logger = a.logger

			out, err := gen.NewGenerator(cfg).Write(entries)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
}
