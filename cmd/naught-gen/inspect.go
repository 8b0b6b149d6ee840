package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"naught-generator/internal/analyze"
	"naught-generator/naught"
)

// surfaceView is the printed form of one analyzed type.
type surfaceView struct {
	Type       string   `yaml:"type" json:"type"`
	Root       string   `yaml:"root" json:"root"`
	Comparable bool     `yaml:"comparable" json:"comparable"`
	Declared   []string `yaml:"declared,omitempty" json:"declared,omitempty"`
	Mimicked   []string `yaml:"mimicked,omitempty" json:"mimicked,omitempty"`
}

func newSurfaceView(e analyze.Entry) surfaceView {
	return surfaceView{
		Type:       e.ID.String(),
		Root:       naught.RootOf(e.Surface).String(),
		Comparable: e.Surface.Comparable,
		Declared:   e.Surface.MethodNames(false),
		Mimicked:   e.Surface.MethodNames(true),
	}
}

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <package>...",
		Short: "Print the surfaces of every exported type in the given packages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := analyze.NewAnalyzerWithLogger(a.logger).LoadPackages(args...)
			if err != nil {
				return err
			}

			entries := graph.Entries()
			views := make([]surfaceView, 0, len(entries))
			for _, e := range entries {
				views = append(views, newSurfaceView(e))
			}

			return printViews(cmd.OutOrStdout(), a.v.GetString(keyFormat), views)
		},
	}

	cmd.Flags().String(keyFormat, "yaml", "Output format: yaml or json")

	return cmd
}

func printViews(w io.Writer, format string, views []surfaceView) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}

		return enc.Close()
	case "json":
		data, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}

		_, err = fmt.Fprintln(w, string(data))

		return err
	default:
		return fmt.Errorf("unsupported format %q (want yaml or json)", format)
	}
}
