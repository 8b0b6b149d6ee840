// Package main provides the CLI entrypoint for naught-gen.
//
// naught-gen is a build-time extractor for null-object surfaces that:
//   - Loads Go packages (go/packages + go/types) named by a YAML manifest
//   - Records the declared methods, embeds and comparability of selected types
//   - Generates naught.Surface literals for Builder.Mimic
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"naught-generator/naught"
)

// Configuration keys, shared by flags and NAUGHT_* environment variables.
const (
	keyConfig   = "config"
	keyManifest = "manifest"
	keyPretty   = "pretty"
	keyVerbose  = "verbose"
	keyFormat   = "format"
)

const (
	envPrefix       = "NAUGHT"
	defaultManifest = "naught.yaml"
)

// app carries state shared by all commands of one invocation.
type app struct {
	v      *viper.Viper
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "naught-gen",
		Short:         "Generate null-object mimicry surfaces from Go packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if path := a.v.GetString(keyConfig); path != "" {
				a.v.SetConfigFile(path)
				if err := a.v.ReadInConfig(); err != nil {
					return fmt.Errorf("failed to read config %s: %w", path, err)
				}
			}

			a.logger = newLogger(cmd.ErrOrStderr(), a.v.GetBool(keyPretty), a.v.GetBool(keyVerbose))

			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(keyConfig, "", "Optional config file (yaml, json or toml) holding flag values")
	flags.StringP(keyManifest, "m", defaultManifest, "Path to the manifest file")
	flags.Bool(keyPretty, false, "Use pretty console logging instead of structured JSON")
	flags.Bool(keyVerbose, false, "Enable debug logging")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newInspectCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

func newLogger(w io.Writer, pretty, verbose bool) zerolog.Logger {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the naught version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "naught-gen", naught.Version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		logger.Fatal().Err(err).Msg("Command failed")
	}
}
