// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-text CLI. Run with no
// arguments, it extracts the text of every PDF under the current directory
// into ./__pdf_text.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/pdiddy/pdf-text/internal/convert"
	"github.com/pdiddy/pdf-text/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	configName = "pdf-text"
	envPrefix  = "PDF_TEXT"
)

// rootCmd extracts text from every PDF below the working directory.
var rootCmd = &cobra.Command{
	Use:   "pdf-text",
	Short: "Extract plain text from every PDF under the current directory",
	Long: `pdf-text finds every *.pdf file below the current directory, extracts its
text, and writes <name>.txt into ./__pdf_text. Line endings are normalized
to LF and output is UTF-8.

A file that cannot be extracted is reported and skipped; the run always
finishes. Only failure to create ./__pdf_text stops it.

The extraction backend is chosen in pdf-text.yaml or with
PDF_TEXT_CONVERSION_BACKEND (native, pdftotext, or markitdown).`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		root, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		return run(root, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", configName))
	}
	setupViper(viper.GetViper(), dirs...)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setupViper points v at pdf-text.yaml in dirs and at PDF_TEXT_* variables,
// with defaults for every key so environment overrides reach Unmarshal.
func setupViper(v *viper.Viper, dirs ...string) {
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	for _, d := range dirs {
		v.AddConfigPath(d)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := types.DefaultConfig()
	v.SetDefault("conversion.backend", string(def.Conversion.Backend))
	v.SetDefault("conversion.validate", def.Conversion.Validate)
}

func loadConfig(v *viper.Viper) (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("parsing configuration: %w", err)
	}
	return cfg, nil
}

// run builds the configured converter and processes root. Per-file failures
// are reported by the driver and do not produce an error.
func run(root string, cfg types.Config, stdout, stderr io.Writer) error {
	c, err := convert.NewConverter(cfg.Conversion)
	if err != nil {
		return err
	}
	_, err = convert.Run(root, c, stdout, stderr)
	return err
}

func main() {
	// Color only when a person is watching both streams.
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stderr.Fd())) {
		color.NoColor = true
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
