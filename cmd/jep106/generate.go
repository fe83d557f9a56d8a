package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/jep106/internal/container"
	"github.com/pdiddy/jep106/internal/convert"
	"github.com/pdiddy/jep106/internal/registry"
	"github.com/pdiddy/jep106/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate <JEP106.pdf> <jep106.S>",
	Short: "Regenerate jep106.S from a JEP106 PDF",
	Long: `Generate converts the JEP106 PDF to text with pdftotext, extracts every
manufacturer code, merges the result with the existing registry, and rewrites
the registry file.

On the first run (no registry yet) every manufacturer is enabled. Afterwards
new manufacturers are added commented out, enabled entries keep their
curated names, and renamed disabled entries are reported on stdout.

Exit codes: 1 missing arguments, 2 PDF not found, 3 no records extracted.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return &exitError{
				code: exitMissingArgs,
				err:  fmt.Errorf("provide the JEP106 PDF and the registry file: %s", cmd.UseLine()),
			}
		}
		return nil
	},
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("backend", "", "conversion backend: pdftotext or container (default pdftotext)")
	generateCmd.Flags().String("binary", "", "pdftotext executable for the pdftotext backend")
	generateCmd.Flags().String("image", "", "container image providing pdftotext for the container backend")

	_ = viper.BindPFlag("converter.backend", generateCmd.Flags().Lookup("backend"))
	_ = viper.BindPFlag("converter.binary", generateCmd.Flags().Lookup("binary"))
	_ = viper.BindPFlag("converter.image", generateCmd.Flags().Lookup("image"))

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	pdfPath, registryPath := args[0], args[1]

	if info, err := os.Stat(pdfPath); err != nil || info.IsDir() {
		return &exitError{code: exitSourceNotFound, err: fmt.Errorf("file %q does not exist", pdfPath)}
	}

	cfg, err := loadConfig()
	if err != nil {
		return &exitError{code: exitFailure, err: err}
	}

	conv, err := newConverter(cfg.Converter, logger)
	if err != nil {
		return &exitError{code: exitNoRecords, err: fmt.Errorf("parsing %s: %w", pdfPath, err)}
	}

	if _, err := registry.Generate(conv, pdfPath, registryPath, cmd.OutOrStdout(), logger); err != nil {
		if errors.Is(err, registry.ErrNoRecords) {
			return &exitError{code: exitNoRecords, err: err}
		}
		return &exitError{code: exitFailure, err: err}
	}
	return nil
}

// newConverter builds the converter selected by cfg.Backend.
func newConverter(cfg types.ConverterConfig, log *zap.Logger) (convert.Converter, error) {
	switch cfg.Backend {
	case "", types.BackendPdftotext:
		return convert.NewPdftotextConverter(cfg.Binary, log), nil
	case types.BackendContainer:
		rt, err := container.DetectRuntime()
		if err != nil {
			return nil, err
		}
		log.Debug("using container runtime", zap.String("runtime", rt.Name()))
		return convert.NewContainerConverter(rt, cfg.Image, log)
	default:
		return nil, fmt.Errorf("unknown converter backend %q: want pdftotext or container", cfg.Backend)
	}
}
