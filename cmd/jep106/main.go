// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the jep106 CLI, which regenerates the
// jep106.S manufacturer registry from the JEDEC JEP106 PDF.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/jep106/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Process exit codes.
const (
	exitOK = iota
	exitMissingArgs
	exitSourceNotFound
	exitNoRecords
	exitFailure
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// logger is built in PersistentPreRunE and synced in PersistentPostRun.
var logger = zap.NewNop()

// rootCmd is the base command for the jep106 CLI.
var rootCmd = &cobra.Command{
	Use:   "jep106",
	Short: "Generate the JEDEC manufacturer registry from JEP106",
	Long: `jep106 extracts manufacturer codes from the JEDEC JEP106 PDF and
regenerates the jep106.S registry consumed by the SPD decoder.

Manual corrections survive regeneration: entries that are enabled in the
existing registry keep their names, and entries commented out stay disabled.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(cmd)
		if err != nil {
			return &exitError{code: exitFailure, err: err}
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./jep106.yaml or ~/.config/jep106/jep106.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	viper.SetDefault("converter.backend", string(types.BackendPdftotext))
	viper.SetDefault("converter.binary", "pdftotext")
	viper.SetDefault("converter.image", "minidocks/poppler:latest")
	viper.SetDefault("log.level", "info")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("jep106")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "jep106"))
		}
	}

	viper.SetEnvPrefix("JEP106")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig returns the merged configuration from defaults, file, and
// environment.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds a production zap logger writing to stderr. --verbose
// forces debug level; otherwise log.level from the configuration applies.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.InfoLevel
	if s := viper.GetString("log.level"); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("parsing log level %q: %w", s, err)
		}
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)

	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFailure
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitCode(err))
}
