package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/jep106/internal/export"
	"github.com/pdiddy/jep106/internal/registry"
	"github.com/pdiddy/jep106/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export <jep106.S>",
	Short: "Export a registry to YAML, JSON, or SQLite",
	Long: `Export reads a generated registry and writes its manufacturers to a
YAML file, a JSON file, or a SQLite database (table manufacturers). Disabled
entries are skipped unless --all is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "yaml", "output format: yaml, json, or sqlite")
	exportCmd.Flags().String("out", "", "output path (default: registry name with the format's extension)")
	exportCmd.Flags().Bool("all", false, "include disabled entries")

	rootCmd.AddCommand(exportCmd)
}

var formatExt = map[types.ExportFormat]string{
	types.ExportYAML:   ".yaml",
	types.ExportJSON:   ".json",
	types.ExportSQLite: ".db",
}

func runExport(cmd *cobra.Command, args []string) error {
	src := args[0]
	formatFlag, _ := cmd.Flags().GetString("format")
	format := types.ExportFormat(strings.ToLower(formatFlag))
	outPath, _ := cmd.Flags().GetString("out")
	all, _ := cmd.Flags().GetBool("all")

	ext, ok := formatExt[format]
	if !ok {
		return fmt.Errorf("unknown export format %q: want yaml, json, or sqlite", formatFlag)
	}
	if outPath == "" {
		outPath = strings.TrimSuffix(src, ".S") + ext
	}

	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening registry: %w", err)
	}
	defer f.Close()

	entries, err := registry.Entries(f)
	if err != nil {
		return fmt.Errorf("reading registry %s: %w", src, err)
	}

	doc, err := export.NewDocument(src, entries, all)
	if err != nil {
		return err
	}
	if err := export.Write(format, outPath, doc); err != nil {
		return fmt.Errorf("exporting %s: %w", outPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "exported %d manufacturers to %s\n", len(doc.Manufacturers), outPath)
	return nil
}
