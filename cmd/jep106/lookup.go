package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/jep106/internal/registry"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <jep106.S> <id>...",
	Short: "Resolve manufacturer ids against a registry",
	Long: `Lookup prints the manufacturer name for each id. An id may be given as
four hex digits (004E), as a one-based bank and decimal code (1:78), or as
the two SPD bytes holding the continuation count and code (spd:0x80,0xCE).`,
	Args: cobra.MinimumNArgs(2),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening registry: %w", err)
	}
	defer f.Close()

	entries, err := registry.Entries(f)
	if err != nil {
		return fmt.Errorf("reading registry %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	for _, arg := range args[1:] {
		id, err := registry.ParseID(arg)
		if err != nil {
			return err
		}
		e, ok := registry.Find(entries, id)
		switch {
		case !ok:
			fmt.Fprintf(out, "%s  unknown\n", id)
		case !e.Enabled:
			fmt.Fprintf(out, "%s  %s (disabled)\n", id, e.Name)
		default:
			fmt.Fprintf(out, "%s  %s\n", id, e.Name)
		}
	}
	return nil
}
