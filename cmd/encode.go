package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Mohsinsiddi/fixgen/internal/fixture"
	"github.com/Mohsinsiddi/fixgen/internal/table"
	"github.com/spf13/cobra"
)

var index int

func runEncode(cmd *cobra.Command, args []string) error {
	name := cfg.DefaultMode
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		return errors.New("no mode given; run \"fixgen modes\" for the list")
	}

	mode, err := fixture.LookupMode(name)
	if err != nil {
		return err
	}
	if !mode.IsLength() && !cmd.Flags().Changed("index") {
		return fmt.Errorf("mode %s needs --index", mode.Name)
	}

	tbl, err := table.Load(cfg.TableInput())
	if err != nil {
		return err
	}
	slog.Debug("table loaded", "path", cfg.TableInput(), "rows", tbl.Len(), "columns", tbl.Columns())

	out, err := fixture.Encode(tbl, index, mode)
	if err != nil {
		return err
	}
	slog.Debug("encoded", "mode", mode.Name, "index", index, "words", len(mode.Columns))

	// Bare output: the caller parses stdout as hex.
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func init() {
	rootCmd.Flags().IntVar(&index, "index", 0, "zero-based row index (required for row modes)")
}
