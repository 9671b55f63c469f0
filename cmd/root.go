package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Mohsinsiddi/fixgen/internal/config"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/fixgen/cmd.Version=1.2.3" .
var Version = "1.0.0"

var (
	cfgPath   string
	inputPath string
	cfg       *config.Config
	verbose   bool
)

// rootCmd is the top-level command. Invoked with a mode it encodes one
// fixture; the sub-commands are inspection helpers.
var rootCmd = &cobra.Command{
	Use:   "fixgen <mode> [--index N]",
	Short: "Generate ABI-encoded test fixtures from a CSV table",
	Long: `fixgen reads one row of a CSV table and prints it as a 0x-prefixed
string of 32-byte ABI words, for test harnesses that shell out for fixtures.

The table needs the header columns epoch, blockNumber, strikeIndex, amount
and (for the row modes) txType. Run "fixgen modes" to list the layouts.

Examples:
  fixgen epoch --index 0
  fixgen row --index 3 --input analysis/input.csv
  fixgen length`,
	Version:      Version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config (skip for commands that don't need it).
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg.OverrideInput(inputPath)

		level := cfg.Level()
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: level,
		})))
		slog.Debug("config loaded", "path", cfg.Path(), "input", cfg.TableInput(), "default_mode", cfg.DefaultMode)
		return nil
	},
	RunE: runEncode,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// FIXGEN_CONFIG env var overrides the default config path.
	cfgPath = os.Getenv(config.EnvConfig)

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", cfgPath, "config file (default: ./"+config.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&inputPath, "input", "", "CSV table to read, - for stdin (default: "+config.DefaultInput+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	rootCmd.AddCommand(
		decodeCmd,
		modesCmd,
		configCmd,
	)
}
