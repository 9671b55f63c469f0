package cmd

import (
	"fmt"

	"github.com/Mohsinsiddi/fixgen/internal/fixture"
	"github.com/Mohsinsiddi/fixgen/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n\n", ui.StyleTitle.Render("Current Configuration"))
		fmt.Fprint(out, string(data))
		fmt.Fprintln(out, ui.Meta("Config file: "+cfg.Path()))
		if in := cfg.TableInput(); in != cfg.Input {
			fmt.Fprintln(out, ui.Meta("Input for this run: "+in))
		}
		return nil
	},
}

var configSetInputCmd = &cobra.Command{
	Use:   "set-input <path>",
	Short: "Set the default CSV table path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Input = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Input set to %q", args[0])))
		return nil
	},
}

var configSetDefaultModeCmd = &cobra.Command{
	Use:   "set-default-mode <mode>",
	Short: "Set the mode used when fixgen is run without one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := fixture.LookupMode(args[0])
		if err != nil {
			return err
		}
		cfg.DefaultMode = m.Name
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Default mode set to %q", m.Name)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configListCmd, configSetInputCmd, configSetDefaultModeCmd)
}
