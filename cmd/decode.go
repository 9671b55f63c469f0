package cmd

import (
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/fixgen/internal/fixture"
	"github.com/Mohsinsiddi/fixgen/internal/ui"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <mode> <hex>",
	Short: "Decode a fixture string back into its fields",
	Long: `Split an encoded fixture into 32-byte words and decode each one using the
layout of the given mode. Amounts are shown both raw and divided back by
the mode's scale.

Examples:
  fixgen decode length 0x0000000000000000000000000000000000000000000000000000000000000007
  fixgen decode row "$(fixgen row --index 0)"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := fixture.LookupMode(args[0])
		if err != nil {
			return err
		}

		vals, err := fixture.Decode(mode, args[1])
		if err != nil {
			return err
		}

		words := splitHexWords(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(args[1])), "0x"))
		pairs := [][2]string{
			{"Mode", ui.ModeName(mode.Name)},
			{"Words", ui.Val(fmt.Sprintf("%d", len(words)))},
		}
		for i, v := range vals {
			label := fmt.Sprintf("%s (%s)", v.Column.Name, v.Column.Type)
			val := ui.Val(v.String())
			if v.Column.Kind == fixture.KindAmount && mode.Decimals > 0 {
				val += ui.Meta(fmt.Sprintf(" = %s × 1e%d", v.Units(), mode.Decimals))
			}
			pairs = append(pairs, [2]string{label, val})
			pairs = append(pairs, [2]string{fmt.Sprintf("Word[%d]", i), ui.Word(words[i])})
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Decoded Fixture", pairs))
		return nil
	},
}

// splitHexWords splits a hex string into 64-char (32-byte) words.
func splitHexWords(hex string) []string {
	var words []string
	for i := 0; i+64 <= len(hex); i += 64 {
		words = append(words, hex[i:i+64])
	}
	// Trailing partial word.
	if remainder := len(hex) % 64; remainder > 0 && len(hex) > 64 {
		words = append(words, hex[len(hex)-remainder:])
	} else if len(hex) < 64 && len(hex) > 0 {
		words = append(words, hex)
	}
	return words
}
