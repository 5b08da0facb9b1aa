package cmd

import (
	"fmt"
	"strings"

	"github.com/featdiibs/simple-chord-transposer/key"
	"github.com/featdiibs/simple-chord-transposer/pitch"
	"github.com/spf13/cobra"
)

var keyFlats bool

func init() {
	keyCmd.Flags().BoolVar(&keyFlats, "flats", false, "spell the key with flats")
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(keysCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key [file]",
	Short: "Suggests the original key of a song sheet",
	Long:  `Suggests the original key of a song sheet, picking the most frequent chord root.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flats := cfg.Flats
		if cmd.Flags().Changed("flats") {
			flats = keyFlats
		}
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		k, ok := key.Suggest(text, flats)
		if !ok {
			k = "no key"
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), k)
		return err
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Lists the key names",
	Long:  `Lists the key names accepted by --from and --to.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(pitch.KeyNames, " "))
		return err
	},
}
