package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/featdiibs/simple-chord-transposer/model"
	"github.com/featdiibs/simple-chord-transposer/pitch"
	"github.com/spf13/cobra"
)

// readInput reads the file named by the first argument, or stdin when
// there is none.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

func writeOutput(cmd *cobra.Command, path string, text string) error {
	if path == "" || path == "-" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

type optionFlags struct {
	shift int
	from  string
	to    string
	flats bool
}

func (f *optionFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.shift, "shift", "s", 0, "semitones to shift by (may be negative)")
	cmd.Flags().StringVar(&f.from, "from", "", "original key, used with --to instead of --shift")
	cmd.Flags().StringVar(&f.to, "to", "", "target key, used with --from instead of --shift")
	cmd.Flags().BoolVar(&f.flats, "flats", false, "spell accidentals with flats")
}

// options merges the flags over the loaded config.
func (f *optionFlags) options(cmd *cobra.Command) (model.Options, error) {
	opts := model.Options{Shift: cfg.Shift, PreferFlats: cfg.Flats}
	if cmd.Flags().Changed("flats") {
		opts.PreferFlats = f.flats
	}
	if cmd.Flags().Changed("shift") {
		opts.Shift = f.shift
	}

	if f.from != "" || f.to != "" {
		if f.from == "" || f.to == "" {
			return opts, fmt.Errorf("--from and --to must be given together")
		}
		shift, err := pitch.ShiftBetween(f.from, f.to)
		if err != nil {
			return opts, err
		}
		opts.Shift = shift
	}
	return opts, nil
}
