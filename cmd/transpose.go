package cmd

import (
	"fmt"

	"github.com/featdiibs/simple-chord-transposer/transpose"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	transposeFlags optionFlags
	annotate       string
	outputPath     string
)

func init() {
	transposeFlags.register(transposeCmd)
	transposeCmd.Flags().StringVar(&annotate, "annotate", "none", "annotate chords in the output: none, html or ansi")
	transposeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose [file]",
	Short: "Transposes a song sheet",
	Long:  `Transposes the chords in a song sheet read from a file or stdin.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := transposeFlags.options(cmd)
		if err != nil {
			return err
		}
		ann, ok := transpose.AnnotatorByName(annotate, cfg.Color)
		if !ok {
			return fmt.Errorf("unknown annotation %q", annotate)
		}

		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		log.Debug("transposing", zap.Int("shift", opts.Shift), zap.Bool("flats", opts.PreferFlats), zap.Int("bytes", len(text)))
		res := transpose.DocumentWith(text, opts, ann)
		return writeOutput(cmd, outputPath, res.Annotated)
	},
}
