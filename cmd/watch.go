package cmd

import (
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/featdiibs/simple-chord-transposer/config"
	"github.com/featdiibs/simple-chord-transposer/constants"
	"github.com/featdiibs/simple-chord-transposer/transpose"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	watchFlags  optionFlags
	watchOutput string
)

func init() {
	watchFlags.register(watchCmd)
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-transposes a song sheet whenever it changes",
	Long: `Watches a song sheet and writes its transposition every time the file
or the config file is saved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		sheetChanges, err := config.Watch(ctx, args[0])
		if err != nil {
			return err
		}
		configChanges, err := config.Watch(ctx, configPath)
		if err != nil {
			// nil channel, config changes are simply never seen
			log.Warn("not watching config", zap.String("path", configPath), zap.Error(err))
		}

		var mu sync.Mutex
		render := func() {
			mu.Lock()
			defer mu.Unlock()
			if err := renderWatched(cmd, args); err != nil {
				log.Warn("transpose failed", zap.String("file", args[0]), zap.Error(err))
			}
		}
		debounced := debounce.New(constants.WatchDebounceMillis * time.Millisecond)

		render()
		for {
			select {
			case <-ctx.Done():
				return nil
			case _, ok := <-sheetChanges:
				if !ok {
					return nil
				}
				log.Debug("sheet changed", zap.String("file", args[0]))
				debounced(render)
			case _, ok := <-configChanges:
				if !ok {
					return nil
				}
				loaded, err := config.Load(configPath)
				if err != nil {
					log.Warn("config reload failed", zap.Error(err))
					continue
				}
				mu.Lock()
				cfg = loaded
				mu.Unlock()
				log.Info("config reloaded", zap.String("path", configPath))
				debounced(render)
			}
		}
	},
}

func renderWatched(cmd *cobra.Command, args []string) error {
	opts, err := watchFlags.options(cmd)
	if err != nil {
		return err
	}
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	res := transpose.DocumentWith(text, opts, transpose.NewANSIAnnotator(cfg.Color && watchOutput == ""))
	if watchOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "----")
		return writeOutput(cmd, "", res.Annotated+"\n")
	}
	return writeOutput(cmd, watchOutput, res.Plain)
}
