package cmd

import (
	"github.com/featdiibs/simple-chord-transposer/config"
	"github.com/featdiibs/simple-chord-transposer/constants"
	"github.com/featdiibs/simple-chord-transposer/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	logLevel   string

	cfg = config.Default()
	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "transposer",
	Short: "Transposes chords in plain-text song sheets",
	Long: `Transposes chord symbols found in plain-text song sheets by a number of
semitones, leaving lyrics, spacing and layout untouched.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		log = logger.GetLogger(cfg.LogLevel)
		log.Debug("config loaded", zap.String("path", configPath))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", constants.GetConfigPath(), "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "log level (debug, info, warn, error)")
}

func Execute() {
	defer func() { _ = log.Sync() }()
	cobra.CheckErr(rootCmd.Execute())
}
