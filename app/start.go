package app

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/GoSitesAdmin/GoSitesAdmin/internal/config"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/daemon"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	startCmd.Flags().StringVar(
		&configPath,
		"config",
		"",
		"Path to the configuration directory (defaults to ./etc/)",
	)

	rootCmd.AddCommand(startCmd)
}

var (
	configPath string // Path to the configuration file

	cfg     config.Config
	err     error
	devMode bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the GoSitesAdmin web service",
		PreRun: func(_ *cobra.Command, _ []string) {
			// optional .env file for local development
			_ = godotenv.Load()

			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}

			if devMode {
				cfg.DevMode = true
			}

			if err = logger.Init(cfg.Log); err != nil {
				panic(err)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			daemon := daemon.New(&cfg)
			if err := daemon.Start(); err != nil {
				return err
			}

			return nil
		},
	}
)
