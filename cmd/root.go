package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/learnpath/internal/config"
)

// v holds configuration for the running command.
var v = viper.New()

var rootCmd = &cobra.Command{
	Use:   "learnpath",
	Short: "Find out where you stand and get a study plan",
	Long: "learnpath is a terminal client for the learning-assessment service: it " +
		"collects your profile, runs a short assessment, shows your scores and " +
		"builds a week-by-week learning roadmap you can discuss with an assistant.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a learnpath.yaml config file")
	flags.String("server", "", "Base URL of the assessment server (overrides LEARNPATH_SERVER_BASE_URL)")
	flags.String("log-file", "", "Path of the log file")
	flags.String("export-dir", "", "Directory exported roadmaps are written to")

	mustBind(config.KeyServerBaseURL, "server")
	mustBind(config.KeyLogFile, "log-file")
	mustBind(config.KeyExportDir, "export-dir")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(roadmapCmd)
}

func mustBind(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}

// loadConfig loads .env and the configuration for cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, file)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
