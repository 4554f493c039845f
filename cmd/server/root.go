package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"triptogether_echo/internal/config"
	"triptogether_echo/internal/utils"
)

var cfgFile string

// rootCmd runs the web server when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "triptogether",
	Short: "Trip Together landing site",
	Long: `Serves the Trip Together study abroad landing page.

Running without a subcommand is the same as "serve".`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

// Execute runs the root command. It is called once by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.triptogether.yaml)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "", "Set log level. Available: debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	rootCmd.Flags().String("port", "", "HTTP port (default from PORT or 8080)")
}

// loadConfig reads the config and applies the flags that were set explicitly
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := map[string]interface{}{}
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		overrides["port"] = f.Value.String()
	}
	if f := cmd.Flags().Lookup("loglevel"); f != nil && f.Changed {
		overrides["log.level"] = f.Value.String()
	}
	if f := cmd.Flags().Lookup("file"); f != nil && f.Changed {
		overrides["content.file"] = f.Value.String()
	}

	cfg, err := config.Load(cfgFile, overrides)
	if err != nil {
		return nil, err
	}

	jsonLogs, _ := cmd.Flags().GetBool("json-logs")
	utils.SetLogFormat(jsonLogs)
	if err := utils.SetLogLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}
