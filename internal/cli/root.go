package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"demclean/internal/model"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "demclean",
	Short: "Demclean - triage game demo recordings by their event annotations",
	Long: `Demclean scans a directory of demo recordings and decides which ones are
worth keeping, based on the event annotations the recording tool stored
alongside them.

Two annotation sources are supported:
  sidecar   one JSON events file per demo, same base name
  eventlog  a single shared KillStreaks.txt log covering the directory

By default only pristine demos (no annotations at all) are kept. With
--killstreak-only, demos whose every event is a killstreak are kept too;
demos with custom bookmarks are always excluded.

Included demos can then be moved or copied into a per-source output
folder, or their paths exported to a manifest file.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("demclean v0.2.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.demclean/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("output.no_color", rootCmd.PersistentFlags().Lookup("no-color"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.demclean")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match DEMCLEAN_*
	viper.SetEnvPrefix("DEMCLEAN")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration: defaults overlaid with
// the config file and environment, then the console flags.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	if verbose {
		cfg.Output.Verbose = true
	}
	if noColor {
		cfg.Output.NoColor = true
	}
	color.NoColor = color.NoColor || cfg.Output.NoColor

	return cfg, nil
}
