// Package cmd provides the CLI commands for dentrack.
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dentrack/dentrack-go/internal/config"
	"github.com/dentrack/dentrack-go/internal/output"
	"github.com/dentrack/dentrack-go/internal/store"
)

var (
	// Version is set at build time via ldflags.
	Version = "dev"
	// Commit is set at build time via ldflags.
	Commit = "none"
	// Date is set at build time via ldflags.
	Date = "unknown"
)

var (
	cfgFile string
	noColor bool
	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dentrack",
	Short: "Cub Scout den advancement tracker",
	Long: `Dentrack tracks Cub Scout advancement for a den: which scouts attended
which meetings, what each meeting covered, and the per-scout completion,
rank eligibility, planning, and comparison reports derived from that.

All state lives in four CSV files (roster, requirement catalog, meetings,
attendance) in the data directory; every report is recomputed from them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			output.DisableColor()
		}
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .dentrack/config.yaml or dentrack.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(meetingCmd)
	rootCmd.AddCommand(attendCmd)
}

// loadConfig resolves the configuration from --config or discovery.
func loadConfig() (*config.Config, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get working directory: %w", err)
	}

	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return nil, "", err
		}
		return cfg, cwd, nil
	}

	cfg, err := config.LoadFromDir(cwd)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, cwd, nil
}

// loadStore loads the den data per the resolved configuration.
func loadStore() (*config.Config, *store.Store, error) {
	cfg, cwd, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	dataDir := cfg.DataPath(cwd)
	log.WithField("dir", dataDir).Debug("loading den data")
	s, err := store.Load(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load den data: %w", err)
	}
	return cfg, s, nil
}
