// Package cli implements the health-journal CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/health-journal/internal/bucket"
	"github.com/rcliao/health-journal/internal/config"
	"github.com/rcliao/health-journal/internal/journal"
	"github.com/rcliao/health-journal/internal/logging"
	"github.com/rcliao/health-journal/internal/store"
)

var (
	dataPath   string
	configPath string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "health-journal",
	Short: "Personal health journal",
	Long:  "Record pain, activity, notes and sleep by the hour, then view, summarize and export them. JSON-file backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "Journal path (default: $HEALTH_JOURNAL_DATA or ~/.health-journal/journal.json)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config path (default: ~/.health-journal/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

func loadConfig() config.Config {
	path := configPath
	if path == "" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, ".health-journal", "config.yaml")
	}
	cfg, err := config.Load(path)
	if err != nil {
		exitErr("load config", err)
	}
	return cfg
}

func getDataPath(cfg config.Config) string {
	if dataPath != "" {
		return dataPath
	}
	if env := os.Getenv("HEALTH_JOURNAL_DATA"); env != "" {
		return env
	}
	return cfg.DataFile
}

// setup wires the config, logger and store together for one command run.
func setup() (config.Config, *zap.Logger, *store.FileStore) {
	cfg := loadConfig()
	log := logging.New(cfg.Log)
	s := store.NewFileStore(getDataPath(cfg), log)
	return cfg, log, s
}

func newJournal() *journal.Journal {
	_, log, s := setup()
	return journal.New(s, time.Now, log)
}

// slotOverride resolves the optional --date/--hour pair into a slot key.
// Returns "" when --date is unset, meaning "now".
func slotOverride(cmd *cobra.Command) string {
	date, _ := cmd.Flags().GetString("date")
	if date == "" {
		return ""
	}
	if !cmd.Flags().Changed("hour") {
		exitErr("resolve slot", fmt.Errorf("--date requires --hour"))
	}
	hour, _ := cmd.Flags().GetInt("hour")
	slot, err := bucket.FromDateHour(date, hour)
	if err != nil {
		exitErr("resolve slot", err)
	}
	return slot
}

func addSlotFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "Historical entry date (YYYY-MM-DD)")
	cmd.Flags().Int("hour", 0, "Historical entry hour (0-23, requires --date)")
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
