package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rcliao/health-journal/internal/export"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal as CSV",
		Long:  "Write the joined rows plus the raw sleep stream to a CSV file in the export directory.",
		Run:   runExport,
	}

	cmd.Flags().StringP("out", "o", "", "Export directory (default from config)")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	cfg, log, s := setup()

	dir, _ := cmd.Flags().GetString("out")
	if dir == "" {
		dir = cfg.ExportDir
	}

	doc, err := s.Load(cmd.Context())
	if err != nil {
		exitErr("load journal", err)
	}

	path, err := export.WriteFile(doc, dir, log)
	if err != nil {
		exitErr("export", err)
	}
	color.Green("exported to %s", path)
}
