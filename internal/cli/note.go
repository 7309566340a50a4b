package cli

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "note [text]",
		Short: "Set the note for an hour",
		Long:  "Set the free-text note for the hour, replacing any prior note. No text clears the note.",
		Run:   runNote,
	}

	addSlotFlags(cmd)
	RootCmd.AddCommand(cmd)
}

func runNote(cmd *cobra.Command, args []string) {
	text := strings.Join(args, " ")

	j := newJournal()
	if _, err := j.RecordNote(cmd.Context(), text, slotOverride(cmd)); err != nil {
		exitErr("note", err)
	}
	if text == "" {
		color.Green("note cleared")
	} else {
		color.Green("note saved")
	}
}
