package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all journal data",
		Run:   runReset,
	}

	cmd.Flags().Bool("yes", false, "Skip confirmation")

	RootCmd.AddCommand(cmd)
}

func runReset(cmd *cobra.Command, args []string) {
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		fmt.Print("This deletes the whole journal. Type 'yes' to continue: ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "yes" {
			fmt.Println("cancelled")
			return
		}
	}

	_, _, s := setup()
	if err := s.Reset(cmd.Context()); err != nil {
		exitErr("reset", err)
	}
	color.Red("journal deleted")
}
