package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/osiris-intel/osiris/internal/view"
)

func newViewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List navigable view ids",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			dim := color.New(color.Faint).SprintFunc()
			for _, v := range view.Views() {
				kind := "shell"
				if v.Standalone() {
					kind = "standalone"
				}
				fmt.Fprintf(out, "%-18s %-20s %s\n", v, view.Title(v), dim(kind))
			}
		},
	}
}
