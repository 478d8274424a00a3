package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kennyg/bm/internal/ui"
)

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a bookmark",
	Long: `Unregister a bookmark. The directory itself is left alone.

Examples:
  bm remove proj
  bm rm proj`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeNames,
	Run:               runRemove,
}

func runRemove(cmd *cobra.Command, args []string) {
	name := args[0]

	if err := newManager().Remove(name); err != nil {
		exitWithError(err.Error())
	}

	if ui.IsTTY {
		fmt.Println(ui.SuccessLine(fmt.Sprintf("Removed %s", name)))
	}
}
