package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kennyg/bm/internal/manager"
	"github.com/kennyg/bm/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show all bookmarks",
	Long:    `Display every bookmark in the order it was added, names aligned.`,
	Args:    cobra.NoArgs,
	Run:     runList,
}

func runList(cmd *cobra.Command, args []string) {
	list, err := newManager().List()
	if err != nil {
		exitWithError(err.Error())
	}

	if len(list) == 0 {
		fmt.Print(ui.EmptyList())
		return
	}

	if !ui.IsTTY {
		for _, line := range manager.Format(list) {
			fmt.Println(line)
		}
		return
	}

	width := manager.NameWidth(list)
	for _, b := range list {
		fmt.Println(ui.BookmarkRow(manager.PadName(b.Name, width), b.Path))
	}
}
