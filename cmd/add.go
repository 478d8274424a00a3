package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kennyg/bm/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <name> [path]",
	Short: "Bookmark a directory",
	Long: `Register a directory under a name.

The path defaults to the current directory and is stored as an absolute
path with symlinks resolved.

Examples:
  bm add proj ~/src/project
  bm add here`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) {
	name := args[0]
	path := "."
	if len(args) == 2 {
		path = args[1]
	}

	if err := newManager().Add(name, path); err != nil {
		exitWithError(err.Error())
	}

	if ui.IsTTY {
		fmt.Println(ui.SuccessLine(fmt.Sprintf("Added %s", name)))
	}
}
