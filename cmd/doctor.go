package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kennyg/bm/internal/manager"
	"github.com/kennyg/bm/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Find bookmarks whose directory is gone",
	Long: `Check every bookmark and report the ones that no longer point at an
existing directory.

Examples:
  bm doctor           # Report stale bookmarks
  bm doctor --prune   # Remove them`,
	Args: cobra.NoArgs,
	Run:  runDoctor,
}

var doctorPrune bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorPrune, "prune", false, "Remove stale bookmarks")
}

func runDoctor(cmd *cobra.Command, args []string) {
	mgr := newManager()

	statuses, err := mgr.Check()
	if err != nil {
		exitWithError(err.Error())
	}

	fmt.Println()
	fmt.Println(ui.SectionHeader("Diagnosing"))
	fmt.Println()

	if len(statuses) == 0 {
		fmt.Println(ui.RenderMuted("  No bookmarks to check"))
		fmt.Print(ui.PageFooter())
		return
	}

	width := manager.NameWidth(manager.Bookmarks(statuses))
	for _, s := range statuses {
		name := manager.PadName(s.Bookmark.Name, width)
		if s.Valid {
			fmt.Printf("  %s %s\n", ui.Render(ui.Success, "✓"), ui.BookmarkRow(name, s.Bookmark.Path))
		} else {
			fmt.Printf("  %s %s\n", ui.Render(ui.Error, "✗"), ui.StaleRow(name, s.Bookmark.Path))
		}
	}
	fmt.Println()

	stale := manager.Stale(statuses)
	switch {
	case len(stale) == 0:
		fmt.Println(ui.SuccessLine("All bookmarks resolve"))
	case doctorPrune:
		failed := 0
		for _, b := range stale {
			if err := mgr.Remove(b.Name); err != nil {
				fmt.Println(ui.ErrorLine(fmt.Sprintf("Failed to prune %s: %v", b.Name, err)))
				failed++
			}
		}
		fmt.Println(ui.SuccessLine(fmt.Sprintf("Pruned %d stale bookmark(s)", len(stale)-failed)))
		if failed > 0 {
			fmt.Print(ui.PageFooter())
			os.Exit(1)
		}
	default:
		fmt.Println(ui.WarningLine(fmt.Sprintf("%d stale bookmark(s); run 'bm doctor --prune' to remove", len(stale))))
	}

	fmt.Print(ui.PageFooter())
}
