package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kennyg/bm/internal/config"
	"github.com/kennyg/bm/internal/manager"
	"github.com/kennyg/bm/internal/store"
	"github.com/kennyg/bm/internal/ui"
)

const appName = "bm"

var (
	// Version is set at build time
	Version = "dev"
)

var (
	fileFlag    string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   appName + " [name]",
	Short: "Directory bookmark manager",
	Long: `Give short names to directories and jump back to them.

  bm <name> prints the bookmarked directory, so a shell function can cd
  into it. Run 'bm shell' to get one.

Examples:
  bm add proj ~/src/project
  bm proj
  bm list
  bm remove proj`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeNames,
	Run:               runResolve,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "Bookmark file (default ~/.cache/bm-bookmark)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", appName, Version)
	},
}

// openStore loads the config file, configures logging and opens the
// bookmark file. Only commands that touch bookmarks call it, so a broken
// config file does not stop version or shell.
func openStore() (*store.Store, error) {
	paths, err := config.GetPaths()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(paths.ConfigFile)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if verboseFlag {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	s := store.New(paths.StoragePath(cfg, fileFlag))
	slog.Debug("using bookmark file", "path", s.Path(), "config", paths.ConfigFile)
	return s, nil
}

func newManager() *manager.Manager {
	s, err := openStore()
	if err != nil {
		exitWithError(err.Error())
	}
	return manager.New(s)
}

// runResolve prints the directory for a bookmark name.
// Output is the bare path so `cd "$(bm name)"` works.
func runResolve(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		cmd.Help()
		return
	}

	path, err := newManager().Resolve(args[0])
	if err != nil {
		exitWithError(err.Error())
	}
	fmt.Println(path)
}

// completeNames offers bookmark names for shell completion
func completeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := openStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	list, err := manager.New(s).List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names := make([]string, 0, len(list))
	for _, b := range list {
		names = append(names, b.Name+"\t"+b.Path)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// exitWithError prints an error and exits
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.Error.Render("Error: "+msg))
	os.Exit(1)
}
