package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell [bash|zsh|fish]",
	Short: "Print a shell function that cds into bookmarks",
	Long: `Print a wrapper function for your shell. With it, 'bm <name>' changes
the working directory instead of printing the path. All other arguments
are passed through to the bm binary.

Add one of these to your shell's startup file:
  eval "$(bm shell bash)"
  eval "$(bm shell zsh)"
  bm shell fish | source`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish"},
	Run:       runShell,
}

var shellFuncName string

func init() {
	shellCmd.Flags().StringVar(&shellFuncName, "name", appName, "Name of the shell function")
}

const posixWrapper = `# bm shell integration
%[1]s() {
  if [ "$#" -eq 1 ]; then
    case "$1" in
      %[2]s|-*) command %[3]s "$@" ;;
      *) local dir; dir="$(command %[3]s "$1")" && cd "$dir" ;;
    esac
  else
    command %[3]s "$@"
  fi
}
`

const fishWrapper = `# bm shell integration
function %[1]s
    if test (count $argv) -eq 1; and not contains -- $argv[1] %[2]s; and not string match -q -- '-*' $argv[1]
        set -l dir (command %[3]s $argv[1]); and cd $dir
    else
        command %[3]s $argv
    end
end
`

func runShell(cmd *cobra.Command, args []string) {
	shell := "bash"
	if len(args) == 1 {
		shell = args[0]
	}

	script, err := shellWrapper(shell, shellFuncName, subcommandWords(rootCmd))
	if err != nil {
		exitWithError(err.Error())
	}
	fmt.Print(script)
}

// shellWrapper renders the wrapper function for shell. Words are the
// arguments that must reach the binary instead of being resolved.
func shellWrapper(shell, funcName string, words []string) (string, error) {
	switch shell {
	case "bash", "zsh":
		return fmt.Sprintf(posixWrapper, funcName, strings.Join(words, "|"), appName), nil
	case "fish":
		return fmt.Sprintf(fishWrapper, funcName, strings.Join(words, " "), appName), nil
	default:
		return "", fmt.Errorf("unsupported shell %q (want bash, zsh or fish)", shell)
	}
}

// subcommandWords lists every subcommand name and alias of root
func subcommandWords(root *cobra.Command) []string {
	words := []string{"help"}
	for _, c := range root.Commands() {
		words = append(words, c.Name())
		words = append(words, c.Aliases...)
	}
	// help may also be registered as a command
	slices.Sort(words)
	return slices.Compact(words)
}
