package cmd

import (
	"slices"
	"strings"
	"testing"
)

func TestShellWrapper(t *testing.T) {
	words := []string{"add", "list", "ls"}

	tests := []struct {
		shell    string
		contains []string
		wantErr  bool
	}{
		{
			shell:    "bash",
			contains: []string{"bm() {", "add|list|ls|-*)", `dir="$(command bm "$1")" && cd "$dir"`},
		},
		{
			shell:    "zsh",
			contains: []string{"bm() {", "command bm \"$@\""},
		},
		{
			shell:    "fish",
			contains: []string{"function bm", "contains -- $argv[1] add list ls", "cd $dir"},
		},
		{
			shell:   "powershell",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			got, err := shellWrapper(tt.shell, "bm", words)
			if (err != nil) != tt.wantErr {
				t.Fatalf("shellWrapper() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("shellWrapper(%q) missing %q in:\n%s", tt.shell, want, got)
				}
			}
		})
	}
}

func TestShellWrapper_CustomName(t *testing.T) {
	got, err := shellWrapper("bash", "j", []string{"list"})
	if err != nil {
		t.Fatalf("shellWrapper() error = %v", err)
	}
	if !strings.Contains(got, "j() {") {
		t.Errorf("function name not applied:\n%s", got)
	}
	if !strings.Contains(got, "command bm") {
		t.Errorf("wrapper must still call the bm binary:\n%s", got)
	}
}

func TestSubcommandWords(t *testing.T) {
	words := subcommandWords(rootCmd)

	for _, want := range []string{"add", "list", "ls", "remove", "rm", "doctor", "shell", "version", "help"} {
		if !slices.Contains(words, want) {
			t.Errorf("subcommandWords() = %v, missing %q", words, want)
		}
	}
	if !slices.IsSorted(words) {
		t.Errorf("subcommandWords() = %v, want sorted", words)
	}
	if len(slices.Compact(slices.Clone(words))) != len(words) {
		t.Errorf("subcommandWords() = %v, has duplicates", words)
	}
}
