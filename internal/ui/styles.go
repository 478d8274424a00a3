package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, UI functions produce plain text without colors or decorations.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// ═══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE
// ═══════════════════════════════════════════════════════════════════════════════

var (
	Gold   = lipgloss.Color("#F4D03F")
	Copper = lipgloss.Color("#DC7633")
	Cyan   = lipgloss.Color("#76D7C4")
	Green  = lipgloss.Color("#58D68D")
	Pink   = lipgloss.Color("#FF6B9D")

	White    = lipgloss.Color("#FDFEFE")
	Gray     = lipgloss.Color("#AAB7B8")
	DarkGray = lipgloss.Color("#5D6D7E")
)

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT STYLES
// ═══════════════════════════════════════════════════════════════════════════════

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Gold)

	Success = lipgloss.NewStyle().
		Foreground(Green)

	Error = lipgloss.NewStyle().
		Foreground(Pink).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Copper)

	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	// Name is the bookmark name column
	Name = lipgloss.NewStyle().
		Foreground(White).
		Bold(true)

	// Path is the bookmark path column
	Path = lipgloss.NewStyle().
		Foreground(Cyan)

	// Stale marks a bookmark whose directory is gone
	Stale = lipgloss.NewStyle().
		Foreground(DarkGray).
		Strikethrough(true)
)

// ═══════════════════════════════════════════════════════════════════════════════
// BOOKMARK ROWS
// ═══════════════════════════════════════════════════════════════════════════════

// BookmarkRow renders a list row. name must already be padded to the column
// width; padding is done on plain text so styling cannot skew alignment.
func BookmarkRow(paddedName, path string) string {
	if !IsTTY {
		return paddedName + " " + path
	}
	return Name.Render(paddedName) + " " + Path.Render(path)
}

// StaleRow renders a row for a bookmark that no longer resolves
func StaleRow(paddedName, path string) string {
	if !IsTTY {
		return paddedName + " " + path + " (missing)"
	}
	return Stale.Render(paddedName) + " " + Stale.Render(path)
}

// ═══════════════════════════════════════════════════════════════════════════════
// DECORATIVE ELEMENTS
// ═══════════════════════════════════════════════════════════════════════════════

// SectionHeader creates a decorated section header
func SectionHeader(title string) string {
	if !IsTTY {
		return fmt.Sprintf("=== %s ===", title)
	}

	width := TerminalWidth()
	if width > 80 {
		width = 80
	}

	titleStyled := Title.Render(title)

	titleLen := lipgloss.Width(title)
	padLeft := (width - titleLen - 6) / 2
	if padLeft < 0 {
		padLeft = 0
	}
	padRight := width - titleLen - 6 - padLeft
	if padRight < 0 {
		padRight = 0
	}

	left := lipgloss.NewStyle().Foreground(DarkGray).Render(strings.Repeat("─", padLeft) + "┤ ")
	right := lipgloss.NewStyle().Foreground(DarkGray).Render(" ├" + strings.Repeat("─", padRight))

	return left + titleStyled + right
}

// PageFooter creates a footer matching the header width
func PageFooter() string {
	if !IsTTY {
		return "\n"
	}

	width := TerminalWidth()
	if width > 80 {
		width = 80
	}
	padSide := (width - 5) / 2
	left := strings.Repeat("─", padSide)
	right := strings.Repeat("─", width-padSide-5)
	line := lipgloss.NewStyle().Foreground(DarkGray).Render(left + " ✦ " + right)
	return "\n" + line + "\n"
}

// ═══════════════════════════════════════════════════════════════════════════════
// STATUS LINE COMPONENTS
// ═══════════════════════════════════════════════════════════════════════════════

// StatusLine creates a status line with icon and message
func StatusLine(icon, message string, color lipgloss.Color) string {
	if !IsTTY {
		return fmt.Sprintf("  %s %s", icon, message)
	}
	iconStyled := lipgloss.NewStyle().Foreground(color).Render(icon)
	msgStyled := lipgloss.NewStyle().Foreground(color).Render(message)
	return fmt.Sprintf("  %s %s", iconStyled, msgStyled)
}

// SuccessLine creates a success status line
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  OK: %s", message)
	}
	return StatusLine("✓", message, Green)
}

// ErrorLine creates an error status line
func ErrorLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  ERROR: %s", message)
	}
	return StatusLine("✗", message, Pink)
}

// WarningLine creates a warning status line
func WarningLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  WARN: %s", message)
	}
	return StatusLine("!", message, Copper)
}

// ═══════════════════════════════════════════════════════════════════════════════
// EMPTY STATES
// ═══════════════════════════════════════════════════════════════════════════════

// EmptyList returns a friendly empty state for an interactive terminal.
// Non-interactive callers get nothing so scripts see empty output.
func EmptyList() string {
	if !IsTTY {
		return ""
	}
	message := Muted.Render("No bookmarks yet.")
	hint := lipgloss.NewStyle().Foreground(Cyan).Render("bm add <name> <path>")
	return fmt.Sprintf("\n  %s\n  Use %s to add one.\n\n", message, hint)
}

// ═══════════════════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════════════════

// Render applies a lipgloss style to text, returning plain text in non-TTY environments.
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}

// RenderMuted renders text in muted style (TTY-aware)
func RenderMuted(text string) string {
	return Render(Muted, text)
}

// TerminalWidth returns the current terminal width, defaulting to 80 if unknown
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
