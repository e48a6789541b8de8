package presentation

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"task-manager/internal/config"
)

// Style is the set of markers used to decorate console output
type Style struct {
	Success   string
	Error     string
	Info      string
	Completed string
	ListTitle string
	Rule      string
	Banner    string
	Emoji     bool
}

// EmojiStyle decorates output for terminals with emoji support
var EmojiStyle = Style{
	Success:   "✅ ",
	Error:     "❌ Error: ",
	Info:      "ℹ️  ",
	Completed: " ✓",
	ListTitle: "📋 Task List",
	Rule:      "─",
	Banner:    "═",
	Emoji:     true,
}

// PlainStyle uses ASCII markers only
var PlainStyle = Style{
	Success:   "[OK] ",
	Error:     "[ERROR] ",
	Info:      "[INFO] ",
	Completed: " [x]",
	ListTitle: "Task List",
	Rule:      "-",
	Banner:    "=",
}

// SelectStyle picks the style for an emoji mode. In auto mode emoji are used
// only when w is a terminal.
func SelectStyle(mode string, w io.Writer) Style {
	switch mode {
	case config.EmojiAlways:
		return EmojiStyle
	case config.EmojiNever:
		return PlainStyle
	}
	if IsTerminal(w) {
		return EmojiStyle
	}
	return PlainStyle
}

// IsTerminal reports whether w is a terminal file
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
