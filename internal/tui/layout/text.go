package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes terminal escape sequences from s.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleLength returns the number of terminal cells s occupies.
func VisibleLength(s string) int {
	return ansi.StringWidth(s)
}

// TruncateText shortens text to maxWidth cells, ending in cfg.Ellipsis.
// Reports whether anything was cut.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}
	if ansi.StringWidth(text) <= maxWidth {
		return text, false
	}
	if ansi.StringWidth(cfg.Ellipsis) >= maxWidth {
		return ansi.Truncate(cfg.Ellipsis, maxWidth, ""), true
	}
	return ansi.Truncate(text, maxWidth, cfg.Ellipsis), true
}

// TruncateWithPrefixSuffix shortens text so prefix+text+suffix fits in
// maxWidth, cutting only the text when the markers leave room for it.
//
//	TruncateWithPrefixSuffix("What is useEffect?", 12, "★ #2 ", "", cfg) // "★ #2 What..."
func TruncateWithPrefixSuffix(text string, maxWidth int, prefix, suffix string, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	row := prefix + text + suffix
	if ansi.StringWidth(row) <= maxWidth {
		return row, false
	}

	room := maxWidth - ansi.StringWidth(prefix) - ansi.StringWidth(suffix)
	if room <= ansi.StringWidth(cfg.Ellipsis) {
		return TruncateText(row, maxWidth, cfg)
	}
	return prefix + ansi.Truncate(text, room, cfg.Ellipsis) + suffix, true
}

// TruncateANSIAware shortens already styled text without breaking its
// escape sequences. A reset is appended after a cut so styles cannot leak
// into the next cell.
func TruncateANSIAware(styled string, maxWidth int, cfg TextConfig) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(styled) <= maxWidth {
		return styled
	}
	cut, _ := TruncateText(styled, maxWidth, cfg)
	return cut + ansi.ResetStyle
}

// ClipLines keeps at most maxLines lines of s.
// When lines are dropped the last kept line is replaced by ellipsis.
func ClipLines(s string, maxLines int, cfg TextConfig) string {
	if maxLines <= 0 {
		return ""
	}

	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s
	}

	lines = lines[:maxLines]
	lines[maxLines-1] = cfg.Ellipsis
	return strings.Join(lines, "\n")
}
