package ui

import (
	"fmt"
	"strings"

	"github.com/five82/skyline/internal/logtail"
)

// renderLogLines formats tailed slog lines for the log overlay.
func (m Model) renderLogLines(lines []string) string {
	styles := m.theme.Styles()

	if m.logErr != nil {
		return styles.DangerText.Render(fmt.Sprintf("Could not read log: %v", m.logErr))
	}
	if len(lines) == 0 {
		path := ""
		if m.config != nil {
			path = m.config.LogFile
		}
		return styles.MutedText.Render("No log entries yet in " + path)
	}

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		entry := logtail.Parse(line)
		if entry.Level == "" {
			b.WriteString(styles.Text.Render(entry.Raw))
			continue
		}
		b.WriteString(styles.FaintText.Render(entry.Clock()))
		b.WriteString(" ")
		b.WriteString(styles.LevelStyle(entry.Level).Render(padRight(entry.Level, 5)))
		b.WriteString(" ")
		b.WriteString(styles.Text.Render(entry.Message))
		for _, attr := range entry.Attrs {
			b.WriteString(" ")
			b.WriteString(styles.MutedText.Render(attr.Key + "="))
			b.WriteString(styles.AccentText.Render(attr.Value))
		}
	}
	return b.String()
}
