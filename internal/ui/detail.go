package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/skyline/internal/apod"
)

// renderDetail renders the full record for the detail viewport.
func (m Model) renderDetail(rec apod.Record, width int) string {
	styles := m.theme.Styles()
	textWidth := clamp(width-4, 20, LayoutDetailMaxWidth)

	var b strings.Builder
	b.WriteString(styles.Heading.Width(textWidth).Render(oneLine(rec.Title)))
	b.WriteString("\n")

	meta := []string{
		styles.KindBadge(rec.Kind).Render(rec.Kind.Label()),
		styles.MutedText.Render(rec.DisplayDate),
	}
	if rec.HasCopyright() {
		meta = append(meta, styles.FaintText.Render("© "+oneLine(rec.Copyright)))
	}
	b.WriteString(strings.Join(meta, "  "))
	b.WriteString("\n\n")

	labelWidth := 10
	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(styles.FaintText.Render(padRight(label, labelWidth)))
		b.WriteString(styles.InfoText.Render(truncateMiddle(value, maxInt(1, textWidth-labelWidth))))
		b.WriteString("\n")
	}
	if rec.Kind == apod.MediaVideo {
		field("Embed", rec.MediaURL)
		field("Thumbnail", rec.ThumbnailURL)
	} else {
		field("Image", rec.MediaURL)
		field("HD", rec.HDURL)
	}
	field("ID", rec.ID)

	if explanation := strings.TrimSpace(rec.Explanation); explanation != "" {
		b.WriteString("\n")
		b.WriteString(styles.Text.Width(textWidth).Render(oneLine(explanation)))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
