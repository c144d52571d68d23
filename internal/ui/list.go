package ui

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/skyline/internal/apod"
)

// errorView is the user-facing summary of a failed load.
type errorView struct {
	headline string
	detail   string
	hint     string
}

// errorSummary classifies a load error for the error banner.
func errorSummary(err error) errorView {
	if err == nil {
		return errorView{}
	}
	view := errorView{detail: err.Error(), hint: "Press r to retry"}

	var fe *apod.FetchError
	if !errors.As(err, &fe) {
		view.headline = "Load failed"
		return view
	}
	if fe.Message != "" {
		view.detail = fe.Message
	} else if fe.Err != nil {
		view.detail = fe.Err.Error()
	}

	switch fe.Kind {
	case apod.KindTransport:
		view.headline = "Network error"
		view.hint = "Check your connection, then press r to retry"
	case apod.KindRemoteRejected:
		view.headline = fmt.Sprintf("Request rejected (HTTP %d)", fe.Status)
		switch fe.Status {
		case http.StatusForbidden, http.StatusUnauthorized:
			view.hint = "Check api_key in the config file, then press r to retry"
		case http.StatusTooManyRequests:
			view.hint = "Rate limit reached; wait a while, then press r to retry"
		}
	case apod.KindMalformedResponse:
		view.headline = "Unexpected response from the APOD service"
	default:
		view.headline = "Load failed"
	}
	return view
}

// errorBannerHeight is the number of lines the error banner occupies,
// trailing blank line included.
const errorBannerHeight = 4

// rowHeight returns the number of lines per list row.
func (m Model) rowHeight() int {
	if m.compact {
		return 1
	}
	return 2
}

// visibleRows returns how many records fit in the list area.
func (m Model) visibleRows() int {
	height := m.contentHeight()
	if m.snapshot.LastError != nil {
		height -= errorBannerHeight
	}
	if height <= 0 {
		return 0
	}
	return height / m.rowHeight()
}

// renderListView renders the record list, or the loading, error or empty
// state when there is nothing to list.
func (m Model) renderListView(height int) string {
	styles := m.theme.Styles()
	snap := m.snapshot

	var b strings.Builder
	if snap.LastError != nil {
		b.WriteString(m.renderErrorBanner(snap.LastError))
		b.WriteString("\n\n")
	}

	if len(snap.Records) == 0 {
		var msg string
		switch {
		case snap.LastError != nil:
			return b.String()
		case m.pending:
			msg = m.spinner.View() + " Fetching pictures of the day..."
		case snap.Empty():
			msg = fmt.Sprintf("No records in the last %d days", m.windowDays())
		default:
			msg = "Nothing loaded yet. Press r to load."
		}
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, styles.MutedText.Render(msg))
	}

	rows := m.visibleRows()
	end := minInt(len(snap.Records), m.offset+rows)
	dateWidth := 0
	for _, rec := range snap.Records {
		dateWidth = maxInt(dateWidth, lipgloss.Width(rec.DisplayDate))
	}

	lines := make([]string, 0, (end-m.offset)*m.rowHeight())
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(snap.Records[i], i == m.selected, dateWidth)...)
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// renderErrorBanner renders the headline, detail and hint of a failed load.
func (m Model) renderErrorBanner(err error) string {
	styles := m.theme.Styles()
	view := errorSummary(err)
	width := maxInt(1, m.width-2)

	lines := []string{
		styles.DangerText.Render(truncate(view.headline, width)),
		styles.Text.Render(truncate(oneLine(view.detail), width)),
		styles.MutedText.Render(truncate(view.hint, width)),
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// renderRow renders one record as one (compact) or two lines.
func (m Model) renderRow(rec apod.Record, selected bool, dateWidth int) []string {
	styles := m.theme.Styles()
	bgColor := m.theme.Background
	if selected {
		bgColor = m.theme.SelectionBg
	}
	bg := NewBgStyle(bgColor)

	textStyle := styles.Text
	if selected {
		textStyle = styles.Selected.Bold(true)
	}

	marker := "  "
	if selected {
		marker = "> "
	}
	date := padRight(rec.DisplayDate, dateWidth)
	badge := styles.KindBadge(rec.Kind).Render(rec.Kind.Label())

	// marker, date and badge plus their gaps
	used := 2 + dateWidth + 2 + lipgloss.Width(badge) + 2
	remaining := maxInt(0, m.width-used)

	credit := ""
	if m.compact && rec.HasCopyright() && m.width >= LayoutCompactWidth {
		credit = truncate("© "+oneLine(rec.Copyright), maxInt(0, remaining/3))
		remaining -= lipgloss.Width(credit) + 2
	}
	title := truncate(oneLine(rec.Title), maxInt(0, remaining))

	first := bg.Render(marker, styles.AccentText) +
		bg.Join([]string{
			bg.Render(date, styles.MutedText),
			badge,
			bg.Render(title, textStyle),
		}, 2)
	if credit != "" {
		gap := maxInt(2, m.width-lipgloss.Width(first)-lipgloss.Width(credit))
		first += bg.Spaces(gap) + bg.Render(credit, styles.FaintText)
	}
	lines := []string{bg.FillLine(first, m.width)}

	if m.compact {
		return lines
	}

	indent := 2 + dateWidth + 2
	summary := oneLine(rec.Explanation)
	if rec.HasCopyright() {
		summary = "© " + oneLine(rec.Copyright) + " · " + summary
	}
	summary = truncate(summary, maxInt(0, m.width-indent))
	second := bg.Spaces(indent) + bg.Render(summary, styles.FaintText)
	return append(lines, bg.FillLine(second, m.width))
}

// minInt returns the smaller of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
