package ui

import (
	"fmt"

	"github.com/five82/skyline/internal/apod"
)

// renderHeader renders the status bar: logo, window, record count and load state.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render("skyline", styles.Logo),
		bg.Render(fmt.Sprintf("last %d days", m.windowDays()), styles.MutedText),
	}

	if m.snapshot.Loaded || len(m.snapshot.Records) > 0 {
		parts = append(parts, bg.Render(countLabel(len(m.snapshot.Records)), styles.Text))
	}

	switch {
	case m.pending:
		parts = append(parts, bg.Render(m.spinner.View()+" Loading", styles.AccentText))
	case m.snapshot.LastError != nil:
		parts = append(parts, bg.Render("Load failed", styles.DangerText))
	case !m.snapshot.LastUpdated.IsZero():
		parts = append(parts, bg.Render("Updated "+m.snapshot.LastUpdated.Format("15:04:05"), styles.SuccessText))
	}

	if m.config != nil && m.config.APIKey == apod.DefaultAPIKey {
		parts = append(parts, bg.Render(apod.DefaultAPIKey, styles.WarningText))
	}

	if m.notice != "" {
		parts = append(parts, bg.Render(m.notice, styles.WarningText))
	}

	return styles.Header.Width(m.width).MaxWidth(m.width).Render(bg.Join(parts, 2))
}

// renderFooter renders the short key help for the active view.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bindings := m.keys.ShortHelp()
	switch m.currentView {
	case ViewDetail:
		bindings = m.keys.DetailHelp()
	case ViewLogs:
		bindings = m.keys.LogsHelp()
	}
	return styles.Footer.Width(m.width).MaxWidth(m.width).Render(m.help.ShortHelpView(bindings))
}

func countLabel(n int) string {
	if n == 1 {
		return "1 record"
	}
	return fmt.Sprintf("%d records", n)
}
