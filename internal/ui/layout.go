package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which list rows drop the copyright column.
	LayoutCompactWidth = 80

	// LayoutDetailMaxWidth caps the detail text width for readability.
	LayoutDetailMaxWidth = 100
)

// Log overlay limits.
const (
	// LogTailLines is the number of log lines shown by the log overlay.
	LogTailLines = 300
)

// Fixed chrome: one header line and one footer line.
const (
	headerHeight = 1
	footerHeight = 1
)
