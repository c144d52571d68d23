// Package config loads skyline's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/skyline/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing, empty or non-positive, use defaults
//  5. SKYLINE_API_KEY, when set, replaces api_key
//
// # Default Values
//
//   - api_key: DEMO_KEY (rate limited by api.nasa.gov)
//   - base_url: https://api.nasa.gov/planetary/apod
//   - window_days: 15
//   - locale: pt-BR
//   - timeout_seconds: 15
//   - log_file: ~/.local/state/skyline/skyline.log
//   - log_level: info
//
// # TOML Format
//
//	api_key = "YOUR_KEY"
//	window_days = 15
//	locale = "pt-BR"
//	timeout_seconds = 15
//	log_level = "info"
//
// # Path Expansion
//
// Paths beginning with ~ are expanded to the user's home directory and
// made absolute.
//
// # Error Handling
//
//   - Missing file: not an error, defaults returned
//   - Unreadable file: "open config" / "read config" error
//   - Invalid TOML: "parse config" error
package config
