// ABOUTME: Centralized configuration defaults for hobbies
// ABOUTME: Display widths, date formats, and rating bounds

package config

// Display settings
const (
	DisplayIDLength = 13
	SeparatorWidth  = 60
	TitleWidth      = 40
	DateFormatShort = "02 Jan 2006"
)

// Rating bounds enforced by the CLI and MCP tools.
const (
	MinRating = 1
	MaxRating = 5
)
