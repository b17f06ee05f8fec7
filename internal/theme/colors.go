package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "35" // Green - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Plant stage colors
const (
	ColorSeedling   Color = "120" // Light green - seedling
	ColorVegetative Color = "40"  // Green - vegetative
	ColorFlowering  Color = "213" // Pink - flowering
	ColorHarvest    Color = "214" // Orange - harvest
	ColorDrying     Color = "178" // Gold - drying
	ColorCuring     Color = "8"   // Gray - curing, lifecycle done
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorHintKey   Color = "226" // Yellow - empty dashboard hint keys
	ColorHintLabel Color = "178" // Gold - empty dashboard hint labels
	ColorSpinner   Color = "205" // Pink
)

// Task due colors
const (
	ColorDueToday    Color = "1" // Red - due today
	ColorDueTomorrow Color = "3" // Yellow - due tomorrow
	ColorDueSoon     Color = "2" // Green - due later this week
)

// Health signal colors
const (
	ColorSignalOK   Color = "2"   // Green
	ColorSignalWarn Color = "214" // Orange
)
