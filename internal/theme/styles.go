package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Stage icon styles
var (
	SeedlingIconStyle = lipgloss.NewStyle().
				Foreground(ColorSeedling)

	VegetativeIconStyle = lipgloss.NewStyle().
				Foreground(ColorVegetative)

	FloweringIconStyle = lipgloss.NewStyle().
				Foreground(ColorFlowering)

	HarvestIconStyle = lipgloss.NewStyle().
				Foreground(ColorHarvest)

	DryingIconStyle = lipgloss.NewStyle().
			Foreground(ColorDrying)

	CuringIconStyle = lipgloss.NewStyle().
			Foreground(ColorCuring)
)

// Task due styles
var (
	DueTodayStyle = lipgloss.NewStyle().
			Foreground(ColorDueToday).
			Bold(true)

	DueTomorrowStyle = lipgloss.NewStyle().
				Foreground(ColorDueTomorrow)

	DueSoonStyle = lipgloss.NewStyle().
			Foreground(ColorDueSoon)
)

// Health signal styles
var (
	SignalOKStyle = lipgloss.NewStyle().
			Foreground(ColorSignalOK)

	SignalWarnStyle = lipgloss.NewStyle().
			Foreground(ColorSignalWarn)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Empty-dashboard hint styles
var (
	HintKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHintKey).
			Bold(true)

	HintLabelStyle = lipgloss.NewStyle().
			Foreground(ColorHintLabel)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// Debug panel styles
var (
	DebugMethodStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	DebugEndpointStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	DebugErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	DebugTimestampStyle = lipgloss.NewStyle().
				Foreground(ColorVersion)
)

// StageStyle returns the icon style for a stage key
func StageStyle(stage string) lipgloss.Style {
	switch stage {
	case "SEEDLING":
		return SeedlingIconStyle
	case "VEGETATIVE":
		return VegetativeIconStyle
	case "FLOWERING":
		return FloweringIconStyle
	case "HARVEST":
		return HarvestIconStyle
	case "DRYING":
		return DryingIconStyle
	default:
		return CuringIconStyle
	}
}
