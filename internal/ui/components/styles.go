package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("205") // Pink
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("196") // Red
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorInfo      = lipgloss.Color("86")  // Cyan
	ColorMuted     = lipgloss.Color("244") // Gray
	ColorBorder    = lipgloss.Color("62")  // Dark blue
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(lipgloss.Color("235")).
			Padding(0, 2).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginBottom(1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			Margin(1, 0)

	// Filter result rows
	FilterNameStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			Width(10)

	ResultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	EmptyResultStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)

	SuccessMessageStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	WarningMessageStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	InfoMessageStyle = lipgloss.NewStyle().
				Foreground(ColorInfo)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("240")).
			PaddingTop(1).
			MarginTop(1)

	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)

	AppStyle = lipgloss.NewStyle().
			Padding(1, 2)
)

// RenderTitle renders a title with an optional subtitle
func RenderTitle(title, subtitle string) string {
	result := TitleStyle.Render(title)
	if subtitle != "" {
		result += "\n" + SubtitleStyle.Render(subtitle)
	}
	return result
}

// RenderResult renders one filter output row
func RenderResult(filter, output string, err error) string {
	name := FilterNameStyle.Render(filter)
	switch {
	case err != nil:
		return name + " " + ErrorMessageStyle.Render(err.Error())
	case output == "":
		return name + " " + EmptyResultStyle.Render("(empty)")
	default:
		return name + " " + ResultStyle.Render(output)
	}
}

// RenderMessage renders a status line prefixed with a symbol for its type
func RenderMessage(messageType, message string) string {
	switch messageType {
	case "success":
		return SuccessMessageStyle.Render("✓ " + message)
	case "error":
		return ErrorMessageStyle.Render("✗ " + message)
	case "warning":
		return WarningMessageStyle.Render("⚠ " + message)
	case "info":
		return InfoMessageStyle.Render("ℹ " + message)
	default:
		return ResultStyle.Render(message)
	}
}

func RenderKeyBinding(key, description string) string {
	return KeyStyle.Render(key) + " " + DescriptionStyle.Render(description)
}
