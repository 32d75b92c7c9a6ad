// Package theme provides the shared lipgloss styling used by the hookcfg
// CLI and TUI components.
package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const defaultThemeName = "kanagawa"

// --- Kanagawa (dark) palette ---
const (
	kanagawaGreen              = "#98BB6C"
	kanagawaYellow             = "#FF9E3B"
	kanagawaRed                = "#FF5D62"
	kanagawaOrange             = "#FFA066"
	kanagawaCyan               = "#7E9CD8"
	kanagawaBlue               = "#7FB4CA"
	kanagawaViolet             = "#957FB8"
	kanagawaLightText          = "#DCD7BA"
	kanagawaMutedText          = "#727169"
	kanagawaBorder             = "#363646"
	kanagawaSelectedBackground = "#223249"
	kanagawaSubtleBackground   = "#1F1F28"
)

// --- Terminal (ANSI-friendly) palette ---
const (
	terminalGreen              = "2"
	terminalYellow             = "3"
	terminalRed                = "1"
	terminalOrange             = "208"
	terminalCyan               = "6"
	terminalBlue               = "4"
	terminalViolet             = "5"
	terminalLightText          = "7"
	terminalMutedText          = "8"
	terminalBorder             = "8"
	terminalSelectedBackground = "8"
	terminalSubtleBackground   = "0"
)

// Colors encapsulates the palette used by a theme.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Blue               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
	SubtleBackground   lipgloss.TerminalColor
}

// Theme holds the pre-configured styles shared across hookcfg output.
type Theme struct {
	Colors Colors

	// Headers and titles
	Header lipgloss.Style
	Title  lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text styles
	Bold     lipgloss.Style
	Italic   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style

	// Table styles
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style

	// Container styles
	Box lipgloss.Style

	// Special styles
	Accent lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": newKanagawaColors,
	"terminal": newTerminalColors,
}

// DefaultTheme is the default theme instance for hookcfg tooling.
var DefaultTheme = initDefaultTheme()

// NewTheme constructs a theme from the configured palette name.
func NewTheme() *Theme {
	return newThemeFromColors(resolveThemeColors(getThemeName()))
}

// NewThemeWithName constructs a theme from a specific palette name.
func NewThemeWithName(name string) *Theme {
	return newThemeFromColors(resolveThemeColors(name))
}

// RenderStatus renders text with the appropriate status style.
func RenderStatus(status, text string) string {
	switch status {
	case "success":
		return DefaultTheme.Success.Render(text)
	case "error":
		return DefaultTheme.Error.Render(text)
	case "warning":
		return DefaultTheme.Warning.Render(text)
	case "info":
		return DefaultTheme.Info.Render(text)
	default:
		return text
	}
}

func getThemeName() string {
	if name := os.Getenv("HOOKCFG_THEME"); name != "" {
		return strings.ToLower(name)
	}
	// Truecolor palettes wash out on light backgrounds and dumb terminals;
	// fall back to ANSI colors there.
	if termenv.EnvNoColor() || !termenv.HasDarkBackground() {
		return "terminal"
	}
	return defaultThemeName
}

func resolveThemeColors(name string) Colors {
	if factory, ok := themeRegistry[name]; ok {
		return factory()
	}
	return themeRegistry[defaultThemeName]()
}

func initDefaultTheme() *Theme {
	return newThemeFromColors(resolveThemeColors(getThemeName()))
}

func newKanagawaColors() Colors {
	return Colors{
		Green:              lipgloss.Color(kanagawaGreen),
		Yellow:             lipgloss.Color(kanagawaYellow),
		Red:                lipgloss.Color(kanagawaRed),
		Orange:             lipgloss.Color(kanagawaOrange),
		Cyan:               lipgloss.Color(kanagawaCyan),
		Blue:               lipgloss.Color(kanagawaBlue),
		Violet:             lipgloss.Color(kanagawaViolet),
		LightText:          lipgloss.Color(kanagawaLightText),
		MutedText:          lipgloss.Color(kanagawaMutedText),
		Border:             lipgloss.Color(kanagawaBorder),
		SelectedBackground: lipgloss.Color(kanagawaSelectedBackground),
		SubtleBackground:   lipgloss.Color(kanagawaSubtleBackground),
	}
}

func newTerminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color(terminalGreen),
		Yellow:             lipgloss.Color(terminalYellow),
		Red:                lipgloss.Color(terminalRed),
		Orange:             lipgloss.Color(terminalOrange),
		Cyan:               lipgloss.Color(terminalCyan),
		Blue:               lipgloss.Color(terminalBlue),
		Violet:             lipgloss.Color(terminalViolet),
		LightText:          lipgloss.Color(terminalLightText),
		MutedText:          lipgloss.Color(terminalMutedText),
		Border:             lipgloss.Color(terminalBorder),
		SelectedBackground: lipgloss.Color(terminalSelectedBackground),
		SubtleBackground:   lipgloss.Color(terminalSubtleBackground),
	}
}

func newThemeFromColors(c Colors) *Theme {
	return &Theme{
		Colors: c,

		Header: lipgloss.NewStyle().Bold(true).Foreground(c.Orange),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(c.Blue),

		Success: lipgloss.NewStyle().Foreground(c.Green),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(c.Red),
		Warning: lipgloss.NewStyle().Foreground(c.Yellow),
		Info:    lipgloss.NewStyle().Foreground(c.Cyan),

		Bold:     lipgloss.NewStyle().Bold(true),
		Italic:   lipgloss.NewStyle().Italic(true),
		Muted:    lipgloss.NewStyle().Foreground(c.MutedText),
		Selected: lipgloss.NewStyle().Background(c.SelectedBackground).Foreground(c.LightText),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(c.Blue),
		TableRow:    lipgloss.NewStyle().Foreground(c.LightText),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Padding(0, 1),

		Accent: lipgloss.NewStyle().Foreground(c.Violet),
	}
}
