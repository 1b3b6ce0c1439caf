package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ajitssourat/aji/internal/db"
	"github.com/ajitssourat/aji/internal/i18n"
)

// Env is what every screen needs: storage and the active language
type Env struct {
	Store *db.Store
	I18n  *i18n.Provider
}

// T translates key in the active language
func (e *Env) T(key string) string { return e.I18n.T(key) }

// align is the text alignment for the active direction
func (e *Env) align() lipgloss.Position {
	if e.I18n.Dir() == i18n.RTL {
		return lipgloss.Right
	}
	return lipgloss.Left
}

// stepTickMsg is sent every second while a countdown runs. owner is the
// detail or player the tick was scheduled for.
type stepTickMsg struct {
	owner  any
	handle uint64
}

func scheduleTick(owner any, handle uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return stepTickMsg{owner: owner, handle: handle}
	})
}

// block lays out lines with the direction's alignment over width
func (e *Env) block(width int, lines ...string) string {
	style := lipgloss.NewStyle().Width(max(width, 1)).Align(e.align())
	return style.Render(strings.Join(lines, "\n"))
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
}

func labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
}

func valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true)
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
}

func cardStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(max(width-4, 10))
}

func selectedCardStyle(width int) lipgloss.Style {
	return cardStyle(width).BorderForeground(lipgloss.Color(ColorAccentMain))
}

// renderBigClock renders m:ss in block digits
func renderBigClock(clock string) string {
	// ASCII art for digits (5 rows each)
	digits := map[rune][5]string{
		'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
		'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
		'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
		'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
		'4': {"█   █", "█   █", "█████", "    █", "    █"},
		'5': {"█████", "█    ", "████ ", "    █", "████ "},
		'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
		'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
		'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
		'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
		':': {"     ", "  █  ", "     ", "  █  ", "     "},
	}

	var lines [5]strings.Builder
	for _, char := range clock {
		art, ok := digits[char]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			lines[i].WriteString(art[i])
			lines[i].WriteString(" ")
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	rows := make([]string, 0, 5)
	for i := range lines {
		rows = append(rows, clockStyle.Render(lines[i].String()))
	}
	return strings.Join(rows, "\n")
}

// renderHelpBar renders the key hints at the bottom
func renderHelpBar(width int, text string) string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(max(width, 1))
	return helpStyle.Render(text)
}
