package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ajitssourat/aji/internal/home"
)

// dashboardLoadedMsg carries the result of home.Load
type dashboardLoadedMsg struct {
	dash     home.Dashboard
	redirect string
	err      error
}

// HomeScreen is the dashboard
type HomeScreen struct {
	env    *Env
	dash   home.Dashboard
	loaded bool
	err    error
	ring   progress.Model
}

// NewHomeScreen creates the dashboard screen
func NewHomeScreen(env *Env) *HomeScreen {
	return &HomeScreen{
		env:  env,
		ring: progress.New(progress.WithSolidFill(ColorAccentMain), progress.WithoutPercentage()),
	}
}

func (s *HomeScreen) load() tea.Msg {
	dash, redirect, err := home.Load(s.env.Store)
	return dashboardLoadedMsg{dash: dash, redirect: redirect, err: err}
}

func (s *HomeScreen) Init() tea.Cmd { return s.load }

func (s *HomeScreen) Title() string { return s.env.T("home") }

func (s *HomeScreen) Unmount() {}

func (s *HomeScreen) KeyHints() string {
	return "b " + s.env.T("assessment") + " · p " + s.env.T("program") + " · r " + s.env.T("results") +
		" · s " + s.env.T("settings") + " · ? FAQ · q " + s.env.T("quit")
}

func (s *HomeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.redirect != "" {
			return s, navigate(msg.redirect)
		}
		s.dash, s.err, s.loaded = msg.dash, msg.err, true
		return s, nil

	case ResumeMsg:
		return s, s.load

	case tea.KeyMsg:
		switch msg.String() {
		case "b":
			return s, navigate(PathBilan)
		case "p":
			return s, navigate(PathProgram)
		case "r":
			return s, navigate(PathResults)
		case "s":
			return s, navigate(PathSettings)
		case "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *HomeScreen) View(width, height int) string {
	if s.err != nil {
		return errorStyle().Render(fmt.Sprintf("Error: %v", s.err))
	}
	if !s.loaded {
		return "Loading..."
	}
	t := s.env.T

	level := t("notAvailable")
	if s.dash.Level != "" {
		level = t(home.Level(s.dash.Level).Key())
	}
	levelBadge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(levelColor(s.dash.Color))).
		Bold(true).
		Render(level)

	s.ring.Width = max(min(width-10, 50), 10)

	metCard := cardStyle(width).Render(s.env.block(width-8,
		labelStyle().Render("MET"),
		valueStyle().Render(fmt.Sprintf("%d %s", s.dash.MetScore, t("metUnit")))+"  "+levelBadge,
		s.ring.ViewAs(s.dash.Ring),
	))

	statsCard := cardStyle(width).Render(s.env.block(width-8,
		labelStyle().Render(t("averageMotricity"))+"  "+valueStyle().Render(fmt.Sprintf("%d/10", s.dash.AverageScore)),
		labelStyle().Render(t("sessionsCompleted"))+"  "+valueStyle().Render(fmt.Sprintf("%d", s.dash.CompletedSessions)),
		labelStyle().Italic(true).Render(t("keepEfforts")),
	))

	coachCard := cardStyle(width).Render(s.env.block(width-8,
		titleStyle().Render(t("coachMessage")),
		t("coachAdvice"),
	))

	header := s.env.block(width,
		titleStyle().Render(t("welcome")),
		labelStyle().Render(t("healthPartner")),
		labelStyle().Render(t("signedInAs")+" "+s.dash.Email),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", metCard, statsCard, coachCard)
}
