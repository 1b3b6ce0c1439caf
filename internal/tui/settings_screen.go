package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ajitssourat/aji/internal/catalog"
	"github.com/ajitssourat/aji/internal/home"
	"github.com/ajitssourat/aji/internal/i18n"
	"github.com/ajitssourat/aji/internal/models"
)

// SettingsScreen switches the language and signs out
type SettingsScreen struct {
	env *Env
	err error
}

func NewSettingsScreen(env *Env) *SettingsScreen {
	return &SettingsScreen{env: env}
}

func (s *SettingsScreen) Init() tea.Cmd { return nil }

func (s *SettingsScreen) Title() string { return s.env.T("settings") }

func (s *SettingsScreen) Unmount() {}

func (s *SettingsScreen) KeyHints() string {
	return "l " + s.env.T("switchLanguage") + " · o " + s.env.T("logout") + " · esc " + s.env.T("back")
}

func (s *SettingsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case "l":
		next := i18n.Arabic
		if s.env.I18n.Language() == i18n.Arabic {
			next = i18n.French
		}
		s.err = s.env.I18n.SetLanguage(next)
	case "o":
		if err := home.Logout(s.env.Store); err != nil {
			s.err = err
			return s, nil
		}
		return s, navigate(PathLogin)
	case "esc", "q":
		return s, navigate(PathHome)
	}
	return s, nil
}

func (s *SettingsScreen) View(width, height int) string {
	t := s.env.T
	lines := []string{
		titleStyle().Render(t("settings")),
		"",
		labelStyle().Render(t("language")) + "  " + valueStyle().Render(t("languageName")),
		labelStyle().Render(t("signedInAs")) + "  " + valueStyle().Render(s.env.Store.CurrentUser()),
	}
	if s.err != nil {
		lines = append(lines, "", errorStyle().Render(fmt.Sprintf("Error: %v", s.err)))
	}
	return s.env.block(width, lines...)
}

// resultsLoadedMsg carries the saved results
type resultsLoadedMsg struct {
	results []models.AssessmentResult
	err     error
}

// ResultsScreen lists the saved assessment results, newest first
type ResultsScreen struct {
	env     *Env
	results []models.AssessmentResult
	loaded  bool
	err     error
}

func NewResultsScreen(env *Env) *ResultsScreen {
	return &ResultsScreen{env: env}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		results, err := s.env.Store.Results(s.env.Store.CurrentUser())
		return resultsLoadedMsg{results: results, err: err}
	}
}

func (s *ResultsScreen) Title() string { return s.env.T("resultsTitle") }

func (s *ResultsScreen) Unmount() {}

func (s *ResultsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsLoadedMsg:
		s.results, s.err, s.loaded = msg.results, msg.err, true
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, navigate(PathBilan)
		case "h":
			return s, navigate(PathHome)
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	t := s.env.T
	var b strings.Builder
	b.WriteString(s.env.block(width, titleStyle().Render(t("resultsTitle"))))
	b.WriteString("\n\n")

	switch {
	case s.err != nil:
		b.WriteString(errorStyle().Render(fmt.Sprintf("Error: %v", s.err)))
	case !s.loaded:
		b.WriteString("Loading...")
	case len(s.results) == 0:
		b.WriteString(s.env.block(width, labelStyle().Render(t("noResults"))))
	}

	for _, r := range s.results {
		name := fmt.Sprintf("#%d", r.TestID)
		if test, err := catalog.FindTest(r.TestID); err == nil {
			name = t(test.Name)
		}
		lines := []string{
			valueStyle().Render(name) + "  " +
				lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render(fmt.Sprintf("%d/%d", r.Score, r.MaxScore)),
			labelStyle().Render(r.CreatedAt.Format("02/01/2006 15:04")),
		}
		if r.Observation != "" {
			lines = append(lines, labelStyle().Italic(true).Render(t("observation")+": "+r.Observation))
		}
		b.WriteString(cardStyle(width).Render(s.env.block(width-8, lines...)))
		b.WriteString("\n")
	}
	return b.String()
}
