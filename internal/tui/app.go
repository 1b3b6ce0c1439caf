package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ajitssourat/aji/internal/catalog"
	"github.com/ajitssourat/aji/internal/i18n"
	"github.com/ajitssourat/aji/internal/program"
)

// languageChangedMsg is sent after the language switched
type languageChangedMsg struct{}

// AppModel is the root bubbletea model: a header, the routed screen, the
// FAQ overlay and the help bar.
type AppModel struct {
	env    *Env
	router *Router
	faq    *FAQOverlay
	start  string
	detail Screen

	width  int
	height int

	langChanged bool
}

// NewAppModel wires every route to its screen. start is the first path.
func NewAppModel(env *Env, start string) *AppModel {
	m := &AppModel{env: env, start: start}
	m.router = NewRouter(map[string]func() Screen{
		PathHome:       func() Screen { return NewHomeScreen(env) },
		PathBilan:      func() Screen { return NewBilanListScreen(env) },
		PathProgram:    func() Screen { return NewProgramListScreen(env) },
		PathSettings:   func() Screen { return NewSettingsScreen(env) },
		PathResults:    func() Screen { return NewResultsScreen(env) },
		PathLogin:      func() Screen { return NewLoginScreen(env) },
		PathOnboarding: func() Screen { return NewOnboardingScreen(env) },
	})
	m.faq = NewFAQOverlay(env)
	env.I18n.OnChange(func(i18n.Language, i18n.Direction) { m.langChanged = true })
	return m
}

// Router exposes the router, mainly for tests
func (m *AppModel) Router() *Router { return m.router }

// FAQ exposes the overlay, mainly for tests
func (m *AppModel) FAQ() *FAQOverlay { return m.faq }

func (m *AppModel) Init() tea.Cmd {
	cmd := m.router.Navigate(m.start)
	if m.detail != nil {
		return tea.Batch(cmd, push(m.detail))
	}
	return cmd
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.router.Shutdown()
			return m, tea.Quit
		}
		if m.faq.Open() {
			return m, m.faq.Update(msg)
		}
		if msg.String() == "?" && !m.capturesInput() {
			return m, m.faq.Toggle()
		}

	case languageChangedMsg:
		m.faq.rebuild()
		return m, nil
	}

	cmd := m.router.Update(msg)
	if m.langChanged {
		m.langChanged = false
		cmd = tea.Batch(cmd, func() tea.Msg { return languageChangedMsg{} })
	}
	return m, cmd
}

func (m *AppModel) capturesInput() bool {
	if c, ok := m.router.Active().(InputCapturer); ok {
		return c.CapturesInput()
	}
	return false
}

func (m *AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	helpBar := renderHelpBar(m.width, m.keyHints())
	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(helpBar)-1, 1)

	var content string
	if m.faq.Open() {
		content = m.faq.View(m.width, contentHeight)
	} else {
		content = m.router.View(m.width, contentHeight)
	}
	content = lipgloss.NewStyle().Height(contentHeight).MaxHeight(contentHeight).Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, helpBar)
}

func (m *AppModel) renderHeader() string {
	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}
	logo := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true).Render("AJI")
	name := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Render(title)
	lang := labelStyle().Render(string(m.env.I18n.Language()))

	line := logo + "  " + name + "  " + lang
	return lipgloss.NewStyle().
		Width(m.width).
		Align(m.env.align()).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Render(line)
}

func (m *AppModel) keyHints() string {
	if m.faq.Open() {
		return "↑/↓ · enter · tab " + m.env.T("allCategories") + " · esc " + m.env.T("back")
	}
	if p, ok := m.router.Active().(KeyHintProvider); ok {
		return p.KeyHints() + " · ctrl+c " + m.env.T("quit")
	}
	return "? FAQ · ctrl+c " + m.env.T("quit")
}

// Run starts the interactive app at path
func Run(env *Env, path string) error {
	return run(NewAppModel(env, path))
}

// RunTest opens the app on the detail of test, above the test list
func RunTest(env *Env, test catalog.Item) error {
	model := NewAppModel(env, PathBilan)
	model.detail = NewBilanDetailScreen(env, test)
	return run(model)
}

// RunSession opens the app on the player of session, above the session list
func RunSession(env *Env, session catalog.Item) error {
	model := NewAppModel(env, PathProgram)
	record := program.LoadRecord(env.Store, env.Store.CurrentUser())
	model.detail = NewPlayerScreen(env, session, record)
	return run(model)
}

func run(model *AppModel) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	model.router.Shutdown()
	return err
}
