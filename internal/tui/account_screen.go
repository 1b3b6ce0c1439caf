package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ajitssourat/aji/internal/db"
	"github.com/ajitssourat/aji/internal/home"
)

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	return in
}

// LoginScreen signs in or registers a local account
type LoginScreen struct {
	env      *Env
	inputs   []textinput.Model
	focus    int
	register bool
	errMsg   string
}

func NewLoginScreen(env *Env) *LoginScreen {
	email := newInput(env.T("email"), 120)
	email.Focus()
	password := newInput(env.T("password"), 72)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	return &LoginScreen{env: env, inputs: []textinput.Model{email, password}}
}

func (s *LoginScreen) Init() tea.Cmd { return textinput.Blink }

func (s *LoginScreen) Title() string { return s.env.T("login") }

func (s *LoginScreen) Unmount() {}

func (s *LoginScreen) CapturesInput() bool { return true }

func (s *LoginScreen) KeyHints() string {
	return "tab · enter " + s.env.T("login") + " · ctrl+r " + s.env.T("register") + " · ctrl+c " + s.env.T("quit")
}

func (s *LoginScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab", "up", "down":
			s.inputs[s.focus].Blur()
			s.focus = (s.focus + 1) % len(s.inputs)
			return s, s.inputs[s.focus].Focus()
		case "ctrl+r":
			s.register = !s.register
			s.errMsg = ""
			return s, nil
		case "enter":
			return s.submit()
		}
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *LoginScreen) submit() (Screen, tea.Cmd) {
	email := s.inputs[0].Value()
	password := s.inputs[1].Value()

	var err error
	if s.register {
		_, err = s.env.Store.Register(email, password)
	}
	if err == nil {
		_, err = s.env.Store.Authenticate(email, password)
	}
	if err != nil {
		if errors.Is(err, db.ErrInvalidCredentials) {
			s.errMsg = s.env.T("invalidCredentials")
		} else {
			s.errMsg = err.Error()
		}
		return s, nil
	}

	normalized, _ := db.NormalizeEmail(email)
	if err := s.env.Store.SignIn(normalized); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	return s, navigate(PathHome)
}

func (s *LoginScreen) View(width, height int) string {
	t := s.env.T
	heading := t("login")
	if s.register {
		heading = t("register")
	}
	lines := []string{
		titleStyle().Render("AJI TSSOURAT"),
		labelStyle().Render(t("loginPrompt")),
		"",
		valueStyle().Render(heading),
		labelStyle().Render(t("email")),
		s.inputs[0].View(),
		labelStyle().Render(t("password")),
		s.inputs[1].View(),
	}
	if s.errMsg != "" {
		lines = append(lines, "", errorStyle().Render(s.errMsg))
	}
	return s.env.block(width, lines...)
}

// OnboardingScreen records the weekly MET score after the first sign-in
type OnboardingScreen struct {
	env    *Env
	input  textinput.Model
	errMsg string
}

func NewOnboardingScreen(env *Env) *OnboardingScreen {
	in := newInput("1200", 6)
	in.Focus()
	return &OnboardingScreen{env: env, input: in}
}

func (s *OnboardingScreen) Init() tea.Cmd { return textinput.Blink }

func (s *OnboardingScreen) Title() string { return s.env.T("onboardingTitle") }

func (s *OnboardingScreen) Unmount() {}

func (s *OnboardingScreen) CapturesInput() bool { return true }

func (s *OnboardingScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		met, err := strconv.Atoi(strings.TrimSpace(s.input.Value()))
		if err != nil {
			s.errMsg = s.env.T("metScorePrompt")
			return s, nil
		}
		email := s.env.Store.CurrentUser()
		if email == "" {
			return s, navigate(PathLogin)
		}
		if _, err := home.Onboard(s.env.Store, email, met); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		return s, navigate(PathHome)
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *OnboardingScreen) View(width, height int) string {
	t := s.env.T
	lines := []string{
		titleStyle().Render(t("onboardingTitle")),
		labelStyle().Render(t("metScorePrompt")),
		"",
		s.input.View() + " " + labelStyle().Render(t("metUnit")),
	}
	if s.errMsg != "" {
		lines = append(lines, "", errorStyle().Render(s.errMsg))
	}
	return s.env.block(width, lines...)
}
