package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ajitssourat/aji/internal/bilan"
	"github.com/ajitssourat/aji/internal/catalog"
	"github.com/ajitssourat/aji/internal/engine"
)

// overviewLoadedMsg carries the assessment overview
type overviewLoadedMsg struct {
	overview bilan.Overview
	err      error
}

// BilanListScreen lists the motor tests with the overall progress
type BilanListScreen struct {
	env      *Env
	overview bilan.Overview
	selected int
	err      error
	bar      progress.Model
}

// NewBilanListScreen creates the test list
func NewBilanListScreen(env *Env) *BilanListScreen {
	return &BilanListScreen{
		env:      env,
		overview: bilan.NewOverview(catalog.Tests(), nil),
		bar:      progress.New(progress.WithSolidFill(ColorAccentMain)),
	}
}

func (s *BilanListScreen) load() tea.Msg {
	o, err := bilan.LoadOverview(s.env.Store, s.env.Store.CurrentUser())
	return overviewLoadedMsg{overview: o, err: err}
}

func (s *BilanListScreen) Init() tea.Cmd { return s.load }

func (s *BilanListScreen) Title() string { return s.env.T("bilanTitle") }

func (s *BilanListScreen) Unmount() {}

func (s *BilanListScreen) KeyHints() string {
	return "↑/↓ · enter " + s.env.T("start") + " · v " + s.env.T("seeDetailedResults") + " · esc " + s.env.T("back")
}

func (s *BilanListScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewLoadedMsg:
		s.err = msg.err
		if msg.err == nil {
			s.overview = msg.overview
		}
		return s, nil

	case ResumeMsg:
		return s, s.load

	case tea.KeyMsg:
		tests := s.overview.Tests()
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(tests)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(tests) {
				return s, push(NewBilanDetailScreen(s.env, tests[s.selected]))
			}
		case "v":
			return s, navigate(PathResults)
		case "esc", "q":
			return s, navigate(PathHome)
		}
	}
	return s, nil
}

func (s *BilanListScreen) View(width, height int) string {
	t := s.env.T
	var b strings.Builder

	b.WriteString(s.env.block(width, titleStyle().Render(t("bilanTitle"))))
	b.WriteString("\n\n")

	s.bar.Width = max(min(width-10, 50), 10)
	b.WriteString(s.env.block(width,
		labelStyle().Render(t("testsCompleted"))+" "+
			valueStyle().Render(fmt.Sprintf("%d/%d", s.overview.CompletedCount(), len(s.overview.Tests()))),
		s.bar.ViewAs(float64(s.overview.Progress())/100),
		labelStyle().Render(t("averageScore"))+" "+
			valueStyle().Render(fmt.Sprintf("%d/10", s.overview.AverageScore())),
	))
	b.WriteString("\n\n")

	if s.err != nil {
		b.WriteString(errorStyle().Render(fmt.Sprintf("Error: %v", s.err)))
		b.WriteString("\n")
	}

	for i, test := range s.overview.Tests() {
		b.WriteString(s.renderTestRow(test, i == s.selected, width))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *BilanListScreen) renderTestRow(test catalog.Item, selected bool, width int) string {
	t := s.env.T
	status := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render("○ " + t("pending"))
	if s.overview.IsCompleted(test.ID) {
		status = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("✓ " + t("completed"))
	}
	score := ""
	if v, ok := s.overview.Score(test.ID); ok {
		score = fmt.Sprintf("  %d/%d", v, test.MaxScore)
	}
	name := valueStyle().Render(t(test.Name))
	meta := labelStyle().Render(fmt.Sprintf("%d %s", test.Minutes, t("minutes")))

	style := cardStyle(width)
	if selected {
		style = selectedCardStyle(width)
	}
	return style.Render(s.env.block(width-8, name+"  "+meta, status+score))
}

// BilanDetailScreen is one test: the timed phase, then the evaluation
type BilanDetailScreen struct {
	env         *Env
	detail      *bilan.Detail
	observation textarea.Model
	editing     bool
	err         error
}

// NewBilanDetailScreen opens test with results saved for the signed-in user
func NewBilanDetailScreen(env *Env, test catalog.Item) *BilanDetailScreen {
	reporter := bilan.StoreReporter{Store: env.Store, Email: env.Store.CurrentUser()}

	ta := textarea.New()
	ta.Placeholder = env.T("describeObservations")
	ta.ShowLineNumbers = false
	ta.CharLimit = 500
	ta.SetHeight(3)

	return &BilanDetailScreen{
		env:         env,
		detail:      bilan.NewDetail(test, reporter),
		observation: ta,
	}
}

func (s *BilanDetailScreen) Init() tea.Cmd { return nil }

func (s *BilanDetailScreen) Title() string { return s.env.T(s.detail.Test().Name) }

// Unmount releases the test timer
func (s *BilanDetailScreen) Unmount() { s.detail.Leave() }

func (s *BilanDetailScreen) CapturesInput() bool { return s.editing }

func (s *BilanDetailScreen) KeyHints() string {
	t := s.env.T
	if s.detail.Phase() == bilan.PhaseTest {
		return "space " + t("start") + "/" + t("pause") + " · r " + t("reset") + " · f " + t("finish") + " · esc " + t("back")
	}
	if s.editing {
		return "esc " + t("back")
	}
	return "←/→ " + t("scoreObtained") + " · tab " + t("observations") + " · enter " + t("saveAndExit") + " · esc " + t("back")
}

func (s *BilanDetailScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stepTickMsg:
		if msg.owner != s.detail {
			return s, nil
		}
		if s.detail.Tick(msg.handle) {
			return s, scheduleTick(s.detail, msg.handle)
		}
		return s, nil

	case tea.KeyMsg:
		if s.detail.Phase() == bilan.PhaseTest {
			return s.updateTest(msg)
		}
		return s.updateEvaluation(msg)
	}
	return s, nil
}

func (s *BilanDetailScreen) updateTest(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case " ":
		if s.detail.Toggle() {
			return s, scheduleTick(s.detail, s.detail.Handle())
		}
	case "r":
		s.detail.Reset()
	case "f":
		s.detail.Finish()
	case "esc", "q":
		return s, pop
	}
	return s, nil
}

func (s *BilanDetailScreen) updateEvaluation(msg tea.KeyMsg) (Screen, tea.Cmd) {
	if s.editing {
		if msg.String() == "esc" {
			s.editing = false
			s.observation.Blur()
			return s, nil
		}
		var cmd tea.Cmd
		s.observation, cmd = s.observation.Update(msg)
		s.detail.SetObservation(s.observation.Value())
		return s, cmd
	}

	switch msg.String() {
	case "left", "h", "-":
		s.detail.AdjustScore(-1)
	case "right", "l", "+":
		s.detail.AdjustScore(1)
	case "tab":
		s.editing = true
		return s, s.observation.Focus()
	case "enter":
		if _, err := s.detail.SaveAndExit(); err != nil {
			s.err = err
			return s, nil
		}
		return s, pop
	case "esc", "q":
		return s, pop
	}
	return s, nil
}

func (s *BilanDetailScreen) View(width, height int) string {
	test := s.detail.Test()
	t := s.env.T
	var components []string

	components = append(components, s.env.block(width,
		titleStyle().Render(t(test.Name)),
		labelStyle().Render(t(test.Description)),
		labelStyle().Render(t("video")+": "+test.VideoURL),
	))

	if s.detail.Phase() == bilan.PhaseTest {
		components = append(components, s.renderTestPhase(width)...)
	} else {
		components = append(components, s.renderEvaluation(width)...)
	}

	if s.err != nil {
		components = append(components, errorStyle().Render(fmt.Sprintf("Error: %v", s.err)))
	}
	return strings.Join(components, "\n\n")
}

func (s *BilanDetailScreen) renderTestPhase(width int) []string {
	t := s.env.T
	state := t("ready")
	if s.detail.Running() {
		state = t("running")
	} else if s.detail.Remaining() < s.detail.Test().Minutes*60 {
		state = t("paused")
	}

	clock := lipgloss.NewStyle().Width(max(width, 1)).Align(lipgloss.Center).
		Render(renderBigClock(engine.Clock(s.detail.Remaining())))

	instructions := s.env.block(width,
		valueStyle().Render(t("instructions")),
		"• "+t("followInstructions"),
		"• "+t("maintainPosture"),
		"• "+t("goAtYourPace"),
		"• "+t("stopIfPain"),
	)

	return []string{
		clock,
		lipgloss.NewStyle().Width(max(width, 1)).Align(lipgloss.Center).Render(labelStyle().Render(state)),
		instructions,
	}
}

func (s *BilanDetailScreen) renderEvaluation(width int) []string {
	t := s.env.T
	test := s.detail.Test()

	score := s.detail.Score()
	filled := strings.Repeat("●", score)
	empty := strings.Repeat("○", max(test.MaxScore-score, 0))
	slider := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Render(filled) +
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render(empty)

	s.observation.SetWidth(max(width-6, 20))

	return []string{
		s.env.block(width,
			lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true).Render(t("testDone")),
			valueStyle().Render(t("evaluation")),
		),
		s.env.block(width,
			labelStyle().Render(t("scoreObtained"))+"  "+valueStyle().Render(fmt.Sprintf("%d/%d", score, test.MaxScore)),
			slider,
		),
		labelStyle().Render(t("observations")),
		s.observation.View(),
	}
}
