package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ajitssourat/aji/internal/catalog"
	"github.com/ajitssourat/aji/internal/engine"
	"github.com/ajitssourat/aji/internal/program"
)

// ProgramListScreen lists the sessions with their completion marks
type ProgramListScreen struct {
	env      *Env
	sessions []catalog.Item
	record   *program.CompletionRecord
	selected int
}

// NewProgramListScreen creates the session list
func NewProgramListScreen(env *Env) *ProgramListScreen {
	return &ProgramListScreen{
		env:      env,
		sessions: catalog.Sessions(),
		record:   program.LoadRecord(env.Store, env.Store.CurrentUser()),
	}
}

func (s *ProgramListScreen) Init() tea.Cmd { return nil }

func (s *ProgramListScreen) Title() string { return s.env.T("programTitle") }

func (s *ProgramListScreen) Unmount() {}

func (s *ProgramListScreen) KeyHints() string {
	return "↑/↓ · enter " + s.env.T("start") + " · esc " + s.env.T("back")
}

func (s *ProgramListScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ResumeMsg:
		s.record = program.LoadRecord(s.env.Store, s.env.Store.CurrentUser())
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.sessions) {
				return s, push(NewPlayerScreen(s.env, s.sessions[s.selected], s.record))
			}
		case "esc", "q":
			return s, navigate(PathHome)
		}
	}
	return s, nil
}

func (s *ProgramListScreen) View(width, height int) string {
	t := s.env.T
	var b strings.Builder

	b.WriteString(s.env.block(width,
		titleStyle().Render(t("programTitle")),
		labelStyle().Render(t("sessionsCompleted"))+" "+
			valueStyle().Render(fmt.Sprintf("%d/%d", s.record.Count(), len(s.sessions))),
	))
	b.WriteString("\n\n")

	for i, session := range s.sessions {
		mark := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render("○")
		if s.record.Contains(session.ID) {
			mark = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("✓")
		}
		style := cardStyle(width)
		if i == s.selected {
			style = selectedCardStyle(width)
		}
		b.WriteString(style.Render(s.env.block(width-8,
			mark+" "+valueStyle().Render(t(session.Name)),
			labelStyle().Render(fmt.Sprintf("%d %s · %d %s · %s",
				session.Minutes, t("minutes"), len(session.Exercises), t("exercises"), t(session.Difficulty))),
		)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.env.block(width,
		valueStyle().Render(t("tips")),
		"• "+t("tip1"), "• "+t("tip2"), "• "+t("tip3"), "• "+t("tip4"),
	))
	return b.String()
}

// PlayerScreen plays one session
type PlayerScreen struct {
	env    *Env
	player *program.Player
	done   bool
	bar    progress.Model
}

// NewPlayerScreen opens session. Completion is written to record.
func NewPlayerScreen(env *Env, session catalog.Item, record *program.CompletionRecord) *PlayerScreen {
	s := &PlayerScreen{
		env: env,
		bar: progress.New(progress.WithSolidFill(ColorAccentMain)),
	}
	s.player = program.NewPlayer(session, record, func(int) { s.done = true })
	return s
}

func (s *PlayerScreen) Init() tea.Cmd { return nil }

func (s *PlayerScreen) Title() string { return s.env.T(s.player.Session().Name) }

// Unmount releases the exercise timer
func (s *PlayerScreen) Unmount() { s.player.Leave() }

func (s *PlayerScreen) KeyHints() string {
	t := s.env.T
	return "space " + t("start") + "/" + t("pause") + " · r " + t("reset") + " · n " + t("nextExercise") + " · esc " + t("back")
}

func (s *PlayerScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stepTickMsg:
		if msg.owner != s.player {
			return s, nil
		}
		keep := s.player.Tick(msg.handle)
		if s.done {
			return s, pop
		}
		if keep {
			return s, scheduleTick(s.player, msg.handle)
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			if s.player.Toggle() {
				return s, scheduleTick(s.player, s.player.Handle())
			}
		case "r":
			s.player.Reset()
		case "n":
			s.player.Next()
			if s.done {
				return s, pop
			}
		case "esc", "q":
			return s, pop
		}
	}
	return s, nil
}

func (s *PlayerScreen) View(width, height int) string {
	t := s.env.T
	session := s.player.Session()
	center := lipgloss.NewStyle().Width(max(width, 1)).Align(lipgloss.Center)

	var components []string
	components = append(components, s.env.block(width,
		titleStyle().Render(t(session.Name)),
		labelStyle().Render(t("sessionTime")+" "+engine.Clock(s.player.SessionRemaining())),
	))

	s.bar.Width = max(min(width-10, 50), 10)
	components = append(components, s.env.block(width,
		labelStyle().Render(fmt.Sprintf("%s %d/%d", t("exercise"), s.player.Index()+1, len(session.Exercises))),
		s.bar.ViewAs(float64(s.player.Progress())/100),
	))

	if ex, ok := s.player.Exercise(); ok {
		components = append(components, center.Render(valueStyle().Render(t(ex.Name))))
	}
	components = append(components, center.Render(renderBigClock(engine.Clock(s.player.Remaining()))))

	state := t("ready")
	if s.player.Running() {
		state = t("running")
	}
	components = append(components, center.Render(labelStyle().Render(state)))
	components = append(components, s.env.block(width, labelStyle().Italic(true).Render(t("exerciseAdvice"))))

	if next, ok := s.player.Upcoming(); ok {
		components = append(components, s.env.block(width,
			labelStyle().Render(t("upNext")+": ")+valueStyle().Render(t(next.Name))+
				labelStyle().Render(fmt.Sprintf(" · %d %s", next.Minutes, t("minutes"))),
		))
	}
	if err := s.player.Err(); err != nil {
		components = append(components, errorStyle().Render(fmt.Sprintf("Error: %v", err)))
	}
	return strings.Join(components, "\n\n")
}
