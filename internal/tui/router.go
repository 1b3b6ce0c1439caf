package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// Screen is one routed view of the app
type Screen interface {
	// Init returns an initial command when the screen is mounted.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string

	// Unmount is called when the screen leaves the router. Timers owned by
	// the screen must be released here.
	Unmount()
}

// InputCapturer is implemented by screens that take free text. While it
// reports true, global keys such as ? reach the screen instead.
type InputCapturer interface {
	CapturesInput() bool
}

// KeyHintProvider is implemented by screens with their own help bar
type KeyHintProvider interface {
	KeyHints() string
}

// NavigateMsg requests the router to switch to the screen at Path.
type NavigateMsg struct {
	Path string
}

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// ResumeMsg is delivered to a screen when the one above it was popped.
type ResumeMsg struct{}

// Route paths
const (
	PathHome       = "/home"
	PathBilan      = "/bilan"
	PathProgram    = "/program"
	PathSettings   = "/settings"
	PathResults    = "/results"
	PathLogin      = "/login"
	PathOnboarding = "/onboarding"
)

// Router maps paths to screens and keeps a stack for detail views pushed
// on top of a routed screen.
type Router struct {
	routes map[string]func() Screen
	stack  []Screen
	path   string
}

// NewRouter creates a router with no active screen
func NewRouter(routes map[string]func() Screen) *Router {
	return &Router{routes: routes}
}

// Navigate unmounts every screen and mounts the one registered for path.
// Unknown paths are ignored.
func (r *Router) Navigate(path string) tea.Cmd {
	factory, ok := r.routes[path]
	if !ok {
		log.Printf("router: ignoring unknown path %q", path)
		return nil
	}
	r.unmountAll()
	s := factory()
	r.stack = []Screen{s}
	r.path = path
	return s.Init()
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop unmounts the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	top := r.stack[len(r.stack)-1]
	top.Unmount()
	r.stack = r.stack[:len(r.stack)-1]
	return func() tea.Msg { return ResumeMsg{} }
}

func (r *Router) unmountAll() {
	for i := len(r.stack) - 1; i >= 0; i-- {
		r.stack[i].Unmount()
	}
	r.stack = nil
}

// Active returns the top screen on the stack.
func (r *Router) Active() Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Path is the path of the routed screen
func (r *Router) Path() string { return r.path }

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int { return len(r.stack) }

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NavigateMsg:
		return r.Navigate(msg.Path)
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}

// Shutdown unmounts every screen when the program exits
func (r *Router) Shutdown() {
	r.unmountAll()
}

func navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

func push(s Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

func pop() tea.Msg { return PopScreenMsg{} }
