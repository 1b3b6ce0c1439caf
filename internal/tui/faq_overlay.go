package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ajitssourat/aji/internal/faq"
)

// FAQOverlay is the help widget drawn over every screen
type FAQOverlay struct {
	env    *Env
	widget *faq.Widget
	search textinput.Model
	cursor int
}

// NewFAQOverlay builds the widget from the active language
func NewFAQOverlay(env *Env) *FAQOverlay {
	o := &FAQOverlay{env: env, search: newInput(env.T("searchQuestion"), 80)}
	o.rebuild()
	return o
}

// rebuild reloads the questions, e.g. after a language switch. The widget
// starts closed with everything reset.
func (o *FAQOverlay) rebuild() {
	o.widget = faq.New(faq.Catalog(o.env.I18n))
	o.search.Placeholder = o.env.T("searchQuestion")
	o.search.SetValue("")
	o.cursor = 0
}

// Open reports whether the overlay is visible
func (o *FAQOverlay) Open() bool { return o.widget.Open() }

// Toggle shows or hides the overlay
func (o *FAQOverlay) Toggle() tea.Cmd {
	o.widget.Toggle()
	if o.widget.Open() {
		return o.search.Focus()
	}
	o.search.Blur()
	return nil
}

// Update handles keys while the overlay is open
func (o *FAQOverlay) Update(msg tea.KeyMsg) tea.Cmd {
	items := o.widget.Filtered()
	switch msg.String() {
	case "esc":
		o.widget.Close()
		o.search.Blur()
		return nil
	case "up":
		if o.cursor > 0 {
			o.cursor--
		}
		return nil
	case "down":
		if o.cursor < len(items)-1 {
			o.cursor++
		}
		return nil
	case "enter":
		if o.cursor < len(items) {
			o.widget.Expand(items[o.cursor].ID)
		}
		return nil
	case "tab", "shift+tab":
		o.cycleCategory(msg.String() == "tab")
		return nil
	}

	var cmd tea.Cmd
	o.search, cmd = o.search.Update(msg)
	if o.search.Value() != o.widget.Query() {
		o.widget.SetQuery(o.search.Value())
		o.cursor = 0
	}
	return cmd
}

func (o *FAQOverlay) cycleCategory(forward bool) {
	cats := o.widget.Categories()
	cur := 0
	for i, c := range cats {
		if c == o.widget.Category() {
			cur = i
		}
	}
	if forward {
		cur = (cur + 1) % len(cats)
	} else {
		cur = (cur - 1 + len(cats)) % len(cats)
	}
	o.widget.SelectCategory(cats[cur])
	o.cursor = 0
}

// View renders the overlay panel
func (o *FAQOverlay) View(width, height int) string {
	t := o.env.T
	var b strings.Builder

	b.WriteString(o.env.block(width-6,
		titleStyle().Render(t("faqTitle")),
		labelStyle().Render(t("faqSubtitle")),
	))
	b.WriteString("\n\n")
	b.WriteString(o.search.View())
	b.WriteString("\n\n")

	var chips []string
	for _, c := range o.widget.Categories() {
		label := c
		if c == faq.All {
			label = t("allCategories")
		}
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(ColorSecondaryText))
		if c == o.widget.Category() {
			style = style.Foreground(lipgloss.Color(ColorPrimaryText)).Background(lipgloss.Color(ColorAccentMain))
		}
		chips = append(chips, style.Render(label))
	}
	b.WriteString(strings.Join(chips, " "))
	b.WriteString("\n\n")

	items := o.widget.Filtered()
	if len(items) == 0 {
		b.WriteString(o.env.block(width-6,
			valueStyle().Render(t("noQuestionsFound")),
			labelStyle().Render(t("tryAnotherSearch")),
		))
	} else {
		b.WriteString(labelStyle().Render(fmt.Sprintf("%d %s", len(items), t("questionsFound"))))
		b.WriteString("\n")
	}
	for i, it := range items {
		marker := "▸"
		if it.ID == o.widget.Expanded() {
			marker = "▾"
		}
		q := marker + " " + it.Question
		if i == o.cursor {
			q = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true).Render(q)
		}
		lines := []string{q}
		if it.ID == o.widget.Expanded() {
			lines = append(lines, labelStyle().Render("  "+it.Answer))
		}
		b.WriteString(o.env.block(width-6, lines...))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 2).
		Width(max(width-2, 20)).
		Render(b.String())
}
