// Package faq implements the FAQ widget: visibility, the single expanded
// question, the category filter and the free-text search.
package faq

import "strings"

// All is the category sentinel that disables category filtering
const All = "all"

// Item is one question and its answer, already translated
type Item struct {
	ID       string
	Category string
	Question string
	Answer   string
}

// Widget holds the FAQ state. The zero value is not usable; use New.
type Widget struct {
	items    []Item
	open     bool
	expanded string
	category string
	query    string
}

// New creates a closed widget over items showing every category
func New(items []Item) *Widget {
	return &Widget{
		items:    append([]Item(nil), items...),
		category: All,
	}
}

// Open reports whether the widget is shown
func (w *Widget) Open() bool { return w.open }

// Toggle shows or hides the widget
func (w *Widget) Toggle() { w.open = !w.open }

// Close hides the widget
func (w *Widget) Close() { w.open = false }

// Expanded is the id of the expanded question, "" when none
func (w *Widget) Expanded() string { return w.expanded }

// Expand opens the answer of id. Expanding the open question collapses it;
// expanding another one replaces it.
func (w *Widget) Expand(id string) {
	if w.expanded == id {
		w.expanded = ""
		return
	}
	w.expanded = id
}

// Category is the selected category
func (w *Widget) Category() string { return w.category }

// SelectCategory filters by category; an empty value selects All
func (w *Widget) SelectCategory(category string) {
	if category == "" {
		category = All
	}
	w.category = category
}

// Query is the current search text
func (w *Widget) Query() string { return w.query }

// SetQuery replaces the search text
func (w *Widget) SetQuery(q string) { w.query = q }

// Categories is All followed by the distinct categories in first-seen order
func (w *Widget) Categories() []string {
	cats := []string{All}
	seen := map[string]bool{}
	for _, it := range w.items {
		if seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		cats = append(cats, it.Category)
	}
	return cats
}

// Filtered applies the category filter, then the case-insensitive search
// over question and answer. Catalog order is kept.
func (w *Widget) Filtered() []Item {
	query := strings.ToLower(strings.TrimSpace(w.query))
	var out []Item
	for _, it := range w.items {
		if w.category != All && it.Category != w.category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(it.Question), query) &&
			!strings.Contains(strings.ToLower(it.Answer), query) {
			continue
		}
		out = append(out, it)
	}
	return out
}
