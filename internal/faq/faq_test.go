package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitssourat/aji/internal/i18n"
)

type memStore map[string]string

func (m memStore) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memStore) Set(key, value string) error {
	m[key] = value
	return nil
}

func frenchWidget() *Widget {
	return New(Catalog(i18n.NewProvider(memStore{i18n.StorageKey: "fr"})))
}

func ids(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestNewWidget(t *testing.T) {
	w := frenchWidget()

	assert.False(t, w.Open())
	assert.Equal(t, All, w.Category())
	assert.Empty(t, w.Expanded())
	assert.Len(t, w.Filtered(), 10)
}

func TestToggle(t *testing.T) {
	w := frenchWidget()

	w.Toggle()
	assert.True(t, w.Open())
	w.Toggle()
	assert.False(t, w.Open())
	w.Toggle()
	w.Close()
	assert.False(t, w.Open())
}

func TestOnlyOneExpanded(t *testing.T) {
	w := frenchWidget()

	w.Expand("1")
	assert.Equal(t, "1", w.Expanded())
	w.Expand("2")
	assert.Equal(t, "2", w.Expanded())
	w.Expand("2")
	assert.Empty(t, w.Expanded())
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	w := frenchWidget()

	assert.Equal(t, []string{All, "Activité physique", "Santé", "IPAQ", "Conseils", "Nutrition"}, w.Categories())
}

func TestSearchProtocole(t *testing.T) {
	w := frenchWidget()

	w.SetQuery("PROTOCOLE")
	got := w.Filtered()

	require.NotEmpty(t, got)
	assert.Equal(t, []string{"5", "6"}, ids(got))
}

func TestCategoryThenClearSearch(t *testing.T) {
	w := frenchWidget()

	w.SelectCategory("Santé")
	w.SetQuery("poids")
	assert.Equal(t, []string{"3"}, ids(w.Filtered()))

	w.SetQuery("")
	assert.Equal(t, []string{"3", "4"}, ids(w.Filtered()))
}

func TestSearchAppliesAfterCategory(t *testing.T) {
	w := frenchWidget()

	w.SelectCategory("Nutrition")
	w.SetQuery("protocole")

	assert.Empty(t, w.Filtered())
}

func TestBlankQueryMatchesEverything(t *testing.T) {
	w := frenchWidget()

	w.SetQuery("   ")

	assert.Len(t, w.Filtered(), 10)
}

func TestEmptyCategorySelectsAll(t *testing.T) {
	w := frenchWidget()
	w.SelectCategory("IPAQ")

	w.SelectCategory("")

	assert.Equal(t, All, w.Category())
	assert.Len(t, w.Filtered(), 10)
}

func TestMatchesAnswerText(t *testing.T) {
	w := New([]Item{
		{ID: "a", Category: "x", Question: "Hydratation ?", Answer: "Buvez de l'EAU"},
		{ID: "b", Category: "x", Question: "Sommeil ?", Answer: "Dormez 8h"},
	})

	w.SetQuery("eau")

	assert.Equal(t, []string{"a"}, ids(w.Filtered()))
}

func TestArabicCatalog(t *testing.T) {
	items := Catalog(i18n.NewProvider(memStore{i18n.StorageKey: "ar"}))
	w := New(items)

	w.SetQuery("البروتوكول")

	assert.Equal(t, []string{"6"}, ids(w.Filtered()))
}
