package faq

import "strconv"

// Translator turns a translation key into text
type Translator interface {
	T(key string) string
}

// categoryKeys gives the category of each question, in catalog order
var categoryKeys = []string{
	"catPhysicalActivity",
	"catPhysicalActivity",
	"catHealth",
	"catHealth",
	"catIPAQ",
	"catIPAQ",
	"catAdvice",
	"catAdvice",
	"catNutrition",
	"catNutrition",
}

// Catalog builds the ten FAQ items in the active language
func Catalog(tr Translator) []Item {
	items := make([]Item, 0, len(categoryKeys))
	for i, cat := range categoryKeys {
		n := strconv.Itoa(i + 1)
		items = append(items, Item{
			ID:       n,
			Category: tr.T(cat),
			Question: tr.T("faqQ" + n),
			Answer:   tr.T("faqA" + n),
		})
	}
	return items
}
