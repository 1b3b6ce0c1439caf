// Package i18n holds the active language, its translation table and the
// text direction derived from it.
package i18n

import (
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// StorageKey is where the language setting is persisted
const StorageKey = "language"

// Language is one of the supported UI languages
type Language string

const (
	French Language = "fr"
	Arabic Language = "ar"
)

// Direction is the text direction of a language
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Languages lists the supported languages, primary first
var Languages = []Language{French, Arabic}

// Direction returns the writing direction of l
func (l Language) Direction() Direction {
	if l == Arabic {
		return RTL
	}
	return LTR
}

// Parse accepts a language code ("fr", "ar", "fr-FR", "ar_MA.UTF-8" ...)
func Parse(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("unknown language %q", s)
	}
	base, _ := tag.Base()
	for _, l := range Languages {
		if base.String() == string(l) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

var matcher = language.NewMatcher([]language.Tag{language.French, language.Arabic})

// Detect picks the closest supported language for a locale string such as
// the LANG environment variable. Anything unmatched gets the primary language.
func Detect(locale string) Language {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return French
	}
	_, idx, conf := matcher.Match(language.Make(locale))
	if conf == language.No {
		return French
	}
	return Languages[idx]
}

// Storage is the persistence collaborator
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Provider is the process-wide language service. It is created once at
// startup and passed to the screens that need it.
type Provider struct {
	store     Storage
	lang      Language
	observers []func(Language, Direction)
}

// NewProvider loads the persisted language. A missing or invalid value
// falls back to the environment locale, then to French.
func NewProvider(store Storage) *Provider {
	p := &Provider{store: store, lang: French}

	saved, ok, err := store.Get(StorageKey)
	if err != nil {
		log.Printf("i18n: reading language: %v", err)
	}
	if ok {
		if l, err := Parse(saved); err == nil {
			p.lang = l
			return p
		}
		log.Printf("i18n: ignoring stored language %q", saved)
	}

	p.lang = Detect(envLocale())
	return p
}

func envLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// Language is the active language
func (p *Provider) Language() Language {
	return p.lang
}

// Dir is the active text direction
func (p *Provider) Dir() Direction {
	return p.lang.Direction()
}

// OnChange registers fn to run after every language switch
func (p *Provider) OnChange(fn func(Language, Direction)) {
	p.observers = append(p.observers, fn)
}

// SetLanguage switches and persists the language, then notifies observers
func (p *Provider) SetLanguage(l Language) error {
	if l != French && l != Arabic {
		return fmt.Errorf("unsupported language %q", l)
	}
	if err := p.store.Set(StorageKey, string(l)); err != nil {
		return fmt.Errorf("persist language: %w", err)
	}
	p.lang = l
	log.Printf("i18n: language set to %s (%s)", l, l.Direction())
	for _, fn := range p.observers {
		fn(l, l.Direction())
	}
	return nil
}

// T translates key in the active language, falling back to French and
// finally to the key itself.
func (p *Provider) T(key string) string {
	if s, ok := translations[p.lang][key]; ok {
		return s
	}
	if s, ok := translations[French][key]; ok {
		return s
	}
	return key
}

// Tf translates key and formats it with args
func (p *Provider) Tf(key string, args ...any) string {
	return fmt.Sprintf(p.T(key), args...)
}
