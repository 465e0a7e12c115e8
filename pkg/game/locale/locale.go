// Package locale loads the embedded gettext catalogues used for every player-facing string.
package locale

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// Default is the language used when none or an unknown one is requested
const Default = "en"

const domain = "default"

//go:embed po/*.po
var catalogues embed.FS

var (
	mu      sync.RWMutex
	current *gotext.Locale
)

// Languages returns the languages that have an embedded catalogue
func Languages() []string {
	entries, err := catalogues.ReadDir("po")
	if err != nil {
		return []string{Default}
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(langs)
	return langs
}

// Init activates the catalogue for lang. An unknown language activates Default
// and returns an error so the caller can report it.
func Init(lang string) error {
	if lang == "" {
		lang = Default
	}
	l, err := load(lang)
	if err != nil {
		fallback, ferr := load(Default)
		if ferr != nil {
			return ferr
		}
		set(fallback)
		return fmt.Errorf("locale %q unavailable, using %q: %w", lang, Default, err)
	}
	set(l)
	return nil
}

// Get translates key, formatting it with args when given
func Get(key string, args ...any) string {
	mu.RLock()
	l := current
	mu.RUnlock()
	if l == nil {
		if err := Init(Default); err != nil {
			return fmt.Sprintf(key, args...)
		}
		mu.RLock()
		l = current
		mu.RUnlock()
	}
	return l.Get(key, args...)
}

func load(lang string) (*gotext.Locale, error) {
	data, err := catalogues.ReadFile("po/" + lang + ".po")
	if err != nil {
		return nil, err
	}
	po := gotext.NewPo()
	po.Parse(data)

	l := gotext.NewLocale("", lang)
	l.AddTranslator(domain, po)
	return l, nil
}

func set(l *gotext.Locale) {
	mu.Lock()
	current = l
	mu.Unlock()
}
