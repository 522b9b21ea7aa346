package i18n

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/formkit/pkg/fieldpath"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// DefaultLanguage is used when no default is configured.
const DefaultLanguage = "en"

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Catalog resolves localized message templates. It is read-only after
// construction and safe for concurrent use.
type Catalog struct {
	translations map[string]map[string]any
	defaultLang  string
	langs        []string
	matcher      language.Matcher
	logMissing   bool
	logger       *slog.Logger
}

// NewCatalog builds a catalog from translations keyed by language code.
func NewCatalog(translations map[string]map[string]any, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		translations: make(map[string]map[string]any, len(translations)),
		defaultLang:  DefaultLanguage,
		logger:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	for lang, messages := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if messages == nil {
			return nil, &StructureError{Lang: lang}
		}
		c.translations[lang] = messages
	}

	c.langs = c.orderedLanguages()
	tags := make([]language.Tag, len(c.langs))
	for i, lang := range c.langs {
		tags[i] = language.Make(lang)
	}
	c.matcher = language.NewMatcher(tags)
	return c, nil
}

// orderedLanguages lists the loaded languages with the default first, which
// makes it the matcher's fallback.
func (c *Catalog) orderedLanguages() []string {
	langs := make([]string, 0, len(c.translations)+1)
	for lang := range c.translations {
		if lang != c.defaultLang {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	return append([]string{c.defaultLang}, langs...)
}

// Languages returns the loaded language codes, sorted.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.translations))
	for lang := range c.translations {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Match returns the loaded language that best serves lang, or the default language.
func (c *Catalog) Match(lang string) string {
	if _, ok := c.translations[lang]; ok {
		return lang
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return c.defaultLang
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return c.defaultLang
	}
	return c.langs[idx]
}

// Has reports whether key resolves to a string template for lang after matching.
func (c *Catalog) Has(lang, key string) bool {
	_, ok := c.lookup(lang, key)
	return ok
}

// T translates key for lang with params given as key/value pairs.
// Missing keys return the key itself.
func (c *Catalog) T(lang, key string, args ...string) string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	if msg, ok := c.Translate(lang, key, params); ok {
		return msg
	}
	return key
}

// Translate returns the template for key in the best matching language with
// %{param} placeholders filled from params.
func (c *Catalog) Translate(lang, key string, params map[string]string) (string, bool) {
	tmpl, ok := c.lookup(lang, key)
	if !ok {
		if c.logMissing {
			c.logger.Warn("message not found", logger.Language(lang), slog.String("key", key))
		}
		return "", false
	}
	return substitute(tmpl, params), true
}

func (c *Catalog) lookup(lang, key string) (string, bool) {
	messages, ok := c.translations[c.Match(lang)]
	if !ok {
		return "", false
	}
	val, ok := fieldpath.Get(messages, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

func substitute(tmpl string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
