package i18n

import "log/slog"

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when a requested one cannot be matched.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger sets the logger used for missing message reports.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs a warning for each lookup of a missing key.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(c *Catalog) {
		c.logMissing = enabled
	}
}
