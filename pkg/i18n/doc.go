// Package i18n provides localized validation message catalogs.
//
// A Catalog holds message templates per language, loaded from YAML or JSON
// documents keyed by language code:
//
//	en:
//	  validation:
//	    required: "%{name} is required."
//	vi:
//	  validation:
//	    required: "%{name} là bắt buộc."
//
// Keys are dot paths into the nested document ("validation.required"). Named
// parameters use the %{param} form and are filled from the key/value pairs
// passed to T or the map passed to Translate. Unknown parameters are left in
// place.
//
// Requested languages are matched against the loaded ones with
// golang.org/x/text/language, so "vi-VN" resolves to "vi" and an unsupported
// language falls back to the default language.
//
// # Loading
//
//	translations, err := i18n.LoadDir(ctx, "./messages")
//	catalog, err := i18n.NewCatalog(translations, i18n.WithDefaultLanguage("en"))
//
// LoadFile, LoadDir and LoadFS pick the parser by file extension. Files in a
// directory are merged; later files override earlier keys per language.
//
// Catalog satisfies the validation engine's MessageTranslator interface.
package i18n
