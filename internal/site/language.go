// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package site models sites and the languages configured for them.
package site

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Default values for optional site language fields.
const (
	DefaultTitle            = "Default"
	DefaultFlagIdentifier   = "us"
	DefaultTwoLetterISOCode = "en"
	DefaultHreflang         = "en-US"
	DefaultTYPO3Language    = "default"
	DefaultFallbackType     = "strict"
)

// Text directions
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// SiteLanguage is one language configuration of a site: a locale paired
// with a base URL. It is immutable once constructed and safe for
// concurrent readers.
type SiteLanguage struct {
	site       *Site // owning site, not owned by the language
	languageID int   // maps to a row of the languages table
	locale     string
	base       string

	title            string
	navigationTitle  string
	flagIdentifier   string
	twoLetterISOCode string // ISO 639-1
	hreflang         string // RFC 1766 / 3066 tag
	direction        string
	typo3Language    string // translation file key, "default" for English
	fallbackType     string

	fallbackLanguageIDs []int
	attributes          Attributes
}

// New creates a SiteLanguage. Optional fields are taken from attrs when
// set and not empty, otherwise they keep their defaults. No validation is
// performed; construction never fails.
func New(s *Site, languageID int, locale, base string, attrs Attributes) *SiteLanguage {
	return NewFromOptions(s, languageID, locale, base, DecodeOptions(attrs), attrs)
}

// NewFromOptions creates a SiteLanguage from already decoded options.
// attrs is retained as the raw configuration.
func NewFromOptions(s *Site, languageID int, locale, base string, opts Options, attrs Attributes) *SiteLanguage {
	l := &SiteLanguage{
		site:             s,
		languageID:       languageID,
		locale:           locale,
		base:             base,
		title:            DefaultTitle,
		flagIdentifier:   DefaultFlagIdentifier,
		twoLetterISOCode: DefaultTwoLetterISOCode,
		hreflang:         DefaultHreflang,
		typo3Language:    DefaultTYPO3Language,
		fallbackType:     DefaultFallbackType,
		attributes:       attrs.Clone(),
	}

	setString(&l.title, opts.Title)
	setString(&l.navigationTitle, opts.NavigationTitle)
	setString(&l.flagIdentifier, opts.FlagIdentifier)
	setString(&l.typo3Language, opts.TYPO3Language)
	setString(&l.twoLetterISOCode, opts.TwoLetterISOCode)
	setString(&l.hreflang, opts.Hreflang)
	setString(&l.direction, opts.Direction)
	setString(&l.fallbackType, opts.FallbackType)
	if len(opts.Fallbacks) > 0 {
		l.fallbackLanguageIDs = slices.Clone(opts.Fallbacks)
	}

	return l
}

func setString(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

// Site returns the site this language belongs to.
func (l *SiteLanguage) Site() *Site {
	return l.site
}

// LanguageID returns the ID of the language row this configuration maps to.
func (l *SiteLanguage) LanguageID() int {
	return l.languageID
}

// Locale returns the locale, e.g. "de_CH".
func (l *SiteLanguage) Locale() string {
	return l.locale
}

// Base returns the base URL of this language.
func (l *SiteLanguage) Base() string {
	return l.base
}

// Title returns the label identifying the language in the backend.
func (l *SiteLanguage) Title() string {
	return l.title
}

// NavigationTitle returns the label used in language menus.
// It falls back to Title when no navigation title is configured.
func (l *SiteLanguage) NavigationTitle() string {
	if l.navigationTitle != "" {
		return l.navigationTitle
	}
	return l.Title()
}

// FlagIdentifier returns the flag icon key, like "gb" or "fr".
func (l *SiteLanguage) FlagIdentifier() string {
	return l.flagIdentifier
}

// TYPO3Language returns the prefix for translation files.
func (l *SiteLanguage) TYPO3Language() string {
	return l.typo3Language
}

// FallbackType returns the name of the fallback policy.
func (l *SiteLanguage) FallbackType() string {
	return l.fallbackType
}

// TwoLetterISOCode returns the ISO 639-1 language code.
func (l *SiteLanguage) TwoLetterISOCode() string {
	return l.twoLetterISOCode
}

// Hreflang returns the RFC 1766 / 3066 language tag used for "lang" and
// "hreflang" attributes.
func (l *SiteLanguage) Hreflang() string {
	return l.hreflang
}

// Direction returns the text direction, empty when unspecified.
func (l *SiteLanguage) Direction() string {
	return l.direction
}

// IsRTL returns true if the language is right-to-left.
func (l *SiteLanguage) IsRTL() bool {
	return strings.EqualFold(l.direction, DirectionRTL)
}

// FallbackLanguageIDs returns the language IDs to fall back to, in order
// of precedence. The result is never nil.
func (l *SiteLanguage) FallbackLanguageIDs() []int {
	if l.fallbackLanguageIDs == nil {
		return []int{}
	}
	return slices.Clone(l.fallbackLanguageIDs)
}

// Attributes returns a copy of the raw configuration.
func (l *SiteLanguage) Attributes() Attributes {
	return l.attributes.Clone()
}

// Attribute returns a single raw configuration value, including keys that
// have no dedicated getter.
func (l *SiteLanguage) Attribute(key string) (any, bool) {
	return l.attributes.Get(key)
}

// Tag returns the BCP 47 tag of the language. The hreflang is tried first,
// then the locale. Unparseable values yield language.Und.
func (l *SiteLanguage) Tag() language.Tag {
	for _, candidate := range []string{l.hreflang, strings.ReplaceAll(l.locale, "_", "-")} {
		if candidate == "" {
			continue
		}
		if tag, err := language.Parse(candidate); err == nil {
			return tag
		}
	}
	return language.Und
}

// ToArray returns the language as an ordered key/value list for use in
// templates and configuration output. The site and raw attributes are not
// included.
func (l *SiteLanguage) ToArray() Array {
	return Array{
		{KeyLanguageID, l.LanguageID()},
		{KeyLocale, l.Locale()},
		{KeyBase, l.Base()},
		{KeyTitle, l.Title()},
		{KeyNavigationTitle, l.NavigationTitle()},
		{KeyTwoLetterISOCode, l.TwoLetterISOCode()},
		{KeyHreflang, l.Hreflang()},
		{KeyDirection, l.Direction()},
		{KeyTYPO3Language, l.TYPO3Language()},
		{KeyFlagIdentifier, l.FlagIdentifier()},
		{KeyFallbackType, l.FallbackType()},
		{KeyFallbackLanguageIDs, l.FallbackLanguageIDs()},
	}
}

// String implements fmt.Stringer.
func (l *SiteLanguage) String() string {
	return fmt.Sprintf("%s [%d] %s", l.locale, l.languageID, l.base)
}

// LogValue implements slog.LogValuer.
func (l *SiteLanguage) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("language_id", l.languageID),
		slog.String("locale", l.locale),
		slog.String("base", l.base),
	}
	if l.site != nil {
		attrs = append(attrs, slog.String("site", l.site.Identifier()))
	}
	return slog.GroupValue(attrs...)
}
