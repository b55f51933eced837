// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package site

import (
	"errors"
	"fmt"
)

// ErrLanguageNotFound is returned when a site has no language with the requested ID.
var ErrLanguageNotFound = errors.New("site language not found")

// LanguageConfig is the input for one language of a site.
type LanguageConfig struct {
	LanguageID int
	Locale     string
	Base       string
	Attributes Attributes
}

// Site is a configured site with its languages.
type Site struct {
	identifier string
	rootPageID int
	base       string
	languages  []*SiteLanguage
	byID       map[int]*SiteLanguage
}

// NewSite creates a site and its languages. Languages keep the given order;
// when two entries share a language ID the later one wins the ID lookup.
func NewSite(identifier string, rootPageID int, base string, langs []LanguageConfig) *Site {
	s := &Site{
		identifier: identifier,
		rootPageID: rootPageID,
		base:       base,
		languages:  make([]*SiteLanguage, 0, len(langs)),
		byID:       make(map[int]*SiteLanguage, len(langs)),
	}
	for _, lc := range langs {
		l := New(s, lc.LanguageID, lc.Locale, lc.Base, lc.Attributes)
		s.languages = append(s.languages, l)
		s.byID[lc.LanguageID] = l
	}
	return s
}

// Identifier returns the site identifier.
func (s *Site) Identifier() string {
	return s.identifier
}

// RootPageID returns the ID of the site's root page.
func (s *Site) RootPageID() int {
	return s.rootPageID
}

// Base returns the base URL of the site.
func (s *Site) Base() string {
	return s.base
}

// Languages returns the site languages in configuration order.
func (s *Site) Languages() []*SiteLanguage {
	result := make([]*SiteLanguage, len(s.languages))
	copy(result, s.languages)
	return result
}

// Language returns the language with the given ID.
func (s *Site) Language(id int) (*SiteLanguage, error) {
	if l, ok := s.byID[id]; ok {
		return l, nil
	}
	return nil, fmt.Errorf("site %q, language %d: %w", s.identifier, id, ErrLanguageNotFound)
}

// DefaultLanguage returns the language with ID 0, or the first configured
// language. It returns nil for a site without languages.
func (s *Site) DefaultLanguage() *SiteLanguage {
	if l, ok := s.byID[0]; ok {
		return l
	}
	if len(s.languages) > 0 {
		return s.languages[0]
	}
	return nil
}

// FallbackChain resolves the fallback languages of the given language in
// order of precedence. IDs not configured on the site are skipped.
func (s *Site) FallbackChain(id int) ([]*SiteLanguage, error) {
	l, err := s.Language(id)
	if err != nil {
		return nil, err
	}
	chain := make([]*SiteLanguage, 0, len(l.fallbackLanguageIDs))
	for _, fid := range l.fallbackLanguageIDs {
		if fl, ok := s.byID[fid]; ok {
			chain = append(chain, fl)
		}
	}
	return chain, nil
}
