// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package siteconfig reads site configuration files.
//
// A site lives in its own directory and is described by a YAML file:
//
//	rootPageId: 1
//	base: https://example.com/
//	languages:
//	  - languageId: 0
//	    locale: en_US
//	    base: /
//	    title: English
//	  - languageId: 1
//	    locale: de_DE
//	    base: /de/
//	    title: Deutsch
//	    fallbacks: [0]
//
// The name of the directory is used as the site identifier.
package siteconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/olegiv/ocms-sites/internal/site"
)

var (
	// ErrNoLanguages is returned when a site configuration defines no languages.
	ErrNoLanguages = errors.New("no languages configured")
	// ErrInvalidLanguageID is returned when a language entry lacks an integer languageId.
	ErrInvalidLanguageID = errors.New("languageId must be an integer")
	// ErrDuplicateLanguageID is returned when two language entries share a languageId.
	ErrDuplicateLanguageID = errors.New("duplicate languageId")
)

// File is the decoded content of a site configuration file.
type File struct {
	RootPageID int              `yaml:"rootPageId"`
	Base       string           `yaml:"base"`
	Languages  []map[string]any `yaml:"languages"`
}

// Load reads the site configuration at path.
func Load(path string) (*site.Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site config: %w", err)
	}

	identifier := filepath.Base(filepath.Dir(path))
	return Parse(identifier, data)
}

// Parse decodes a site configuration. Each language entry is passed to the
// site language unchanged as its attributes.
func Parse(identifier string, data []byte) (*site.Site, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing site config %q: %w", identifier, err)
	}

	if len(f.Languages) == 0 {
		return nil, fmt.Errorf("site %q: %w", identifier, ErrNoLanguages)
	}

	langs := make([]site.LanguageConfig, 0, len(f.Languages))
	seen := make(map[int]bool, len(f.Languages))
	for i, entry := range f.Languages {
		id, ok := entry[site.KeyLanguageID].(int)
		if !ok {
			return nil, fmt.Errorf("site %q, language #%d: %w", identifier, i, ErrInvalidLanguageID)
		}
		if seen[id] {
			return nil, fmt.Errorf("site %q, language %d: %w", identifier, id, ErrDuplicateLanguageID)
		}
		seen[id] = true

		langs = append(langs, site.LanguageConfig{
			LanguageID: id,
			Locale:     stringValue(entry[site.KeyLocale]),
			Base:       stringValue(entry[site.KeyBase]),
			Attributes: site.Attributes(entry),
		})
	}

	return site.NewSite(identifier, f.RootPageID, f.Base, langs), nil
}

func stringValue(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
