// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package site

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSite() *Site {
	return NewSite("main", 1, "https://example.com/", nil)
}

func TestNew_Defaults(t *testing.T) {
	s := testSite()
	l := New(s, 1, "en_US", "https://example.com/", Attributes{})

	assert.Same(t, s, l.Site())
	assert.Equal(t, 1, l.LanguageID())
	assert.Equal(t, "en_US", l.Locale())
	assert.Equal(t, "https://example.com/", l.Base())
	assert.Equal(t, "Default", l.Title())
	assert.Equal(t, "Default", l.NavigationTitle())
	assert.Equal(t, "us", l.FlagIdentifier())
	assert.Equal(t, "en", l.TwoLetterISOCode())
	assert.Equal(t, "en-US", l.Hreflang())
	assert.Equal(t, "", l.Direction())
	assert.Equal(t, "default", l.TYPO3Language())
	assert.Equal(t, "strict", l.FallbackType())
	assert.Equal(t, []int{}, l.FallbackLanguageIDs())
	assert.Empty(t, l.Attributes())
}

func TestNew_NilAttributes(t *testing.T) {
	l := New(nil, 0, "", "", nil)

	assert.Nil(t, l.Site())
	assert.Equal(t, DefaultTitle, l.Title())
	assert.NotNil(t, l.Attributes())
	assert.NotNil(t, l.FallbackLanguageIDs())
}

func TestNew_Overrides(t *testing.T) {
	l := New(testSite(), 1, "de_DE", "/de/", Attributes{
		"title":     "Deutsch",
		"flag":      "de",
		"iso-639-1": "de",
		"fallbacks": []int{1, 3},
	})

	assert.Equal(t, "Deutsch", l.Title())
	assert.Equal(t, "Deutsch", l.NavigationTitle())
	assert.Equal(t, "de", l.FlagIdentifier())
	assert.Equal(t, "de", l.TwoLetterISOCode())
	assert.Equal(t, []int{1, 3}, l.FallbackLanguageIDs())

	assert.Equal(t, DefaultHreflang, l.Hreflang())
	assert.Equal(t, "", l.Direction())
	assert.Equal(t, DefaultTYPO3Language, l.TYPO3Language())
	assert.Equal(t, DefaultFallbackType, l.FallbackType())
}

func TestNew_EachOptionalField(t *testing.T) {
	tests := []struct {
		key  string
		get  func(*SiteLanguage) string
		def  string
		want string
	}{
		{AttrTitle, (*SiteLanguage).Title, DefaultTitle, "Français"},
		{AttrFlag, (*SiteLanguage).FlagIdentifier, DefaultFlagIdentifier, "fr"},
		{AttrTYPO3Language, (*SiteLanguage).TYPO3Language, DefaultTYPO3Language, "fr"},
		{AttrISO6391, (*SiteLanguage).TwoLetterISOCode, DefaultTwoLetterISOCode, "fr"},
		{AttrHreflang, (*SiteLanguage).Hreflang, DefaultHreflang, "fr-CA"},
		{AttrDirection, (*SiteLanguage).Direction, "", "ltr"},
		{AttrFallbackType, (*SiteLanguage).FallbackType, DefaultFallbackType, "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			missing := New(nil, 2, "fr_CA", "/fr/", Attributes{})
			assert.Equal(t, tt.def, tt.get(missing), "absent key")

			empty := New(nil, 2, "fr_CA", "/fr/", Attributes{tt.key: ""})
			assert.Equal(t, tt.def, tt.get(empty), "empty value")

			set := New(nil, 2, "fr_CA", "/fr/", Attributes{tt.key: tt.want})
			assert.Equal(t, tt.want, tt.get(set), "set value")
		})
	}
}

func TestNew_NoValidation(t *testing.T) {
	l := New(nil, -7, "not a locale", "::bad url::", Attributes{
		"iso-639-1": "english",
		"hreflang":  "???",
	})

	assert.Equal(t, -7, l.LanguageID())
	assert.Equal(t, "not a locale", l.Locale())
	assert.Equal(t, "::bad url::", l.Base())
	assert.Equal(t, "english", l.TwoLetterISOCode())
	assert.Equal(t, "???", l.Hreflang())
}

func TestNavigationTitle(t *testing.T) {
	l := New(nil, 1, "de_DE", "/de/", Attributes{"title": "German", "navigationTitle": "Deutsch"})
	assert.Equal(t, "German", l.Title())
	assert.Equal(t, "Deutsch", l.NavigationTitle())

	l = New(nil, 1, "de_DE", "/de/", Attributes{"title": "German", "navigationTitle": ""})
	assert.Equal(t, "German", l.NavigationTitle())
}

func TestFallbackLanguageIDs_OrderAndIsolation(t *testing.T) {
	input := []int{5, 0, 3}
	l := New(nil, 1, "de_CH", "/ch/", Attributes{"fallbacks": input})

	input[0] = 99
	assert.Equal(t, []int{5, 0, 3}, l.FallbackLanguageIDs())

	got := l.FallbackLanguageIDs()
	got[1] = 42
	assert.Equal(t, []int{5, 0, 3}, l.FallbackLanguageIDs())
}

func TestAttributes_RetainedAndIsolated(t *testing.T) {
	attrs := Attributes{"title": "English", "enabled": true, "custom": "value"}
	l := New(nil, 0, "en_GB", "/", attrs)

	attrs["custom"] = "changed"
	v, ok := l.Attribute("custom")
	require.True(t, ok)
	assert.Equal(t, "value", v)

	v, ok = l.Attribute("enabled")
	require.True(t, ok)
	assert.Equal(t, true, v)

	_, ok = l.Attribute("missing")
	assert.False(t, ok)

	copied := l.Attributes()
	copied["title"] = "Other"
	assert.Equal(t, "English", l.Attributes()["title"])
}

func TestToArray(t *testing.T) {
	l := New(nil, 3, "de_CH", "https://example.ch/", Attributes{
		"title":     "Swiss German",
		"hreflang":  "de-CH",
		"direction": "ltr",
		"fallbacks": []int{1, 0},
		"custom":    "ignored",
	})

	arr := l.ToArray()
	assert.Equal(t, []string{
		"languageId", "locale", "base", "title", "navigationTitle", "twoLetterIsoCode",
		"hreflang", "direction", "typo3Language", "flagIdentifier", "fallbackType",
		"fallbackLanguageIds",
	}, arr.Keys())
	assert.Equal(t, 12, arr.Len())

	assert.Equal(t, map[string]any{
		"languageId":          3,
		"locale":              "de_CH",
		"base":                "https://example.ch/",
		"title":               "Swiss German",
		"navigationTitle":     "Swiss German",
		"twoLetterIsoCode":    "en",
		"hreflang":            "de-CH",
		"direction":           "ltr",
		"typo3Language":       "default",
		"flagIdentifier":      "us",
		"fallbackType":        "strict",
		"fallbackLanguageIds": []int{1, 0},
	}, arr.Map())

	_, ok := arr.Get("custom")
	assert.False(t, ok)
}

func TestToArray_JSONKeepsOrder(t *testing.T) {
	l := New(nil, 1, "en_US", "https://example.com/", Attributes{})

	data, err := json.Marshal(l.ToArray())
	require.NoError(t, err)

	want := `{"languageId":1,"locale":"en_US","base":"https://example.com/","title":"Default",` +
		`"navigationTitle":"Default","twoLetterIsoCode":"en","hreflang":"en-US","direction":"",` +
		`"typo3Language":"default","flagIdentifier":"us","fallbackType":"strict","fallbackLanguageIds":[]}`
	assert.Equal(t, want, string(data))
}

func TestTag(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		attrs  Attributes
		want   string
	}{
		{"default hreflang", "de_DE", Attributes{}, "en-US"},
		{"configured hreflang", "de_DE", Attributes{"hreflang": "de-CH"}, "de-CH"},
		{"locale when hreflang invalid", "fr_FR", Attributes{"hreflang": "!!"}, "fr-FR"},
		{"undetermined", "??", Attributes{"hreflang": "!!"}, "und"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(nil, 1, tt.locale, "/", tt.attrs)
			assert.Equal(t, tt.want, l.Tag().String())
		})
	}
}

func TestIsRTL(t *testing.T) {
	assert.True(t, New(nil, 4, "ar_SA", "/ar/", Attributes{"direction": "rtl"}).IsRTL())
	assert.False(t, New(nil, 0, "en_US", "/", Attributes{"direction": "ltr"}).IsRTL())
	assert.False(t, New(nil, 0, "en_US", "/", nil).IsRTL())
}

func TestLogValue(t *testing.T) {
	s := NewSite("portal", 1, "/", []LanguageConfig{{LanguageID: 2, Locale: "nl_NL", Base: "/nl/"}})
	l, err := s.Language(2)
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("resolved", "language", l)

	out := buf.String()
	assert.True(t, strings.Contains(out, "language.language_id=2"), out)
	assert.True(t, strings.Contains(out, "language.locale=nl_NL"), out)
	assert.True(t, strings.Contains(out, "language.site=portal"), out)
	assert.Equal(t, "nl_NL [2] /nl/", l.String())
}
