// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package site

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Keys of the array representation of a SiteLanguage, in output order.
const (
	KeyLanguageID          = "languageId"
	KeyLocale              = "locale"
	KeyBase                = "base"
	KeyTitle               = "title"
	KeyNavigationTitle     = "navigationTitle"
	KeyTwoLetterISOCode    = "twoLetterIsoCode"
	KeyHreflang            = "hreflang"
	KeyDirection           = "direction"
	KeyTYPO3Language       = "typo3Language"
	KeyFlagIdentifier      = "flagIdentifier"
	KeyFallbackType        = "fallbackType"
	KeyFallbackLanguageIDs = "fallbackLanguageIds"
)

// Entry is one key/value pair of an Array.
type Entry struct {
	Key   string
	Value any
}

// Array is an ordered list of key/value pairs. It marshals to a JSON object
// or YAML mapping with the keys in list order.
type Array []Entry

// Len returns the number of entries.
func (a Array) Len() int {
	return len(a)
}

// Keys returns the keys in order.
func (a Array) Keys() []string {
	keys := make([]string, len(a))
	for i, e := range a {
		keys[i] = e.Key
	}
	return keys
}

// Get returns the value stored under key.
func (a Array) Get(key string) (any, bool) {
	for _, e := range a {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Map returns the entries as an unordered map.
func (a Array) Map() map[string]any {
	m := make(map[string]any, len(a))
	for _, e := range a {
		m[e.Key] = e.Value
	}
	return m
}

// MarshalJSON implements json.Marshaler.
func (a Array) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("marshaling %q: %w", e.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (a Array) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range a {
		var val yaml.Node
		if err := val.Encode(e.Value); err != nil {
			return nil, fmt.Errorf("encoding %q: %w", e.Key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&val,
		)
	}
	return node, nil
}
