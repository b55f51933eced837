// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package site

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Attribute keys recognised in a site language configuration.
const (
	AttrTitle           = "title"
	AttrNavigationTitle = "navigationTitle"
	AttrFlag            = "flag"
	AttrTYPO3Language   = "typo3Language"
	AttrISO6391         = "iso-639-1"
	AttrHreflang        = "hreflang"
	AttrDirection       = "direction"
	AttrFallbackType    = "fallbackType"
	AttrFallbacks       = "fallbacks"
)

// Attributes is the raw configuration of a site language as read from the
// site configuration. Keys are optional and independent of each other.
type Attributes map[string]any

// Get returns the value stored under key.
func (a Attributes) Get(key string) (any, bool) {
	v, ok := a[key]
	return v, ok
}

// Clone returns a shallow copy. A nil Attributes clones to an empty map.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return Attributes{}
	}
	return maps.Clone(a)
}

// Options holds the named optional fields of a site language.
// A nil pointer or empty slice means "not set" and the default applies.
type Options struct {
	Title            *string
	NavigationTitle  *string
	FlagIdentifier   *string
	TYPO3Language    *string
	TwoLetterISOCode *string
	Hreflang         *string
	Direction        *string
	FallbackType     *string
	Fallbacks        []int
}

// stringOption maps an attribute key to the Options field it fills.
type stringOption struct {
	key   string
	field func(*Options) **string
}

var stringOptions = []stringOption{
	{AttrTitle, func(o *Options) **string { return &o.Title }},
	{AttrNavigationTitle, func(o *Options) **string { return &o.NavigationTitle }},
	{AttrFlag, func(o *Options) **string { return &o.FlagIdentifier }},
	{AttrTYPO3Language, func(o *Options) **string { return &o.TYPO3Language }},
	{AttrISO6391, func(o *Options) **string { return &o.TwoLetterISOCode }},
	{AttrHreflang, func(o *Options) **string { return &o.Hreflang }},
	{AttrDirection, func(o *Options) **string { return &o.Direction }},
	{AttrFallbackType, func(o *Options) **string { return &o.FallbackType }},
}

// DecodeOptions reads the known keys of attrs into Options.
// A key is set only when present and not empty: nil, "", "0", false,
// numeric zero and empty slices or maps all leave the option unset.
func DecodeOptions(attrs Attributes) Options {
	var opts Options
	for _, so := range stringOptions {
		v, ok := attrs[so.key]
		if !ok || isEmpty(v) {
			continue
		}
		if s, ok := toString(v); ok {
			*so.field(&opts) = &s
		}
	}
	if v, ok := attrs[AttrFallbacks]; ok && !isEmpty(v) {
		opts.Fallbacks = toIntList(v)
	}
	return opts
}

// isEmpty reports whether v would fail a loose truthiness check.
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == "" || t == "0"
	case bool:
		return !t
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String() == "" || rv.String() == "0"
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// toString converts a scalar attribute value to its text form.
// Composite values are rejected.
func toString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case fmt.Stringer:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprint(v), true
	}
	return "", false
}

// toIntList converts a fallbacks value to language IDs, keeping order.
// Elements that are not integers are skipped.
func toIntList(v any) []int {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		var ids []int
		for _, part := range strings.Split(rv.String(), ",") {
			if id, ok := toInt(strings.TrimSpace(part)); ok {
				ids = append(ids, id)
			}
		}
		return ids
	}

	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		if id, ok := toInt(v); ok {
			return []int{id}
		}
		return nil
	}
	ids := make([]int, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		if id, ok := toInt(rv.Index(i).Interface()); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case string:
		id, err := strconv.Atoi(t)
		return id, err == nil
	case float64:
		if t != float64(int(t)) {
			return 0, false
		}
		return int(t), true
	case float32:
		if t != float32(int(t)) {
			return 0, false
		}
		return int(t), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		id, err := strconv.Atoi(rv.String())
		return id, err == nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() > math.MaxInt {
			return 0, false
		}
		return int(rv.Uint()), true
	}
	return 0, false
}
