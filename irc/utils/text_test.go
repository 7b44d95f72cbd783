// Copyright (c) 2026 ircclient authors
// released under the MIT license

package utils

import (
	"reflect"
	"strings"
	"testing"
)

func assertEqual(supplied, expected interface{}, t *testing.T) {
	t.Helper()
	if !reflect.DeepEqual(supplied, expected) {
		t.Errorf("expected %#v but got %#v", expected, supplied)
	}
}

func TestWordWrap(t *testing.T) {
	assertEqual(WordWrap("hello", 10), []string{"hello"}, t)
	assertEqual(WordWrap("", 10), []string{""}, t)
	assertEqual(WordWrap("hello there world", 11), []string{"hello there", "world"}, t)
	assertEqual(WordWrap("one\r\ntwo", 10), []string{"one", "two"}, t)
	assertEqual(WordWrap("aaaaaaaaaaaaaaa", 10), []string{"aaaaaaaaaa", "aaaaa"}, t)
	// a short word before a long one is not worth keeping separate
	assertEqual(WordWrap("a bbbbbbbbbbbbbb", 10), []string{"a bbbbbbbb", "bbbbbb"}, t)

	// never split inside a multi-byte character
	for _, line := range WordWrap(strings.Repeat("é", 20), 7) {
		if len(line) > 7 || !strings.HasPrefix(line, "é") || !strings.HasSuffix(line, "é") {
			t.Errorf("bad piece %q", line)
		}
	}
}
