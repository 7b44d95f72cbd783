// Copyright (c) 2017 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2026 ircclient authors
// released under the MIT license

package utils

import (
	"strings"
	"unicode/utf8"
)

// WordWrap splits text into pieces of at most maxBytes bytes each,
// preferring to break at spaces. Newlines always start a new piece and
// multi-byte characters are never split.
func WordWrap(text string, maxBytes int) (lines []string) {
	if maxBytes < utf8.UTFMax {
		maxBytes = utf8.UTFMax
	}
	text = strings.ReplaceAll(text, "\r", "")
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapLine(paragraph, maxBytes)...)
	}
	return
}

func wrapLine(line string, maxBytes int) (lines []string) {
	for maxBytes < len(line) {
		cut := strings.LastIndexByte(line[:maxBytes+1], ' ')
		if cut < maxBytes/2 {
			// this word takes up more than half a line... just split in the middle of the word
			cut = maxBytes
			for !utf8.RuneStart(line[cut]) {
				cut--
			}
			lines = append(lines, line[:cut])
			line = line[cut:]
		} else {
			lines = append(lines, line[:cut])
			line = line[cut+1:]
		}
	}
	if len(line) != 0 || len(lines) == 0 {
		lines = append(lines, line)
	}
	return
}
