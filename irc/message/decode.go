// Copyright (c) 2026 ircclient authors
// released under the MIT license

package message

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// Decoder turns raw bytes from the wire into text before parsing.
// Peers are not required to agree on a charset, so decoding is lossy:
// byte sequences that are invalid in the charset become U+FFFD.
type Decoder struct {
	charset  string
	encoding encoding.Encoding
}

var utf8Decoder = &Decoder{charset: "UTF-8", encoding: unicode.UTF8}

// NewDecoder returns a Decoder for an IANA charset name, e.g. "UTF-8"
// or "ISO-8859-1". The empty name selects UTF-8.
func NewDecoder(charset string) (*Decoder, error) {
	if charset == "" || strings.EqualFold(charset, "utf-8") || strings.EqualFold(charset, "utf8") {
		return utf8Decoder, nil
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %s: %w", charset, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %s", charset)
	}
	return &Decoder{charset: charset, encoding: enc}, nil
}

// Charset returns the charset name the decoder was built for.
func (d *Decoder) Charset() string {
	return d.charset
}

// Decode converts line to a UTF-8 string. It never fails.
func (d *Decoder) Decode(line []byte) string {
	if d.encoding == unicode.UTF8 && utf8.Valid(line) {
		return string(line)
	}
	out, err := d.encoding.NewDecoder().Bytes(line)
	if err != nil {
		return strings.ToValidUTF8(string(line), "�")
	}
	return string(out)
}

// Parse checks the raw length of line, decodes it and parses the result.
// The length limit applies to the bytes as received, since replacement
// characters may lengthen the decoded text.
func (d *Decoder) Parse(line []byte) (Message, error) {
	if len(line) > MaxLineLength {
		return Message{}, &ParseError{Rule: RuleLength, Err: ErrMessageTooLong}
	}
	return parseLine(d.Decode(line))
}

// ParseBytes is Parse for raw wire bytes, assuming UTF-8 and replacing
// invalid sequences.
func ParseBytes(line []byte) (Message, error) {
	return utf8Decoder.Parse(line)
}
