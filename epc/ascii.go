/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-epc/bitextract"
)

var (
	gs1Escaper = strings.NewReplacer(
		`"`, "%22",
		`#`, "%23",
		`%`, "%25",
		`&`, "%26",
		`/`, "%2F",
		`<`, "%3C",
		`>`, "%3E",
		`?`, "%3F",
	)

	gs1Unescaper = strings.NewReplacer(
		"%22", `"`,
		"%23", `#`,
		"%25", `%`,
		"%26", `&`,
		"%2F", `/`,
		"%3C", `<`,
		"%3E", `>`,
		"%3F", `?`,
	)

	// valid characters for GS1 Application Identifiers
	gs1AICharSet = [128]uint8{
		'!': 1, '"': 1, '%': 1, '&': 1, '\'': 1, '(': 1, ')': 1,
		'*': 1, '+': 1, ',': 1, '-': 1, '.': 1, '/': 1,
		':': 1, ';': 1, '<': 1, '=': 1, '>': 1, '?': 1, '_': 1,
		'0': 1, '1': 1, '2': 1, '3': 1, '4': 1, '5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
		'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1,
		'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1,
		'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
		'a': 1, 'b': 1, 'c': 1, 'd': 1, 'e': 1, 'f': 1, 'g': 1, 'h': 1, 'i': 1,
		'j': 1, 'k': 1, 'l': 1, 'm': 1, 'n': 1, 'o': 1, 'p': 1, 'q': 1, 'r': 1,
		's': 1, 't': 1, 'u': 1, 'v': 1, 'w': 1, 'x': 1, 'y': 1, 'z': 1,
	}

	// valid characters for GS1 Application Identifiers for Component and Parts
	gs1AICPCharSet = [128]uint8{
		'#': 1, '-': 1, '/': 1,
		'0': 1, '1': 1, '2': 1, '3': 1, '4': 1, '5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
		'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1,
		'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1,
		'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
	}
)

// EscapeGS1 returns s with the following characters replaced by their GS1
// escape sequences:
// - `"` -> "%22"
// - `#` -> "%23" (note: only valid for AI Component and Parts)
// - `%` -> "%25"
// - `&` -> "%26"
// - `/` -> "%2F"
// - `<` -> "%3C"
// - `>` -> "%3E"
// - `?` -> "%3F"
func EscapeGS1(s string) string {
	return gs1Escaper.Replace(s)
}

// UnescapeGS1 reverses EscapeGS1. It doesn't validate s: a '%' that doesn't
// start one of the escapes above is left as is.
func UnescapeGS1(s string) string {
	return gs1Unescaper.Replace(s)
}

// IsGS1AIEncodable returns true if the string contains only characters allowed
// in GS1 Application Identifier character set.
func IsGS1AIEncodable(s string) bool {
	for i := range s {
		if !(s[i] <= 127 && gs1AICharSet[s[i]] == 1) {
			return false
		}
	}
	return true
}

// IsGS1CompPartEncodable returns true if the string contains only characters
// allowed in the GS1 Application Identifier for Component and Parts character set.
func IsGS1CompPartEncodable(s string) bool {
	for i := range s {
		if !(s[i] <= 127 && gs1AICPCharSet[s[i]] == 1) {
			return false
		}
	}
	return true
}

// checkEscapes makes sure every '%' in a URI starts a known escape sequence.
// Which escapes a particular component allows is up to its grammar.
func checkEscapes(s Scheme, uri string) error {
	for i := 0; i < len(uri); i++ {
		if uri[i] != '%' {
			continue
		}
		if i+3 > len(uri) {
			return newError(s, InvalidEscape, "truncated escape %q", uri[i:])
		}
		switch uri[i+1 : i+3] {
		case "22", "23", "25", "26", "2F", "3C", "3E", "3F":
		default:
			return newError(s, InvalidEscape, "%q is not a GS1 escape sequence", uri[i:i+3])
		}
		i += 2
	}
	return nil
}

// unescapedLen returns the number of characters v represents.
func unescapedLen(v string) int {
	return len(UnescapeGS1(v))
}

// encodeSevenBit writes the characters of the escaped string v as 7-bit ISO
// 646 values, then pads the field with zeros to width bits.
func encodeSevenBit(w *bitextract.Writer, s Scheme, v string, maxChars, width int) error {
	raw := UnescapeGS1(v)
	if len(raw) > maxChars {
		return newError(s, LengthViolation, "%q has %d characters, but at most %d fit in %d bits",
			v, len(raw), maxChars, width)
	}
	if !IsGS1AIEncodable(raw) {
		return newError(s, InvalidGrammar, "%q has characters outside the GS1 AI character set", v)
	}
	for i := 0; i < len(raw); i++ {
		w.WriteUInt64(uint64(raw[i]), 7)
	}
	w.WriteZeros(width - 7*len(raw))
	return nil
}

// sevenBit reads a width bit field of 7-bit characters and returns them
// escaped for use in a URI. A zero character ends the string, and everything
// after it must also be zero.
func (r *tagReader) sevenBit(width int) (string, error) {
	var sb strings.Builder
	ended := false
	for n := width; n > 0; {
		k := 7
		if n < k {
			k = n
		}
		v, err := r.read(k)
		if err != nil {
			return "", err
		}
		n -= k

		switch {
		case k < 7:
			if v != 0 {
				return "", newError(r.scheme(), InvalidGrammar, "non-zero padding at the end of a character field")
			}
		case v == 0:
			ended = true
		case ended:
			return "", newError(r.scheme(), InvalidGrammar, "character %#02x follows the terminating null", v)
		case gs1AICharSet[v] != 1:
			return "", newError(r.scheme(), InvalidGrammar, "character %#02x is outside the GS1 AI character set", v)
		default:
			sb.WriteByte(byte(v))
		}
	}
	return EscapeGS1(sb.String()), nil
}
