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

// Six-bit characters are the low six bits of their ASCII values. Decoding
// relies on the fact that every allowed character is in 0x20-0x3F or 0x40-0x5F.
func sixBitChar(v uint64) byte {
	if v&0x20 != 0 {
		return byte(v)
	}
	return byte(0x40 | v)
}

// encodeSixBit writes the characters of the escaped string v as 6-bit values
// followed by a 000000 terminator.
func encodeSixBit(w *bitextract.Writer, s Scheme, v string, maxChars int) error {
	raw := UnescapeGS1(v)
	if len(raw) > maxChars {
		return newError(s, LengthViolation, "%q has %d characters, but the limit is %d",
			v, len(raw), maxChars)
	}
	if !IsGS1CompPartEncodable(raw) {
		return newError(s, InvalidGrammar, "%q can't be encoded with 6-bit characters", v)
	}
	for i := 0; i < len(raw); i++ {
		w.WriteUInt64(uint64(raw[i]&0x3F), 6)
	}
	w.WriteZeros(6)
	return nil
}

// sixBit reads 6-bit characters up to a 000000 terminator, returning them
// escaped for use in a URI.
func (r *tagReader) sixBit(maxChars int) (string, error) {
	var sb strings.Builder
	for {
		v, err := r.read(6)
		if err != nil {
			return "", err
		}
		if v == 0 {
			break
		}
		if sb.Len() == maxChars {
			return "", newError(r.scheme(), LengthViolation, "no terminator after %d characters", maxChars)
		}
		ch := sixBitChar(v)
		if gs1AICPCharSet[ch] != 1 {
			return "", newError(r.scheme(), InvalidGrammar, "6-bit value %#02x is not a valid character", v)
		}
		sb.WriteByte(ch)
	}
	return EscapeGS1(sb.String()), nil
}
