/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bitextract

import (
	"strings"

	"github.com/pkg/errors"
)

// FormatBinary renders the first n bits of data as a string of '0' and '1'.
func FormatBinary(data []byte, n int) string {
	if n > len(data)*ByteSize {
		n = len(data) * ByteSize
	}
	b := strings.Builder{}
	b.Grow(n)
	for i := 0; i < n; i++ {
		if data[i/ByteSize]&(0x80>>uint(i%ByteSize)) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// ParseBinary packs a string of '0' and '1' into bytes, MSB first, and returns
// them along with the number of bits.
func ParseBinary(s string) ([]byte, int, error) {
	w := NewWriter(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			w.writeBit(0)
		case '1':
			w.writeBit(1)
		default:
			return nil, 0, errors.Errorf("character %d (%q) is not a binary digit", i, s[i])
		}
	}
	return w.Bytes(), w.BitLength(), nil
}
