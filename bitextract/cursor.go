/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bitextract

import (
	"github.com/pkg/errors"
)

// ErrShortRead is the cause of errors returned when a Cursor has fewer bits
// remaining than a read requests.
var ErrShortRead = errors.New("not enough bits remaining")

// Cursor reads consecutive fields of varying widths from the front of a bit
// sequence. Unlike BitExploder, the width of each field may depend on the
// values read before it, e.g. an EPC partition value or a terminator.
type Cursor struct {
	data      []byte
	bitLength int
	pos       int
}

// NewCursor returns a Cursor over the first bitLength bits of data.
func NewCursor(data []byte, bitLength int) (*Cursor, error) {
	if bitLength < 0 || bitLength > len(data)*ByteSize {
		return nil, errors.Errorf("bit length %d is outside the %d bits of data",
			bitLength, len(data)*ByteSize)
	}
	return &Cursor{data: data, bitLength: bitLength}, nil
}

// ReadUInt64 reads the next width bits as a BigEndian unsigned integer and
// advances the cursor. width must be in [0, 64]; a width of 0 reads nothing
// and returns 0.
func (c *Cursor) ReadUInt64(width int) (uint64, error) {
	if width < 0 || width > 64 {
		return 0, errors.Errorf("illegal width %d", width)
	}
	if width == 0 {
		return 0, nil
	}
	if c.Remaining() < width {
		return 0, errors.Wrapf(ErrShortRead, "reading %d bits at bit %d of %d",
			width, c.pos, c.bitLength)
	}
	v := New(c.pos, width).ExtractUInt64(c.data)
	c.pos += width
	return v, nil
}

// Skip advances the cursor by n bits.
func (c *Cursor) Skip(n int) error {
	if n < 0 || c.Remaining() < n {
		return errors.Wrapf(ErrShortRead, "skipping %d bits at bit %d of %d",
			n, c.pos, c.bitLength)
	}
	c.pos += n
	return nil
}

// Position returns the index of the next bit the cursor will read.
func (c *Cursor) Position() int {
	return c.pos
}

// Remaining returns the number of unread bits.
func (c *Cursor) Remaining() int {
	return c.bitLength - c.pos
}

// RemainingZero returns true if every unread bit is 0.
func (c *Cursor) RemainingZero() bool {
	for i := c.pos; i < c.bitLength; i++ {
		if c.data[i/ByteSize]&(0x80>>uint(i%ByteSize)) != 0 {
			return false
		}
	}
	return true
}
