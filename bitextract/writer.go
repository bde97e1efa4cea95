/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bitextract

import (
	"fmt"
)

// Writer appends MSB-first bit fields to a growing byte slice. It's the
// counterpart of BitExtractor: a field written at bit offset n with width w
// is read back by New(n, w).
//
// The zero value is an empty Writer ready to use.
type Writer struct {
	data []byte
	n    int
}

// NewWriter returns a Writer with room for at least sizeHint bits before it
// needs to grow.
func NewWriter(sizeHint int) *Writer {
	return &Writer{data: make([]byte, 0, (sizeHint+ByteSize-1)/ByteSize)}
}

// WriteUInt64 appends the low width bits of v, most significant bit first.
//
// It panics if width is outside [0, 64]; callers are expected to range check v
// themselves, as any bits above width are silently dropped.
func (w *Writer) WriteUInt64(v uint64, width int) {
	if width < 0 || width > 64 {
		panic(fmt.Sprintf("illegal width %d", width))
	}
	for i := width - 1; i >= 0; i-- {
		w.writeBit(byte(v>>uint(i)) & 1)
	}
}

// WriteZeros appends n zero bits.
func (w *Writer) WriteZeros(n int) {
	for ; n > 0; n-- {
		w.writeBit(0)
	}
}

func (w *Writer) writeBit(b byte) {
	if w.n%ByteSize == 0 {
		w.data = append(w.data, 0)
	}
	if b != 0 {
		w.data[w.n/ByteSize] |= 0x80 >> uint(w.n%ByteSize)
	}
	w.n++
}

// BitLength returns the number of bits written so far.
func (w *Writer) BitLength() int {
	return w.n
}

// Bytes returns the written bits; a final partial byte is padded with 0s.
// The slice aliases the Writer's buffer until the next write.
func (w *Writer) Bytes() []byte {
	return w.data
}
