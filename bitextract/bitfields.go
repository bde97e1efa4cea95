/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bitextract

import (
	"fmt"

	"github.com/pkg/errors"
)

// BitExploder explodes byte data into a series of byte slices by breaking it
// into fields of predefined bit widths.
//
// Fixed EPC layouts, such as GID-96's 8.28.24.36, are described this way.
type BitExploder struct {
	bitLength  int // sum of all bit lengths
	expByteLen int // sum of all extractor byte lengths
	widths     []int
	extractors []BitExtractor
}

// NewBitExploder returns a new BitExploder that explodes byte data into a series
// of consecutive byte slices according to the given widths.
func NewBitExploder(widths []int) (BitExploder, error) {
	exp := BitExploder{}

	if err := exp.SetWidths(widths); err != nil {
		return exp, err
	}

	return exp, nil
}

// MustBitExploder is like NewBitExploder, but panics if the widths are
// invalid. It's meant for package level layout tables.
func MustBitExploder(widths ...int) BitExploder {
	exp, err := NewBitExploder(widths)
	if err != nil {
		panic(err)
	}
	return exp
}

// Explode uses this exploder to explode data from a byte slice, returning a
// slice of byte slices, each one representing a consecutive field consisting of
// bits extracted from a portion of the data slice.
func (exp BitExploder) Explode(data []byte) ([][]byte, error) {
	if len(data)*8 < exp.bitLength {
		return nil, errors.Errorf("invalid data length %d; expected %d bits",
			len(data)*8, exp.bitLength)
	}

	bt := exp.Buffer()
	exp.ExplodeTo(bt, data)
	return bt, nil
}

// ExplodeUInt64 works like Explode, but interprets each field as a BigEndian
// integer. It returns an error if any field is wider than 64 bits.
func (exp BitExploder) ExplodeUInt64(data []byte) ([]uint64, error) {
	fields, err := exp.Explode(data)
	if err != nil {
		return nil, err
	}
	vals := make([]uint64, len(fields))
	for i, f := range fields {
		if len(f) > 8 {
			return nil, errors.Errorf("field %d is %d bytes wide, "+
				"which does not fit in a uint64", i, len(f))
		}
		vals[i] = UInt64(f)
	}
	return vals, nil
}

// ExplodeTo explodes the data into the dst byte slices.
//
// If there aren't enough destination slices, or any of the destination slices
// are too small for their respective fields, ExplodeTo will panic.
func (exp BitExploder) ExplodeTo(dst [][]byte, data []byte) {
	if len(dst) < len(exp.extractors) {
		panic(fmt.Sprintf("not enough destination slices (%d) to "+
			"extract %d fields", len(dst), len(exp.extractors)))
	}
	for idx, be := range exp.extractors {
		// panics if len(dst[idx]) < be.ByteLength()
		be.ExtractTo(dst[idx], data)
	}
}

// Buffer returns a slice of byte slices large enough to use with ExplodeTo.
//
// That is, the returned slice has the same number of buffers as the BitExploder
// has fields, and each of those slices are large enough to hold the number of
// destination byte of the individual BitExtractors.
func (exp BitExploder) Buffer() [][]byte {
	bigBuff := make([]byte, exp.expByteLen)
	bt := make([][]byte, len(exp.extractors))
	for idx, be := range exp.extractors {
		bt[idx] = bigBuff[:be.ByteLength()]
		bigBuff = bigBuff[be.ByteLength():]
	}
	return bt
}

// SetWidths sets the exploder's field widths.
func (exp *BitExploder) SetWidths(widths []int) error {
	if len(widths) == 0 {
		return errors.New("widths slice is empty")
	}

	exp.bitLength = 0
	exp.expByteLen = 0
	exp.widths = append([]int(nil), widths...)
	exp.extractors = make([]BitExtractor, len(widths))
	for i, w := range widths {
		if w <= 0 {
			return errors.Errorf("widths must be >0, but width %d is %d", i, w)
		}
		be := New(exp.bitLength, w)
		exp.extractors[i] = be
		exp.bitLength += w
		exp.expByteLen += be.ByteLength()
	}
	return nil
}

// Widths returns the width of each field.
func (exp BitExploder) Widths() []int {
	return append([]int(nil), exp.widths...)
}

// BitLength returns the sum of the exploder's widths.
func (exp BitExploder) BitLength() int {
	return exp.bitLength
}
