/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package bitextract reads and writes MSB-first bit fields in byte slices.
//
// Bit 0 of a slice is the highest-order bit of its 0'th byte. Fields may start
// at any bit offset and span any number of bytes; EPC tag payloads are packed
// this way, with fields such as a 3 bit filter or a 38 bit serial number that
// rarely align with byte boundaries.
package bitextract

import (
	"encoding/binary"
	"fmt"
	"sync"
)

type alignmentBias uint8

const (
	ByteSize = 8
	ByteMask = (1 << ByteSize) - 1

	srcAligned = alignmentBias(iota)
	srcBiasPrev
	srcBiasNext
)

// BitExtractor extracts bits from byte slices according to bit offsets into the
// slice and the lengths of the section to be extracted.
//
// Create a new one with New(start, length), then use Extract(src) or
// ExtractTo(dst, src) to extract bits from byte slices.
//
// BitExtractors are safe for concurrent extractions, provided callers don't use
// SetBounds during their use.
type BitExtractor struct {
	bitStart, byteStart, srcLen, dstLen int
	bias                                alignmentBias
	rshift, lshift, mask                uint8
}

// ByteLength returns the number of bytes this extractor extracts.
//
// That is, the result of len(be.Extract(data)) == be.ByteLength().
func (be BitExtractor) ByteLength() int {
	return be.dstLen
}

// Buffer returns a buffer of the size needed by ExtractTo.
func (be BitExtractor) Buffer() []byte {
	return make([]byte, be.ByteLength())
}

// New returns a new BitExtractor that can extract bits from a bytes.
//
// start is the 0-index of the first bit of the input. Bit 0 is the highest-
// order bit of the 0'th index of the input array. length is the number of bits
// to extract, starting from that start bit and moving "rightward" through the
// slice, so that later bits are extracted from higher indexes.
func New(start, length int) (be BitExtractor) {
	be = BitExtractor{}
	be.SetBounds(start, length)
	return be
}

func ifAligned(size, ifYes, ifNo int) int {
	if size%ByteSize == 0 {
		return ifYes
	}
	return ifNo
}

// SetBounds changes the BitExtractor's start bit and bit length.
func (be *BitExtractor) SetBounds(start, length int) {
	if start < 0 || length < 1 {
		panic(fmt.Sprintf("illegal start (%d) or length (%d)", start, length))
	}
	if start+length < 0 {
		// check for overflow
		panic(fmt.Sprintf("cannot handle such a large start (%d) and length (%d)",
			start, length))
	}

	be.bitStart = start
	be.byteStart = start / ByteSize
	be.dstLen = length/ByteSize + ifAligned(length, 0, 1)
	srcEndByte := ((start + length) / ByteSize) - ifAligned(start+length, 1, 0)
	be.srcLen = srcEndByte - be.byteStart + 1
	srcEndOffset := (start + length - 1) % ByteSize
	be.rshift = uint8(ByteSize - srcEndOffset - 1)
	be.lshift = uint8(srcEndOffset + 1)
	be.mask = byte(ifAligned(length, ByteMask, (1<<uint(length%ByteSize))-1))

	switch {
	case be.rshift == 0:
		be.bias = srcAligned
	case be.srcLen == be.dstLen:
		be.bias = srcBiasPrev
	default:
		be.bias = srcBiasNext
	}
}

// bufferPool maintains a pool of reusable byte slices.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, 8)
	},
}

// ExtractUInt64 extracts bits from the source and interprets them as a
// BigEndian uint64. This method panics if the extractor's ByteLength is
// greater than 8.
func (be BitExtractor) ExtractUInt64(src []byte) uint64 {
	buff := bufferPool.Get().([]byte)
	defer bufferPool.Put(buff)
	binary.BigEndian.PutUint64(buff, 0)
	be.ExtractTo(buff[8-be.dstLen:], src)
	return binary.BigEndian.Uint64(buff)
}

// Extract returns a new slice holding the extracted bits, right-aligned in its
// final byte.
func (be BitExtractor) Extract(src []byte) []byte {
	dest := be.Buffer()
	be.ExtractTo(dest, src)
	return dest
}

// ExtractTo writes the extracted bits to dest, right-aligned. It panics if src
// is too short for the extractor's bounds or dest is smaller than ByteLength.
func (be BitExtractor) ExtractTo(dest, src []byte) {
	if len(src) < be.srcLen+be.byteStart {
		panic(fmt.Sprintf("cannot extract %d bytes from source[%d:%d], "+
			"as it only has %d total bytes",
			be.srcLen, be.byteStart, be.byteStart+be.srcLen, len(src)))
	}

	if len(dest) < be.dstLen {
		panic(fmt.Sprintf("destination size %d is too small "+
			"(should be at least %d)", len(dest), be.dstLen))
	}

	switch be.bias {
	case srcAligned:
		copy(dest, src[be.byteStart:be.byteStart+be.dstLen])
	case srcBiasPrev:
		dest[0] = src[be.byteStart] >> be.rshift
		for i := 1; i < be.dstLen; i++ {
			// previous byte shifts up; current byte shifts down
			dest[i] = src[i+be.byteStart-1]<<(ByteSize-be.rshift) |
				src[i+be.byteStart]>>be.rshift
		}
	case srcBiasNext:
		for i := 0; i < be.dstLen; i++ {
			// current byte shifts up; next byte shifts down
			dest[i] = src[i+be.byteStart]<<(ByteSize-be.rshift) |
				src[i+be.byteStart+1]>>be.rshift
		}
	}
	dest[0] &= be.mask
}

// UInt64 interprets up to 8 right-aligned bytes, such as the output of
// Extract, as a BigEndian unsigned integer.
func UInt64(field []byte) uint64 {
	if len(field) > 8 {
		panic(fmt.Sprintf("field of %d bytes does not fit in a uint64", len(field)))
	}
	var v uint64
	for _, b := range field {
		v = v<<ByteSize | uint64(b)
	}
	return v
}
