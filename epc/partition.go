/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"strconv"

	"github.com/intel/rsp-sw-toolkit-im-suite-epc/bitextract"
)

// Most GS1 codings share a field of M+N bits split between a company prefix
// and a second reference; a 3-bit partition value P picks the split. P can
// be 0 to 6, giving a company prefix of 12-P digits in prefixBits[P] bits.
// The reference gets whatever digits and bits remain.
var prefixBits = [7]int{40, 37, 34, 30, 27, 24, 20}

const partitionWidth = 3

// refEncoding is how the reference half of a partitioned field is stored.
type refEncoding int

const (
	refNumeric refEncoding = iota // zero padded to exactly K digits
	refInteger                    // integer of at most K digits, no leading zeros
	refString                     // at most K 7-bit characters, zero padded to N bits
	refSixBit                     // at most K 6-bit characters and a terminator
)

// partitionTable describes a partitioned field by the bits and digits shared
// between its two halves.
type partitionTable struct {
	bits     int // M+N; unused for refSixBit
	digits   int // L+K
	encoding refEncoding
}

type partition struct {
	value        int
	prefixBits   int
	prefixDigits int
	refBits      int
	refDigits    int
}

var (
	sgtinPartitions   = partitionTable{44, 13, refNumeric}
	ssccPartitions    = partitionTable{58, 17, refNumeric}
	sglnPartitions    = partitionTable{41, 12, refNumeric}
	graiPartitions    = partitionTable{44, 12, refNumeric}
	giai96Partitions  = partitionTable{82, 25, refInteger}
	giai202Partitions = partitionTable{188, 30, refString}
	gsrnPartitions    = partitionTable{58, 17, refNumeric}
	gdtiPartitions    = partitionTable{41, 12, refNumeric}
	cpi96Partitions   = partitionTable{51, 15, refInteger}
	cpiVarPartitions  = partitionTable{0, 30, refSixBit}
	sgcnPartitions    = partitionTable{41, 12, refNumeric}
)

func (t partitionTable) row(p int) partition {
	row := partition{
		value:        p,
		prefixBits:   prefixBits[p],
		prefixDigits: 12 - p,
		refBits:      t.bits - prefixBits[p],
		refDigits:    t.digits - (12 - p),
	}
	if t.encoding == refSixBit {
		row.refBits = 6 * (row.refDigits + 1)
	}
	return row
}

func (t partitionTable) byValue(p uint64) (partition, bool) {
	if p >= uint64(len(prefixBits)) {
		return partition{}, false
	}
	return t.row(int(p)), true
}

func (t partitionTable) byPrefixLength(l int) (partition, bool) {
	if l < 6 || l > 12 {
		return partition{}, false
	}
	return t.row(12 - l), true
}

// encode writes the partition value, company prefix, and reference. The
// reference is escaped if the table stores characters.
func (t partitionTable) encode(w *bitextract.Writer, s Scheme, prefix, ref string) error {
	p, ok := t.byPrefixLength(len(prefix))
	if !ok {
		return newError(s, LengthViolation, "company prefix %q must have 6 to 12 digits", prefix)
	}
	cp, err := strconv.ParseUint(prefix, 10, p.prefixBits)
	if err != nil {
		return wrapError(err, s, InvalidGrammar, "company prefix %q isn't numeric", prefix)
	}

	w.WriteUInt64(uint64(p.value), partitionWidth)
	w.WriteUInt64(cp, p.prefixBits)

	switch t.encoding {
	case refNumeric:
		if len(ref) != p.refDigits || !isDigits(ref) {
			return newError(s, LengthViolation, "reference %q must be exactly %d digits "+
				"with a %d digit company prefix", ref, p.refDigits, p.prefixDigits)
		}
		var v uint64
		if p.refDigits > 0 {
			if v, err = strconv.ParseUint(ref, 10, p.refBits); err != nil {
				return wrapError(err, s, OutOfRange, "reference %s doesn't fit in %d bits", ref, p.refBits)
			}
		}
		w.WriteUInt64(v, p.refBits)
	case refInteger:
		if len(ref) > p.refDigits {
			return newError(s, LengthViolation, "reference %q has more than %d digits", ref, p.refDigits)
		}
		v, err := parseInteger(s, "reference", ref, p.refBits)
		if err != nil {
			return err
		}
		w.WriteUInt64(v, p.refBits)
	case refString:
		return encodeSevenBit(w, s, ref, p.refDigits, p.refBits)
	case refSixBit:
		return encodeSixBit(w, s, ref, p.refDigits)
	}
	return nil
}

// partitioned reads a partition value, company prefix, and reference.
func (r *tagReader) partitioned(t partitionTable) (prefix, ref string, err error) {
	pv, err := r.read(partitionWidth)
	if err != nil {
		return "", "", err
	}
	p, ok := t.byValue(pv)
	if !ok {
		return "", "", newError(r.scheme(), OutOfRange, "partition value %d is invalid", pv)
	}

	cp, err := r.read(p.prefixBits)
	if err != nil {
		return "", "", err
	}
	if cp >= pow10[p.prefixDigits] {
		return "", "", newError(r.scheme(), OutOfRange,
			"company prefix %d has more than %d digits", cp, p.prefixDigits)
	}
	prefix = padded(cp, p.prefixDigits)

	switch t.encoding {
	case refNumeric, refInteger:
		v, err := r.read(p.refBits)
		if err != nil {
			return "", "", err
		}
		if v >= pow10[p.refDigits] {
			return "", "", newError(r.scheme(), OutOfRange,
				"reference %d has more than %d digits", v, p.refDigits)
		}
		if t.encoding == refNumeric {
			ref = padded(v, p.refDigits)
		} else {
			ref = strconv.FormatUint(v, 10)
		}
	case refString:
		if ref, err = r.sevenBit(p.refBits); err != nil {
			return "", "", err
		}
		if unescapedLen(ref) > p.refDigits {
			return "", "", newError(r.scheme(), LengthViolation,
				"reference %q has more than %d characters", ref, p.refDigits)
		}
	case refSixBit:
		if ref, err = r.sixBit(p.refDigits); err != nil {
			return "", "", err
		}
	}
	return prefix, ref, nil
}
