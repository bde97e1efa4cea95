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

const (
	itipSerialChars   = 20
	itipPieceBits     = 7
	itip110SerialBits = 38
	itip212SerialBits = 140
)

// ITIP identifies one piece of a trade item that's shipped in several
// pieces, such as a piece of furniture in separate boxes: which piece this is
// and how many there are in total.
//
// ITIPs have an element string, but no GS1 key of their own.
type ITIP struct {
	identity
	companyPrefix string
	itemRef       string // indicator digit followed by the item reference
	piece         string
	total         string
	serial        string // escaped
}

// ParseITIP parses urn:epc:id:itip:CompanyPrefix.ItemRefAndIndicator.Piece.Total.SerialNumber
func ParseITIP(uri string) (*ITIP, error) {
	m, err := matchPure(SchemeITIP, uri)
	if err != nil {
		return nil, err
	}
	if err := checkTotal(SchemeITIP, "indicator and item reference", m[0], m[1], 13); err != nil {
		return nil, err
	}
	if err := checkChars(SchemeITIP, "serial", m[4], 1, itipSerialChars); err != nil {
		return nil, err
	}
	return &ITIP{identity{SchemeITIP, uri}, m[0], m[1], m[2], m[3], m[4]}, nil
}

func (t *ITIP) CompanyPrefix() string {
	return t.companyPrefix
}

func (t *ITIP) Indicator() string {
	return t.itemRef[:1]
}

func (t *ITIP) ItemReference() string {
	return t.itemRef[1:]
}

func (t *ITIP) Piece() string {
	return t.piece
}

func (t *ITIP) Total() string {
	return t.total
}

func (t *ITIP) Serial() string {
	return UnescapeGS1(t.serial)
}

// GTIN returns the GTIN of the trade item the piece belongs to.
func (t *ITIP) GTIN(gt GTINType) (string, error) {
	return gtinAs(SchemeITIP, gtin14(t.companyPrefix, t.itemRef), gt)
}

func (t *ITIP) ElementString() string {
	return "(8006)" + gtin14(t.companyPrefix, t.itemRef) + t.piece + t.total + "(21)" + t.Serial()
}

func (t *ITIP) Tag(coding Coding, filter Filter) (*Tag, error) {
	return newTag(t, coding, filter)
}

func (t *ITIP) encodeTag(w *bitextract.Writer, coding Coding) error {
	var serial uint64
	if coding == ITIP110 {
		var err error
		if serial, err = parseInteger(SchemeITIP, "serial", t.serial, itip110SerialBits); err != nil {
			return err
		}
	}
	if err := sgtinPartitions.encode(w, SchemeITIP, t.companyPrefix, t.itemRef); err != nil {
		return err
	}
	for _, v := range []string{t.piece, t.total} {
		n, err := strconv.ParseUint(v, 10, itipPieceBits)
		if err != nil {
			return wrapError(err, SchemeITIP, OutOfRange, "piece count %q doesn't fit in %d bits", v, itipPieceBits)
		}
		w.WriteUInt64(n, itipPieceBits)
	}
	if coding == ITIP110 {
		w.WriteUInt64(serial, itip110SerialBits)
		return nil
	}
	return encodeSevenBit(w, SchemeITIP, t.serial, itipSerialChars, itip212SerialBits)
}

func decodeITIP(r *tagReader) (tagEncoder, error) {
	cp, iir, err := r.partitioned(sgtinPartitions)
	if err != nil {
		return nil, err
	}
	var pieces [2]string
	for i := range pieces {
		n, err := r.read(itipPieceBits)
		if err != nil {
			return nil, err
		}
		if n > 99 {
			return nil, newError(SchemeITIP, OutOfRange, "piece number %d has more than 2 digits", n)
		}
		pieces[i] = padded(n, 2)
	}
	var serial string
	if r.coding == ITIP110 {
		serial, err = r.integer(itip110SerialBits)
	} else {
		serial, err = r.sevenBit(itip212SerialBits)
	}
	if err != nil {
		return nil, err
	}
	return ParseITIP(pureURI(SchemeITIP, cp, iir, pieces[0], pieces[1], serial))
}
