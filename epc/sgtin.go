/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-epc/bitextract"
)

const (
	sgtinSerialChars   = 20
	sgtin96SerialBits  = 38
	sgtin198SerialBits = 140
)

// SGTIN does not directly correspond to a GS1 identifier, but instead is a
// combination of a GS1 GTIN (global trade identification number) and a serial
// "number" to identify the specific instance of that GTIN.
//
// Although the serial value is frequently referenced as a serial "number", the
// GS1 General Specifications permits _alphanumeric_ serial numbers, not just
// the digits 0-9. Moreover, it specifies that those serial *must* be treated
// as a string, wherein two serials are distinct if their string comparisons are
// distinct, including leading '0's. In other words, '0', '07', '007' are all
// valid, distinct serial numbers. On the other hand, the EPC Tag Standard
// restricts some serial number depending on the encoding. Specifically, SGTIN-96
// only permits serial numbers consisting of digits '0'-'9', and forbids serials
// with leading '0's, except for a single '0'. SGTIN-198 has no such restriction.
//
// As a result, '000' is a valid SGTIN serial number, but cannot be encoded in
// in SGTIN-96 format. Furthermore, in the URI representation of EPCs containing
// serials with non-numeric characters, certain characters must be percent-
// encoded according to the ISO 646 (ASCII) character code:
//     Graphic | URI Percent Encoding
//       "          %22
//       %          %25
//       &          %26
//       /          %2F
//       <          %3C
//       >          %3E
//       ?          %3F
//
// Unlike the serial, the company prefix and item reference keep their leading
// zeros: the partition value of the binary encodings is derived from their
// lengths.
type SGTIN struct {
	identity
	companyPrefix string
	itemRef       string // indicator digit followed by the item reference
	serial        string // escaped
}

// ParseSGTIN parses an SGTIN pure identity URI of the format:
//     urn:epc:id:sgtin:CompanyPrefix.ItemRefAndIndicator.SerialNumber
func ParseSGTIN(uri string) (*SGTIN, error) {
	m, err := matchPure(SchemeSGTIN, uri)
	if err != nil {
		return nil, err
	}
	s := &SGTIN{
		identity:      identity{SchemeSGTIN, uri},
		companyPrefix: m[0],
		itemRef:       m[1],
		serial:        m[2],
	}
	if err := checkTotal(SchemeSGTIN, "indicator and item reference",
		s.companyPrefix, s.itemRef, 13); err != nil {
		return nil, err
	}
	if err := checkChars(SchemeSGTIN, "serial", s.serial, 1, sgtinSerialChars); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SGTIN) CompanyPrefix() string {
	return s.companyPrefix
}

func (s *SGTIN) Indicator() string {
	return s.itemRef[:1]
}

func (s *SGTIN) ItemReference() string {
	return s.itemRef[1:]
}

// Serial returns the unescaped serial number.
func (s *SGTIN) Serial() string {
	return UnescapeGS1(s.serial)
}

// GTIN returns the GTIN in the requested format. Only GTIN-14 always
// succeeds; the shorter formats need the leading digits they drop to be 0.
func (s *SGTIN) GTIN(t GTINType) (string, error) {
	return gtinAs(SchemeSGTIN, s.GS1Key(), t)
}

// GS1Key returns the GTIN-14.
func (s *SGTIN) GS1Key() string {
	return gtin14(s.companyPrefix, s.itemRef)
}

// ElementString returns the GTIN and serial as "(01)GTIN(21)Serial".
func (s *SGTIN) ElementString() string {
	return "(01)" + s.GS1Key() + "(21)" + s.Serial()
}

// Tag encodes the SGTIN as SGTIN96 or SGTIN198.
func (s *SGTIN) Tag(coding Coding, filter Filter) (*Tag, error) {
	return newTag(s, coding, filter)
}

func (s *SGTIN) encodeTag(w *bitextract.Writer, coding Coding) error {
	if coding == SGTIN96 {
		serial, err := parseInteger(SchemeSGTIN, "serial", s.serial, sgtin96SerialBits)
		if err != nil {
			return err
		}
		if err := sgtinPartitions.encode(w, SchemeSGTIN, s.companyPrefix, s.itemRef); err != nil {
			return err
		}
		w.WriteUInt64(serial, sgtin96SerialBits)
		return nil
	}

	if err := sgtinPartitions.encode(w, SchemeSGTIN, s.companyPrefix, s.itemRef); err != nil {
		return err
	}
	return encodeSevenBit(w, SchemeSGTIN, s.serial, sgtinSerialChars, sgtin198SerialBits)
}

func decodeSGTIN(r *tagReader) (tagEncoder, error) {
	cp, iir, err := r.partitioned(sgtinPartitions)
	if err != nil {
		return nil, err
	}
	var serial string
	if r.coding == SGTIN96 {
		serial, err = r.integer(sgtin96SerialBits)
	} else {
		serial, err = r.sevenBit(sgtin198SerialBits)
	}
	if err != nil {
		return nil, err
	}
	return ParseSGTIN(pureURI(SchemeSGTIN, cp, iir, serial))
}
