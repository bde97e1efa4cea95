/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "github.com/intel/rsp-sw-toolkit-im-suite-epc/bitextract"

const (
	gdtiSerialChars   = 17
	gdti96SerialBits  = 41
	gdti174SerialBits = 119
)

// GDTI is a Global Document Type Identifier: a document type and a serial
// number for one document of that type.
type GDTI struct {
	identity
	companyPrefix string
	documentType  string
	serial        string // escaped
}

// ParseGDTI parses urn:epc:id:gdti:CompanyPrefix.DocumentType.SerialNumber
func ParseGDTI(uri string) (*GDTI, error) {
	m, err := matchPure(SchemeGDTI, uri)
	if err != nil {
		return nil, err
	}
	if err := checkTotal(SchemeGDTI, "document type", m[0], m[1], 12); err != nil {
		return nil, err
	}
	if err := checkChars(SchemeGDTI, "serial", m[2], 1, gdtiSerialChars); err != nil {
		return nil, err
	}
	return &GDTI{identity{SchemeGDTI, uri}, m[0], m[1], m[2]}, nil
}

func (g *GDTI) CompanyPrefix() string {
	return g.companyPrefix
}

func (g *GDTI) DocumentType() string {
	return g.documentType
}

func (g *GDTI) Serial() string {
	return UnescapeGS1(g.serial)
}

// GS1Key returns the document type with its check digit, followed by the
// serial.
func (g *GDTI) GS1Key() string {
	return withCheckDigit(g.companyPrefix+g.documentType) + g.Serial()
}

func (g *GDTI) ElementString() string {
	return "(253)" + g.GS1Key()
}

func (g *GDTI) Tag(coding Coding, filter Filter) (*Tag, error) {
	return newTag(g, coding, filter)
}

func (g *GDTI) encodeTag(w *bitextract.Writer, coding Coding) error {
	if coding == GDTI96 {
		serial, err := parseInteger(SchemeGDTI, "serial", g.serial, gdti96SerialBits)
		if err != nil {
			return err
		}
		if err := gdtiPartitions.encode(w, SchemeGDTI, g.companyPrefix, g.documentType); err != nil {
			return err
		}
		w.WriteUInt64(serial, gdti96SerialBits)
		return nil
	}
	if err := gdtiPartitions.encode(w, SchemeGDTI, g.companyPrefix, g.documentType); err != nil {
		return err
	}
	return encodeSevenBit(w, SchemeGDTI, g.serial, gdtiSerialChars, gdti174SerialBits)
}

func decodeGDTI(r *tagReader) (tagEncoder, error) {
	cp, dt, err := r.partitioned(gdtiPartitions)
	if err != nil {
		return nil, err
	}
	var serial string
	if r.coding == GDTI96 {
		serial, err = r.integer(gdti96SerialBits)
	} else {
		serial, err = r.sevenBit(gdti174SerialBits)
	}
	if err != nil {
		return nil, err
	}
	return ParseGDTI(pureURI(SchemeGDTI, cp, dt, serial))
}
