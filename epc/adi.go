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

const (
	adiPartChars   = 32
	adiSerialChars = 30
)

// ADI is an Aerospace and Defense Identifier: a CAGE or DoDAAC code, an
// optional original part number, and a serial number. The serial may start
// with '#', which marks it as unique across the whole CAGE, not just the part.
type ADI struct {
	identity
	cage   string
	part   string // escaped
	serial string // escaped
}

// ParseADI parses urn:epc:id:adi:CAGEOrDODAAC.OriginalPartNumber.Serial
func ParseADI(uri string) (*ADI, error) {
	m, err := matchPure(SchemeADI, uri)
	if err != nil {
		return nil, err
	}
	if err := checkChars(SchemeADI, "part number", m[1], 0, adiPartChars); err != nil {
		return nil, err
	}
	if err := checkChars(SchemeADI, "serial", m[2], 1, adiSerialChars); err != nil {
		return nil, err
	}
	if m[2] == "%23" {
		return nil, newError(SchemeADI, InvalidGrammar, "serial has nothing after its '#'")
	}
	return &ADI{identity{SchemeADI, uri}, m[0], m[1], m[2]}, nil
}

func (a *ADI) CAGE() string {
	return a.cage
}

func (a *ADI) PartNumber() string {
	return UnescapeGS1(a.part)
}

func (a *ADI) Serial() string {
	return UnescapeGS1(a.serial)
}

func (a *ADI) Tag(coding Coding, filter Filter) (*Tag, error) {
	return newTag(a, coding, filter)
}

func (a *ADI) encodeTag(w *bitextract.Writer, coding Coding) error {
	cage := a.cage
	if len(cage) < cageChars {
		cage = string(cagePad) + cage
	}
	for i := 0; i < len(cage); i++ {
		w.WriteUInt64(uint64(cage[i]&0x3F), 6)
	}
	if err := encodeSixBit(w, SchemeADI, a.part, adiPartChars); err != nil {
		return err
	}
	return encodeSixBit(w, SchemeADI, a.serial, adiSerialChars)
}

func decodeADI(r *tagReader) (tagEncoder, error) {
	var cage strings.Builder
	for i := 0; i < cageChars; i++ {
		v, err := r.read(6)
		if err != nil {
			return nil, err
		}
		ch := sixBitChar(v)
		if ch == cagePad && i == 0 {
			continue
		}
		cage.WriteByte(ch)
	}
	part, err := r.sixBit(adiPartChars)
	if err != nil {
		return nil, err
	}
	serial, err := r.sixBit(adiSerialChars)
	if err != nil {
		return nil, err
	}
	return ParseADI(pureURI(SchemeADI, cage.String(), part, serial))
}
