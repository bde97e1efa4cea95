/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"strconv"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-epc/bitextract"
)

const (
	cageChars = 6

	// five character CAGE codes are padded with a leading space
	cagePad = ' '
)

// USDoD-96 is header.filter.CAGE.serial, with 8-bit CAGE characters.
var usdodLayout = bitextract.MustBitExploder(headerWidth, 4, 8*cageChars, 36)

// USDOD identifies an item by a US Department of Defense supplier's CAGE or
// DoDAAC code and a serial number.
type USDOD struct {
	identity
	cage   string
	serial uint64
}

// ParseUSDOD parses urn:epc:id:usdod:CAGEOrDODAAC.SerialNumber
func ParseUSDOD(uri string) (*USDOD, error) {
	m, err := matchPure(SchemeUSDOD, uri)
	if err != nil {
		return nil, err
	}
	serial, err := parseInteger(SchemeUSDOD, "serial", m[1], usdodLayout.Widths()[3])
	if err != nil {
		return nil, err
	}
	return &USDOD{identity{SchemeUSDOD, uri}, m[0], serial}, nil
}

// CAGE returns the CAGE or DoDAAC code.
func (u *USDOD) CAGE() string {
	return u.cage
}

func (u *USDOD) SerialNumber() string {
	return strconv.FormatUint(u.serial, 10)
}

func (u *USDOD) Tag(coding Coding, filter Filter) (*Tag, error) {
	return newTag(u, coding, filter)
}

func (u *USDOD) encodeTag(w *bitextract.Writer, coding Coding) error {
	cage := u.cage
	if len(cage) < cageChars {
		cage = string(cagePad) + cage
	}
	for i := 0; i < len(cage); i++ {
		w.WriteUInt64(uint64(cage[i]), 8)
	}
	w.WriteUInt64(u.serial, usdodLayout.Widths()[3])
	return nil
}

func decodeUSDOD(r *tagReader) (tagEncoder, error) {
	fields, err := usdodLayout.Explode(r.data)
	if err != nil {
		return nil, wrapError(err, SchemeUSDOD, PayloadTooShort, "invalid USDoD-96 payload")
	}
	if err := r.Skip(usdodLayout.BitLength() - r.Position()); err != nil {
		return nil, wrapError(err, SchemeUSDOD, PayloadTooShort, "invalid USDoD-96 payload")
	}
	cage := string(fields[2])
	if strings.IndexByte(cage[1:], cagePad) >= 0 {
		return nil, newError(SchemeUSDOD, InvalidGrammar, "CAGE %q has a space after its first character", cage)
	}
	return ParseUSDOD(pureURI(SchemeUSDOD,
		strings.TrimPrefix(cage, string(cagePad)),
		strconv.FormatUint(bitextract.UInt64(fields[3]), 10)))
}
