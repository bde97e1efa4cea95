/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "github.com/intel/rsp-sw-toolkit-im-suite-epc/bitextract"

const ssccReservedBits = 24

// SSCC is a Serial Shipping Container Code, identifying a logistics unit.
// Its serial reference starts with the SSCC's extension digit.
type SSCC struct {
	identity
	companyPrefix string
	serialRef     string
}

// ParseSSCC parses urn:epc:id:sscc:CompanyPrefix.SerialReference
func ParseSSCC(uri string) (*SSCC, error) {
	m, err := matchPure(SchemeSSCC, uri)
	if err != nil {
		return nil, err
	}
	if err := checkTotal(SchemeSSCC, "serial reference", m[0], m[1], 17); err != nil {
		return nil, err
	}
	return &SSCC{identity{SchemeSSCC, uri}, m[0], m[1]}, nil
}

func (s *SSCC) CompanyPrefix() string {
	return s.companyPrefix
}

// SerialReference includes the extension digit.
func (s *SSCC) SerialReference() string {
	return s.serialRef
}

func (s *SSCC) ExtensionDigit() string {
	return s.serialRef[:1]
}

// GS1Key returns the 18 digit SSCC.
func (s *SSCC) GS1Key() string {
	return withCheckDigit(s.serialRef[:1] + s.companyPrefix + s.serialRef[1:])
}

func (s *SSCC) ElementString() string {
	return "(00)" + s.GS1Key()
}

func (s *SSCC) Tag(coding Coding, filter Filter) (*Tag, error) {
	return newTag(s, coding, filter)
}

func (s *SSCC) encodeTag(w *bitextract.Writer, coding Coding) error {
	if err := ssccPartitions.encode(w, SchemeSSCC, s.companyPrefix, s.serialRef); err != nil {
		return err
	}
	w.WriteZeros(ssccReservedBits)
	return nil
}

func decodeSSCC(r *tagReader) (tagEncoder, error) {
	cp, ref, err := r.partitioned(ssccPartitions)
	if err != nil {
		return nil, err
	}
	if err := r.reserved(ssccReservedBits); err != nil {
		return nil, err
	}
	return ParseSSCC(pureURI(SchemeSSCC, cp, ref))
}
