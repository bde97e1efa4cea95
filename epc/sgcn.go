/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "github.com/intel/rsp-sw-toolkit-im-suite-epc/bitextract"

const (
	sgcnSerialDigits = 12
	sgcn96SerialBits = 41
)

// SGCN is a Serialized Global Coupon Number. Its serial component is a
// string of digits in which leading zeros are significant.
type SGCN struct {
	identity
	companyPrefix string
	couponRef     string
	serial        string
}

// ParseSGCN parses urn:epc:id:sgcn:CompanyPrefix.CouponReference.SerialComponent
func ParseSGCN(uri string) (*SGCN, error) {
	m, err := matchPure(SchemeSGCN, uri)
	if err != nil {
		return nil, err
	}
	if err := checkTotal(SchemeSGCN, "coupon reference", m[0], m[1], 12); err != nil {
		return nil, err
	}
	if len(m[2]) > sgcnSerialDigits {
		return nil, newError(SchemeSGCN, LengthViolation, "serial %s has more than %d digits",
			m[2], sgcnSerialDigits)
	}
	return &SGCN{identity{SchemeSGCN, uri}, m[0], m[1], m[2]}, nil
}

func (s *SGCN) CompanyPrefix() string {
	return s.companyPrefix
}

func (s *SGCN) CouponReference() string {
	return s.couponRef
}

func (s *SGCN) Serial() string {
	return s.serial
}

// GS1Key returns the GCN with its check digit, followed by the serial.
func (s *SGCN) GS1Key() string {
	return withCheckDigit(s.companyPrefix+s.couponRef) + s.serial
}

func (s *SGCN) ElementString() string {
	return "(255)" + s.GS1Key()
}

func (s *SGCN) Tag(coding Coding, filter Filter) (*Tag, error) {
	return newTag(s, coding, filter)
}

func (s *SGCN) encodeTag(w *bitextract.Writer, coding Coding) error {
	if err := sgcnPartitions.encode(w, SchemeSGCN, s.companyPrefix, s.couponRef); err != nil {
		return err
	}
	return encodeNumericString(w, SchemeSGCN, "serial", s.serial, sgcnSerialDigits, sgcn96SerialBits)
}

func decodeSGCN(r *tagReader) (tagEncoder, error) {
	cp, ref, err := r.partitioned(sgcnPartitions)
	if err != nil {
		return nil, err
	}
	serial, err := r.numericString("serial", sgcn96SerialBits)
	if err != nil {
		return nil, err
	}
	return ParseSGCN(pureURI(SchemeSGCN, cp, ref, serial))
}
