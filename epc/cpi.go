/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "github.com/intel/rsp-sw-toolkit-im-suite-epc/bitextract"

const (
	cpiMaxChars      = 30
	cpiSerialDigits  = 12
	cpi96SerialBits  = 31
	cpiVarSerialBits = 40
)

// CPI is a Component / Part Identifier. The part reference may use the
// digits, upper case letters, and the characters '-', '#', and '/'.
type CPI struct {
	identity
	companyPrefix string
	partRef       string // escaped
	serial        string
}

// ParseCPI parses urn:epc:id:cpi:CompanyPrefix.ComponentPartReference.Serial
func ParseCPI(uri string) (*CPI, error) {
	m, err := matchPure(SchemeCPI, uri)
	if err != nil {
		return nil, err
	}
	if err := checkCompanyPrefix(SchemeCPI, m[0]); err != nil {
		return nil, err
	}
	if err := checkChars(SchemeCPI, "part reference", m[1], 1, cpiMaxChars-len(m[0])); err != nil {
		return nil, err
	}
	if len(m[2]) > cpiSerialDigits {
		return nil, newError(SchemeCPI, LengthViolation, "serial %s has more than %d digits",
			m[2], cpiSerialDigits)
	}
	return &CPI{identity{SchemeCPI, uri}, m[0], m[1], m[2]}, nil
}

func (c *CPI) CompanyPrefix() string {
	return c.companyPrefix
}

func (c *CPI) PartReference() string {
	return UnescapeGS1(c.partRef)
}

func (c *CPI) Serial() string {
	return c.serial
}

// GS1Key returns the value of AI 8010, the company prefix and part
// reference.
func (c *CPI) GS1Key() string {
	return c.companyPrefix + c.PartReference()
}

func (c *CPI) ElementString() string {
	return "(8010)" + c.GS1Key() + "(8011)" + c.serial
}

// Tag encodes the CPI as CPI96, which needs a numeric part reference, or
// CPIVar.
func (c *CPI) Tag(coding Coding, filter Filter) (*Tag, error) {
	return newTag(c, coding, filter)
}

func (c *CPI) encodeTag(w *bitextract.Writer, coding Coding) error {
	table, serialBits := cpiVarPartitions, cpiVarSerialBits
	if coding == CPI96 {
		table, serialBits = cpi96Partitions, cpi96SerialBits
	}
	serial, err := parseInteger(SchemeCPI, "serial", c.serial, serialBits)
	if err != nil {
		return err
	}
	if err := table.encode(w, SchemeCPI, c.companyPrefix, c.partRef); err != nil {
		return err
	}
	w.WriteUInt64(serial, serialBits)
	return nil
}

func decodeCPI(r *tagReader) (tagEncoder, error) {
	table, serialBits := cpiVarPartitions, cpiVarSerialBits
	if r.coding == CPI96 {
		table, serialBits = cpi96Partitions, cpi96SerialBits
	}
	cp, ref, err := r.partitioned(table)
	if err != nil {
		return nil, err
	}
	serial, err := r.integer(serialBits)
	if err != nil {
		return nil, err
	}
	return ParseCPI(pureURI(SchemeCPI, cp, ref, serial))
}
