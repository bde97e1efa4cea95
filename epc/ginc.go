/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

const gincMaxChars = 30

// GINC is a Global Identification Number for Consignment.
type GINC struct {
	identity
	companyPrefix string
	consignment   string // escaped
}

// ParseGINC parses urn:epc:id:ginc:CompanyPrefix.ConsignmentReference
func ParseGINC(uri string) (*GINC, error) {
	m, err := matchPure(SchemeGINC, uri)
	if err != nil {
		return nil, err
	}
	if err := checkCompanyPrefix(SchemeGINC, m[0]); err != nil {
		return nil, err
	}
	if err := checkChars(SchemeGINC, "consignment reference", m[1], 1, gincMaxChars-len(m[0])); err != nil {
		return nil, err
	}
	return &GINC{identity{SchemeGINC, uri}, m[0], m[1]}, nil
}

func (g *GINC) CompanyPrefix() string {
	return g.companyPrefix
}

func (g *GINC) ConsignmentReference() string {
	return UnescapeGS1(g.consignment)
}

func (g *GINC) GS1Key() string {
	return g.companyPrefix + g.ConsignmentReference()
}

func (g *GINC) ElementString() string {
	return "(401)" + g.GS1Key()
}
