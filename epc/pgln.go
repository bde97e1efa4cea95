/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

// PGLN is a party GLN, which identifies an organization or person rather than
// a physical location.
type PGLN struct {
	identity
	companyPrefix string
	partyRef      string
}

// ParsePGLN parses urn:epc:id:pgln:CompanyPrefix.PartyReference
func ParsePGLN(uri string) (*PGLN, error) {
	m, err := matchPure(SchemePGLN, uri)
	if err != nil {
		return nil, err
	}
	if err := checkTotal(SchemePGLN, "party reference", m[0], m[1], 12); err != nil {
		return nil, err
	}
	return &PGLN{identity{SchemePGLN, uri}, m[0], m[1]}, nil
}

func (p *PGLN) CompanyPrefix() string {
	return p.companyPrefix
}

func (p *PGLN) PartyReference() string {
	return p.partyRef
}

// GS1Key returns the 13 digit GLN.
func (p *PGLN) GS1Key() string {
	return withCheckDigit(p.companyPrefix + p.partyRef)
}

func (p *PGLN) ElementString() string {
	return "(417)" + p.GS1Key()
}
