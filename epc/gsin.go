/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

// GSIN is a Global Shipment Identification Number.
type GSIN struct {
	identity
	companyPrefix string
	shipperRef    string
}

// ParseGSIN parses urn:epc:id:gsin:CompanyPrefix.ShipperReference
func ParseGSIN(uri string) (*GSIN, error) {
	m, err := matchPure(SchemeGSIN, uri)
	if err != nil {
		return nil, err
	}
	if err := checkTotal(SchemeGSIN, "shipper reference", m[0], m[1], 16); err != nil {
		return nil, err
	}
	return &GSIN{identity{SchemeGSIN, uri}, m[0], m[1]}, nil
}

func (g *GSIN) CompanyPrefix() string {
	return g.companyPrefix
}

func (g *GSIN) ShipperReference() string {
	return g.shipperRef
}

// GS1Key returns the 17 digit GSIN.
func (g *GSIN) GS1Key() string {
	return withCheckDigit(g.companyPrefix + g.shipperRef)
}

func (g *GSIN) ElementString() string {
	return "(402)" + g.GS1Key()
}
