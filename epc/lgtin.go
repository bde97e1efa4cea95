/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

const lgtinLotChars = 20

// LGTIN is a GTIN with a batch or lot number. It identifies a class of
// objects rather than a single instance, so its URI is in urn:epc:class.
type LGTIN struct {
	identity
	companyPrefix string
	itemRef       string
	lot           string // escaped
}

// ParseLGTIN parses urn:epc:class:lgtin:CompanyPrefix.ItemRefAndIndicator.Lot
func ParseLGTIN(uri string) (*LGTIN, error) {
	m, err := matchPure(SchemeLGTIN, uri)
	if err != nil {
		return nil, err
	}
	if err := checkTotal(SchemeLGTIN, "indicator and item reference", m[0], m[1], 13); err != nil {
		return nil, err
	}
	if err := checkChars(SchemeLGTIN, "lot", m[2], 1, lgtinLotChars); err != nil {
		return nil, err
	}
	return &LGTIN{identity{SchemeLGTIN, uri}, m[0], m[1], m[2]}, nil
}

func (l *LGTIN) CompanyPrefix() string {
	return l.companyPrefix
}

func (l *LGTIN) Lot() string {
	return UnescapeGS1(l.lot)
}

func (l *LGTIN) GTIN(t GTINType) (string, error) {
	return gtinAs(SchemeLGTIN, l.GS1Key(), t)
}

// GS1Key returns the GTIN-14.
func (l *LGTIN) GS1Key() string {
	return gtin14(l.companyPrefix, l.itemRef)
}

func (l *LGTIN) ElementString() string {
	return "(01)" + l.GS1Key() + "(10)" + l.Lot()
}
