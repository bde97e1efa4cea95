/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

const upuiTPXChars = 28

// UPUI is a Unit Pack Identifier: a GTIN and the third party controlled
// serial extension (TPX) used for tobacco traceability.
type UPUI struct {
	identity
	companyPrefix string
	itemRef       string
	tpx           string // escaped
}

// ParseUPUI parses urn:epc:id:upui:CompanyPrefix.ItemRefAndIndicator.TPX
func ParseUPUI(uri string) (*UPUI, error) {
	m, err := matchPure(SchemeUPUI, uri)
	if err != nil {
		return nil, err
	}
	if err := checkTotal(SchemeUPUI, "indicator and item reference", m[0], m[1], 13); err != nil {
		return nil, err
	}
	if err := checkChars(SchemeUPUI, "TPX", m[2], 1, upuiTPXChars); err != nil {
		return nil, err
	}
	return &UPUI{identity{SchemeUPUI, uri}, m[0], m[1], m[2]}, nil
}

func (u *UPUI) CompanyPrefix() string {
	return u.companyPrefix
}

func (u *UPUI) TPX() string {
	return UnescapeGS1(u.tpx)
}

func (u *UPUI) GTIN(t GTINType) (string, error) {
	return gtinAs(SchemeUPUI, gtin14(u.companyPrefix, u.itemRef), t)
}

func (u *UPUI) ElementString() string {
	return "(01)" + gtin14(u.companyPrefix, u.itemRef) + "(235)" + u.TPX()
}
