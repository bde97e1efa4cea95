/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

// IMOVN is an IMO ship identification number.
type IMOVN struct {
	identity
	number string
}

// ParseIMOVN parses urn:epc:id:imovn:IMOvesselNumber
func ParseIMOVN(uri string) (*IMOVN, error) {
	m, err := matchPure(SchemeIMOVN, uri)
	if err != nil {
		return nil, err
	}
	n := m[0]
	if want := imoCheckDigit(n); n[6] != want {
		return nil, newError(SchemeIMOVN, InvalidChecksum, "%s should end with check digit %c", n, want)
	}
	return &IMOVN{identity{SchemeIMOVN, uri}, n}, nil
}

// VesselNumber returns the 7 digit number, without the "IMO" prefix.
func (v *IMOVN) VesselNumber() string {
	return v.number
}
