/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

// BIC is an ISO 6346 intermodal container code, as registered with the
// Bureau International des Containers: a 3 letter owner code, an equipment
// category of U, J, or Z, a 6 digit serial, and a check digit.
type BIC struct {
	identity
	code string
}

// ParseBIC parses urn:epc:id:bic:BICContainerCode
func ParseBIC(uri string) (*BIC, error) {
	m, err := matchPure(SchemeBIC, uri)
	if err != nil {
		return nil, err
	}
	code := m[0]
	if want := bicCheckDigit(code); code[10] != want {
		return nil, newError(SchemeBIC, InvalidChecksum, "%s should end with check digit %c", code, want)
	}
	return &BIC{identity{SchemeBIC, uri}, code}, nil
}

// ContainerCode returns all 11 characters of the code.
func (b *BIC) ContainerCode() string {
	return b.code
}

func (b *BIC) OwnerCode() string {
	return b.code[:3]
}

func (b *BIC) EquipmentCategory() string {
	return b.code[3:4]
}

func (b *BIC) SerialNumber() string {
	return b.code[4:10]
}

func (b *BIC) CheckDigit() string {
	return b.code[10:]
}
