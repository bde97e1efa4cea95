/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"strings"
)

// Scheme names an EPC identifier family.
type Scheme int

const (
	SchemeSGTIN Scheme = iota + 1
	SchemeSSCC
	SchemeSGLN
	SchemeGRAI
	SchemeGIAI
	SchemeGSRN
	SchemeGSRNP
	SchemeGDTI
	SchemeCPI
	SchemeSGCN
	SchemeGINC
	SchemeGSIN
	SchemeITIP
	SchemeUPUI
	SchemePGLN
	SchemeGID
	SchemeUSDOD
	SchemeADI
	SchemeBIC
	SchemeIMOVN
	SchemeLGTIN
)

var schemeNames = [...]string{
	SchemeSGTIN: "sgtin",
	SchemeSSCC:  "sscc",
	SchemeSGLN:  "sgln",
	SchemeGRAI:  "grai",
	SchemeGIAI:  "giai",
	SchemeGSRN:  "gsrn",
	SchemeGSRNP: "gsrnp",
	SchemeGDTI:  "gdti",
	SchemeCPI:   "cpi",
	SchemeSGCN:  "sgcn",
	SchemeGINC:  "ginc",
	SchemeGSIN:  "gsin",
	SchemeITIP:  "itip",
	SchemeUPUI:  "upui",
	SchemePGLN:  "pgln",
	SchemeGID:   "gid",
	SchemeUSDOD: "usdod",
	SchemeADI:   "adi",
	SchemeBIC:   "bic",
	SchemeIMOVN: "imovn",
	SchemeLGTIN: "lgtin",
}

const (
	pureIdentityPrefix = "urn:epc:id:"
	classPrefix        = "urn:epc:class:"
	tagURIPrefix       = "urn:epc:tag:"
	idpatPrefix        = "urn:epc:idpat:"
)

// Schemes returns every supported scheme.
func Schemes() []Scheme {
	s := make([]Scheme, 0, len(schemeNames)-1)
	for i := SchemeSGTIN; int(i) < len(schemeNames); i++ {
		s = append(s, i)
	}
	return s
}

func (s Scheme) valid() bool {
	return s > 0 && int(s) < len(schemeNames)
}

// String returns the scheme's name as it appears in URIs, e.g. "sgtin".
func (s Scheme) String() string {
	if s.valid() {
		return schemeNames[s]
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// ParseScheme returns the Scheme with the given URI name.
func ParseScheme(name string) (Scheme, error) {
	for i := SchemeSGTIN; int(i) < len(schemeNames); i++ {
		if schemeNames[i] == name {
			return i, nil
		}
	}
	return 0, newError(0, UnknownScheme, "no scheme is named %q", name)
}

// URIPrefix returns the scheme's pure identity URI prefix, including the
// final ':'. LGTIN is a class, not an instance, so it uses "urn:epc:class:".
func (s Scheme) URIPrefix() string {
	if s == SchemeLGTIN {
		return classPrefix + s.String() + ":"
	}
	return pureIdentityPrefix + s.String() + ":"
}

// Codings returns the binary coding schemes available to s, or nil if it
// isn't tag encodable.
func (s Scheme) Codings() []Coding {
	var cs []Coding
	for c := range codings {
		if codings[c].scheme == s && c != 0 {
			cs = append(cs, Coding(c))
		}
	}
	return cs
}

// FilterWidth returns the number of bits the scheme's filter value occupies
// in its binary encodings.
func (s Scheme) FilterWidth() int {
	switch s {
	case SchemeGID:
		return 0
	case SchemeUSDOD:
		return 4
	case SchemeADI:
		return 6
	}
	return 3
}

// body returns the part of a pure identity URI after the scheme's prefix.
func (s Scheme) body(uri string) string {
	return strings.TrimPrefix(uri, s.URIPrefix())
}

// Identifier is implemented by every EPC: its canonical representation is its
// pure identity URI, which is also how two EPCs should be compared.
type Identifier interface {
	Scheme() Scheme
	URI() string
}

// GS1Keyed is implemented by schemes with a GS1 primary key, such as a GTIN
// or SSCC, including its check digit where one is defined.
type GS1Keyed interface {
	Identifier
	GS1Key() string
}

// GS1Element is implemented by schemes with a GS1 element string, i.e. the
// "(AI)value" form printed beneath barcodes.
type GS1Element interface {
	Identifier
	ElementString() string
}

// TagEncodable is implemented by schemes with at least one binary coding
// scheme suitable for an RFID tag's EPC memory bank.
type TagEncodable interface {
	Identifier
	Tag(coding Coding, filter Filter) (*Tag, error)
}

// identity holds what every scheme has in common; it's embedded in each of
// the scheme types.
type identity struct {
	scheme Scheme
	uri    string
}

// Scheme returns the EPC's scheme.
func (id identity) Scheme() Scheme {
	return id.scheme
}

// URI returns the EPC's pure identity URI.
func (id identity) URI() string {
	return id.uri
}

func (id identity) String() string {
	return id.uri
}
