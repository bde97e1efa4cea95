/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "github.com/intel/rsp-sw-toolkit-im-suite-epc/bitextract"

const giaiMaxChars = 30

// GIAI is a Global Individual Asset Identifier.
type GIAI struct {
	identity
	companyPrefix string
	assetRef      string // escaped
}

// ParseGIAI parses urn:epc:id:giai:CompanyPrefix.IndividualAssetReference
func ParseGIAI(uri string) (*GIAI, error) {
	m, err := matchPure(SchemeGIAI, uri)
	if err != nil {
		return nil, err
	}
	if err := checkCompanyPrefix(SchemeGIAI, m[0]); err != nil {
		return nil, err
	}
	if err := checkChars(SchemeGIAI, "asset reference", m[1], 1, giaiMaxChars-len(m[0])); err != nil {
		return nil, err
	}
	return &GIAI{identity{SchemeGIAI, uri}, m[0], m[1]}, nil
}

func (g *GIAI) CompanyPrefix() string {
	return g.companyPrefix
}

func (g *GIAI) AssetReference() string {
	return UnescapeGS1(g.assetRef)
}

func (g *GIAI) GS1Key() string {
	return g.companyPrefix + g.AssetReference()
}

func (g *GIAI) ElementString() string {
	return "(8004)" + g.GS1Key()
}

// Tag encodes the GIAI as GIAI96, which needs a numeric asset reference, or
// GIAI202.
func (g *GIAI) Tag(coding Coding, filter Filter) (*Tag, error) {
	return newTag(g, coding, filter)
}

func (g *GIAI) encodeTag(w *bitextract.Writer, coding Coding) error {
	if coding == GIAI96 {
		return giai96Partitions.encode(w, SchemeGIAI, g.companyPrefix, g.assetRef)
	}
	return giai202Partitions.encode(w, SchemeGIAI, g.companyPrefix, g.assetRef)
}

func decodeGIAI(r *tagReader) (tagEncoder, error) {
	t := giai202Partitions
	if r.coding == GIAI96 {
		t = giai96Partitions
	}
	cp, ref, err := r.partitioned(t)
	if err != nil {
		return nil, err
	}
	return ParseGIAI(pureURI(SchemeGIAI, cp, ref))
}
