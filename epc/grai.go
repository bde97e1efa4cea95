/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "github.com/intel/rsp-sw-toolkit-im-suite-epc/bitextract"

const (
	graiSerialChars   = 16
	grai96SerialBits  = 38
	grai170SerialBits = 112
)

// GRAI is a Global Returnable Asset Identifier: an asset type and a serial
// number for one asset of that type.
type GRAI struct {
	identity
	companyPrefix string
	assetType     string
	serial        string // escaped
}

// ParseGRAI parses urn:epc:id:grai:CompanyPrefix.AssetType.SerialNumber
func ParseGRAI(uri string) (*GRAI, error) {
	m, err := matchPure(SchemeGRAI, uri)
	if err != nil {
		return nil, err
	}
	if err := checkTotal(SchemeGRAI, "asset type", m[0], m[1], 12); err != nil {
		return nil, err
	}
	if err := checkChars(SchemeGRAI, "serial", m[2], 1, graiSerialChars); err != nil {
		return nil, err
	}
	return &GRAI{identity{SchemeGRAI, uri}, m[0], m[1], m[2]}, nil
}

func (g *GRAI) CompanyPrefix() string {
	return g.companyPrefix
}

func (g *GRAI) AssetType() string {
	return g.assetType
}

func (g *GRAI) Serial() string {
	return UnescapeGS1(g.serial)
}

// GS1Key returns the GRAI as it's written after AI 8003: a zero, the asset
// type with its check digit, then the serial.
func (g *GRAI) GS1Key() string {
	return "0" + withCheckDigit(g.companyPrefix+g.assetType) + g.Serial()
}

func (g *GRAI) ElementString() string {
	return "(8003)" + g.GS1Key()
}

func (g *GRAI) Tag(coding Coding, filter Filter) (*Tag, error) {
	return newTag(g, coding, filter)
}

func (g *GRAI) encodeTag(w *bitextract.Writer, coding Coding) error {
	if coding == GRAI96 {
		serial, err := parseInteger(SchemeGRAI, "serial", g.serial, grai96SerialBits)
		if err != nil {
			return err
		}
		if err := graiPartitions.encode(w, SchemeGRAI, g.companyPrefix, g.assetType); err != nil {
			return err
		}
		w.WriteUInt64(serial, grai96SerialBits)
		return nil
	}
	if err := graiPartitions.encode(w, SchemeGRAI, g.companyPrefix, g.assetType); err != nil {
		return err
	}
	return encodeSevenBit(w, SchemeGRAI, g.serial, graiSerialChars, grai170SerialBits)
}

func decodeGRAI(r *tagReader) (tagEncoder, error) {
	cp, at, err := r.partitioned(graiPartitions)
	if err != nil {
		return nil, err
	}
	var serial string
	if r.coding == GRAI96 {
		serial, err = r.integer(grai96SerialBits)
	} else {
		serial, err = r.sevenBit(grai170SerialBits)
	}
	if err != nil {
		return nil, err
	}
	return ParseGRAI(pureURI(SchemeGRAI, cp, at, serial))
}
