/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "github.com/intel/rsp-sw-toolkit-im-suite-epc/bitextract"

const (
	sglnExtensionChars = 20
	sgln96ExtBits      = 41
	sgln195ExtBits     = 140

	// noExtension is the extension of an SGLN that identifies the location
	// as a whole.
	noExtension = "0"
)

// SGLN is a Global Location Number with an extension to identify a
// particular place within the location.
type SGLN struct {
	identity
	companyPrefix string
	locationRef   string
	extension     string // escaped
}

// ParseSGLN parses urn:epc:id:sgln:CompanyPrefix.LocationReference.Extension
func ParseSGLN(uri string) (*SGLN, error) {
	m, err := matchPure(SchemeSGLN, uri)
	if err != nil {
		return nil, err
	}
	if err := checkTotal(SchemeSGLN, "location reference", m[0], m[1], 12); err != nil {
		return nil, err
	}
	if err := checkChars(SchemeSGLN, "extension", m[2], 1, sglnExtensionChars); err != nil {
		return nil, err
	}
	return &SGLN{identity{SchemeSGLN, uri}, m[0], m[1], m[2]}, nil
}

func (s *SGLN) CompanyPrefix() string {
	return s.companyPrefix
}

func (s *SGLN) LocationReference() string {
	return s.locationRef
}

// Extension returns the unescaped extension.
func (s *SGLN) Extension() string {
	return UnescapeGS1(s.extension)
}

// GS1Key returns the 13 digit GLN.
func (s *SGLN) GS1Key() string {
	return withCheckDigit(s.companyPrefix + s.locationRef)
}

// ElementString omits the extension when it's "0".
func (s *SGLN) ElementString() string {
	if s.extension == noExtension {
		return "(414)" + s.GS1Key()
	}
	return "(414)" + s.GS1Key() + "(254)" + s.Extension()
}

func (s *SGLN) Tag(coding Coding, filter Filter) (*Tag, error) {
	return newTag(s, coding, filter)
}

func (s *SGLN) encodeTag(w *bitextract.Writer, coding Coding) error {
	if coding == SGLN96 {
		ext, err := parseInteger(SchemeSGLN, "extension", s.extension, sgln96ExtBits)
		if err != nil {
			return err
		}
		if err := sglnPartitions.encode(w, SchemeSGLN, s.companyPrefix, s.locationRef); err != nil {
			return err
		}
		w.WriteUInt64(ext, sgln96ExtBits)
		return nil
	}
	if err := sglnPartitions.encode(w, SchemeSGLN, s.companyPrefix, s.locationRef); err != nil {
		return err
	}
	return encodeSevenBit(w, SchemeSGLN, s.extension, sglnExtensionChars, sgln195ExtBits)
}

func decodeSGLN(r *tagReader) (tagEncoder, error) {
	cp, loc, err := r.partitioned(sglnPartitions)
	if err != nil {
		return nil, err
	}
	var ext string
	if r.coding == SGLN96 {
		ext, err = r.integer(sgln96ExtBits)
	} else {
		ext, err = r.sevenBit(sgln195ExtBits)
	}
	if err != nil {
		return nil, err
	}
	return ParseSGLN(pureURI(SchemeSGLN, cp, loc, ext))
}
