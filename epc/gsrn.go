/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "github.com/intel/rsp-sw-toolkit-im-suite-epc/bitextract"

const gsrnReservedBits = 24

// serviceRelation is shared by GSRN and GSRNP, which differ only in whether
// the service relation is identified from the provider's or the recipient's
// side.
type serviceRelation struct {
	identity
	companyPrefix string
	serviceRef    string
}

func parseServiceRelation(s Scheme, uri string) (serviceRelation, error) {
	m, err := matchPure(s, uri)
	if err != nil {
		return serviceRelation{}, err
	}
	if err := checkTotal(s, "service reference", m[0], m[1], 17); err != nil {
		return serviceRelation{}, err
	}
	return serviceRelation{identity{s, uri}, m[0], m[1]}, nil
}

func (sr *serviceRelation) CompanyPrefix() string {
	return sr.companyPrefix
}

func (sr *serviceRelation) ServiceReference() string {
	return sr.serviceRef
}

// GS1Key returns the 18 digit service relation number.
func (sr *serviceRelation) GS1Key() string {
	return withCheckDigit(sr.companyPrefix + sr.serviceRef)
}

func (sr *serviceRelation) ElementString() string {
	if sr.scheme == SchemeGSRNP {
		return "(8017)" + sr.GS1Key()
	}
	return "(8018)" + sr.GS1Key()
}

func (sr *serviceRelation) encodeTag(w *bitextract.Writer, coding Coding) error {
	if err := gsrnPartitions.encode(w, sr.scheme, sr.companyPrefix, sr.serviceRef); err != nil {
		return err
	}
	w.WriteZeros(gsrnReservedBits)
	return nil
}

func (r *tagReader) serviceRelationURI() (uri string, err error) {
	cp, ref, err := r.partitioned(gsrnPartitions)
	if err != nil {
		return "", err
	}
	if err := r.reserved(gsrnReservedBits); err != nil {
		return "", err
	}
	return pureURI(r.scheme(), cp, ref), nil
}

// GSRN is a Global Service Relation Number identifying the recipient of a
// service.
type GSRN struct {
	serviceRelation
}

// ParseGSRN parses urn:epc:id:gsrn:CompanyPrefix.ServiceReference
func ParseGSRN(uri string) (*GSRN, error) {
	sr, err := parseServiceRelation(SchemeGSRN, uri)
	if err != nil {
		return nil, err
	}
	return &GSRN{sr}, nil
}

func (g *GSRN) Tag(coding Coding, filter Filter) (*Tag, error) {
	return newTag(g, coding, filter)
}

func decodeGSRN(r *tagReader) (tagEncoder, error) {
	uri, err := r.serviceRelationURI()
	if err != nil {
		return nil, err
	}
	return ParseGSRN(uri)
}

// GSRNP is a Global Service Relation Number identifying the provider of a
// service.
type GSRNP struct {
	serviceRelation
}

// ParseGSRNP parses urn:epc:id:gsrnp:CompanyPrefix.ServiceReference
func ParseGSRNP(uri string) (*GSRNP, error) {
	sr, err := parseServiceRelation(SchemeGSRNP, uri)
	if err != nil {
		return nil, err
	}
	return &GSRNP{sr}, nil
}

func (g *GSRNP) Tag(coding Coding, filter Filter) (*Tag, error) {
	return newTag(g, coding, filter)
}

func decodeGSRNP(r *tagReader) (tagEncoder, error) {
	uri, err := r.serviceRelationURI()
	if err != nil {
		return nil, err
	}
	return ParseGSRNP(uri)
}
