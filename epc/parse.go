/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "strings"

type parseOptions struct {
	companyPrefixLength int
	gtinType            GTINType
}

// ParseOption configures Parse and GS1Key.
type ParseOption func(*parseOptions)

// WithCompanyPrefixLength sets the company prefix length used to split GS1
// element strings. Parse can't convert element strings without it.
func WithCompanyPrefixLength(n int) ParseOption {
	return func(o *parseOptions) {
		o.companyPrefixLength = n
	}
}

// WithGTINType sets the format of GTINs returned by GS1Key.
func WithGTINType(t GTINType) ParseOption {
	return func(o *parseOptions) {
		o.gtinType = t
	}
}

func newParseOptions(opts []ParseOption) parseOptions {
	o := parseOptions{gtinType: GTIN14}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ParsePureIdentity parses a pure identity URI of any scheme, including an
// LGTIN class URI.
func ParsePureIdentity(uri string) (Identifier, error) {
	var rest string
	switch {
	case strings.HasPrefix(uri, pureIdentityPrefix):
		rest = uri[len(pureIdentityPrefix):]
	case strings.HasPrefix(uri, classPrefix):
		rest = uri[len(classPrefix):]
	default:
		return nil, newError(0, InvalidGrammar, "%q is not an EPC pure identity URI", uri)
	}
	i := strings.IndexByte(rest, ':')
	if i < 0 {
		return nil, newError(0, InvalidGrammar, "%q has no scheme", uri)
	}
	s, err := ParseScheme(rest[:i])
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(uri, s.URIPrefix()) {
		return nil, newError(s, UnknownScheme, "%s URIs start with %s", s, s.URIPrefix())
	}

	switch s {
	case SchemeSGTIN:
		return identify(ParseSGTIN(uri))
	case SchemeSSCC:
		return identify(ParseSSCC(uri))
	case SchemeSGLN:
		return identify(ParseSGLN(uri))
	case SchemeGRAI:
		return identify(ParseGRAI(uri))
	case SchemeGIAI:
		return identify(ParseGIAI(uri))
	case SchemeGSRN:
		return identify(ParseGSRN(uri))
	case SchemeGSRNP:
		return identify(ParseGSRNP(uri))
	case SchemeGDTI:
		return identify(ParseGDTI(uri))
	case SchemeCPI:
		return identify(ParseCPI(uri))
	case SchemeSGCN:
		return identify(ParseSGCN(uri))
	case SchemeGINC:
		return identify(ParseGINC(uri))
	case SchemeGSIN:
		return identify(ParseGSIN(uri))
	case SchemeITIP:
		return identify(ParseITIP(uri))
	case SchemeUPUI:
		return identify(ParseUPUI(uri))
	case SchemePGLN:
		return identify(ParsePGLN(uri))
	case SchemeGID:
		return identify(ParseGID(uri))
	case SchemeUSDOD:
		return identify(ParseUSDOD(uri))
	case SchemeADI:
		return identify(ParseADI(uri))
	case SchemeBIC:
		return identify(ParseBIC(uri))
	case SchemeIMOVN:
		return identify(ParseIMOVN(uri))
	case SchemeLGTIN:
		return identify(ParseLGTIN(uri))
	}
	return nil, newError(s, UnknownScheme, "no parser for %s", s)
}

// Parse recognizes any of the EPC representations and returns the EPC it
// represents. Inputs are tried as, in order:
//  - a pure identity or class URI
//  - a tag URI, whose filter and coding are dropped
//  - a pure identity pattern URI, returned as a *Pattern
//  - a binary string of '0' and '1' starting with a known header
//  - a hex payload starting with a known header
//  - a GS1 element string, which needs WithCompanyPrefixLength
// The first form that matches decides how the input is parsed; if it then
// fails, its error is returned. Anything else is AmbiguousInput.
func Parse(source string, opts ...ParseOption) (Identifier, error) {
	o := newParseOptions(opts)
	switch {
	case strings.HasPrefix(source, pureIdentityPrefix), strings.HasPrefix(source, classPrefix):
		return ParsePureIdentity(source)
	case strings.HasPrefix(source, tagURIPrefix):
		return tagIdentity(DecodeTagURI(source))
	case strings.HasPrefix(source, idpatPrefix):
		return identify(ParsePattern(source))
	case binaryPayloadGrammar.MatchString(source):
		return tagIdentity(DecodeBinary(source))
	case hexPayloadGrammar.MatchString(source):
		return tagIdentity(DecodeHex(source))
	case strings.HasPrefix(source, "("):
		if o.companyPrefixLength == 0 {
			return nil, newError(0, LengthViolation, "the company prefix length is needed to parse %q", source)
		}
		return ParseElementString(source, o.companyPrefixLength)
	}
	return nil, newError(0, AmbiguousInput, "%q is not a recognized EPC representation", source)
}

// identify keeps a failed parse from returning a typed nil Identifier.
func identify[T Identifier](id T, err error) (Identifier, error) {
	if err != nil {
		return nil, err
	}
	return id, nil
}

func tagIdentity(t *Tag, err error) (Identifier, error) {
	if err != nil {
		return nil, err
	}
	return t.Identity(), nil
}

// GS1Key parses source as Parse does and returns its GS1 key. GTINs are
// returned as GTIN-14 unless WithGTINType says otherwise.
func GS1Key(source string, opts ...ParseOption) (string, error) {
	o := newParseOptions(opts)
	id, err := Parse(source, opts...)
	if err != nil {
		return "", err
	}
	if p, ok := id.(*Pattern); ok {
		return projectKey(p.concrete, o.gtinType)
	}
	return projectKey(id, o.gtinType)
}

type gtinFormatter interface {
	GTIN(t GTINType) (string, error)
}

func projectKey(id Identifier, t GTINType) (string, error) {
	keyed, ok := id.(GS1Keyed)
	if !ok {
		return "", newError(id.Scheme(), UnsupportedProjection, "%s has no GS1 key", id.Scheme())
	}
	if g, ok := id.(gtinFormatter); ok && t != GTIN14 {
		return g.GTIN(t)
	}
	return keyed.GS1Key(), nil
}
