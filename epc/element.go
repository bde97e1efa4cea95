/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

// ParseElementString converts a GS1 element string, such as
//     (01)80614141123458(21)6789
// to the EPC it corresponds to. Element strings don't say where the company
// prefix ends, so the caller has to supply its length.
//
// Check digits in the element string are verified, not recomputed.
func ParseElementString(es string, companyPrefixLength int) (GS1Element, error) {
	if companyPrefixLength < 6 || companyPrefixLength > 12 {
		return nil, newError(0, LengthViolation, "company prefix length %d must be 6 to 12",
			companyPrefixLength)
	}
	for _, g := range elementGrammars {
		m := g.re.FindStringSubmatch(es)
		if m == nil {
			continue
		}
		uri, err := elementURI(g.scheme, m[1:], companyPrefixLength)
		if err != nil {
			return nil, err
		}
		id, err := ParsePureIdentity(uri)
		if err != nil {
			return nil, err
		}
		el, ok := id.(GS1Element)
		if !ok {
			return nil, newError(g.scheme, UnsupportedProjection, "%s has no element string", g.scheme)
		}
		return el, nil
	}
	return nil, newError(0, InvalidGrammar, "%q is not a recognized GS1 element string", es)
}

// elementURI builds a pure identity URI from the values of an element
// string's AIs.
func elementURI(s Scheme, m []string, l int) (string, error) {
	switch s {
	case SchemeSGTIN, SchemeUPUI, SchemeLGTIN:
		cp, iir, err := splitGTIN14(s, m[0], l)
		if err != nil {
			return "", err
		}
		return pureURI(s, cp, iir, EscapeGS1(m[1])), nil

	case SchemeITIP:
		cp, iir, err := splitGTIN14(s, m[0], l)
		if err != nil {
			return "", err
		}
		return pureURI(s, cp, iir, m[1], m[2], EscapeGS1(m[3])), nil

	case SchemeSSCC:
		// extension digit, company prefix, serial reference, check digit
		v := m[0]
		if err := verifyCheckDigit(s, v); err != nil {
			return "", err
		}
		return pureURI(s, v[1:1+l], v[:1]+v[1+l:17]), nil

	case SchemeSGLN:
		v := m[0]
		if err := verifyCheckDigit(s, v); err != nil {
			return "", err
		}
		ext := noExtension
		if m[1] != "" {
			ext = EscapeGS1(m[1])
		}
		return pureURI(s, v[:l], v[l:12], ext), nil

	case SchemePGLN:
		v := m[0]
		if err := verifyCheckDigit(s, v); err != nil {
			return "", err
		}
		return pureURI(s, v[:l], v[l:12]), nil

	case SchemeGRAI, SchemeGDTI, SchemeSGCN:
		// a 13 digit key followed by a serial
		v := m[0]
		if err := verifyCheckDigit(s, v); err != nil {
			return "", err
		}
		return pureURI(s, v[:l], v[l:12], EscapeGS1(m[1])), nil

	case SchemeGSRN, SchemeGSRNP:
		v := m[0]
		if err := verifyCheckDigit(s, v); err != nil {
			return "", err
		}
		return pureURI(s, v[:l], v[l:17]), nil

	case SchemeGSIN:
		v := m[0]
		if err := verifyCheckDigit(s, v); err != nil {
			return "", err
		}
		return pureURI(s, v[:l], v[l:16]), nil

	case SchemeGIAI, SchemeGINC, SchemeCPI:
		// a company prefix followed by a reference of any length
		v := m[0]
		if len(v) <= l {
			return "", newError(s, LengthViolation, "%q has nothing after its %d digit company prefix", v, l)
		}
		if !isDigits(v[:l]) {
			return "", newError(s, InvalidGrammar, "%q doesn't start with a %d digit company prefix", v, l)
		}
		if s == SchemeCPI {
			return pureURI(s, v[:l], EscapeGS1(v[l:]), m[1]), nil
		}
		return pureURI(s, v[:l], EscapeGS1(v[l:])), nil
	}
	return "", newError(s, UnsupportedProjection, "%s has no element string", s)
}
