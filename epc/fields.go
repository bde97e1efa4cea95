/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "fmt"

func checkCompanyPrefix(s Scheme, cp string) error {
	if len(cp) < 6 || len(cp) > 12 {
		return newError(s, LengthViolation, "company prefix %q must have 6 to 12 digits", cp)
	}
	return nil
}

// checkTotal checks that the company prefix and the reference that follows
// it have exactly total digits between them.
func checkTotal(s Scheme, what, cp, ref string, total int) error {
	if err := checkCompanyPrefix(s, cp); err != nil {
		return err
	}
	if len(cp)+len(ref) != total {
		return newError(s, LengthViolation, "company prefix %s and %s %s have %d digits, but need %d",
			cp, what, ref, len(cp)+len(ref), total)
	}
	return nil
}

// checkChars checks the unescaped length of a URI component.
func checkChars(s Scheme, what, v string, min, max int) error {
	if n := unescapedLen(v); n < min || n > max {
		return newError(s, LengthViolation, "%s %q has %d characters, but must have %d to %d",
			what, v, n, min, max)
	}
	return nil
}

// pureURI assembles a pure identity URI from its components.
func pureURI(s Scheme, components ...string) string {
	uri := s.URIPrefix()
	for i, c := range components {
		if i > 0 {
			uri += "."
		}
		uri += c
	}
	return uri
}

// GTINType selects one of the GTIN formats.
type GTINType int

const (
	GTIN14 GTINType = iota
	GTIN13
	GTIN12
	GTIN8
)

func (t GTINType) digits() int {
	switch t {
	case GTIN13:
		return 13
	case GTIN12:
		return 12
	case GTIN8:
		return 8
	}
	return 14
}

func (t GTINType) String() string {
	return fmt.Sprintf("GTIN-%d", t.digits())
}

// gtin14 builds a GTIN-14 from a company prefix and an indicator digit
// followed by the item reference.
func gtin14(cp, iir string) string {
	return withCheckDigit(iir[:1] + cp + iir[1:])
}

// gtinAs shortens a GTIN-14 to another format, which only works if the digits
// it drops are all zero.
func gtinAs(s Scheme, g string, t GTINType) (string, error) {
	n := t.digits()
	for i := 0; i < len(g)-n; i++ {
		if g[i] != '0' {
			return "", newError(s, LengthViolation, "%s can't be shortened to %s", g, t)
		}
	}
	return g[len(g)-n:], nil
}

// splitGTIN14 turns a GTIN-14 back into a company prefix and indicator plus
// item reference, after checking its check digit.
func splitGTIN14(s Scheme, g string, cpLen int) (cp, iir string, err error) {
	if err := verifyCheckDigit(s, g); err != nil {
		return "", "", err
	}
	if cpLen < 6 || cpLen > 12 {
		return "", "", newError(s, LengthViolation, "company prefix length %d must be 6 to 12", cpLen)
	}
	return g[1 : 1+cpLen], g[:1] + g[1+cpLen:13], nil
}
