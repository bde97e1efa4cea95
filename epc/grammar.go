/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"regexp"
	"strings"
)

// Component grammars shared by the URI forms.
const (
	paddedNumeric   = `[0-9]+`
	optionalNumeric = `[0-9]*`
	integerNumeric  = `(?:0|[1-9][0-9]*)`
	twoDigits       = `[0-9]{2}`

	// GS1 AI encodable characters, with `"%&/<>?` escaped
	gs3a3 = `(?:[!'()*+,\-.0-9:;=A-Z_a-z]|%2[256F]|%3[CEF])+`
	// AI component/part characters, with # and / escaped
	cpref = `(?:[0-9A-Z\-]|%2[3F])+`

	cageCode   = `[0-9A-HJ-NP-Z]{5,6}`
	adiPart    = `(?:[0-9A-Z\-]|%2F)*`
	adiSerial  = `(?:%23)?(?:[0-9A-Z\-]|%2F)+`
	bicCode    = `[A-Z]{3}[UJZ][0-9]{7}`
	imoNumber  = `[0-9]{7}`
	aiChar     = `[!"%&'()*+,\-./0-9:;<=>?A-Z_a-z]`
	cpChar     = `[0-9A-Z#\-/]`
	wildcard   = `\*`
	separator  = `\.`
)

// uriGrammar holds the compiled grammars of a scheme's URI forms. Pattern
// and tag grammars are only compiled for tag encodable schemes.
type uriGrammar struct {
	components []string
	pure       *regexp.Regexp
	idpat      *regexp.Regexp
	tag        *regexp.Regexp
}

var schemeComponents = map[Scheme][]string{
	SchemeSGTIN: {paddedNumeric, paddedNumeric, gs3a3},
	SchemeSSCC:  {paddedNumeric, paddedNumeric},
	SchemeSGLN:  {paddedNumeric, optionalNumeric, gs3a3},
	SchemeGRAI:  {paddedNumeric, optionalNumeric, gs3a3},
	SchemeGIAI:  {paddedNumeric, gs3a3},
	SchemeGSRN:  {paddedNumeric, paddedNumeric},
	SchemeGSRNP: {paddedNumeric, paddedNumeric},
	SchemeGDTI:  {paddedNumeric, optionalNumeric, gs3a3},
	SchemeCPI:   {paddedNumeric, cpref, integerNumeric},
	SchemeSGCN:  {paddedNumeric, optionalNumeric, paddedNumeric},
	SchemeGINC:  {paddedNumeric, gs3a3},
	SchemeGSIN:  {paddedNumeric, paddedNumeric},
	SchemeITIP:  {paddedNumeric, paddedNumeric, twoDigits, twoDigits, gs3a3},
	SchemeUPUI:  {paddedNumeric, paddedNumeric, gs3a3},
	SchemePGLN:  {paddedNumeric, optionalNumeric},
	SchemeGID:   {integerNumeric, integerNumeric, integerNumeric},
	SchemeUSDOD: {cageCode, integerNumeric},
	SchemeADI:   {cageCode, adiPart, adiSerial},
	SchemeBIC:   {bicCode},
	SchemeIMOVN: {imoNumber},
	SchemeLGTIN: {paddedNumeric, paddedNumeric, gs3a3},
}

var grammars = compileGrammars()

func group(re string) string {
	return "(" + re + ")"
}

func compileGrammars() map[Scheme]*uriGrammar {
	m := make(map[Scheme]*uriGrammar, len(schemeComponents))
	for s, comps := range schemeComponents {
		pure := make([]string, len(comps))
		pattern := make([]string, len(comps))
		for i, c := range comps {
			pure[i] = group(c)
			pattern[i] = group(wildcard + "|" + c)
		}
		body := strings.Join(pure, separator)

		g := &uriGrammar{
			components: comps,
			pure:       regexp.MustCompile("^" + regexp.QuoteMeta(s.URIPrefix()) + body + "$"),
		}

		if cs := s.Codings(); len(cs) > 0 {
			names := make([]string, len(cs))
			for i, c := range cs {
				names[i] = regexp.QuoteMeta(c.String())
			}
			filter := ""
			if s.FilterWidth() != 0 {
				filter = group(integerNumeric) + separator
			}
			g.tag = regexp.MustCompile("^" + regexp.QuoteMeta(tagURIPrefix) +
				group(strings.Join(names, "|")) + ":" + filter + group(body) + "$")
			g.idpat = regexp.MustCompile("^" + regexp.QuoteMeta(idpatPrefix+s.String()+":") +
				strings.Join(pattern, separator) + "$")
		}
		m[s] = g
	}
	return m
}

func grammarOf(s Scheme) *uriGrammar {
	return grammars[s]
}

// matchPure checks uri against the scheme's pure identity grammar and
// returns its components.
func matchPure(s Scheme, uri string) ([]string, error) {
	if !strings.HasPrefix(uri, s.URIPrefix()) {
		return nil, newError(s, InvalidGrammar, "%q doesn't start with %s", uri, s.URIPrefix())
	}
	if err := checkEscapes(s, uri); err != nil {
		return nil, err
	}
	m := grammarOf(s).pure.FindStringSubmatch(uri)
	if m == nil {
		return nil, newError(s, InvalidGrammar, "%q is not a valid %s URI", uri, s)
	}
	return m[1:], nil
}

// elementGrammar matches a GS1 element string for one scheme.
type elementGrammar struct {
	scheme Scheme
	re     *regexp.Regexp
}

func aiChars(min, max string) string {
	return aiChar + "{" + min + "," + max + "}"
}

// elementGrammars are tried in order; the first match wins.
var elementGrammars = []elementGrammar{
	{SchemeSGTIN, regexp.MustCompile(`^\(01\)([0-9]{14})\(21\)(` + aiChars("1", "20") + `)$`)},
	{SchemeUPUI, regexp.MustCompile(`^\(01\)([0-9]{14})\(235\)(` + aiChars("1", "28") + `)$`)},
	{SchemeLGTIN, regexp.MustCompile(`^\(01\)([0-9]{14})\(10\)(` + aiChars("1", "20") + `)$`)},
	{SchemeSSCC, regexp.MustCompile(`^\(00\)([0-9]{18})$`)},
	{SchemeSGLN, regexp.MustCompile(`^\(414\)([0-9]{13})(?:\(254\)(` + aiChars("1", "20") + `))?$`)},
	{SchemeGRAI, regexp.MustCompile(`^\(8003\)0([0-9]{13})(` + aiChars("1", "16") + `)$`)},
	{SchemeGIAI, regexp.MustCompile(`^\(8004\)(` + aiChars("1", "30") + `)$`)},
	{SchemeGSRN, regexp.MustCompile(`^\(8018\)([0-9]{18})$`)},
	{SchemeGSRNP, regexp.MustCompile(`^\(8017\)([0-9]{18})$`)},
	{SchemeGDTI, regexp.MustCompile(`^\(253\)([0-9]{13})(` + aiChars("1", "17") + `)$`)},
	{SchemeCPI, regexp.MustCompile(`^\(8010\)(` + cpChar + `{1,30})\(8011\)([0-9]{1,12})$`)},
	{SchemeSGCN, regexp.MustCompile(`^\(255\)([0-9]{13})([0-9]{1,12})$`)},
	{SchemeGINC, regexp.MustCompile(`^\(401\)(` + aiChars("1", "30") + `)$`)},
	{SchemeGSIN, regexp.MustCompile(`^\(402\)([0-9]{17})$`)},
	{SchemeITIP, regexp.MustCompile(`^\(8006\)([0-9]{14})([0-9]{2})([0-9]{2})\(21\)(` + aiChars("1", "20") + `)$`)},
	{SchemePGLN, regexp.MustCompile(`^\(417\)([0-9]{13})$`)},
}

// Headers of every coding, as hex and as binary, for recognizing payloads.
var (
	hexPayloadGrammar    = compileHeaderGrammar("%02X", `[0-9A-Fa-f]*`)
	binaryPayloadGrammar = compileHeaderGrammar("%08b", `[01]*`)
)

func compileHeaderGrammar(format, rest string) *regexp.Regexp {
	names := make([]string, 0, len(codings))
	for c := SGTIN96; int(c) < len(codings); c++ {
		names = append(names, fmt.Sprintf(format, c.Header()))
	}
	return regexp.MustCompile("(?i)^(?:" + strings.Join(names, "|") + ")" + rest + "$")
}
