/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "strings"

// patternSlot says what stands in for a wildcard component when a Pattern is
// projected to a GS1 key.
type patternSlot struct {
	sentinel string
	// fill is non-zero for a reference that must pad the company prefix out
	// to this many digits.
	fill int
}

var (
	prefixSlot = patternSlot{sentinel: zeros(6)}
	zeroSlot   = patternSlot{sentinel: "0"}
)

var patternSlots = map[Scheme][]patternSlot{
	SchemeSGTIN: {prefixSlot, {fill: 13}, zeroSlot},
	SchemeSSCC:  {prefixSlot, {fill: 17}},
	SchemeSGLN:  {prefixSlot, {fill: 12}, zeroSlot},
	SchemeGRAI:  {prefixSlot, {fill: 12}, zeroSlot},
	SchemeGIAI:  {prefixSlot, zeroSlot},
	SchemeGSRN:  {prefixSlot, {fill: 17}},
	SchemeGSRNP: {prefixSlot, {fill: 17}},
	SchemeGDTI:  {prefixSlot, {fill: 12}, zeroSlot},
	SchemeCPI:   {prefixSlot, zeroSlot, zeroSlot},
	SchemeSGCN:  {prefixSlot, {fill: 12}, zeroSlot},
	SchemeITIP:  {prefixSlot, {fill: 13}, {sentinel: "00"}, {sentinel: "00"}, zeroSlot},
	SchemeGID:   {zeroSlot, zeroSlot, zeroSlot},
	SchemeUSDOD: {{sentinel: zeros(5)}, zeroSlot},
	SchemeADI:   {{sentinel: zeros(5)}, {}, zeroSlot},
}

// Pattern is an EPC pure identity pattern URI, which denotes every EPC whose
// components match its own, with '*' matching anything:
//     urn:epc:idpat:sgtin:0614141.112345.*
// Only trailing components may be wildcards.
type Pattern struct {
	identity
	components []string
	// concrete is the pattern with its wildcards replaced by sentinels.
	concrete Identifier
}

// ParsePattern parses an EPC pure identity pattern URI.
func ParsePattern(uri string) (*Pattern, error) {
	if !strings.HasPrefix(uri, idpatPrefix) {
		return nil, newError(0, InvalidGrammar, "%q doesn't start with %s", uri, idpatPrefix)
	}
	rest := uri[len(idpatPrefix):]
	i := strings.IndexByte(rest, ':')
	if i < 0 {
		return nil, newError(0, InvalidGrammar, "%q has no scheme", uri)
	}
	s, err := ParseScheme(rest[:i])
	if err != nil {
		return nil, err
	}
	g := grammarOf(s)
	if g.idpat == nil {
		return nil, newError(s, InvalidGrammar, "%s has no pattern URI form", s)
	}
	if err := checkEscapes(s, uri); err != nil {
		return nil, err
	}
	m := g.idpat.FindStringSubmatch(uri)
	if m == nil {
		return nil, newError(s, InvalidGrammar, "%q is not a valid %s pattern", uri, s)
	}

	comps := m[1:]
	slots := patternSlots[s]
	concrete := make([]string, len(comps))
	wild := false
	for i, c := range comps {
		if c != "*" {
			if wild {
				return nil, newError(s, InvalidGrammar, "component %d of %q follows a wildcard", i, uri)
			}
			concrete[i] = c
			continue
		}
		wild = true
		if slots[i].fill > 0 {
			concrete[i] = zeros(slots[i].fill - len(concrete[0]))
		} else {
			concrete[i] = slots[i].sentinel
		}
	}

	id, err := ParsePureIdentity(pureURI(s, concrete...))
	if err != nil {
		return nil, err
	}
	return &Pattern{
		identity:   identity{s, uri},
		components: append([]string(nil), comps...),
		concrete:   id,
	}, nil
}

// Components returns the pattern's components; wildcards are "*".
func (p *Pattern) Components() []string {
	return append([]string(nil), p.components...)
}

// Matches returns true if id is one of the EPCs the pattern denotes.
func (p *Pattern) Matches(id Identifier) bool {
	if id.Scheme() != p.scheme {
		return false
	}
	comps := strings.SplitN(p.scheme.body(id.URI()), ".", len(p.components))
	if len(comps) != len(p.components) {
		return false
	}
	for i, c := range p.components {
		if c != "*" && c != comps[i] {
			return false
		}
	}
	return true
}

// GS1Key returns the GS1 key of the pattern's EPCs, with zeros in place of
// the wildcards.
func (p *Pattern) GS1Key() (string, error) {
	return projectKey(p.concrete, GTIN14)
}

// Tag always fails: a pattern denotes many EPCs, so it has no single
// binary encoding.
func (p *Pattern) Tag(coding Coding, filter Filter) (*Tag, error) {
	return nil, newError(p.scheme, NotConvertible, "a pattern can't be encoded as a tag")
}
