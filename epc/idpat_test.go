/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestParsePattern(t *testing.T) {
	for _, tt := range []struct {
		uri    string
		scheme Scheme
		comps  []string
		key    string
	}{
		{"urn:epc:idpat:sgtin:0614141.812345.*", SchemeSGTIN,
			[]string{"0614141", "812345", "*"}, "80614141123458"},
		{"urn:epc:idpat:sgtin:0614141.*.*", SchemeSGTIN,
			[]string{"0614141", "*", "*"}, "00614141000005"},
		{"urn:epc:idpat:sgtin:*.*.*", SchemeSGTIN,
			[]string{"*", "*", "*"}, "00000000000000"},
		{"urn:epc:idpat:sscc:0614141.*", SchemeSSCC,
			[]string{"0614141", "*"}, "006141410000000005"},
		{"urn:epc:idpat:grai:0614141.12345.*", SchemeGRAI,
			[]string{"0614141", "12345", "*"}, "006141411234520"},
		{"urn:epc:idpat:sgtin:0614141.812345.6789", SchemeSGTIN,
			[]string{"0614141", "812345", "6789"}, "80614141123458"},
	} {
		t.Run(tt.uri, func(t *testing.T) {
			w := expect.WrapT(t)
			p := w.StopOnMismatch().ShouldHaveResult(ParsePattern(tt.uri)).(*Pattern)
			w.ShouldBeEqual(p.Scheme(), tt.scheme)
			w.ShouldBeEqual(p.URI(), tt.uri)
			if diff := cmp.Diff(tt.comps, p.Components()); diff != "" {
				t.Errorf("components mismatch (-want +got):\n%s", diff)
			}
			w.ShouldBeEqual(w.ShouldHaveResult(p.GS1Key()), tt.key)
		})
	}
}

func TestParsePattern_invalid(t *testing.T) {
	for _, tt := range []struct {
		uri  string
		kind ErrorKind
	}{
		{"urn:epc:id:sgtin:0614141.812345.6789", InvalidGrammar},
		{"urn:epc:idpat:sgtin", InvalidGrammar},
		{"urn:epc:idpat:nope:1.2.3", UnknownScheme},
		{"urn:epc:idpat:sgtin:0614141.*.6789", InvalidGrammar},
		{"urn:epc:idpat:sgtin:*.812345.*", InvalidGrammar},
		{"urn:epc:idpat:sgtin:0614141.812345", InvalidGrammar},
		{"urn:epc:idpat:sgtin:0614141.812345.%41", InvalidEscape},
		{"urn:epc:idpat:bic:CSQU3054383", InvalidGrammar},
	} {
		t.Run(tt.uri, func(t *testing.T) {
			w := expect.WrapT(t)
			w.ShouldBeEqual(errKind(ParsePattern(tt.uri)), tt.kind)
		})
	}
}

func TestPattern_Matches(t *testing.T) {
	w := expect.WrapT(t)
	p := w.StopOnMismatch().ShouldHaveResult(
		ParsePattern("urn:epc:idpat:sgtin:0614141.812345.*")).(*Pattern)

	for uri, matches := range map[string]bool{
		"urn:epc:id:sgtin:0614141.812345.6789":  true,
		"urn:epc:id:sgtin:0614141.812346.6789":  false,
		"urn:epc:id:sgtin:0614142.812345.6789":  false,
		"urn:epc:id:sscc:0614141.1234567890":    false,
	} {
		id := w.StopOnMismatch().As(uri).ShouldHaveResult(ParsePureIdentity(uri)).(Identifier)
		w.As(uri).ShouldBeEqual(p.Matches(id), matches)
	}

	exact := w.StopOnMismatch().ShouldHaveResult(
		ParsePattern("urn:epc:idpat:sscc:0614141.1234567890")).(*Pattern)
	sscc := w.StopOnMismatch().ShouldHaveResult(
		ParsePureIdentity("urn:epc:id:sscc:0614141.1234567890")).(Identifier)
	w.ShouldBeTrue(exact.Matches(sscc))
}

func TestPattern_Tag(t *testing.T) {
	w := expect.WrapT(t)
	p := w.StopOnMismatch().ShouldHaveResult(
		ParsePattern("urn:epc:idpat:sgtin:0614141.812345.*")).(*Pattern)
	w.ShouldBeEqual(errKind(p.Tag(SGTIN96, 3)), NotConvertible)
}
