/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestParseElementString(t *testing.T) {
	for _, tt := range []struct {
		es  string
		cpl int
		uri string
	}{
		{"(01)80614141123458(21)6789", 7, "urn:epc:id:sgtin:0614141.812345.6789"},
		{"(01)80614141123458(21)6789", 9, "urn:epc:id:sgtin:061414112.8345.6789"},
		{"(00)106141412345678908", 7, "urn:epc:id:sscc:0614141.1234567890"},
		{"(414)0614141123452(254)5678", 7, "urn:epc:id:sgln:0614141.12345.5678"},
		{"(414)0614141123452", 7, "urn:epc:id:sgln:0614141.12345.0"},
		{"(8003)00614141123452400", 7, "urn:epc:id:grai:0614141.12345.400"},
		{"(8004)061414112345400", 7, "urn:epc:id:giai:0614141.12345400"},
		{"(8018)061414112345678902", 7, "urn:epc:id:gsrn:0614141.1234567890"},
		{"(8017)061414112345678902", 7, "urn:epc:id:gsrnp:0614141.1234567890"},
		{"(253)0614141123452ABC", 7, "urn:epc:id:gdti:0614141.12345.ABC"},
		{"(255)401234567890104711", 7, "urn:epc:id:sgcn:4012345.67890.04711"},
		{"(401)0614141xyz47", 7, "urn:epc:id:ginc:0614141.xyz47"},
		{"(402)06141411234567890", 7, "urn:epc:id:gsin:0614141.123456789"},
		{"(417)0614141123452", 7, "urn:epc:id:pgln:0614141.12345"},
		{"(8006)806141411234580102(21)ABC", 7, "urn:epc:id:itip:0614141.812345.01.02.ABC"},
	} {
		t.Run(tt.es, func(t *testing.T) {
			w := expect.WrapT(t)
			el := w.StopOnMismatch().ShouldHaveResult(
				ParseElementString(tt.es, tt.cpl)).(GS1Element)
			w.ShouldBeEqual(el.URI(), tt.uri)
			w.ShouldBeEqual(el.ElementString(), tt.es)
		})
	}
}

func TestParseElementString_escapes(t *testing.T) {
	w := expect.WrapT(t)
	el := w.StopOnMismatch().ShouldHaveResult(
		ParseElementString("(01)80614141123458(21)A/B", 7)).(GS1Element)
	w.ShouldBeEqual(el.URI(), "urn:epc:id:sgtin:0614141.812345.A%2FB")
	w.ShouldBeEqual(el.ElementString(), "(01)80614141123458(21)A/B")
}

func TestParseElementString_invalid(t *testing.T) {
	for _, tt := range []struct {
		name string
		es   string
		cpl  int
		kind ErrorKind
	}{
		{"bad SSCC check digit", "(00)106141412345678909", 7, InvalidChecksum},
		{"bad GTIN check digit", "(01)80614141123459(21)6789", 7, InvalidChecksum},
		{"bad GLN check digit", "(414)0614141123453", 7, InvalidChecksum},
		{"short prefix", "(00)106141412345678908", 5, LengthViolation},
		{"long prefix", "(00)106141412345678908", 13, LengthViolation},
		{"unknown AI", "(99)12345", 7, InvalidGrammar},
		{"no AI", "80614141123458", 7, InvalidGrammar},
		{"GIAI prefix only", "(8004)0614141", 7, LengthViolation},
		{"space in serial", "(01)80614141123458(21)67 89", 7, InvalidGrammar},
	} {
		t.Run(tt.name, func(t *testing.T) {
			w := expect.WrapT(t)
			w.ShouldBeEqual(errKind(ParseElementString(tt.es, tt.cpl)), tt.kind)
		})
	}
}

func TestElementString(t *testing.T) {
	for _, tt := range []struct {
		uri, key, es string
	}{
		{"urn:epc:id:gdti:0614141.12345.ABCD1234%2F",
			"0614141123452ABCD1234/", "(253)0614141123452ABCD1234/"},
		{"urn:epc:id:gsin:061414.0123456789",
			"06141401234567891", "(402)06141401234567891"},
		{"urn:epc:id:sgln:0614141.12345.0", "0614141123452", "(414)0614141123452"},
		{"urn:epc:id:upui:1234567.089456.51qIgY)%3C%26Jp3*j7'SDB",
			"", "(01)01234567894560(235)51qIgY)<&Jp3*j7'SDB"},
	} {
		t.Run(tt.uri, func(t *testing.T) {
			w := expect.WrapT(t)
			id := w.StopOnMismatch().ShouldHaveResult(ParsePureIdentity(tt.uri)).(Identifier)
			el, ok := id.(GS1Element)
			w.StopOnMismatch().ShouldBeTrue(ok)
			w.ShouldBeEqual(el.ElementString(), tt.es)
			if keyed, ok := id.(GS1Keyed); ok {
				w.ShouldBeEqual(keyed.GS1Key(), tt.key)
			} else {
				w.ShouldBeEqual(tt.key, "")
			}
		})
	}
}
