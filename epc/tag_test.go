/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestTag_knownEncodings(t *testing.T) {
	for i, tt := range []struct {
		name, uri, hex string
	}{
		{"sgtin-96", "urn:epc:tag:sgtin-96:3.0614141.812345.6789", "3074257BF7194E4000001A85"},
		{"sscc-96", "urn:epc:tag:sscc-96:3.0614141.1234567890", "3174257BF4499602D2000000"},
		{"grai-96", "urn:epc:tag:grai-96:3.0614141.12345.400", "3374257BF40C0E4000000190"},
		{"giai-96", "urn:epc:tag:giai-96:1.0614141.12345400", "3434257BF400000000BC6038"},
		{"gid-96", "urn:epc:tag:gid-96:31415.271828.1414", "350007AB70425D4000000586"},
		{"usdod-96", "urn:epc:tag:usdod-96:15.2S194.68719476735", "2FF203253313934FFFFFFFFF"},
		{"adi-var", "urn:epc:tag:adi-var:5.W81X9C.3KL984PX1.2WMA-52",
			"3B157E316390F32CCE78D106310325CD06DD7200"},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)

			tag := w.StopOnMismatch().ShouldHaveResult(DecodeTagURI(tt.uri)).(*Tag)
			w.ShouldBeEqual(tag.Hex(), tt.hex)
			w.ShouldBeEqual(tag.URI(), tt.uri)
			w.ShouldBeEqual(tag.Coding().String(), tt.name)

			decoded := w.StopOnMismatch().ShouldHaveResult(DecodeHex(tt.hex)).(*Tag)
			w.ShouldBeEqual(decoded.URI(), tt.uri)
			w.ShouldBeEqual(decoded.Identity().URI(), tag.Identity().URI())
			w.ShouldBeEqual(decoded.Filter(), tag.Filter())
		})
	}
}

func TestTag_roundTrip(t *testing.T) {
	for i, uri := range []string{
		"urn:epc:tag:sgtin-96:0.000001.0000001.0",
		"urn:epc:tag:sgtin-96:7.061414112345.8.274877906943",
		"urn:epc:tag:sgtin-198:2.0614141.812345.a%2Fb%3Fc%22d",
		"urn:epc:tag:sscc-96:0.012345678901.12345",
		"urn:epc:tag:sgln-96:3.0614141.12345.400",
		"urn:epc:tag:sgln-96:1.061414112345..0",
		"urn:epc:tag:sgln-195:3.0614141.12345.32a%2Fb",
		"urn:epc:tag:grai-170:3.0614141.12345.32a%2Fb",
		"urn:epc:tag:giai-202:3.0614141.12345ABC%2F",
		"urn:epc:tag:giai-96:0.061414112345.1",
		"urn:epc:tag:gsrn-96:3.0614141.1234567890",
		"urn:epc:tag:gsrnp-96:0.0614141.1234567890",
		"urn:epc:tag:gdti-96:3.0614141.12345.400",
		"urn:epc:tag:gdti-174:3.0614141.12345.ABCD1234%2F",
		"urn:epc:tag:cpi-96:3.0614141.123456.123456789",
		"urn:epc:tag:cpi-var:3.0614141.5PQ7%2FZ43.12345",
		"urn:epc:tag:sgcn-96:3.4012345.67890.04711",
		"urn:epc:tag:sgcn-96:0.4012345.67890.000000000000",
		"urn:epc:tag:itip-110:3.0614141.812345.01.02.6789",
		"urn:epc:tag:itip-212:1.0614141.812345.99.99.a%2Fb",
		"urn:epc:tag:gid-96:268435455.16777215.68719476735",
		"urn:epc:tag:usdod-96:2.CAGEY.5678",
		"urn:epc:tag:adi-var:6.2S194..%23A1",
		"urn:epc:tag:adi-var:63.W81X9C.A%2FB-1.X",
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, uri[len(tagURIPrefix):strings.LastIndexByte(uri, ':')]), func(t *testing.T) {
			w := expect.WrapT(t)

			tag := w.StopOnMismatch().ShouldHaveResult(DecodeTagURI(uri)).(*Tag)
			w.ShouldBeEqual(tag.URI(), uri)
			w.ShouldBeTrue(tag.BitLength() <= len(tag.Bytes())*8)
			w.ShouldBeEqual(len(tag.Bytes())%2, 0)
			w.ShouldHaveLength(tag.Binary(), tag.BitLength())

			for _, decode := range []struct {
				from string
				f    func() (*Tag, error)
			}{
				{"hex", func() (*Tag, error) { return DecodeHex(tag.Hex()) }},
				{"lower case hex", func() (*Tag, error) { return DecodeHex(strings.ToLower(tag.Hex())) }},
				{"base64", func() (*Tag, error) { return DecodeBase64(tag.Base64()) }},
				{"binary", func() (*Tag, error) { return DecodeBinary(tag.Binary()) }},
				{"bytes", func() (*Tag, error) { return DecodeBytes(tag.Bytes(), tag.BitLength()) }},
			} {
				back := w.StopOnMismatch().As(decode.from).ShouldHaveResult(decode.f()).(*Tag)
				w.As(decode.from).ShouldBeEqual(back.URI(), uri)
				w.As(decode.from).ShouldBeEqual(back.Hex(), tag.Hex())
			}

			// the identity re-encodes to the same tag
			again := w.ShouldHaveResult(tag.Identity().Tag(tag.Coding(), tag.Filter())).(*Tag)
			w.ShouldBeEqual(again.Hex(), tag.Hex())
		})
	}
}

func TestTag_GS1Keys(t *testing.T) {
	for i, tt := range []struct {
		uri, key string
	}{
		{"urn:epc:tag:sgtin-96:3.0614141.812345.6789", "80614141123458"},
		{"urn:epc:tag:sscc-96:3.0614141.1234567890", "106141412345678908"},
		{"urn:epc:tag:grai-96:3.0614141.12345.400", "00614141123452400"},
		{"urn:epc:tag:giai-96:1.0614141.12345400", "061414112345400"},
		{"urn:epc:tag:gdti-174:3.0614141.12345.ABCD1234%2F", "0614141123452ABCD1234/"},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.key), func(t *testing.T) {
			w := expect.WrapT(t)
			tag := w.StopOnMismatch().ShouldHaveResult(DecodeTagURI(tt.uri)).(*Tag)
			keyed, ok := tag.Identity().(GS1Keyed)
			w.StopOnMismatch().ShouldBeTrue(ok)
			w.ShouldBeEqual(keyed.GS1Key(), tt.key)
			w.ShouldBeEqual(w.ShouldHaveResult(GS1Key(tt.uri)), tt.key)
			w.ShouldBeEqual(w.ShouldHaveResult(GS1Key(tag.Hex())), tt.key)
		})
	}
}

func TestDecode_errors(t *testing.T) {
	for i, tt := range []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"empty", "", PayloadTooShort},
		{"not hex", "30ZZ", InvalidGrammar},
		{"unknown header", "FF74257BF7194E4000001A85", InvalidHeader},
		{"reserved header", "00", InvalidHeader},
		{"sscc reserved bits", "3174257BF4499602D2000001", OutOfRange},
		{"gsrn reserved bits", "2D74257BF4499602D2000100", OutOfRange},
		{"gid too short", "350007AB70425D40", PayloadTooShort},
		{"sgtin-96 too long", "3074257BF7194E4000001A8500000001", LengthViolation},
		{"adi without terminators", "3B157E316390F32CCE78D1063103", PayloadTooShort},
		{"sgtin-96 company prefix too big", "307BFFFFC000000000000001", OutOfRange},
		{"sgtin-96 item reference too big", "307800007FFFFFC000000001", OutOfRange},
		{"sgcn-96 serial without leading 1", "3F74F4E4E612640000000005", OutOfRange},
		{"sgcn-96 serial without digits", "3F74F4E4E612640000000001", OutOfRange},
		{"sgcn-96 zero serial", "3F74F4E4E612640000000000", OutOfRange},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			w.As(tt.input).ShouldBeEqual(errKind(DecodeHex(tt.input)), tt.kind)
		})
	}
}

func TestDecodeSGCN_serial(t *testing.T) {
	w := expect.WrapT(t)
	// the serial field holds 1004711: a leading 1, then the digits
	tag := w.StopOnMismatch().ShouldHaveResult(DecodeHex("3F74F4E4E6126400000F54A7")).(*Tag)
	w.ShouldBeEqual(tag.Identity().URI(), "urn:epc:id:sgcn:4012345.67890.004711")
	w.ShouldBeEqual(tag.URI(), "urn:epc:tag:sgcn-96:3.4012345.67890.004711")
	w.ShouldBeEqual(tag.Hex(), "3F74F4E4E6126400000F54A7")

	_, err := DecodeHex("3F74F4E4E612640000000001")
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldContainStr(err.Error(), "no digits after the leading 1")
}

func TestITIP_badPieceCount(t *testing.T) {
	w := expect.WrapT(t)
	itip := w.StopOnMismatch().ShouldHaveResult(
		ParseITIP("urn:epc:id:itip:0614141.812345.01.02.6789")).(*ITIP)
	w.ShouldBeEqual(w.ShouldHaveResult(itip.Tag(ITIP110, 3)).(*Tag).URI(),
		"urn:epc:tag:itip-110:3.0614141.812345.01.02.6789")

	for _, piece := range []string{"x1", "-1", "128"} {
		bad := *itip
		bad.piece = piece
		w.As(piece).ShouldBeEqual(errKind(bad.Tag(ITIP110, 3)), OutOfRange)
	}
}

func TestDecodeTagURI_errors(t *testing.T) {
	for i, tt := range []struct {
		name string
		uri  string
		kind ErrorKind
	}{
		{"not a tag uri", "urn:epc:id:sgtin:0614141.812345.6789", InvalidGrammar},
		{"no coding", "urn:epc:tag:sgtin-96", InvalidGrammar},
		{"unknown coding", "urn:epc:tag:sgtin-97:3.0614141.812345.6789", UnknownScheme},
		{"filter too big", "urn:epc:tag:sgtin-96:8.0614141.812345.6789", OutOfRange},
		{"filter with leading zero", "urn:epc:tag:sgtin-96:01.0614141.812345.6789", InvalidGrammar},
		{"filter of zeros", "urn:epc:tag:sgtin-96:00.0614141.812345.6789", InvalidGrammar},
		{"leading zero serial", "urn:epc:tag:sgtin-96:3.0614141.812345.06789", DisallowedLeadingZero},
		{"serial too big", "urn:epc:tag:sgtin-96:3.0614141.812345.274877906944", OutOfRange},
		{"alphanumeric serial in sgtin-96", "urn:epc:tag:sgtin-96:3.0614141.812345.A1", InvalidGrammar},
		{"missing filter", "urn:epc:tag:sgtin-96:0614141.812345.6789", InvalidGrammar},
		{"gid with filter", "urn:epc:tag:gid-96:0.31415.271828.1414", InvalidGrammar},
		{"gid manager too big", "urn:epc:tag:gid-96:268435456.1.1", OutOfRange},
		{"giai-96 non-numeric", "urn:epc:tag:giai-96:1.0614141.A1", InvalidGrammar},
		{"giai-202 too long", "urn:epc:tag:giai-202:1.0614141.12345678901234567890123A", LengthViolation},
		{"bad escape", "urn:epc:tag:sgtin-198:3.0614141.812345.%41", InvalidEscape},
		{"six bit character", "urn:epc:tag:cpi-var:3.0614141.5PQ7%26.1", InvalidGrammar},
		{"adi lone #", "urn:epc:tag:adi-var:1.W81X9C.1.%23", InvalidGrammar},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			w.As(tt.uri).ShouldBeEqual(errKind(DecodeTagURI(tt.uri)), tt.kind)
		})
	}
}

func TestTag_notEncodable(t *testing.T) {
	w := expect.WrapT(t)

	sgtin := w.ShouldHaveResult(ParseSGTIN("urn:epc:id:sgtin:0614141.812345.6789")).(*SGTIN)
	w.ShouldBeEqual(errKind(sgtin.Tag(GID96, 0)), UnsupportedProjection)

	gid := w.ShouldHaveResult(ParseGID("urn:epc:id:gid:31415.271828.1414")).(*GID)
	w.ShouldBeEqual(errKind(gid.Tag(GID96, 1)), OutOfRange)

	w.ShouldBeEqual(errKind(DecodeTagURI("urn:epc:tag:gsin-96:0.0614141.123456789")), UnknownScheme)
}

func TestCodings(t *testing.T) {
	w := expect.WrapT(t)

	for _, s := range Schemes() {
		for _, c := range s.Codings() {
			w.ShouldBeEqual(c.Scheme(), s)
			w.ShouldBeEqual(w.ShouldHaveResult(CodingByName(c.String())), c)
			w.ShouldBeEqual(w.ShouldHaveResult(CodingByHeader(c.Header())), c)
		}
	}

	w.ShouldBeEqual(SchemeSGTIN.Codings(), []Coding{SGTIN96, SGTIN198})
	w.ShouldBeEqual(len(SchemeGSIN.Codings()), 0)
	w.ShouldBeTrue(CPIVar.IsVariable())
	w.ShouldBeFalse(SGTIN198.IsVariable())
	w.ShouldBeEqual(SGLN195.BitLength(), 195)
	w.ShouldBeEqual(GID96.Header(), uint8(0x35))
	w.ShouldBeEqual(errKind(CodingByName("sgtin")), UnknownScheme)
	w.ShouldBeEqual(errKind(CodingByHeader(0xE2)), InvalidHeader)
}

func TestFilter_Name(t *testing.T) {
	for i, tt := range []struct {
		scheme Scheme
		filter Filter
		name   string
	}{
		{SchemeSGTIN, SGTINFilterPOSItem, "POS_ITEM"},
		{SchemeSGTIN, 3, "RESERVED_3"},
		{SchemeITIP, SGTINFilterComponent, "COMPONENT"},
		{SchemeSSCC, SSCCFilterLogistics, "LOGISTICS"},
		{SchemeSSCC, 5, "RESERVED_5"},
		{SchemeSGLN, 0, "ALL_OTHERS"},
		{SchemeGIAI, GIAIFilterRailVehicle, "RAIL_VEHICLE"},
		{SchemeGDTI, GDTIFilterTravelDocument, "TRAVEL_DOCUMENT"},
		{SchemeGDTI, 5, "RESERVED"},
		{SchemeUSDOD, USDODFilterPallet, "PALLET"},
		{SchemeUSDOD, USDODFilterUnitPack, "UNIT_PACK"},
		{SchemeADI, ADIFilterPallet, "PALLET"},
		{SchemeADI, 23, "OTHER_REPAIR"},
		{SchemeADI, 24, "RESERVED"},
	} {
		t.Run(fmt.Sprintf("%02d_%s_%d", i, tt.scheme, tt.filter), func(t *testing.T) {
			expect.WrapT(t).ShouldBeEqual(tt.filter.Name(tt.scheme), tt.name)
		})
	}
}

func TestTag_Filter(t *testing.T) {
	w := expect.WrapT(t)

	tag := w.ShouldHaveResult(DecodeTagURI("urn:epc:tag:usdod-96:15.2S194.68719476735")).(*Tag)
	w.ShouldBeEqual(tag.Filter(), Filter(15))
	w.ShouldBeEqual(tag.Filter().Name(SchemeUSDOD), "RESERVED_15")

	gid := w.ShouldHaveResult(DecodeHex("350007AB70425D4000000586")).(*Tag)
	w.ShouldBeEqual(gid.Filter(), FilterAllOthers)
	w.ShouldBeEqual(gid.URI(), "urn:epc:tag:gid-96:31415.271828.1414")
}
