/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/intel/rsp-sw-toolkit-im-suite-epc/epc"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

type fakeConfig struct {
	prefixLength int
	coding       epc.Coding
	filter       epc.Filter
	gtinType     epc.GTINType
}

func (c fakeConfig) CompanyPrefixLength() int { return c.prefixLength }
func (c fakeConfig) TagFilter() epc.Filter { return c.filter }
func (c fakeConfig) GTINType() epc.GTINType { return c.gtinType }

func (c fakeConfig) TagCoding() (epc.Coding, bool) {
	return c.coding, c.coding != 0
}

// decodeLines parses run's output, one projection per line.
func decodeLines(t *testing.T, out *bytes.Buffer) []projection {
	var ps []projection
	dec := json.NewDecoder(out)
	for dec.More() {
		var p projection
		if err := dec.Decode(&p); err != nil {
			t.Fatalf("invalid output: %+v", err)
		}
		ps = append(ps, p)
	}
	return ps
}

const (
	sgtinTagURI = "urn:epc:tag:sgtin-96:3.0614141.812345.6789"
	sgtinURI    = "urn:epc:id:sgtin:0614141.812345.6789"
	sgtinHex    = "3074257BF7194E4000001A85"
)

var sgtinTag = projection{
	Scheme:        "sgtin",
	URI:           sgtinURI,
	GS1Key:        "80614141123458",
	ElementString: "(01)80614141123458(21)6789",
	TagURI:        sgtinTagURI,
	Filter:        "RESERVED_3",
	Hex:           sgtinHex,
	Base64:        "MHQle/cZTkAAABqF",
}

func withInput(p projection, input string) projection {
	p.Input = input
	return p
}

func TestRun_args(t *testing.T) {
	w := expect.WrapT(t)
	out := new(bytes.Buffer)
	inputs := []string{sgtinTagURI, sgtinHex, "urn:epc:idpat:sgtin:0614141.812345.*"}
	w.ShouldBeEqual(run(inputs, strings.NewReader(""), out, fakeConfig{}), 0)

	want := []projection{
		withInput(sgtinTag, sgtinTagURI),
		withInput(sgtinTag, sgtinHex),
		{
			Input:  "urn:epc:idpat:sgtin:0614141.812345.*",
			Scheme: "sgtin",
			URI:    "urn:epc:idpat:sgtin:0614141.812345.*",
			GS1Key: "80614141123458",
		},
	}
	if diff := cmp.Diff(want, decodeLines(t, out)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_configuredTag(t *testing.T) {
	w := expect.WrapT(t)
	out := new(bytes.Buffer)
	cfg := fakeConfig{coding: epc.SGTIN96, filter: epc.Filter(1)}
	inputs := []string{sgtinURI, "urn:epc:id:sscc:0614141.1234567890"}
	w.ShouldBeEqual(run(inputs, strings.NewReader(""), out, cfg), 0)

	want := []projection{
		{
			Input:         sgtinURI,
			Scheme:        "sgtin",
			URI:           sgtinURI,
			GS1Key:        "80614141123458",
			ElementString: "(01)80614141123458(21)6789",
			TagURI:        "urn:epc:tag:sgtin-96:1.0614141.812345.6789",
			Filter:        "POS_ITEM",
			Hex:           "3034257BF7194E4000001A85",
			Base64:        "MDQle/cZTkAAABqF",
		},
		{
			// the coding is for another scheme, so there's no tag
			Input:         "urn:epc:id:sscc:0614141.1234567890",
			Scheme:        "sscc",
			URI:           "urn:epc:id:sscc:0614141.1234567890",
			GS1Key:        "106141412345678908",
			ElementString: "(00)106141412345678908",
		},
	}
	if diff := cmp.Diff(want, decodeLines(t, out)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_stdin(t *testing.T) {
	w := expect.WrapT(t)
	out := new(bytes.Buffer)
	stdin := strings.NewReader("\n  " + sgtinTagURI + "  \n\n(01)80614141123458(21)6789\n")
	w.ShouldBeEqual(run(nil, stdin, out, fakeConfig{prefixLength: 7}), 0)

	got := decodeLines(t, out)
	w.StopOnMismatch().ShouldHaveLength(got, 2)
	w.ShouldBeEqual(got[0], withInput(sgtinTag, sgtinTagURI))
	w.ShouldBeEqual(got[1].Input, "(01)80614141123458(21)6789")
	w.ShouldBeEqual(got[1].URI, sgtinURI)
	w.ShouldBeEqual(got[1].TagURI, "")
}

func TestRun_failures(t *testing.T) {
	w := expect.WrapT(t)
	out := new(bytes.Buffer)
	inputs := []string{"urn:epc:id:sgtin:0614141.812345.%41", sgtinTagURI}
	w.ShouldBeEqual(run(inputs, strings.NewReader(""), out, fakeConfig{}), 1)

	got := decodeLines(t, out)
	w.StopOnMismatch().ShouldHaveLength(got, 2)
	w.ShouldBeEqual(got[0].Input, inputs[0])
	w.ShouldBeEqual(got[0].ErrorKind, epc.InvalidEscape.String())
	w.ShouldNotBeEmptyStr(got[0].Error)
	w.ShouldBeEqual(got[0].URI, "")

	// later inputs are still converted
	w.ShouldBeEqual(got[1], withInput(sgtinTag, sgtinTagURI))
}

func TestRun_encodeFailure(t *testing.T) {
	w := expect.WrapT(t)
	out := new(bytes.Buffer)
	// the serial doesn't fit SGTIN-96's numeric field
	cfg := fakeConfig{coding: epc.SGTIN96}
	w.ShouldBeEqual(run([]string{"urn:epc:id:sgtin:0614141.812345.ABC"},
		strings.NewReader(""), out, cfg), 1)

	got := decodeLines(t, out)
	w.StopOnMismatch().ShouldHaveLength(got, 1)
	w.ShouldNotBeEmptyStr(got[0].ErrorKind)
	w.ShouldBeEqual(got[0].TagURI, "")
}
