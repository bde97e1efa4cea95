/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "fmt"

// Coding is a binary coding scheme: a header byte and the bit layout that
// follows it.
type Coding int

const (
	SGTIN96 Coding = iota + 1
	SGTIN198
	SSCC96
	SGLN96
	SGLN195
	GRAI96
	GRAI170
	GIAI96
	GIAI202
	GSRN96
	GSRNP96
	GDTI96
	GDTI174
	CPI96
	CPIVar
	SGCN96
	ITIP110
	ITIP212
	GID96
	USDOD96
	ADIVar
)

type codingInfo struct {
	name   string
	scheme Scheme
	header uint8
	bits   int // zero for variable length codings
}

var codings = [...]codingInfo{
	SGTIN96:  {"sgtin-96", SchemeSGTIN, 0x30, 96},
	SGTIN198: {"sgtin-198", SchemeSGTIN, 0x36, 198},
	SSCC96:   {"sscc-96", SchemeSSCC, 0x31, 96},
	SGLN96:   {"sgln-96", SchemeSGLN, 0x32, 96},
	SGLN195:  {"sgln-195", SchemeSGLN, 0x39, 195},
	GRAI96:   {"grai-96", SchemeGRAI, 0x33, 96},
	GRAI170:  {"grai-170", SchemeGRAI, 0x37, 170},
	GIAI96:   {"giai-96", SchemeGIAI, 0x34, 96},
	GIAI202:  {"giai-202", SchemeGIAI, 0x38, 202},
	GSRN96:   {"gsrn-96", SchemeGSRN, 0x2D, 96},
	GSRNP96:  {"gsrnp-96", SchemeGSRNP, 0x2E, 96},
	GDTI96:   {"gdti-96", SchemeGDTI, 0x2C, 96},
	GDTI174:  {"gdti-174", SchemeGDTI, 0x3E, 174},
	CPI96:    {"cpi-96", SchemeCPI, 0x3C, 96},
	CPIVar:   {"cpi-var", SchemeCPI, 0x3D, 0},
	SGCN96:   {"sgcn-96", SchemeSGCN, 0x3F, 96},
	ITIP110:  {"itip-110", SchemeITIP, 0x40, 110},
	ITIP212:  {"itip-212", SchemeITIP, 0x41, 212},
	GID96:    {"gid-96", SchemeGID, 0x35, 96},
	USDOD96:  {"usdod-96", SchemeUSDOD, 0x2F, 96},
	ADIVar:   {"adi-var", SchemeADI, 0x3B, 0},
}

// headers maps a header byte to its coding.
var headers = func() map[uint8]Coding {
	m := make(map[uint8]Coding, len(codings))
	for c := SGTIN96; int(c) < len(codings); c++ {
		m[codings[c].header] = c
	}
	return m
}()

func (c Coding) valid() bool {
	return c > 0 && int(c) < len(codings)
}

// String returns the coding's name as it appears in a tag URI, e.g. "sgtin-96".
func (c Coding) String() string {
	if c.valid() {
		return codings[c].name
	}
	return fmt.Sprintf("Coding(%d)", int(c))
}

// Scheme returns the scheme the coding encodes.
func (c Coding) Scheme() Scheme {
	if c.valid() {
		return codings[c].scheme
	}
	return 0
}

// Header returns the 8-bit header that starts the coding's payloads.
func (c Coding) Header() uint8 {
	if c.valid() {
		return codings[c].header
	}
	return 0
}

// BitLength returns the coding's fixed length, in bits, or zero if its
// payloads vary in length.
func (c Coding) BitLength() int {
	if c.valid() {
		return codings[c].bits
	}
	return 0
}

// IsVariable returns true if the coding's payload length depends on its
// contents.
func (c Coding) IsVariable() bool {
	return c.valid() && codings[c].bits == 0
}

// CodingByName returns the Coding with the given tag URI name.
func CodingByName(name string) (Coding, error) {
	for c := SGTIN96; int(c) < len(codings); c++ {
		if codings[c].name == name {
			return c, nil
		}
	}
	return 0, newError(0, UnknownScheme, "no coding scheme is named %q", name)
}

// CodingByHeader returns the Coding that uses the given header.
func CodingByHeader(header uint8) (Coding, error) {
	if c, ok := headers[header]; ok {
		return c, nil
	}
	return 0, newError(0, InvalidHeader, "unknown EPC header %#02x", header)
}
