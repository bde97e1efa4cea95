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

func TestPayloadHelpers(t *testing.T) {
	w := expect.WrapT(t)

	w.ShouldBeEqual(w.ShouldHaveResult(HexToBinary("3074")), "0011000001110100")
	w.ShouldBeEqual(w.ShouldHaveResult(HexToBinary("ab")), "10101011")
	w.ShouldBeEqual(w.ShouldHaveResult(BinaryToHex("0011000001110100")), "3074")
	w.As("padded").ShouldBeEqual(w.ShouldHaveResult(BinaryToHex("00110000011101")), "3074")
	w.As("one bit").ShouldBeEqual(w.ShouldHaveResult(BinaryToHex("1")), "8000")

	const hex = "3074257BF7194E4000001A85"
	w.ShouldBeEqual(w.ShouldHaveResult(HexToBase64(hex)), "MHQle/cZTkAAABqF")
	w.ShouldBeEqual(w.ShouldHaveResult(Base64ToHex("MHQle/cZTkAAABqF")), hex)
	w.As("lower case").ShouldBeEqual(w.ShouldHaveResult(HexToBase64("3074257bf7194e4000001a85")),
		"MHQle/cZTkAAABqF")
	w.As("unpadded").ShouldBeEqual(w.ShouldHaveResult(Base64ToHex("MDQ")), "3034")
	w.As("padded").ShouldBeEqual(w.ShouldHaveResult(Base64ToHex("MDQ=")), "3034")

	w.As("odd hex").ShouldBeEqual(errKind(HexToBinary("307")), InvalidGrammar)
	w.As("not hex").ShouldBeEqual(errKind(HexToBase64("3x")), InvalidGrammar)
	w.As("not binary").ShouldBeEqual(errKind(BinaryToHex("012")), InvalidGrammar)
	w.As("not base64").ShouldBeEqual(errKind(Base64ToHex("!!")), InvalidGrammar)
}
