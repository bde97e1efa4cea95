/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-epc/bitextract"
)

// EPC memory is read and written in 16-bit words, so that's how payloads are
// padded when rendered as hex or base64.
const wordSize = 16

// padWords returns the first n bits of data, zero padded to whole words.
func padWords(data []byte, n int) []byte {
	buf := make([]byte, (n+wordSize-1)/wordSize*2)
	copy(buf, data[:(n+7)/8])
	return buf
}

func formatHex(data []byte, n int) string {
	return strings.ToUpper(hex.EncodeToString(padWords(data, n)))
}

func parseHex(h string) ([]byte, int, error) {
	data, err := hex.DecodeString(h)
	if err != nil {
		return nil, 0, wrapError(err, 0, InvalidGrammar, "%q is not a hex payload", h)
	}
	return data, len(data) * 8, nil
}

func parseBase64(b string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(b)
	if err != nil {
		// tolerate missing padding
		var rawErr error
		if data, rawErr = base64.RawStdEncoding.DecodeString(b); rawErr != nil {
			return nil, wrapError(err, 0, InvalidGrammar, "%q is not a base64 payload", b)
		}
	}
	return data, nil
}

// HexToBinary returns the bits of a hex string as a string of '0' and '1'.
func HexToBinary(h string) (string, error) {
	data, n, err := parseHex(h)
	if err != nil {
		return "", err
	}
	return bitextract.FormatBinary(data, n), nil
}

// BinaryToHex returns a string of '0' and '1' as uppercase hex, zero padded
// on the right to a multiple of 16 bits.
func BinaryToHex(b string) (string, error) {
	data, n, err := bitextract.ParseBinary(b)
	if err != nil {
		return "", wrapError(err, 0, InvalidGrammar, "invalid binary payload")
	}
	return formatHex(data, n), nil
}

// HexToBase64 returns the standard, padded base64 encoding of a hex payload.
func HexToBase64(h string) (string, error) {
	data, _, err := parseHex(h)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Base64ToHex returns a base64 payload as uppercase hex. Padding is optional.
func Base64ToHex(b string) (string, error) {
	data, err := parseBase64(b)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(data)), nil
}
