/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-epc/bitextract"
)

// pow10[i] = 10^i; 10^19 is the largest that fits a uint64.
var pow10 = func() (p [20]uint64) {
	p[0] = 1
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1] * 10
	}
	return
}()

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func zeros(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("0", n)
}

// padded formats v as exactly n decimal digits.
func padded(v uint64, n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%0*d", n, v)
}

// parseInteger converts a URI component holding an integer, such as an
// SGTIN-96 serial number, making sure it fits in width bits.
func parseInteger(s Scheme, what, v string, width int) (uint64, error) {
	if v == "" || !isDigits(v) {
		return 0, newError(s, InvalidGrammar, "%s %q must be numeric to encode in %d bits", what, v, width)
	}
	if len(v) > 1 && v[0] == '0' {
		return 0, newError(s, DisallowedLeadingZero, "%s %q can't be encoded with its leading zeros", what, v)
	}
	n, err := strconv.ParseUint(v, 10, width)
	if err != nil {
		return 0, wrapError(err, s, OutOfRange, "%s %s doesn't fit in %d bits", what, v, width)
	}
	return n, nil
}

// encodeNumericString writes a string of digits, which may have leading
// zeros, as the integer value of "1" followed by the digits.
func encodeNumericString(w *bitextract.Writer, s Scheme, what, v string, maxDigits, width int) error {
	if v == "" || !isDigits(v) {
		return newError(s, InvalidGrammar, "%s %q must be numeric", what, v)
	}
	if len(v) > maxDigits {
		return newError(s, LengthViolation, "%s %q has more than %d digits", what, v, maxDigits)
	}
	n, err := strconv.ParseUint("1"+v, 10, width)
	if err != nil {
		return wrapError(err, s, OutOfRange, "%s %s doesn't fit in %d bits", what, v, width)
	}
	w.WriteUInt64(n, width)
	return nil
}

// numericString reads a value written by encodeNumericString.
func (r *tagReader) numericString(what string, width int) (string, error) {
	n, err := r.read(width)
	if err != nil {
		return "", err
	}
	digits := strconv.FormatUint(n, 10)
	if digits[0] != '1' {
		return "", newError(r.scheme(), OutOfRange, "%s value %d doesn't start with the digit 1", what, n)
	}
	if len(digits) == 1 {
		return "", newError(r.scheme(), OutOfRange, "%s value %d has no digits after the leading 1", what, n)
	}
	return digits[1:], nil
}

// integer reads a width bit integer and formats it in decimal.
func (r *tagReader) integer(width int) (string, error) {
	n, err := r.read(width)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(n, 10), nil
}

// reserved reads width bits that must all be zero.
func (r *tagReader) reserved(width int) error {
	n, err := r.read(width)
	if err != nil {
		return err
	}
	if n != 0 {
		return newError(r.scheme(), OutOfRange, "reserved bits must be zero, but are %#x", n)
	}
	return nil
}
