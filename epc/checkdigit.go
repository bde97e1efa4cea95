/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

// checkSum returns the GS1 weighted sum of a string of decimal digits. The
// rightmost digit has weight 3, its neighbor weight 1, and so on, alternating.
func checkSum(digits string) (sum int) {
	n := len(digits)
	for i := 0; i < n; i++ {
		d := int(digits[i] - '0')
		if (n-i)&1 == 1 {
			sum += 3 * d
		} else {
			sum += d
		}
	}
	return
}

// checkDigit returns the GS1 check digit for digits, which must be all decimal.
func checkDigit(digits string) byte {
	// mod 10 additive inverse
	return '0' + byte((10-checkSum(digits)%10)%10)
}

// CheckDigit returns the GS1 mod-10 check digit of a string of decimal digits,
// e.g. '2' for "061414112345".
func CheckDigit(digits string) (byte, error) {
	if digits == "" || !isDigits(digits) {
		return 0, newError(0, InvalidGrammar, "%q is not a string of digits", digits)
	}
	return checkDigit(digits), nil
}

// withCheckDigit returns digits followed by their check digit.
func withCheckDigit(digits string) string {
	return digits + string(checkDigit(digits))
}

// verifyCheckDigit checks that the last digit of v is the check digit of the
// rest.
func verifyCheckDigit(s Scheme, v string) error {
	if len(v) < 2 || !isDigits(v) {
		return newError(s, InvalidGrammar, "%q is not a string of digits", v)
	}
	if want := checkDigit(v[:len(v)-1]); v[len(v)-1] != want {
		return newError(s, InvalidChecksum, "%s should end with check digit %c", v, want)
	}
	return nil
}

// iso6346Value returns the numeric value of a BIC character: digits are their
// own value, and letters count up from A=10, skipping multiples of 11.
func iso6346Value(ch byte) int {
	if ch >= '0' && ch <= '9' {
		return int(ch - '0')
	}
	v := 10
	for c := byte('A'); c < ch; c++ {
		v++
		if v%11 == 0 {
			v++
		}
	}
	return v
}

// bicCheckDigit returns the ISO 6346 check digit of a BIC's first 10
// characters.
func bicCheckDigit(code string) byte {
	sum := 0
	for i := 0; i < 10; i++ {
		sum += iso6346Value(code[i]) << uint(i)
	}
	return '0' + byte(sum%11%10)
}

// imoCheckDigit returns the check digit of the first 6 digits of an IMO
// vessel number, weighted 7 down to 2.
func imoCheckDigit(digits string) byte {
	sum := 0
	for i := 0; i < 6; i++ {
		sum += int(digits[i]-'0') * (7 - i)
	}
	return '0' + byte(sum%10)
}
