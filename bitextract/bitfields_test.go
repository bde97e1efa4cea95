/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bitextract

import (
	"encoding/hex"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestBitExploder_Buffer(t *testing.T) {
	w := expect.WrapT(t)
	widths := []int{1, 8, 16, 2, 9, 17}
	byteLens := []int{1, 1, 2, 1, 2, 3}
	byteLenSum := 10

	exp := w.ShouldHaveResult(NewBitExploder(widths)).(BitExploder)
	w.StopOnMismatch().ShouldBeEqual(exp.expByteLen, byteLenSum)
	w.ShouldBeEqual(exp.BitLength(), 53)
	w.ShouldBeEqual(exp.Widths(), widths)
	buff := exp.Buffer()
	w.ShouldHaveLength(buff, len(widths))
	for i := 0; i < len(widths); i++ {
		w.ShouldHaveLength(buff[i], byteLens[i])
	}
}

func TestBitExploder_ExplodeUInt64(t *testing.T) {
	w := expect.WrapT(t)
	//        a    b         c              d   e           f              -
	// data: 0b1_10100110_1101100110111101_10_100100011_10001110111011110_000
	data := w.ShouldHaveResult(hex.DecodeString("d36cded238eef0")).([]byte)
	vals := []uint64{1, 166, 55741, 2, 291, 73182}

	exp := MustBitExploder(1, 8, 16, 2, 9, 17)
	w.ShouldBeEqual(len(exp.Widths()), len(vals))
	got := w.ShouldHaveResult(exp.ExplodeUInt64(data)).([]uint64)
	w.ShouldBeEqual(got, vals)

	w.As("short data").ShouldHaveError(exp.ExplodeUInt64(data[:6]))
}

func TestBitExploder_invalidWidths(t *testing.T) {
	w := expect.WrapT(t)

	for _, widths := range [][]int{
		nil,
		{},
		{8, 0, 40},
		{8, -1},
	} {
		_, err := NewBitExploder(widths)
		w.As(widths).ShouldFail(err)
	}

	w.As("wide field").ShouldHaveError(
		MustBitExploder(8, 72).ExplodeUInt64(make([]byte, 10)))
}
