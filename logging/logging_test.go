/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package logging

import (
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/sirupsen/logrus"
)

func TestConfigure(t *testing.T) {
	w := expect.WrapT(t)
	defer Configure("INFO", false)

	for level, want := range map[string]logrus.Level{
		"DEBUG": logrus.DebugLevel,
		"INFO":  logrus.InfoLevel,
		"WARN":  logrus.WarnLevel,
		"ERROR": logrus.ErrorLevel,
	} {
		Configure(level, false)
		w.As(level).ShouldBeEqual(Log().GetLevel(), want)
	}

	Configure("WARN", false)
	Configure("VERBOSE", true)
	w.As("unknown level").ShouldBeEqual(Log().GetLevel(), logrus.WarnLevel)
	_, isJSON := Log().Formatter.(*logrus.JSONFormatter)
	w.As("json formatter").ShouldBeTrue(isJSON)

	Configure("INFO", false)
	_, isText := Log().Formatter.(*logrus.TextFormatter)
	w.As("text formatter").ShouldBeTrue(isText)
}

func TestPrettyPrintObject(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeEqual(PrettyPrintObject(map[string]int{"filter": 3}), `{"filter":3}`)
	w.As("unmarshalable").ShouldBeEqual(PrettyPrintObject(make(chan int)), "")
}
