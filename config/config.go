/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config reads the converter's settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-epc/epc"
	"github.com/intel/rsp-sw-toolkit-im-suite-epc/logging"
)

const (
	CompanyPrefixLengthVar = "EPC_COMPANY_PREFIX_LENGTH"
	TagCodingVar           = "EPC_TAG_CODING"
	TagFilterVar           = "EPC_TAG_FILTER"
	GTINTypeVar            = "EPC_GTIN_TYPE"
)

var logger = logging.Log()

type Config interface {
	// CompanyPrefixLength is used to split GS1 element strings; 0 if unset.
	CompanyPrefixLength() int
	// TagCoding is the coding to encode identities with, if any.
	TagCoding() (epc.Coding, bool)
	TagFilter() epc.Filter
	GTINType() epc.GTINType
}

// EnvConfig reads each setting from its environment variable when asked.
// Invalid values are logged and replaced by the default.
type EnvConfig struct{}

func (EnvConfig) CompanyPrefixLength() int {
	v := os.Getenv(CompanyPrefixLengthVar)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 6 || n > 12 {
		logger.Warnf("Invalid %s %q; it must be 6 to 12. Element strings can't be converted.",
			CompanyPrefixLengthVar, v)
		return 0
	}
	return n
}

func (EnvConfig) TagCoding() (epc.Coding, bool) {
	v := os.Getenv(TagCodingVar)
	if v == "" {
		return 0, false
	}
	c, err := epc.CodingByName(strings.ToLower(v))
	if err != nil {
		logger.Warnf("Invalid %s configured, tags will not be encoded. Err: %v.", TagCodingVar, err)
		return 0, false
	}
	return c, true
}

func (EnvConfig) TagFilter() epc.Filter {
	v := os.Getenv(TagFilterVar)
	if v == "" {
		return epc.FilterAllOthers
	}
	f, err := strconv.ParseUint(v, 10, 6)
	if err != nil {
		logger.Warnf("Invalid %s configured, will use filter 0. Err: %v.", TagFilterVar, err)
		return epc.FilterAllOthers
	}
	return epc.Filter(f)
}

func (EnvConfig) GTINType() epc.GTINType {
	switch v := os.Getenv(GTINTypeVar); strings.ToUpper(v) {
	case "", "GTIN-14", "GTIN14", "14":
		return epc.GTIN14
	case "GTIN-13", "GTIN13", "13":
		return epc.GTIN13
	case "GTIN-12", "GTIN12", "12":
		return epc.GTIN12
	case "GTIN-8", "GTIN8", "8":
		return epc.GTIN8
	default:
		logger.Warnf("Invalid %s %q, will use GTIN-14.", GTINTypeVar, v)
		return epc.GTIN14
	}
}
