/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Command epcconv converts EPCs between their representations. Each argument,
// or each line of stdin if there are none, is parsed as any EPC form and
// printed as a JSON object holding every projection its scheme offers.
//
// The exit status is 1 if any input couldn't be converted.
//
// Settings come from the environment:
//     EPC_COMPANY_PREFIX_LENGTH  company prefix length for element strings
//     EPC_TAG_CODING             coding to encode identities with, e.g. sgtin-96
//     EPC_TAG_FILTER             filter value for EPC_TAG_CODING
//     EPC_GTIN_TYPE              GTIN-14, GTIN-13, GTIN-12, or GTIN-8
//     LOG_LEVEL                  DEBUG, INFO, WARN, or ERROR
//     JSON_LOGGING_ENABLED       true to log as JSON
package main

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-epc/config"
	"github.com/intel/rsp-sw-toolkit-im-suite-epc/epc"
	"github.com/intel/rsp-sw-toolkit-im-suite-epc/logging"
)

var logger = logging.Log()

// projection is one line of output.
type projection struct {
	Input         string `json:"input"`
	Scheme        string `json:"scheme,omitempty"`
	URI           string `json:"uri,omitempty"`
	GS1Key        string `json:"gs1Key,omitempty"`
	ElementString string `json:"elementString,omitempty"`
	TagURI        string `json:"tagUri,omitempty"`
	Filter        string `json:"filter,omitempty"`
	Hex           string `json:"hex,omitempty"`
	Base64        string `json:"base64,omitempty"`
	Error         string `json:"error,omitempty"`
	ErrorKind     string `json:"errorKind,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, config.EnvConfig{}))
}

func run(args []string, stdin io.Reader, stdout io.Writer, cfg config.Config) int {
	enc := json.NewEncoder(stdout)
	status := 0
	convertAll(args, stdin, func(input string) {
		p := convert(input, cfg)
		if p.Error != "" {
			logger.WithField("input", input).Warnf("Conversion failed: %s", p.Error)
			status = 1
		} else {
			logger.Debugf("Converted %s", logging.PrettyPrintObject(p))
		}
		if err := enc.Encode(p); err != nil {
			logger.Errorf("Unable to write output: %v", err)
			status = 1
		}
	})
	return status
}

// convertAll calls f with each argument, or each non-blank line of stdin if
// there are no arguments.
func convertAll(args []string, stdin io.Reader, f func(string)) {
	if len(args) > 0 {
		for _, a := range args {
			f(a)
		}
		return
	}
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			f(line)
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Errorf("Unable to read stdin: %v", err)
	}
}

func convert(input string, cfg config.Config) projection {
	p := projection{Input: input}
	fail := func(err error) projection {
		p.Error = err.Error()
		p.ErrorKind = epc.KindOf(err).String()
		return p
	}

	opts := []epc.ParseOption{epc.WithGTINType(cfg.GTINType())}
	if n := cfg.CompanyPrefixLength(); n != 0 {
		opts = append(opts, epc.WithCompanyPrefixLength(n))
	}
	id, err := epc.Parse(input, opts...)
	if err != nil {
		return fail(err)
	}
	p.Scheme = id.Scheme().String()
	p.URI = id.URI()

	if key, ok := epc.IgnoreErrors(epc.GS1Key(p.URI, opts...)); ok {
		p.GS1Key = key
	}
	if el, ok := id.(epc.GS1Element); ok {
		p.ElementString = el.ElementString()
	}

	tag, err := tagOf(input, id, cfg)
	if err != nil {
		return fail(err)
	}
	if tag != nil {
		p.TagURI = tag.URI()
		p.Filter = tag.Filter().Name(id.Scheme())
		p.Hex = tag.Hex()
		p.Base64 = tag.Base64()
	}
	return p
}

// tagOf returns the tag that input was, if it was one, or else the tag the
// configuration asks for, if any.
func tagOf(input string, id epc.Identifier, cfg config.Config) (*epc.Tag, error) {
	if _, isPattern := id.(*epc.Pattern); isPattern {
		return nil, nil
	}
	if coding, ok := cfg.TagCoding(); ok && coding.Scheme() == id.Scheme() {
		enc, ok := id.(epc.TagEncodable)
		if !ok {
			return nil, nil
		}
		return enc.Tag(coding, cfg.TagFilter())
	}
	if strings.HasPrefix(input, "urn:epc:tag:") {
		return epc.DecodeTagURI(input)
	}
	if t, err := epc.DecodeBinary(input); err == nil {
		return t, nil
	}
	if t, err := epc.DecodeHex(input); err == nil {
		return t, nil
	}
	return nil, nil
}
