/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package epc implements the GS1 EPC identifier schemes of the EPC Tag Data
// Standard: SGTIN, SSCC, SGLN, GRAI, GIAI, GSRN, GSRNP, GDTI, CPI, SGCN, GINC,
// GSIN, ITIP, UPUI, PGLN, LGTIN, GID, USDoD, ADI, BIC, and IMOVN. It converts
// between their pure identity URIs, tag URIs, pattern URIs, GS1 element
// strings and keys, and the binary encodings written to RFID tags.
//
// Each scheme has a ParseX function returning its own type; Parse accepts any
// representation and works out which it is. Binary payloads are decoded with
// DecodeHex, DecodeBase64, DecodeBinary, or DecodeBytes, and encoded with the
// Tag method of an identity. Every error this package returns is an *Error
// with an ErrorKind saying why the input was rejected.
//
// This code follows these documents; where they disagree, the newer TDS wins.
// - https://www.gs1.org/sites/default/files/docs/barcodes/GS1_General_Specifications.pdf
// - https://www.gs1.org/standards/epcrfid-epcis-id-keys/epc-rfid-tds/1-12
// - https://www.gs1.org/sites/default/files/docs/epc/GS1_EPC_TDS_i1_12.pdf
//
// An EPC is an identifier assigned to exactly one "thing", not the tag that
// carries it or any one of its encodings. The same EPC may be written as an
// SGTIN-96 or an SGTIN-198 and still be the same EPC:
//     "It is important to note that two EPCs are the same if and only if the
//     Pure Identity EPC URIs are character for character identical."
// 	   - GS1 EPC Tag Data Standard, p. 80
// So convert tag data into a pure identity URI as soon as possible, and
// compare and store that. The tag URI is only needed by code that cares about
// how the EPC is physically encoded, such as a tag writer choosing a filter.
//
// RFID tags may hold anything in their EPC bank. Decoding fails, rather than
// guessing, on unknown headers, payloads of the wrong length, and fields that
// don't round trip, so that non-EPC data is never mistaken for an EPC.
package epc
