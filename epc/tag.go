/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-epc/bitextract"
)

const headerWidth = 8

// Tag is an EPC encoded for an RFID tag's EPC memory bank: an identity, the
// coding scheme used to write it, and a filter value.
//
// A Tag is only ever constructed from an identity that fits its coding, so
// every Tag can be rendered in each of its forms.
type Tag struct {
	coding   Coding
	filter   Filter
	identity TagEncodable
	data     []byte
	bits     int
}

// tagEncoder is implemented by every TagEncodable scheme type.
type tagEncoder interface {
	TagEncodable
	// encodeTag writes everything after the header and filter.
	encodeTag(w *bitextract.Writer, c Coding) error
}

// newTag encodes id with the given coding and filter.
func newTag(id tagEncoder, coding Coding, filter Filter) (*Tag, error) {
	s := id.Scheme()
	if coding.Scheme() != s {
		return nil, newError(s, UnsupportedProjection, "%s can't be encoded as %s", s, coding)
	}
	if err := checkFilter(s, filter); err != nil {
		return nil, err
	}

	w := bitextract.NewWriter(coding.BitLength())
	w.WriteUInt64(uint64(coding.Header()), headerWidth)
	w.WriteUInt64(uint64(filter), s.FilterWidth())
	if err := id.encodeTag(w, coding); err != nil {
		return nil, err
	}
	if bits := coding.BitLength(); bits != 0 && w.BitLength() != bits {
		return nil, newError(s, LengthViolation, "%s encoding has %d bits rather than %d",
			coding, w.BitLength(), bits)
	}

	return &Tag{
		coding:   coding,
		filter:   filter,
		identity: id,
		data:     append([]byte(nil), w.Bytes()...),
		bits:     w.BitLength(),
	}, nil
}

// Coding returns the binary coding scheme of the tag.
func (t *Tag) Coding() Coding {
	return t.coding
}

// Filter returns the tag's filter value.
func (t *Tag) Filter() Filter {
	return t.filter
}

// Identity returns the EPC encoded on the tag.
func (t *Tag) Identity() TagEncodable {
	return t.identity
}

// BitLength returns the number of meaningful bits in the encoding, which for
// some codings isn't a multiple of 8.
func (t *Tag) BitLength() int {
	return t.bits
}

// URI returns the EPC Tag URI, e.g. urn:epc:tag:sgtin-96:3.0614141.812345.6789
func (t *Tag) URI() string {
	s := t.identity.Scheme()
	var sb strings.Builder
	sb.WriteString(tagURIPrefix)
	sb.WriteString(t.coding.String())
	sb.WriteByte(':')
	if s.FilterWidth() != 0 {
		sb.WriteString(strconv.Itoa(int(t.filter)))
		sb.WriteByte('.')
	}
	sb.WriteString(s.body(t.identity.URI()))
	return sb.String()
}

func (t *Tag) String() string {
	return t.URI()
}

// Bytes returns the encoding zero padded to a whole number of 16-bit words,
// which is how it's stored in tag memory.
func (t *Tag) Bytes() []byte {
	return padWords(t.data, t.bits)
}

// Binary returns the BitLength bits of the encoding as '0' and '1' characters.
func (t *Tag) Binary() string {
	return bitextract.FormatBinary(t.data, t.bits)
}

// Hex returns the encoding as uppercase hex, padded to 16-bit words.
func (t *Tag) Hex() string {
	return formatHex(t.data, t.bits)
}

// Base64 returns the padded encoding as standard base64.
func (t *Tag) Base64() string {
	return base64.StdEncoding.EncodeToString(t.Bytes())
}

// tagReader is the state of a decode in progress.
type tagReader struct {
	*bitextract.Cursor
	data   []byte
	coding Coding
}

func (r *tagReader) scheme() Scheme {
	return r.coding.Scheme()
}

// read wraps Cursor.ReadUInt64 with this package's error type.
func (r *tagReader) read(width int) (uint64, error) {
	v, err := r.ReadUInt64(width)
	if err != nil {
		return 0, wrapError(err, r.scheme(), PayloadTooShort, "%s payload ended early", r.coding)
	}
	return v, nil
}

type tagDecoder func(r *tagReader) (tagEncoder, error)

// decoderFor returns the function that decodes the fields following the
// filter value for the scheme's codings.
func decoderFor(s Scheme) tagDecoder {
	switch s {
	case SchemeSGTIN:
		return decodeSGTIN
	case SchemeSSCC:
		return decodeSSCC
	case SchemeSGLN:
		return decodeSGLN
	case SchemeGRAI:
		return decodeGRAI
	case SchemeGIAI:
		return decodeGIAI
	case SchemeGSRN:
		return decodeGSRN
	case SchemeGSRNP:
		return decodeGSRNP
	case SchemeGDTI:
		return decodeGDTI
	case SchemeCPI:
		return decodeCPI
	case SchemeSGCN:
		return decodeSGCN
	case SchemeITIP:
		return decodeITIP
	case SchemeGID:
		return decodeGID
	case SchemeUSDOD:
		return decodeUSDOD
	case SchemeADI:
		return decodeADI
	}
	return nil
}

// DecodeBytes decodes the first bitLength bits of data as a binary EPC.
//
// Fixed length codings may be followed by padding, such as when the data was
// read in 16-bit words, but all of it must be zero. Decoded fields are held to
// the same rules as the URIs they represent, so every Tag decoded from binary
// can be re-encoded to exactly the same bits.
func DecodeBytes(data []byte, bitLength int) (*Tag, error) {
	if bitLength < headerWidth || len(data) == 0 {
		return nil, newError(0, PayloadTooShort, "a binary EPC needs at least an %d-bit header", headerWidth)
	}
	if bitLength > len(data)*8 {
		return nil, newError(0, LengthViolation, "bit length %d exceeds the %d bits of data",
			bitLength, len(data)*8)
	}
	coding, err := CodingByHeader(data[0])
	if err != nil {
		return nil, err
	}
	s := coding.Scheme()

	n := bitLength
	if fixed := coding.BitLength(); fixed != 0 {
		if n < fixed {
			return nil, newError(s, PayloadTooShort, "%s needs %d bits, but has only %d", coding, fixed, n)
		}
		tail, err := bitextract.NewCursor(data, n)
		if err != nil {
			return nil, wrapError(err, s, LengthViolation, "invalid payload")
		}
		if err := tail.Skip(fixed); err != nil || !tail.RemainingZero() {
			return nil, newError(s, LengthViolation, "non-zero bits follow the %d-bit %s payload", fixed, coding)
		}
		n = fixed
	}

	c, err := bitextract.NewCursor(data, n)
	if err != nil {
		return nil, wrapError(err, s, LengthViolation, "invalid payload")
	}
	r := &tagReader{Cursor: c, data: data, coding: coding}
	if err := r.Skip(headerWidth); err != nil {
		return nil, wrapError(err, s, PayloadTooShort, "missing header")
	}
	f, err := r.read(s.FilterWidth())
	if err != nil {
		return nil, err
	}

	id, err := decoderFor(s)(r)
	if err != nil {
		return nil, err
	}
	if !r.RemainingZero() {
		return nil, newError(s, LengthViolation, "non-zero bits follow the %s payload", coding)
	}
	return newTag(id, coding, Filter(f))
}

// DecodeHex decodes a hex encoded binary EPC, e.g. 3074257BF7194E4000001A85.
func DecodeHex(h string) (*Tag, error) {
	data, n, err := parseHex(h)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(data, n)
}

// DecodeBase64 decodes a base64 encoded binary EPC.
func DecodeBase64(b string) (*Tag, error) {
	data, err := parseBase64(b)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(data, len(data)*8)
}

// DecodeBinary decodes a binary EPC written as a string of '0' and '1'.
func DecodeBinary(b string) (*Tag, error) {
	data, n, err := bitextract.ParseBinary(b)
	if err != nil {
		return nil, wrapError(err, 0, InvalidGrammar, "invalid binary payload")
	}
	return DecodeBytes(data, n)
}

// DecodeTagURI parses an EPC Tag URI and encodes it with the coding and
// filter it names.
func DecodeTagURI(uri string) (*Tag, error) {
	if !strings.HasPrefix(uri, tagURIPrefix) {
		return nil, newError(0, InvalidGrammar, "%q doesn't start with %s", uri, tagURIPrefix)
	}
	rest := uri[len(tagURIPrefix):]
	i := strings.IndexByte(rest, ':')
	if i < 0 {
		return nil, newError(0, InvalidGrammar, "%q has no coding scheme", uri)
	}
	coding, err := CodingByName(rest[:i])
	if err != nil {
		return nil, err
	}
	s := coding.Scheme()
	if err := checkEscapes(s, uri); err != nil {
		return nil, err
	}

	m := grammarOf(s).tag.FindStringSubmatch(uri)
	if m == nil || m[1] != coding.String() {
		return nil, newError(s, InvalidGrammar, "%q is not a valid %s tag URI", uri, coding)
	}

	var filter Filter
	body := m[2]
	if s.FilterWidth() != 0 {
		f, err := strconv.ParseUint(m[2], 10, 8)
		if err != nil {
			return nil, wrapError(err, s, OutOfRange, "invalid filter value %s", m[2])
		}
		filter = Filter(f)
		body = m[3]
	}

	id, err := ParsePureIdentity(s.URIPrefix() + body)
	if err != nil {
		return nil, err
	}
	enc, ok := id.(tagEncoder)
	if !ok {
		return nil, newError(s, NotConvertible, "%s is not tag encodable", s)
	}
	return newTag(enc, coding, filter)
}
