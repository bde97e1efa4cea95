/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"strconv"

	"github.com/intel/rsp-sw-toolkit-im-suite-epc/bitextract"
)

// GID-96 is header.manager.class.serial; it has no filter value.
var gidLayout = bitextract.MustBitExploder(headerWidth, 28, 24, 36)

// GID is a General Identifier, which isn't tied to any GS1 key: a manager
// number, an object class within it, and a serial number.
type GID struct {
	identity
	manager uint64
	class   uint64
	serial  uint64
}

// ParseGID parses urn:epc:id:gid:ManagerNumber.ObjectClass.SerialNumber
func ParseGID(uri string) (*GID, error) {
	m, err := matchPure(SchemeGID, uri)
	if err != nil {
		return nil, err
	}
	names := [...]string{"manager number", "object class", "serial number"}
	var vals [3]uint64
	for i := range vals {
		width := gidLayout.Widths()[i+1]
		if vals[i], err = parseInteger(SchemeGID, names[i], m[i], width); err != nil {
			return nil, err
		}
	}
	return &GID{identity{SchemeGID, uri}, vals[0], vals[1], vals[2]}, nil
}

func (g *GID) ManagerNumber() string {
	return strconv.FormatUint(g.manager, 10)
}

func (g *GID) ObjectClass() string {
	return strconv.FormatUint(g.class, 10)
}

func (g *GID) SerialNumber() string {
	return strconv.FormatUint(g.serial, 10)
}

func (g *GID) Tag(coding Coding, filter Filter) (*Tag, error) {
	return newTag(g, coding, filter)
}

func (g *GID) encodeTag(w *bitextract.Writer, coding Coding) error {
	widths := gidLayout.Widths()
	w.WriteUInt64(g.manager, widths[1])
	w.WriteUInt64(g.class, widths[2])
	w.WriteUInt64(g.serial, widths[3])
	return nil
}

func decodeGID(r *tagReader) (tagEncoder, error) {
	fields, err := gidLayout.ExplodeUInt64(r.data)
	if err != nil {
		return nil, wrapError(err, SchemeGID, PayloadTooShort, "invalid GID-96 payload")
	}
	if err := r.Skip(gidLayout.BitLength() - r.Position()); err != nil {
		return nil, wrapError(err, SchemeGID, PayloadTooShort, "invalid GID-96 payload")
	}
	return ParseGID(pureURI(SchemeGID,
		strconv.FormatUint(fields[1], 10),
		strconv.FormatUint(fields[2], 10),
		strconv.FormatUint(fields[3], 10)))
}
