/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "fmt"

// Filter is the filter value carried in a tag's binary encoding, used by
// readers to quickly select the kind of objects they're interested in.
// Its meaning depends on the scheme; see Name.
type Filter uint8

// Named filter values. Values without a name are reserved, but are still
// accepted for encoding.
const (
	FilterAllOthers Filter = 0

	SGTINFilterPOSItem   Filter = 1
	SGTINFilterFullCase  Filter = 2
	SGTINFilterInnerPack Filter = 4
	SGTINFilterUnitLoad  Filter = 6
	SGTINFilterComponent Filter = 7

	SSCCFilterUndefined Filter = 1
	SSCCFilterLogistics Filter = 2

	GIAIFilterRailVehicle Filter = 1

	GDTIFilterTravelDocument Filter = 1

	USDODFilterPallet   Filter = 0
	USDODFilterCase     Filter = 1
	USDODFilterUnitPack Filter = 2

	ADIFilterItem   Filter = 1
	ADIFilterCarton Filter = 2
	ADIFilterPallet Filter = 6
)

var sgtinFilterNames = map[Filter]string{
	0: "ALL_OTHERS",
	1: "POS_ITEM",
	2: "FULL_CASE",
	3: "RESERVED_3",
	4: "INNER_PACK",
	5: "RESERVED_5",
	6: "UNIT_LOAD",
	7: "COMPONENT",
}

var filterNames = map[Scheme]map[Filter]string{
	SchemeSGTIN: sgtinFilterNames,
	SchemeITIP:  sgtinFilterNames,
	SchemeSSCC: {
		0: "ALL_OTHERS",
		1: "UNDEFINED",
		2: "LOGISTICS",
	},
	SchemeGIAI: {
		0: "ALL_OTHERS",
		1: "RAIL_VEHICLE",
	},
	SchemeGDTI: {
		0: "ALL_OTHERS",
		1: "TRAVEL_DOCUMENT",
	},
	SchemeUSDOD: {
		0: "PALLET",
		1: "CASE",
		2: "UNIT_PACK",
	},
	SchemeADI: {
		0:  "ALL_OTHERS",
		1:  "ITEM_OTHER_THAN_LISTED",
		2:  "CARTON",
		6:  "PALLET",
		8:  "SEAT_CUSHIONS",
		9:  "SEAT_COVERS",
		10: "SEAT_BELTS",
		11: "GALLEY_CARTS",
		12: "ULD",
		13: "SECURITY_ITEMS",
		14: "LIFE_VESTS",
		15: "OXYGEN_GENERATORS",
		16: "ENGINE_COMPONENTS",
		17: "AVIONICS",
		18: "EXPERIMENTAL_EQUIPMENT",
		19: "OTHER_EMERGENCY_EQUIPMENT",
		20: "OTHER_ROTABLES",
		21: "OTHER_REPAIRABLES",
		22: "OTHER_CABIN_INTERIOR",
		23: "OTHER_REPAIR",
	},
}

// Name returns the filter's name within the given scheme, e.g. "POS_ITEM"
// for SGTIN filter 1. Reserved values are named "RESERVED_n", except for GDTI
// and ADI which reserve their unnamed values as a block.
func (f Filter) Name(s Scheme) string {
	if n, ok := filterNames[s][f]; ok {
		return n
	}
	switch s {
	case SchemeGDTI, SchemeADI:
		return "RESERVED"
	}
	if f == 0 {
		return "ALL_OTHERS"
	}
	return fmt.Sprintf("RESERVED_%d", f)
}

func checkFilter(s Scheme, f Filter) error {
	width := s.FilterWidth()
	if width == 0 {
		if f != 0 {
			return newError(s, OutOfRange, "filter values are not used by %s", s)
		}
		return nil
	}
	if uint(f) >= 1<<uint(width) {
		return newError(s, OutOfRange, "filter %d doesn't fit in %d bits", f, width)
	}
	return nil
}
