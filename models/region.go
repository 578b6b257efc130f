// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// Region selects one of the vendor's regional API shards.
type Region string

const (
	RegionAsiaPacific  Region = "ap"
	RegionNorthAmerica Region = "na"
	RegionEurope       Region = "eu"
	RegionKorea        Region = "ko"
)

var ErrUnknownRegion = errors.New("unknown region")

var regionDisplayNames = map[Region]string{
	RegionAsiaPacific:  "Asia Pacific",
	RegionNorthAmerica: "North America",
	RegionEurope:       "Europe",
	RegionKorea:        "Korea",
}

// Regions returns all supported regions in a stable order.
func Regions() []Region {
	return []Region{RegionAsiaPacific, RegionNorthAmerica, RegionEurope, RegionKorea}
}

// ParseRegion accepts either a region code ("eu") or its display name
// ("Europe"), case-insensitively.
func ParseRegion(s string) (Region, error) {
	s = strings.TrimSpace(s)
	for code, name := range regionDisplayNames {
		if strings.EqualFold(s, string(code)) || strings.EqualFold(s, name) {
			return code, nil
		}
	}
	return "", ErrUnknownRegion
}

func (r Region) Valid() bool {
	_, ok := regionDisplayNames[r]
	return ok
}

// DisplayName returns the human-readable region name.
func (r Region) DisplayName() string {
	return regionDisplayNames[r]
}
