// Copyright 2024 The PackMySeal Authors. All rights reserved.

package version

// version will be set by build flags.
var version string

// GetVersionInStr() will return the latest version of pms.
func GetVersionInStr() string {
	if len(version) == 0 {
		// If version is not set by build flags, return the version constant.
		return PmsVersion.String()
	}
	return version
}

// PmsVersionType is the version type of pms.
type PmsVersionType string

// String() will transform PmsVersionType to string.
func (pvt PmsVersionType) String() string {
	return string(pvt)
}

// All the pms versions.
const (
	PmsVersion        PmsVersionType = PmsVersion_0_2_0
	PmsVersion_latest                = PmsVersion_0_2_0

	PmsVersion_0_2_0 PmsVersionType = "0.2.0"
	PmsVersion_0_1_0 PmsVersionType = "0.1.0"
)
