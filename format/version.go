// Package format defines the closed enumerations that gate field presence
// across BRS save-file versions, and the compression algorithm identifiers
// used by the compress package.
package format

import "fmt"

// Version identifies a BRS save-file format revision. Versions are ordered
// by introduction; comparisons use "introduced no later than" semantics
// (v >= VersionAddedDateTime reads as "this file's version already has the
// date-time field").
type Version uint16

const (
	VersionInitial                                           Version = 1
	VersionMaterialsStoredAsNames                             Version = 2
	VersionAddedOwnerData                                     Version = 3
	VersionAddedDateTime                                      Version = 4
	VersionAddedComponentsData                                Version = 5
	VersionAddedScreenshotData                                Version = 6
	VersionAddedGameVersionAndHostAndOwnerDataAndImprovedMaterials Version = 7
	VersionRenamedComponentDescriptors                        Version = 8

	// VersionMin is the oldest version this package can read.
	VersionMin = VersionInitial
	// VersionMax is the newest known version. Writers always emit VersionMax.
	VersionMax = VersionRenamedComponentDescriptors
)

// String returns the feature name the version is introduced for.
func (v Version) String() string {
	switch v {
	case VersionInitial:
		return "Initial"
	case VersionMaterialsStoredAsNames:
		return "MaterialsStoredAsNames"
	case VersionAddedOwnerData:
		return "AddedOwnerData"
	case VersionAddedDateTime:
		return "AddedDateTime"
	case VersionAddedComponentsData:
		return "AddedComponentsData"
	case VersionAddedScreenshotData:
		return "AddedScreenshotData"
	case VersionAddedGameVersionAndHostAndOwnerDataAndImprovedMaterials:
		return "AddedGameVersionAndHostAndOwnerDataAndImprovedMaterials"
	case VersionRenamedComponentDescriptors:
		return "RenamedComponentDescriptors"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(v))
	}
}

// Known reports whether v corresponds to a named version within [VersionMin, VersionMax].
func (v Version) Known() bool {
	return v >= VersionMin && v <= VersionMax
}

// ScreenshotFormat identifies the encoding of an embedded screenshot frame.
type ScreenshotFormat uint8

const (
	ScreenshotNone ScreenshotFormat = 0
	ScreenshotPNG  ScreenshotFormat = 1
)

func (f ScreenshotFormat) String() string {
	switch f {
	case ScreenshotNone:
		return "None"
	case ScreenshotPNG:
		return "PNG"
	default:
		return fmt.Sprintf("Unknown(0x%02x)", uint8(f))
	}
}
