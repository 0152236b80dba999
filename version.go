package osrmkit

// Boundary version, packed as (major << 16) | minor. The major half
// changes whenever the structural layout of any opaque handle changes.
const (
	VersionMajor = 6
	VersionMinor = 0

	Version = VersionMajor<<16 | VersionMinor
)

// ABIVersion returns the packed version of the linked implementation.
func ABIVersion() uint32 { return Version }

// IsABICompatible reports whether a caller built against the expected
// packed version can safely use this implementation. Compatibility is
// major-version equality; minor revisions only add operations.
func IsABICompatible(expected uint32) bool {
	return expected>>16 == VersionMajor
}
