package vulpes

// Library version components for compatibility checking.
const (
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)

const versionString = "0.1.0"

// Version returns the library version string. The value is constant for the
// process lifetime and valid regardless of initialization state.
func Version() string { return versionString }
