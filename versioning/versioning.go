package versioning

// Embedded by --ldflags on build time
// Versioning should follow the SemVer guidelines
// https://semver.org/
var (
	// Version is the main version at the moment.
	Version = "v0.1.0"

	// Commit is the git commit that the binary was built on
	Commit string

	// Branch is the git branch that the binary was built on
	Branch string

	// BuildTime is the time that the binary was built on
	BuildTime string
)
