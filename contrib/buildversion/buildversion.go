package buildversion

import "runtime/debug"

// GetVersion resolves the module version recorded in the build info
// for the named module path.  It returns an empty string when the
// binary carries no build info, such as in test binaries.
func GetVersion(modulePath string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	if info.Main.Path == modulePath {
		return info.Main.Version
	}

	for _, dep := range info.Deps {
		if dep.Path == modulePath {
			return dep.Version
		}
	}

	return ""
}
