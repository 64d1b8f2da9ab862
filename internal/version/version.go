// SPDX-License-Identifier: Apache-2.0

package version

// Values are injected at build time via -ldflags.
var (
	number = "0.1.0"
	commit = "unknown"
)

// Number returns the application version.
func Number() string {
	return number
}

// Commit returns the git commit the binary was built from.
func Commit() string {
	return commit
}
