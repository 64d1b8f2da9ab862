// SPDX-License-Identifier: Apache-2.0

package python

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raven-assistant/ravenctl/pkg/detect"
)

func TestInterpreterRemediation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		osInfo   *detect.OSInfo
		contains string
	}{
		{
			name:     "ubuntu",
			osInfo:   &detect.OSInfo{Type: detect.OSTypeLinux, Flavor: detect.OSFlavorLinuxUbuntu},
			contains: "sudo apt install python3",
		},
		{
			name:     "fedora",
			osInfo:   &detect.OSInfo{Type: detect.OSTypeLinux, Flavor: detect.OSFlavorLinuxFedora},
			contains: "sudo dnf install python3",
		},
		{
			name:     "arch",
			osInfo:   &detect.OSInfo{Type: detect.OSTypeLinux, Flavor: detect.OSFlavorLinuxArch},
			contains: "sudo pacman -S python",
		},
		{
			name:     "unknown linux flavor",
			osInfo:   &detect.OSInfo{Type: detect.OSTypeLinux, Flavor: detect.OSFlavorUnknown},
			contains: "package manager",
		},
		{
			name:     "darwin",
			osInfo:   &detect.OSInfo{Type: detect.OSTypeDarwin, Flavor: detect.OSFlavorMacSonoma},
			contains: "brew install python3",
		},
		{
			name:     "windows",
			osInfo:   &detect.OSInfo{Type: detect.OSTypeWindows},
			contains: "python.org/downloads",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			instructions := InterpreterRemediation(tc.osInfo)
			require.NotEmpty(t, instructions)

			found := false
			for _, line := range instructions {
				if strings.Contains(line, tc.contains) {
					found = true
				}
			}
			require.True(t, found, "expected remediation to mention %q, got %v", tc.contains, instructions)
		})
	}
}

func TestInterpreterRemediation_NilOSInfo(t *testing.T) {
	t.Parallel()

	instructions := InterpreterRemediation(nil)
	require.NotEmpty(t, instructions)
}
