// SPDX-License-Identifier: Apache-2.0

package detect

import (
	"runtime"
)

// windowsOSDetector implements OSDetector for Windows. Release details are
// not needed by the installer on Windows, so only runtime facts are reported.
type windowsOSDetector struct {
}

func (wd *windowsOSDetector) ScanOS() (*OSInfo, error) {
	return &OSInfo{
		Type:         runtime.GOOS,
		Architecture: runtime.GOARCH,
		Version:      OSVersionUnknown,
		Flavor:       OSFlavorUnknown,
		CodeName:     OSFlavorUnknown,
	}, nil
}

// NewOSDetector returns the detector for the current platform.
func NewOSDetector() OSDetector {
	return &windowsOSDetector{}
}
