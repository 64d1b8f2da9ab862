// SPDX-License-Identifier: Apache-2.0

package detect

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// darwinOSDetector implements OSDetector interface for darwin like OS
type darwinOSDetector struct {
}

// detectDarwinFlavor converts the product version into a Mac flavor.
func (dd *darwinOSDetector) detectDarwinFlavor(productVersion string) string {
	productVersion = strings.ToLower(productVersion)
	parts := strings.Split(productVersion, ".")

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return OSFlavorUnknown
	}

	if major > 10 {
		productVersion = fmt.Sprintf("%d.*", major)
	}

	if flavor, found := macFlavorMapping[productVersion]; found {
		return flavor
	}

	return OSFlavorUnknown
}

// ScanOS returns OSInfo including macOS version, release and codeName.
// It requires `uname` and `sw_vers` programs to be available.
func (dd *darwinOSDetector) ScanOS() (*OSInfo, error) {
	osInfo := OSInfo{
		Type:         runtime.GOOS,
		Architecture: runtime.GOARCH,
	}

	// detect version
	command := exec.Command("uname", "-r")
	output, err := command.Output()
	if err == nil {
		osInfo.Version = strings.Trim(string(output), "\n")
	}

	// detect flavor
	command = exec.Command("sw_vers", "-productVersion")
	output, err = command.Output()
	if err == nil {
		productVersion := strings.Trim(string(output), "\n")
		osInfo.Flavor = dd.detectDarwinFlavor(productVersion)
	}

	// codename and flavor are same for macOS
	osInfo.CodeName = osInfo.Flavor

	return &osInfo, nil
}

func NewDarwinOSDetector() OSDetector {
	return &darwinOSDetector{}
}

// NewOSDetector returns the detector for the current platform.
func NewOSDetector() OSDetector {
	return NewDarwinOSDetector()
}
