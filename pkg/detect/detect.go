// SPDX-License-Identifier: Apache-2.0

package detect

import (
	"github.com/rs/zerolog"
)

var nolog = zerolog.Nop()

// OSInfo defines the data model to contain OS related information
type OSInfo struct {
	Type         string
	Version      string
	Flavor       string
	CodeName     string
	Architecture string
}

// OSManager defines various OS related functionalities
type OSManager interface {
	// GetOSInfo returns OS related information
	GetOSInfo() (*OSInfo, error)
}

// OSDetector provides interface to detect OS related details
type OSDetector interface {
	ScanOS() (*OSInfo, error)
}
