// SPDX-License-Identifier: Apache-2.0

package python

import (
	"github.com/raven-assistant/ravenctl/pkg/detect"
)

// Remediation instructions for a missing or outdated interpreter, keyed by
// detected Linux flavor with per-OS fallbacks.
var (
	linuxRemediation = map[string][]string{
		detect.OSFlavorLinuxUbuntu: {"Install Python 3 using: sudo apt install python3 python3-venv python3-pip"},
		detect.OSFlavorLinuxDebian: {"Install Python 3 using: sudo apt install python3 python3-venv python3-pip"},
		detect.OSFlavorLinuxFedora: {"Install Python 3 using: sudo dnf install python3 python3-pip"},
		detect.OSFlavorLinuxCentos: {"Install Python 3 using: sudo dnf install python3 python3-pip"},
		detect.OSFlavorLinuxRhel:   {"Install Python 3 using: sudo dnf install python3 python3-pip"},
		detect.OSFlavorLinuxArch:   {"Install Python 3 using: sudo pacman -S python python-pip"},
		detect.OSFlavorLinuxSuse:   {"Install Python 3 using: sudo zypper install python3 python3-pip"},
	}

	defaultRemediation = map[string][]string{
		detect.OSTypeLinux: {
			"Install Python 3 using your distribution's package manager",
			"See https://www.python.org/downloads/ for details",
		},
		detect.OSTypeDarwin: {"Install Python 3 using: brew install python3"},
		detect.OSTypeWindows: {
			"Download and install Python 3 from https://www.python.org/downloads/",
			"Make sure to check 'Add Python to PATH' during installation",
		},
	}

	fallbackRemediation = []string{"Install Python 3 from https://www.python.org/downloads/"}
)

// InterpreterRemediation returns platform-specific installation instructions
// for a missing Python 3 interpreter.
func InterpreterRemediation(osInfo *detect.OSInfo) []string {
	if osInfo == nil {
		return fallbackRemediation
	}

	if osInfo.Type == detect.OSTypeLinux {
		if instructions, found := linuxRemediation[osInfo.Flavor]; found {
			return instructions
		}
	}

	if instructions, found := defaultRemediation[osInfo.Type]; found {
		return instructions
	}

	return fallbackRemediation
}
