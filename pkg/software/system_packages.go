// SPDX-License-Identifier: Apache-2.0

package software

import "github.com/bluet/syspkg/manager"

// System packages required by the voice pipeline on Debian-based systems.
// portaudio19-dev and python3-dev provide the headers needed to build the
// PyAudio wheel during dependency installation.

func NewPython3Venv() (Package, error) {
	return NewPackageInstaller(WithPackageName("python3-venv"), WithPackageOptions(manager.Options{AssumeYes: true}))
}

func NewPython3Pip() (Package, error) {
	return NewPackageInstaller(WithPackageName("python3-pip"), WithPackageOptions(manager.Options{AssumeYes: true}))
}

func NewPython3Dev() (Package, error) {
	return NewPackageInstaller(WithPackageName("python3-dev"), WithPackageOptions(manager.Options{AssumeYes: true}))
}

func NewPortaudioDev() (Package, error) {
	return NewPackageInstaller(WithPackageName("portaudio19-dev"), WithPackageOptions(manager.Options{AssumeYes: true}))
}
