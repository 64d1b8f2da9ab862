// SPDX-License-Identifier: Apache-2.0

package software

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Not parallel: these tests mutate the package manager singleton.

func swapPackageManagerState(t *testing.T) {
	t.Helper()

	origPM, origErr := pkgManager, pkgManagerErr
	t.Cleanup(func() {
		pkgManager, pkgManagerErr = origPM, origErr
	})

	// Consume the once so the injected state below is what callers observe.
	once.Do(func() {})
}

func TestGetPackageManager_InitFailureIsSticky(t *testing.T) {
	swapPackageManagerState(t)

	pkgManager = nil
	pkgManagerErr = NewInstallationError(nil, "package-manager")

	// Every call must report the failure, not just the first one.
	for i := 0; i < 2; i++ {
		pm, err := GetPackageManager()
		require.Error(t, err)
		require.Nil(t, pm)
	}
}

func TestNewPackageInstaller_FailsWithoutPackageManager(t *testing.T) {
	swapPackageManagerState(t)

	pkgManager = nil
	pkgManagerErr = NewInstallationError(nil, "package-manager")

	_, err := NewPackageInstaller(WithPackageName("portaudio19-dev"))
	require.Error(t, err)
}
