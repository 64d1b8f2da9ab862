// SPDX-License-Identifier: Apache-2.0

package detect

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeReleaseFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestUnixOSDetector_ScanOSReleaseFile(t *testing.T) {
	t.Parallel()

	path := writeReleaseFile(t, OSReleaseFileName,
		"NAME=\"Ubuntu\"\nID=ubuntu\nVERSION_ID=\"22.04\"\nVERSION_CODENAME=jammy\n")

	d := NewUnixOSDetector(
		WithUnixCheckSequence([]string{OSReleaseFileName}),
		WithUnixOSReleasePaths(map[string]string{OSReleaseFileName: path}),
	)

	info, err := d.ScanOS()
	require.NoError(t, err)
	require.Equal(t, runtime.GOOS, info.Type)
	require.Equal(t, OSFlavorLinuxUbuntu, info.Flavor)
	require.Equal(t, "22.04", info.Version)
	require.Equal(t, "jammy", info.CodeName)
}

func TestUnixOSDetector_ScanLSBReleaseFile(t *testing.T) {
	t.Parallel()

	path := writeReleaseFile(t, LSBReleaseFileName,
		"DISTRIB_ID=Debian\nDISTRIB_RELEASE=12\nDISTRIB_CODENAME=bookworm\n")

	d := NewUnixOSDetector(
		WithUnixCheckSequence([]string{LSBReleaseFileName}),
		WithUnixOSReleasePaths(map[string]string{LSBReleaseFileName: path}),
	)

	info, err := d.ScanOS()
	require.NoError(t, err)
	require.Equal(t, OSFlavorLinuxDebian, info.Flavor)
	require.Equal(t, "12", info.Version)
	require.Equal(t, "bookworm", info.CodeName)
}

func TestUnixOSDetector_UnknownFlavor(t *testing.T) {
	t.Parallel()

	path := writeReleaseFile(t, OSReleaseFileName,
		"ID=solaris\nVERSION_ID=\"11\"\n")

	d := NewUnixOSDetector(
		WithUnixCheckSequence([]string{OSReleaseFileName}),
		WithUnixOSReleasePaths(map[string]string{OSReleaseFileName: path}),
	)

	info, err := d.ScanOS()
	require.NoError(t, err)
	require.Equal(t, OSFlavorUnknown, info.Flavor)
}

func TestUnixOSDetector_NoReleaseFiles(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope")
	d := NewUnixOSDetector(
		WithUnixCheckSequence([]string{OSReleaseFileName}),
		WithUnixOSReleasePaths(map[string]string{OSReleaseFileName: missing}),
	)

	_, err := d.ScanOS()
	require.Error(t, err)
}
