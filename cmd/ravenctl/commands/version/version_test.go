// SPDX-License-Identifier: Apache-2.0

package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInfoFormat(t *testing.T) {
	t.Parallel()

	info := Info{Version: "1.2.3", Commit: "abc1234"}

	out, err := info.Format("yaml")
	require.NoError(t, err)
	require.Contains(t, out, "version: 1.2.3")
	require.Contains(t, out, "commit: abc1234")

	out, err = info.Format("json")
	require.NoError(t, err)
	require.Contains(t, out, `"version": "1.2.3"`)

	// Empty format falls back to YAML.
	out, err = info.Format("")
	require.NoError(t, err)
	require.Contains(t, out, "version: 1.2.3")

	_, err = info.Format("xml")
	require.Error(t, err)
}
