// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	t.Parallel()

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	require.Subset(t, names, []string{"install", "check", "uninstall", "version"})
}

func TestExecute_NilContext(t *testing.T) {
	require.Error(t, Execute(nil))
}
