// SPDX-License-Identifier: Apache-2.0

package detect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNonNegativeBytes(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(0), nonNegativeBytes(-1))
	require.Equal(t, uint64(0), nonNegativeBytes(0))
	require.Equal(t, uint64(8<<30), nonNegativeBytes(8<<30))
}
