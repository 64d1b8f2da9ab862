// SPDX-License-Identifier: Apache-2.0

package exit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode_String(t *testing.T) {
	t.Parallel()
	require.Equal(t, "0", NormalTermination.String())
	require.Equal(t, "1", GeneralError.String())
	require.Equal(t, "78", ConfigurationError.String())
}

func TestCode_Is(t *testing.T) {
	t.Parallel()
	require.True(t, GeneralError.Is(1))
	require.False(t, GeneralError.Is(0))
	require.True(t, NormalTermination.Is(NormalTermination.Int()))
}
