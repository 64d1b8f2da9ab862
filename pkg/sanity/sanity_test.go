// SPDX-License-Identifier: Apache-2.0

package sanity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizePath(t *testing.T) {
	t.Parallel()

	p, err := SanitizePath("models/./whisper")
	require.NoError(t, err)
	require.Equal(t, "models/whisper", p)

	_, err = SanitizePath("../etc/passwd")
	require.Error(t, err)

	_, err = SanitizePath("models/../../escape")
	require.Error(t, err)

	_, err = SanitizePath("")
	require.Error(t, err)
}

func TestFilename(t *testing.T) {
	t.Parallel()

	name, err := Filename("ravenctl.plock")
	require.NoError(t, err)
	require.Equal(t, "ravenctl.plock", name)

	_, err = Filename("a/b")
	require.Error(t, err)

	_, err = Filename("")
	require.Error(t, err)
}

func TestValidateModelName(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateModelName("llama3.1:8b"))
	require.NoError(t, ValidateModelName("qwen2.5vl:7b"))
	require.NoError(t, ValidateModelName("medium"))
	require.Error(t, ValidateModelName(""))
	require.Error(t, ValidateModelName("bad model"))
	require.Error(t, ValidateModelName(":leading"))
}

func TestValidateIdentifier(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateIdentifier("ollama"))
	require.Error(t, ValidateIdentifier("has space"))
	require.Error(t, ValidateIdentifier(""))
}
