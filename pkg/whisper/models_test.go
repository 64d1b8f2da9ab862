// SPDX-License-Identifier: Apache-2.0

package whisper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupModel(t *testing.T) {
	t.Parallel()

	model, err := LookupModel("medium")
	require.NoError(t, err)
	require.Equal(t, "medium", model.Name)
	require.Len(t, model.SHA256, 64)

	url, err := model.URL()
	require.NoError(t, err)
	require.Equal(t,
		"https://openaipublic.azureedge.net/main/whisper/models/"+model.SHA256+"/medium.pt",
		url)
	require.Equal(t, "medium.pt", model.Filename())
}

func TestLookupModel_Unknown(t *testing.T) {
	t.Parallel()

	_, err := LookupModel("gigantic")
	require.Error(t, err)
}

func TestModelNames(t *testing.T) {
	t.Parallel()

	names, err := ModelNames()
	require.NoError(t, err)
	require.Contains(t, names, "tiny")
	require.Contains(t, names, "medium")
	require.Contains(t, names, "large-v3")
}
