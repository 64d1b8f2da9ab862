// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"testing"

	"github.com/automa-saga/automa"
	"github.com/stretchr/testify/require"

	"github.com/raven-assistant/ravenctl/pkg/whisper"
)

func TestDownloadWhisperModel_FailureIsWarning(t *testing.T) {
	useTempProjectDir(t)

	manager := whisper.NewManager(t.TempDir())

	// an unknown model name fails the download without touching the network
	report := buildAndExecute(t, DownloadWhisperModel(manager, "no-such-model"))

	require.Equal(t, automa.StatusSuccess, report.Status)
	require.NoError(t, report.Error)
	require.Contains(t, report.Metadata["warning"], "no-such-model")
	require.False(t, installStateExists(WhisperComponent))
}
