// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"os"
	"testing"

	"github.com/automa-saga/automa"
	"github.com/stretchr/testify/require"
)

func TestSaveWorkflowReport(t *testing.T) {
	useTempProjectDir(t)

	report := &automa.Report{
		Id:     "install",
		Status: automa.StatusSuccess,
	}

	path, err := SaveWorkflowReport(report)
	require.NoError(t, err)
	require.FileExists(t, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "install")
}

func TestPrintWorkflowReport_DoesNotPanic(t *testing.T) {
	PrintWorkflowReport(&automa.Report{Id: "check", Status: automa.StatusSuccess})
}
