// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/automa-saga/automa"
	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/require"

	"github.com/raven-assistant/ravenctl/pkg/python"
)

func TestCheckVenvPresent(t *testing.T) {
	findings := &Findings{}
	venv := python.NewVenv(filepath.Join(t.TempDir(), "venv"))

	report := buildAndExecute(t, CheckVenvPresent(venv, findings))
	require.Equal(t, automa.StatusSuccess, report.Status)
	require.Equal(t, []string{"Virtual environment not created"}, findings.Issues())

	venvDir := filepath.Join(t.TempDir(), "venv")
	writeFakeVenv(t, venvDir)
	findings = &Findings{}

	report = buildAndExecute(t, CheckVenvPresent(python.NewVenv(venvDir), findings))
	require.Equal(t, automa.StatusSuccess, report.Status)
	require.Empty(t, findings.Issues())
}

func TestCheckVenvPip(t *testing.T) {
	orig := probePip
	t.Cleanup(func() { probePip = orig })

	venvDir := filepath.Join(t.TempDir(), "venv")
	writeFakeVenv(t, venvDir)
	venv := python.NewVenv(venvDir)

	probePip = func(ctx context.Context, pythonPath string) error { return nil }
	findings := &Findings{}
	buildAndExecute(t, CheckVenvPip(venv, findings))
	require.Empty(t, findings.Issues())

	probePip = func(ctx context.Context, pythonPath string) error {
		return errorx.ExternalError.New("pip broken")
	}
	findings = &Findings{}
	buildAndExecute(t, CheckVenvPip(venv, findings))
	require.Equal(t, []string{"pip not working in virtual environment"}, findings.Issues())
}

func TestSummarizeFindings_NoIssues(t *testing.T) {
	t.Parallel()

	report := buildAndExecute(t, SummarizeFindings(&Findings{}))
	require.Equal(t, automa.StatusSuccess, report.Status)
}

func TestSummarizeFindings_WithIssues(t *testing.T) {
	t.Parallel()

	findings := &Findings{}
	findings.add("Ollama not installed")
	findings.add("Missing models: llama3.1:8b")

	report := buildAndExecute(t, SummarizeFindings(findings))
	require.Equal(t, automa.StatusFailed, report.Status)
	require.Contains(t, report.Error.Error(), "2 issue(s) found")
	require.Contains(t, report.Metadata["issues"], "Ollama not installed")
	require.Contains(t, report.Metadata["instructions"], "ravenctl install")
}
