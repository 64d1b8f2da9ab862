// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/automa-saga/automa"
	"github.com/joomcode/errorx"
	"gopkg.in/yaml.v3"

	"github.com/raven-assistant/ravenctl/internal/core"
)

// PrintWorkflowReport prints the workflow execution report in YAML format
var PrintWorkflowReport = func(report *automa.Report) {
	b, err := yaml.Marshal(report)
	if err != nil {
		fmt.Printf("Failed to marshal report: %v\n", err)
		return
	}
	fmt.Printf("Workflow Execution Report:\n%s\n", b)
}

// SaveWorkflowReport saves the workflow execution report as a timestamped
// YAML file under the diagnostics directory and returns its path.
func SaveWorkflowReport(report *automa.Report) (string, error) {
	b, err := yaml.Marshal(report)
	if err != nil {
		return "", errorx.IllegalFormat.Wrap(err, "failed to marshal workflow report")
	}

	dir := core.DiagnosticsDir()
	if err := os.MkdirAll(dir, core.DefaultDirPerm); err != nil {
		return "", errorx.ExternalError.Wrap(err, "failed to create diagnostics directory")
	}

	path := filepath.Join(dir, fmt.Sprintf("report-%s-%s.yaml",
		report.Id, time.Now().Format("20060102-150405")))
	if err := os.WriteFile(path, b, core.DefaultFilePerm); err != nil {
		return "", errorx.ExternalError.Wrap(err, "failed to save workflow report")
	}

	return path, nil
}
