// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"fmt"
	"runtime"

	"github.com/automa-saga/automa"

	"github.com/raven-assistant/ravenctl/internal/core"
	"github.com/raven-assistant/ravenctl/internal/workflows/notify"
	"github.com/raven-assistant/ravenctl/pkg/fsx"
	"github.com/raven-assistant/ravenctl/pkg/logx"
	"github.com/raven-assistant/ravenctl/pkg/python"
)

const generateRunScriptStepId = "generate-run-script"

// AssistantEntryPoint is the Python program the generated launcher starts.
const AssistantEntryPoint = "raven.py"

// runScriptContent renders the launcher for the current platform. The venv
// interpreter is used directly so the script works without an activated shell.
func runScriptContent(venv *python.Venv) string {
	// Paths are quoted so project directories containing spaces still launch.
	if runtime.GOOS == "windows" {
		return fmt.Sprintf("@echo off\r\ncd /d \"%s\"\r\n\"%s\" %s\r\npause\r\n",
			core.ProjectDir(), venv.PythonPath(), AssistantEntryPoint)
	}

	return fmt.Sprintf("#!/bin/bash\ncd \"%s\"\nsource venv/bin/activate\n\"%s\" %s\n",
		core.ProjectDir(), venv.PythonPath(), AssistantEntryPoint)
}

// GenerateRunScript writes the launcher script (run.sh on POSIX, run.bat on
// Windows) into the project root and marks it executable.
func GenerateRunScript(fileManager fsx.Manager, venv *python.Venv) automa.Builder {
	return automa.NewStepBuilder().
		WithId(generateRunScriptStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			scriptPath := core.RunScriptPath()

			if err := fileManager.WriteFile(scriptPath, []byte(runScriptContent(venv))); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if runtime.GOOS != "windows" {
				if err := fileManager.WritePermissions(scriptPath, core.ExecutablePerm); err != nil {
					return automa.FailureReport(stp, automa.WithError(err))
				}
			}

			logx.As().Info().Str("path", scriptPath).Msg("Launcher script created")
			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"script": scriptPath,
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Creating launcher script")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Launcher script step completed")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Launcher script creation failed")
		})
}
