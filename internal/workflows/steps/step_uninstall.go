// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"path/filepath"

	"github.com/automa-saga/automa"

	"github.com/raven-assistant/ravenctl/internal/core"
	"github.com/raven-assistant/ravenctl/internal/workflows/notify"
	"github.com/raven-assistant/ravenctl/pkg/fsx"
	"github.com/raven-assistant/ravenctl/pkg/logx"
)

const (
	removeVenvStepId       = "remove-virtual-environment"
	removeModelsStepId     = "remove-models"
	removeRunScriptsStepId = "remove-run-scripts"
	removeStateStepId      = "remove-install-state"
)

func removePathStep(stepId, description, path string, fileManager fsx.Manager, after func()) automa.Builder {
	return automa.NewStepBuilder().
		WithId(stepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			_, exists, err := fileManager.PathExists(path)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if !exists {
				logx.As().Info().Str("path", path).Msgf("%s not present, nothing to remove", description)
				return automa.SuccessReport(stp)
			}

			if err := fileManager.RemoveAll(path); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if after != nil {
				after()
			}

			logx.As().Info().Str("path", path).Msgf("%s removed", description)
			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"removed": path,
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Removing %s", description)
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "%s removal step completed", description)
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "%s removal step failed", description)
		})
}

// RemoveVenv deletes the Python virtual environment.
func RemoveVenv(fileManager fsx.Manager) automa.Builder {
	return removePathStep(removeVenvStepId, "virtual environment", core.VenvDir(), fileManager,
		func() { removeInstallState(VenvComponent) })
}

// RemoveModels deletes the downloaded speech model artifacts.
func RemoveModels(fileManager fsx.Manager) automa.Builder {
	return removePathStep(removeModelsStepId, "models directory", core.ModelsDir(), fileManager,
		func() { removeInstallState(WhisperComponent) })
}

// RemoveRunScripts deletes the generated launcher scripts. Both variants are
// removed so an install from another platform leaves nothing behind on a
// shared project directory.
func RemoveRunScripts(fileManager fsx.Manager) automa.Builder {
	return automa.NewStepBuilder().
		WithId(removeRunScriptsStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			for _, name := range []string{"run.sh", "run.bat"} {
				path := filepath.Join(core.ProjectDir(), name)
				if err := fileManager.RemoveAll(path); err != nil {
					return automa.FailureReport(stp, automa.WithError(err))
				}
			}

			logx.As().Info().Msg("Launcher scripts removed")
			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Removing launcher scripts")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Launcher script removal step completed")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Launcher script removal step failed")
		})
}

// RemoveInstallState deletes the recorded install state markers.
func RemoveInstallState(fileManager fsx.Manager) automa.Builder {
	return removePathStep(removeStateStepId, "install state", core.StateDir(), fileManager, nil)
}
